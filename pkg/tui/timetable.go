package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"planctl/pkg/exporter"
	"planctl/pkg/importer"
	"planctl/pkg/storage"
	"planctl/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunTimetableTUI runs the interactive flow for managing the class timetable
func RunTimetableTUI() error {
	store, skipped, err := storage.LoadTimetable()
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Could not load timetable (%v), starting empty.", err)))
		store = timetable.NewStore()
	}
	if skipped > 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Skipped %d invalid timetable record(s) while loading.", skipped)))
	}

	for {
		var action string

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Timetable").
					Options(
						huh.NewOption("Add a Class", "add"),
						huh.NewOption("Remove a Class", "remove"),
						huh.NewOption("Edit a Class", "edit"),
						huh.NewOption("View Timetable", "view"),
						huh.NewOption("Weekly Summary", "summary"),
						huh.NewOption("Import from HTML", "import"),
						huh.NewOption("Export to ICS", "export"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		var actionErr error
		switch action {
		case "add":
			actionErr = runAddEntryTUI(store)
		case "remove":
			actionErr = runRemoveEntryTUI(store)
		case "edit":
			actionErr = runEditEntryTUI(store)
		case "view":
			printTimetable(store)
		case "summary":
			printWeeklySummary(store)
		case "import":
			actionErr = runImportTUI(store)
		case "export":
			actionErr = runExportTUI(store)
		}

		if actionErr != nil {
			return actionErr
		}
	}
}

// entryForm collects the fields for a new or edited entry. The initial
// values pre-fill the inputs when editing.
func entryForm(title string, name, day, start, end *string) *huh.Form {
	var dayOptions []huh.Option[string]
	for _, d := range timetable.Weekdays() {
		dayOptions = append(dayOptions, huh.NewOption(d.String(), d.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Class name").
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("class name cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Day of the week").
				Options(dayOptions...).
				Value(day),

			huh.NewInput().
				Title("Start time").
				Description("24h format, e.g. 14:30").
				Value(start).
				Validate(func(s string) error {
					_, err := timetable.ParseClock(s)
					return err
				}),

			huh.NewInput().
				Title("End time").
				Description("24h format, e.g. 16:00").
				Value(end).
				Validate(func(s string) error {
					_, err := timetable.ParseClock(s)
					return err
				}),
		),
	).WithTheme(GetTheme())
}

// parseEntry converts the collected form strings into a validated Entry.
func parseEntry(name, day, start, end string) (timetable.Entry, error) {
	d, err := timetable.ParseWeekday(day)
	if err != nil {
		return timetable.Entry{}, err
	}
	s, err := timetable.ParseClock(start)
	if err != nil {
		return timetable.Entry{}, err
	}
	e, err := timetable.ParseClock(end)
	if err != nil {
		return timetable.Entry{}, err
	}

	entry := timetable.Entry{Name: strings.TrimSpace(name), Day: d, Start: s, End: e}
	return entry, entry.Validate()
}

func runAddEntryTUI(store *timetable.Store) error {
	var name, day, start, end string

	if err := entryForm("Add a Class", &name, &day, &start, &end).Run(); err != nil {
		return err
	}

	entry, err := parseEntry(name, day, start, end)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	if err := store.Add(entry); err != nil {
		if errors.Is(err, timetable.ErrConflict) {
			fmt.Println(errorStyle.Render(fmt.Sprintf("Conflict! %v", err)))
			return nil
		}
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	if err := storage.SaveTimetable(store); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nAdded %s\n", entry)))
	return nil
}

// pickEntry lets the user select one entry out of the store, returning its
// index. Returns -1 when the store is empty.
func pickEntry(store *timetable.Store, title string) (int, error) {
	if store.Len() == 0 {
		fmt.Println(errorStyle.Render("The timetable is empty."))
		return -1, nil
	}

	var options []huh.Option[int]
	for i, e := range store.Entries() {
		options = append(options, huh.NewOption(e.String(), i))
	}

	var selected int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(options...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return -1, err
	}

	return selected, nil
}

func runRemoveEntryTUI(store *timetable.Store) error {
	index, err := pickEntry(store, "Select the class to remove")
	if err != nil || index < 0 {
		return err
	}

	target := store.Entries()[index]
	removed, ok := store.Remove(target.Name, target.Day, target.Start)
	if !ok {
		fmt.Println(errorStyle.Render("Class not found."))
		return nil
	}

	if err := storage.SaveTimetable(store); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nRemoved %s\n", removed)))
	return nil
}

func runEditEntryTUI(store *timetable.Store) error {
	index, err := pickEntry(store, "Select the class to edit")
	if err != nil || index < 0 {
		return err
	}

	current := store.Entries()[index]
	name := current.Name
	day := current.Day.String()
	start := current.Start.String()
	end := current.End.String()

	if err := entryForm("Edit Class", &name, &day, &start, &end).Run(); err != nil {
		return err
	}

	entry, err := parseEntry(name, day, start, end)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	if err := store.Update(index, entry); err != nil {
		if errors.Is(err, timetable.ErrConflict) {
			fmt.Println(errorStyle.Render(fmt.Sprintf("Conflict! %v", err)))
			return nil
		}
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	if err := storage.SaveTimetable(store); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nUpdated to %s\n", entry)))
	return nil
}

func printTimetable(store *timetable.Store) {
	if store.Len() == 0 {
		fmt.Println(errorStyle.Render("The timetable is empty."))
		return
	}

	store.Sort()

	var lastDay timetable.Weekday = -1
	for _, e := range store.Entries() {
		if e.Day != lastDay {
			fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- %s ---", e.Day)))
			lastDay = e.Day
		}
		fmt.Printf("  %s - %s  %s\n", e.Start, e.End, e.Name)
	}
	fmt.Println()
}

func printWeeklySummary(store *timetable.Store) {
	summary := store.WeeklySummary()
	if len(summary) == 0 {
		fmt.Println(errorStyle.Render("The timetable is empty."))
		return
	}

	fmt.Println(accentStyle.Render("\n--- Weekly Minutes per Class ---"))
	for _, total := range summary {
		fmt.Printf("  %-30s %dh %02dm\n", total.Name, total.Total/60, total.Total%60)
	}
	fmt.Println()
}

func runImportTUI(store *timetable.Store) error {
	var path string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("HTML file to import").
				Description("A table with class, day, start, and end columns").
				Value(&path).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Could not open %s: %v", path, err)))
		return nil
	}
	defer file.Close()

	var entries []timetable.Entry
	var skipped int
	var parseErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Parsing %s...", path)).
		Action(func() {
			entries, skipped, parseErr = importer.ParseTable(file)
		}).
		Run()

	if parseErr != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Import failed: %v", parseErr)))
		return nil
	}

	added, conflicts := 0, 0
	for _, e := range entries {
		if err := store.Add(e); err != nil {
			conflicts++
			continue
		}
		added++
	}

	if added > 0 {
		if err := storage.SaveTimetable(store); err != nil {
			return err
		}
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nImported %d class(es); %d conflicting, %d malformed.\n", added, conflicts, skipped)))
	return nil
}

func runExportTUI(store *timetable.Store) error {
	if store.Len() == 0 {
		fmt.Println(errorStyle.Render("The timetable is empty."))
		return nil
	}

	outputFile := "timetable.ics"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	store.Sort()

	var genErr error
	_ = spinner.New().
		Title(fmt.Sprintf("Exporting %d classes to %s...", store.Len(), outputFile)).
		Action(func() {
			genErr = exporter.GenerateICS(store.Entries(), time.Now(), file)
		}).
		Run()

	if genErr != nil {
		return fmt.Errorf("failed to generate ICS: %w", genErr)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d classes to %s\n", store.Len(), outputFile)))
	return nil
}
