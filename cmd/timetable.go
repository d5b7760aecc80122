package cmd

import (
	"errors"
	"fmt"
	"os"

	"planctl/pkg/importer"
	"planctl/pkg/storage"
	"planctl/pkg/timetable"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var timetableCmd = &cobra.Command{
	Use:   "timetable",
	Short: "Manage the class timetable directly",
	Long:  `Add, remove, and inspect timetable entries without using the interactive TUI.`,
}

var timetableAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a class to the timetable",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		dayStr, _ := cmd.Flags().GetString("day")
		startStr, _ := cmd.Flags().GetString("start")
		endStr, _ := cmd.Flags().GetString("end")

		day, err := timetable.ParseWeekday(dayStr)
		if err != nil {
			return err
		}
		start, err := timetable.ParseClock(startStr)
		if err != nil {
			return err
		}
		end, err := timetable.ParseClock(endStr)
		if err != nil {
			return err
		}

		store, skipped, err := storage.LoadTimetable()
		if err != nil {
			return err
		}
		if skipped > 0 {
			fmt.Printf("Warning: skipped %d invalid record(s) in the timetable file\n", skipped)
		}

		entry := timetable.Entry{Name: name, Day: day, Start: start, End: end}
		if err := store.Add(entry); err != nil {
			if errors.Is(err, timetable.ErrConflict) {
				return fmt.Errorf("cannot add %s: %w", entry, err)
			}
			return err
		}

		if err := storage.SaveTimetable(store); err != nil {
			return err
		}

		fmt.Printf("Added %s\n", entry)
		return nil
	},
}

var timetableRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a class by name, day, and start time",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		dayStr, _ := cmd.Flags().GetString("day")
		startStr, _ := cmd.Flags().GetString("start")

		day, err := timetable.ParseWeekday(dayStr)
		if err != nil {
			return err
		}
		start, err := timetable.ParseClock(startStr)
		if err != nil {
			return err
		}

		store, _, err := storage.LoadTimetable()
		if err != nil {
			return err
		}

		removed, ok := store.Remove(name, day, start)
		if !ok {
			fmt.Printf("No class named %q on %s at %s\n", name, day, start)
			return nil
		}

		if err := storage.SaveTimetable(store); err != nil {
			return err
		}

		fmt.Printf("Removed %s\n", removed)
		return nil
	},
}

var timetableListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the timetable in chronological order",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, skipped, err := storage.LoadTimetable()
		if err != nil {
			return err
		}
		if skipped > 0 {
			fmt.Printf("Warning: skipped %d invalid record(s) in the timetable file\n", skipped)
		}

		if store.Len() == 0 {
			fmt.Println("The timetable is empty.")
			return nil
		}

		store.Sort()

		var lastDay timetable.Weekday = -1
		for _, e := range store.Entries() {
			if e.Day != lastDay {
				fmt.Printf("\n--- %s ---\n", e.Day)
				lastDay = e.Day
			}
			fmt.Printf("  %s - %s  %s\n", e.Start, e.End, e.Name)
		}

		return nil
	},
}

var timetableSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show total scheduled minutes per class",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := storage.LoadTimetable()
		if err != nil {
			return err
		}

		summary := store.WeeklySummary()
		if len(summary) == 0 {
			fmt.Println("The timetable is empty.")
			return nil
		}

		for _, total := range summary {
			fmt.Printf("%-30s %dh %02dm\n", total.Name, total.Total/60, total.Total%60)
		}
		return nil
	},
}

var timetableImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import classes from an HTML timetable table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer file.Close()

		var entries []timetable.Entry
		var skippedRows int
		var parseErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Parsing %s...", args[0])).
			Action(func() {
				entries, skippedRows, parseErr = importer.ParseTable(file)
			}).
			Run()

		if parseErr != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], parseErr)
		}

		store, _, err := storage.LoadTimetable()
		if err != nil {
			return err
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

		fmt.Printf("Imported %d class(es); %d conflicting, %d malformed.\n", added, conflicts, skippedRows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(timetableCmd)
	timetableCmd.AddCommand(timetableAddCmd, timetableRemoveCmd, timetableListCmd, timetableSummaryCmd, timetableImportCmd)

	timetableAddCmd.Flags().StringP("name", "n", "", "Class name")
	timetableAddCmd.Flags().StringP("day", "d", "", "Weekday (e.g. Monday)")
	timetableAddCmd.Flags().StringP("start", "s", "", "Start time (HH:MM)")
	timetableAddCmd.Flags().StringP("end", "e", "", "End time (HH:MM)")
	timetableAddCmd.MarkFlagRequired("name")
	timetableAddCmd.MarkFlagRequired("day")
	timetableAddCmd.MarkFlagRequired("start")
	timetableAddCmd.MarkFlagRequired("end")

	timetableRemoveCmd.Flags().StringP("name", "n", "", "Class name")
	timetableRemoveCmd.Flags().StringP("day", "d", "", "Weekday (e.g. Monday)")
	timetableRemoveCmd.Flags().StringP("start", "s", "", "Start time (HH:MM)")
	timetableRemoveCmd.MarkFlagRequired("name")
	timetableRemoveCmd.MarkFlagRequired("day")
	timetableRemoveCmd.MarkFlagRequired("start")
}
