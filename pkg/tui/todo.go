package tui

import (
	"fmt"
	"strings"

	"planctl/pkg/config"
	"planctl/pkg/storage"
	"planctl/pkg/todo"

	"github.com/charmbracelet/huh"
)

// RunTodoTUI runs the interactive flow for managing the task list
func RunTodoTUI() error {
	store, err := storage.LoadTasks()
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Could not load tasks (%v), starting empty.", err)))
		store = todo.NewStore()
	}

	for {
		var action string

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Tasks").
					Options(
						huh.NewOption("Add a Task", "add"),
						huh.NewOption("Complete a Task", "complete"),
						huh.NewOption("Remove a Task", "remove"),
						huh.NewOption("List Tasks", "list"),
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
			actionErr = runAddTaskTUI(store)
		case "complete":
			actionErr = runCompleteTaskTUI(store)
		case "remove":
			actionErr = runRemoveTaskTUI(store)
		case "list":
			actionErr = runListTasksTUI(store)
		}

		if actionErr != nil {
			return actionErr
		}
	}
}

func runAddTaskTUI(store *todo.Store) error {
	var title string
	priority := string(todo.PriorityMedium)

	cfg, _ := config.Load()
	if cfg != nil && cfg.DefaultPriority != "" {
		priority = cfg.DefaultPriority
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task description").
				Value(&title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("task description cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("High", string(todo.PriorityHigh)),
					huh.NewOption("Medium", string(todo.PriorityMedium)),
					huh.NewOption("Low", string(todo.PriorityLow)),
				).
				Value(&priority),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	p, err := todo.ParsePriority(priority)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	if err := store.Add(strings.TrimSpace(title), p); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	if err := storage.SaveTasks(store); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nAdded task: %s\n", strings.TrimSpace(title))))
	return nil
}

// pickTask lets the user select one pending-or-done task title. Returns ""
// when the list is empty.
func pickTask(store *todo.Store, title string, pendingOnly bool) (string, error) {
	var options []huh.Option[string]
	for _, t := range store.Tasks() {
		if pendingOnly && t.Done {
			continue
		}
		label := t.Title
		if t.Done {
			label = "[done] " + label
		}
		options = append(options, huh.NewOption(label, t.Title))
	}

	if len(options) == 0 {
		fmt.Println(errorStyle.Render("Nothing to pick, the list is empty."))
		return "", nil
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}

	return selected, nil
}

func runCompleteTaskTUI(store *todo.Store) error {
	title, err := pickTask(store, "Select the task to complete", true)
	if err != nil || title == "" {
		return err
	}

	if !store.Complete(title) {
		fmt.Println(errorStyle.Render("Task not found."))
		return nil
	}

	if err := storage.SaveTasks(store); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nCompleted: %s\n", title)))
	return nil
}

func runRemoveTaskTUI(store *todo.Store) error {
	title, err := pickTask(store, "Select the task to remove", false)
	if err != nil || title == "" {
		return err
	}

	if _, ok := store.Remove(title); !ok {
		fmt.Println(errorStyle.Render("Task not found."))
		return nil
	}

	if err := storage.SaveTasks(store); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nRemoved: %s\n", title)))
	return nil
}

func runListTasksTUI(store *todo.Store) error {
	if store.Len() == 0 {
		fmt.Println(errorStyle.Render("No tasks yet."))
		return nil
	}

	var sortField, filterValue string

	cfg, _ := config.Load()
	if cfg != nil && cfg.DefaultSortField != "" {
		sortField = cfg.DefaultSortField
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Sort by").
				Options(
					huh.NewOption("Creation time", string(todo.SortByCreated)),
					huh.NewOption("Priority", string(todo.SortByPriority)),
					huh.NewOption("Title", string(todo.SortByTitle)),
				).
				Value(&sortField),

			huh.NewSelect[string]().
				Title("Show").
				Options(
					huh.NewOption("Everything", "all"),
					huh.NewOption("Pending only", "pending"),
					huh.NewOption("Done only", "done"),
				).
				Value(&filterValue),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if err := store.SortBy(todo.SortField(sortField)); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}

	tasks := store.Tasks()
	if filterValue != "all" {
		filtered, err := store.Filter(todo.FilterByStatus, filterValue)
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			return nil
		}
		tasks = filtered
	}

	fmt.Println(accentStyle.Render("\n--- Tasks ---"))
	for _, t := range tasks {
		mark := " "
		if t.Done {
			mark = "x"
		}
		fmt.Printf("  [%s] %-40s (%s)\n", mark, t.Title, t.Priority)
	}
	fmt.Println()

	return nil
}
