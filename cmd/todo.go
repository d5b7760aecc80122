package cmd

import (
	"fmt"

	"planctl/pkg/storage"
	"planctl/pkg/todo"

	"github.com/spf13/cobra"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage the to-do list directly",
	Long:  `Add, complete, and list tasks without using the interactive TUI.`,
}

var todoAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		priorityStr, _ := cmd.Flags().GetString("priority")

		priority, err := todo.ParsePriority(priorityStr)
		if err != nil {
			return err
		}

		store, err := storage.LoadTasks()
		if err != nil {
			return err
		}

		if err := store.Add(args[0], priority); err != nil {
			return err
		}

		if err := storage.SaveTasks(store); err != nil {
			return err
		}

		fmt.Printf("Added task: %s (%s)\n", args[0], priority)
		return nil
	},
}

var todoDoneCmd = &cobra.Command{
	Use:   "done [title]",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.LoadTasks()
		if err != nil {
			return err
		}

		if !store.Complete(args[0]) {
			fmt.Printf("No task titled %q\n", args[0])
			return nil
		}

		if err := storage.SaveTasks(store); err != nil {
			return err
		}

		fmt.Printf("Completed: %s\n", args[0])
		return nil
	},
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		sortField, _ := cmd.Flags().GetString("sort")
		status, _ := cmd.Flags().GetString("status")

		store, err := storage.LoadTasks()
		if err != nil {
			return err
		}

		if store.Len() == 0 {
			fmt.Println("No tasks yet.")
			return nil
		}

		if sortField != "" {
			if err := store.SortBy(todo.SortField(sortField)); err != nil {
				return err
			}
		}

		tasks := store.Tasks()
		if status != "" {
			tasks, err = store.Filter(todo.FilterByStatus, status)
			if err != nil {
				return err
			}
		}

		for _, t := range tasks {
			mark := " "
			if t.Done {
				mark = "x"
			}
			fmt.Printf("[%s] %-40s (%s)\n", mark, t.Title, t.Priority)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todoCmd)
	todoCmd.AddCommand(todoAddCmd, todoDoneCmd, todoListCmd)

	todoAddCmd.Flags().StringP("priority", "p", "", "Task priority (low, medium, high)")

	todoListCmd.Flags().StringP("sort", "s", "", "Sort field (title, priority, created)")
	todoListCmd.Flags().String("status", "", "Filter by status (pending, done)")
}
