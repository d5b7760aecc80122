package cmd

import (
	"fmt"

	"planctl/pkg/config"
	"planctl/pkg/todo"
	"planctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage planctl configuration",
	Long:  "View or edit your local configuration settings (like the default task sort field).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setSort, _ := cmd.Flags().GetString("set-sort")
		if setSort != "" {
			// Validate against the enumerated field set before persisting
			valid := false
			for _, field := range todo.SortFields() {
				if string(field) == setSort {
					valid = true
					break
				}
			}
			if !valid {
				return fmt.Errorf("unknown sort field %q, expected one of %v", setSort, todo.SortFields())
			}

			cfg.DefaultSortField = setSort
			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Default sort field successfully saved as: %s\n", setSort)
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-sort", "s", "", "Set the default sort field for task listings")
}
