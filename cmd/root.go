package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planctl",
	Short: "A CLI and TUI for class timetables and to-do lists",
	Long: `planctl keeps your weekly class timetable and personal to-do list
in plain JSON files, with conflict checking for overlapping classes and
export to an .ics calendar file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
