package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"planctl/pkg/exporter"
	"planctl/pkg/storage"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Directly export the timetable to an ICS file",
	Long:  `Export the timetable as weekly recurring calendar events without using the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		store, skipped, err := storage.LoadTimetable()
		if err != nil {
			return err
		}
		if skipped > 0 {
			fmt.Printf("Warning: skipped %d invalid record(s) in the timetable file\n", skipped)
		}

		if store.Len() == 0 {
			return fmt.Errorf("the timetable is empty, nothing to export")
		}

		store.Sort()

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		var genErr error
		_ = spinner.New().
			Title(fmt.Sprintf("Exporting %d classes to %s...", store.Len(), output)).
			Action(func() {
				genErr = exporter.GenerateICS(store.Entries(), time.Now(), file)
			}).
			Run()

		if genErr != nil {
			return fmt.Errorf("failed to generate ICS: %w", genErr)
		}

		fmt.Printf("Successfully exported %d classes to %s\n", store.Len(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "timetable.ics", "Output file path")
}
