package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lmsportal/internal/api"
)

func newReportCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "report <type>",
		Short: "Download a report (books, members, borrows, penalties, overdue)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cred, err := connect()
			if err != nil {
				return err
			}
			blob, err := client.DownloadReport(cmd.Context(), cred, args[0], format)
			if err != nil {
				return err
			}

			name := output
			if name == "" {
				ext := "csv"
				if format == api.FormatExcel {
					ext = "xlsx"
				}
				name = fmt.Sprintf("%s-report.%s", args[0], ext)
			}
			if err := os.WriteFile(name, blob.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
			fmt.Printf("Wrote %s (%d bytes).\n", name, len(blob.Data))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", api.FormatCSV, "report format: csv or excel")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	return cmd
}
