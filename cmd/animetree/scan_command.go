package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"source.hodakov.me/hdkv/animetree/internal/domains"
	"source.hodakov.me/hdkv/animetree/internal/domains/scanner/dto"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Walk a library and print what the host would create for every entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve library path: %w", err)
			}

			app, err := ctx.bootstrap(cmd.Context(), false)
			if err != nil {
				return err
			}

			scanner, ok := app.RetrieveDomain(domains.ScannerName).(domains.Scanner)
			if !ok {
				return fmt.Errorf("scanner domain is not registered")
			}

			report, err := scanner.Scan(root)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, report)
			}

			printReport(cmd, report)

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func printReport(cmd *cobra.Command, report *dto.Report) {
	out := cmd.OutOrStdout()

	if report.Ignored {
		fmt.Fprintf(out, "%s is not an anime tvshows library, nothing to do\n", report.Root)
		return
	}

	if len(report.Rows) == 0 {
		fmt.Fprintf(out, "%s is empty\n", report.Root)
		return
	}

	rows := make([][]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		path, err := filepath.Rel(report.Root, row.Path)
		if err != nil {
			path = row.Path
		}

		rows = append(rows, []string{
			path,
			row.Role.String(),
			row.Kind.String(),
			row.Name,
			optionalInt(row.Index),
			optionalInt(row.SeasonIndex),
			row.ExtraCategory,
			row.Error,
		})
	}

	fmt.Fprintln(out, renderTable(
		[]string{"Path", "Role", "Decision", "Name", "Index", "Season", "Category", "Error"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
	))
}
