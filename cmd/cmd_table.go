// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/msalgueiro/georect/batch"
	"github.com/spf13/cobra"
)

var tableOptions = &batch.TableProcessor{}

var tableCmd = &cobra.Command{
	Use:   "table <input-dir> [output-dir]",
	Short: "Append bounding-corner columns to CSV/XLSX rows",
	Long: `
Scans the input directory for .csv/.xlsx/.xls files, reads the geometry
column of each row and appends eight corner columns with the row's bounding
rectangle. Rows with an unreadable geometry are counted and skipped; the
rest of the file is still written. Without an output directory, files are
written next to their inputs.
`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		inputDir := args[0]

		if err := checkInputDir(inputDir); err != nil {
			return err
		}

		if len(args) == 2 {
			tableOptions.OutputDir = args[1]
			if err := os.MkdirAll(tableOptions.OutputDir, 0o700); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
		}

		summary, err := tableOptions.Run(inputDir)
		summary.Print(os.Stdout)

		return err
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringVar(
		&tableOptions.GeomField,
		"geom-field",
		batch.DefaultGeometryField,
		"Name of the column holding the geometry string",
	)
}
