// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/msalgueiro/georect/batch"
	"github.com/spf13/cobra"
)

var geojsonCmd = &cobra.Command{
	Use:   "geojson <input-dir> <output-dir>",
	Short: "Create bounding-rectangle polygons for GeoJSON files",
	Long: `
Scans the input directory for .geojson/.json files and writes one rectangle
FeatureCollection per input to the output directory. Every file is validated
before processing starts: if any file is invalid, nothing is written and the
command exits non-zero.
`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		inputDir, outputDir := args[0], args[1]

		if err := checkInputDir(inputDir); err != nil {
			return err
		}

		if err := os.MkdirAll(outputDir, 0o700); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		p := &batch.GeoJSONProcessor{OutputDir: outputDir}

		summary, err := p.Run(inputDir)
		summary.Print(os.Stdout)

		return err
	},
}

func init() {
	rootCmd.AddCommand(geojsonCmd)
}
