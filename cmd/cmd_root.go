// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "georect",
	Short: "bounding rectangles for batches of geometry files",
	Long: `
georect scans a directory of geometry inputs and derives the minimal
axis-aligned rectangle enclosing every coordinate point. GeoJSON inputs
produce a rectangle polygon file per input; CSV/XLSX inputs gain eight
bounding-corner columns per row.
`,
}

var Version = "dev"

func Execute(version string) {
	Version = version
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// Both subcommands take the input directory as their first argument.
func checkInputDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input directory does not exist: %s", path)
	} else if err != nil {
		return fmt.Errorf("checking input directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("input path is not a directory: %s", path)
	}

	return nil
}
