// Package main provides the CLI entry point for tabkit-go.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tabkit/tabkit-go/pkg/tabkit"
	"github.com/tabkit/tabkit-go/pkg/tabkit/models"
	"github.com/tabkit/tabkit-go/pkg/tabkit/xlsx"
	"github.com/xuri/excelize/v2"
)

var (
	sheetName   string
	sheetIndex  int
	maxRows     int
	keywords    []string
	visibleRows bool
	mappingPath string
	outputPath  string
	pretty      bool
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tabkit",
		Short: "Normalize loosely structured spreadsheet data",
		Long: `tabkit-go locates the real header row inside spreadsheets that carry
banner or title rows above it, and reconciles inconsistently named columns
against a canonical schema.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Sheet name to read (default: first sheet)")
	rootCmd.PersistentFlags().IntVar(&sheetIndex, "sheet-index", -1, "0-based sheet index to read")
	rootCmd.PersistentFlags().IntVar(&maxRows, "max-rows", tabkit.DefaultMaxScanRows, "Maximum rows to scan for the header")
	rootCmd.PersistentFlags().StringSliceVar(&keywords, "keywords", nil, "Keywords expected in the header row")
	rootCmd.PersistentFlags().BoolVar(&visibleRows, "visible-rows", false, "Skip rows hidden by filters")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log scan details to stderr")

	locateCmd := &cobra.Command{
		Use:   "locate [input.xlsx]",
		Short: "Print the header row index of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runLocate,
	}

	readCmd := &cobra.Command{
		Use:   "read [input.xlsx]",
		Short: "Read a sheet into a normalized table",
		Args:  cobra.ExactArgs(1),
		RunE:  runRead,
	}
	readCmd.Flags().StringVar(&mappingPath, "mapping", "", "TOML or JSON column mapping file")
	readCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")

	sheetsCmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the visible sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}

	rootCmd.AddCommand(locateCmd, readCmd, sheetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// locateResult is the JSON shape printed by the locate command.
type locateResult struct {
	Sheet     string `json:"sheet"`
	HeaderRow int    `json:"header_row"`
	Width     int    `json:"width"`
}

func runLocate(cmd *cobra.Command, args []string) error {
	f, err := excelize.OpenFile(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	decOpts := xlsx.DecodeOptions{
		Sheet:           sheetName,
		SheetIndex:      sheetIndexArg(),
		VisibleRowsOnly: visibleRows,
	}
	sheet, err := xlsx.ResolveSheet(f, decOpts)
	if err != nil {
		return err
	}
	grid, err := xlsx.DecodeGrid(f, sheet, decOpts)
	if err != nil {
		return err
	}

	row := tabkit.LocateHeaderRow(grid, tabkit.LocateOptions{
		MaxRows:  maxRows,
		Keywords: keywords,
	})
	width := 0
	if row < len(grid) {
		width = tabkit.ConsecutiveCount(grid[row])
	}
	slog.Debug("located header row", "sheet", sheet, "row", row, "width", width)

	return emit(locateResult{Sheet: sheet, HeaderRow: row, Width: width}, "")
}

// sheetsResult is the JSON shape printed by the sheets command.
type sheetsResult struct {
	Sheets []string `json:"sheets"`
}

func runSheets(cmd *cobra.Command, args []string) error {
	f, err := excelize.OpenFile(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	visible := xlsx.VisibleSheets(f)
	slog.Debug("listed visible sheets", "count", len(visible))

	return emit(sheetsResult{Sheets: visible}, "")
}

func runRead(cmd *cobra.Command, args []string) error {
	opts := tabkit.Options{
		Sheet:           sheetName,
		SheetIndex:      sheetIndexArg(),
		VisibleRowsOnly: visibleRows,
		Locate: tabkit.LocateOptions{
			MaxRows:  maxRows,
			Keywords: keywords,
		},
	}

	if mappingPath != "" {
		mapping, required, err := tabkit.LoadMappingFile(mappingPath)
		if err != nil {
			return err
		}
		opts.Mapping = mapping
		opts.Reconcile.Required = required
	}

	table, err := tabkit.ReadTable(args[0], opts)
	if err != nil {
		return err
	}
	logTable(table)

	return emit(table, outputPath)
}

func logTable(table *models.Table) {
	slog.Debug("read table",
		"sheet", table.Sheet,
		"header_row", table.HeaderRow,
		"columns", len(table.Columns),
		"rows", len(table.Rows))
	if rec := table.Reconciliation; rec != nil {
		slog.Debug("reconciled columns",
			"renamed", len(rec.Renames),
			"missing", rec.Missing)
	}
}

// emit writes v as JSON to path, or to stdout when path is empty.
func emit(v any, path string) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if path != "" {
		return os.WriteFile(path, data, 0644)
	}
	fmt.Println(string(data))
	return nil
}

func sheetIndexArg() *int {
	if sheetIndex < 0 {
		return nil
	}
	idx := sheetIndex
	return &idx
}
