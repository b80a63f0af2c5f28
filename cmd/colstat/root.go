package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hupe1980/colstore"
	"github.com/hupe1980/colstore/codec"
	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/snapshot"
)

type flags struct {
	typeName    string
	file        string
	restore     string
	save        string
	compression string
	codecName   string
	decimal     string
	group       string
	jsonOutput  bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "colstat",
		Short: "Aggregate a typed column read from text",
		Long: `colstat reads one value per line into a typed column and prints every
aggregate the type supports. Empty lines and NULL are stored as null.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &f)
		},
	}

	cmd.Flags().StringVarP(&f.typeName, "type", "t", "", "Column type (e.g. Int32, Float64, Decimal, String, Time)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Input file (default stdin)")
	cmd.Flags().StringVarP(&f.restore, "restore", "r", "", "Load the column from a snapshot file instead of text")
	cmd.Flags().StringVarP(&f.save, "snapshot", "s", "", "Write the loaded column to a snapshot file")
	cmd.Flags().StringVarP(&f.compression, "compression", "c", "zstd", "Snapshot compression (none, lz4, zstd)")
	cmd.Flags().StringVar(&f.codecName, "codec", codec.Default.Name(), "Snapshot header codec ("+strings.Join(codec.Names(), ", ")+")")
	cmd.Flags().StringVar(&f.decimal, "decimal", ".", "Decimal separator of the input")
	cmd.Flags().StringVar(&f.group, "group", "", "Group separator of the input")
	cmd.Flags().BoolVarP(&f.jsonOutput, "json", "j", false, "Output results in JSON format")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log debug output to stderr")

	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	opts := []colstore.Option{
		colstore.WithLogger(colstore.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))),
		colstore.WithFormatProvider(column.Format{Decimal: f.decimal, Group: f.group}),
	}

	var (
		c   *colstore.Column
		err error
	)
	if f.restore != "" {
		c, err = restore(f.restore, opts)
	} else {
		c, err = load(cmd, f, opts)
	}
	if err != nil {
		return err
	}

	if f.save != "" {
		if err := save(c, f.save, f.compression, f.codecName); err != nil {
			return err
		}
	}

	rows := make([]int, c.Cap())
	for i := range rows {
		rows[i] = i
	}
	results, err := aggregate(c, rows)
	if err != nil {
		return err
	}

	if f.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), c, results)
	}
	writeTable(cmd.OutOrStdout(), c, results)
	return nil
}

func load(cmd *cobra.Command, f *flags, opts []colstore.Option) (*colstore.Column, error) {
	if f.typeName == "" {
		return nil, errors.New("--type is required unless --restore is set")
	}
	typ, err := model.ParseType(f.typeName)
	if err != nil {
		return nil, err
	}

	in := cmd.InOrStdin()
	if f.file != "" {
		file, err := os.Open(f.file)
		if err != nil {
			return nil, fmt.Errorf("error opening file %s: %w", f.file, err)
		}
		defer file.Close()
		in = file
	}

	c, err := colstore.New(typ, opts...)
	if err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	if err := c.Grow(len(lines)); err != nil {
		return nil, err
	}
	for row, line := range lines {
		v := model.String(line)
		if line == "" || strings.EqualFold(line, "null") {
			v = model.Null()
		}
		if err := c.Set(row, v); err != nil {
			return nil, fmt.Errorf("line %d: %w", row+1, err)
		}
	}
	return c, nil
}

func restore(path string, opts []colstore.Option) (*colstore.Column, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot %s: %w", path, err)
	}
	return colstore.Restore(data, opts...)
}

func save(c *colstore.Column, path, compression, codecName string) error {
	comp, err := snapshot.ParseCompression(compression)
	if err != nil {
		return err
	}
	hc, ok := codec.ByName(codecName)
	if !ok {
		return fmt.Errorf("%w: %q", snapshot.ErrUnknownCodec, codecName)
	}
	data, err := c.Snapshot(snapshot.WithCompression(comp), snapshot.WithCodec(hc))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing snapshot %s: %w", path, err)
	}
	return nil
}

type result struct {
	kind  model.AggregateKind
	value model.Value
	err   error
}

// aggregate computes every kind in display order. Unsupported kinds are kept
// with their error so they can be shown as n/a.
func aggregate(c *colstore.Column, rows []int) ([]result, error) {
	out := make([]result, 0, len(model.AggregateKinds))
	for _, kind := range model.AggregateKinds {
		v, err := c.Aggregate(rows, kind)
		if err != nil && !errors.Is(err, colstore.ErrUnsupportedAggregate) && !errors.Is(err, colstore.ErrOverflow) {
			return nil, err
		}
		out = append(out, result{kind: kind, value: v, err: err})
	}
	return out, nil
}

func display(r result) string {
	switch {
	case errors.Is(r.err, colstore.ErrUnsupportedAggregate):
		return "n/a"
	case errors.Is(r.err, colstore.ErrOverflow):
		return "overflow"
	default:
		return r.value.String()
	}
}

func writeTable(w io.Writer, c *colstore.Column, results []result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false

	t.SetTitle(fmt.Sprintf("%s, %d rows, %d null", c.Type(), c.Cap(), c.Nulls().GetCardinality()))
	t.AppendHeader(table.Row{"Aggregate", "Value", "Type"})
	for _, r := range results {
		kind := "-"
		if r.err == nil {
			kind = r.value.Kind().String()
		}
		t.AppendRow(table.Row{r.kind.String(), display(r), kind})
	}
	t.Render()
}

type jsonReport struct {
	Type       string            `json:"type"`
	Rows       int               `json:"rows"`
	Nulls      uint64            `json:"nulls"`
	Aggregates map[string]string `json:"aggregates"`
}

func writeJSON(w io.Writer, c *colstore.Column, results []result) error {
	report := jsonReport{
		Type:       c.Type().String(),
		Rows:       c.Cap(),
		Nulls:      c.Nulls().GetCardinality(),
		Aggregates: make(map[string]string, len(results)),
	}
	for _, r := range results {
		report.Aggregates[r.kind.String()] = display(r)
	}

	data, err := codec.Default.Marshal(report)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
