// Package report renders the benchmark driver's per-delta result table and
// carries the driver's ambient logger. Grounded on
// original_source/src/tools/datatable.h and main.cpp's DataTable column
// layout, replaced with github.com/jedib0t/go-pretty/v6's table writer —
// the Go-native equivalent of the original's compile-time fixed-width
// column template.
package report

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	logging "github.com/op/go-logging"

	"github.com/bdisjoint/djmatch/kcoloring"
)

// Log is the driver's ambient logger, backed by op/go-logging (pulled from
// the 0xsoniclabs/aida dependency set — see SPEC_FULL.md's AMBIENT STACK).
// Library packages (kcoloring, matching, ...) never log; only the driver
// and this package do.
var Log = logging.MustGetLogger("djmatch-bench")

func init() {
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{message}`,
	)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetBackend(logging.NewBackendFormatter(backend, format))
}

// Row is one line of the result table: one algorithm's reaction to one
// delta, at one value of b.
type Row struct {
	B         int
	Delta     int
	Algorithm string
	Weight    kcoloring.EdgeWeight

	TimeS      float64
	DeltaTimeS float64
	TotalTimeS float64

	FineColor, FineUncolor, FineRecolor       int
	CoarseColor, CoarseUncolor, CoarseRecolor int

	NumEdges  int
	DeltaSize int
}

// Table wraps a go-pretty table.Writer configured with this benchmark's
// column layout. Rows accumulate in memory; nothing reaches the output
// until Render is called.
type Table struct {
	w   table.Writer
	out io.Writer
}

// NewTable constructs a table that writes to out.
func NewTable(out io.Writer) *Table {
	w := table.NewWriter()
	w.SetOutputMirror(out)
	w.AppendHeader(table.Row{
		"b", "Delta", "Algorithm", "Weight",
		"Time (s)", "Delta-Time (s)", "Total Time (s)",
		"# color/up.", "# uncolor/up.", "# recolor/up.",
		"# color/D", "# uncolor/D", "# recolor/D",
		"# edges", "size of delta",
	})
	return &Table{w: w, out: out}
}

// AddRow appends one row; it does not render.
func (t *Table) AddRow(r Row) {
	t.w.AppendRow(table.Row{
		r.B, r.Delta, r.Algorithm, uint64(r.Weight),
		r.TimeS, r.DeltaTimeS, r.TotalTimeS,
		r.FineColor, r.FineUncolor, r.FineRecolor,
		r.CoarseColor, r.CoarseUncolor, r.CoarseRecolor,
		r.NumEdges, r.DeltaSize,
	})
}

// Render writes the accumulated table to its output.
func (t *Table) Render() {
	t.w.Render()
}
