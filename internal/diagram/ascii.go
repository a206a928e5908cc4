// Package diagram draws the allowable-stress table as temperature
// curves, one series per tabulated service life, for the CLI and for
// image export.
package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alpenrose85-eng/troynik/internal/rd10249"
)

// Ascii renders the stress curves as a terminal chart. Table gaps are
// fed through as NaN so the chart shows holes instead of fake values.
func Ascii(t *rd10249.Table, height int) string {
	if height <= 0 {
		height = 12
	}
	temps := t.Temperatures()
	durs := t.Durations()
	if len(temps) == 0 || len(durs) == 0 {
		return "empty stress table\n"
	}

	series := make([][]float64, 0, len(durs))
	legends := make([]string, 0, len(durs))
	for j, d := range durs {
		row := make([]float64, len(temps))
		present := false
		for i := range temps {
			if v, ok := t.Cell(i, j); ok {
				row[i] = v
				present = true
			} else {
				row[i] = math.NaN()
			}
		}
		if !present {
			continue
		}
		series = append(series, row)
		legends = append(legends, fmt.Sprintf("%.0f h", d))
	}
	if len(series) == 0 {
		return "empty stress table\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Allowable stress [sigma], MPa for steel %s\n", t.Grade())
	fmt.Fprintf(&sb, "Series by total service life: %s\n", strings.Join(legends, ", "))
	fmt.Fprintf(&sb, "X axis: table rows from %g to %g C\n\n", temps[0], temps[len(temps)-1])
	sb.WriteString(asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("[sigma](T) per RD 10-249-98, %s", t.Grade())),
	))
	sb.WriteString("\n")
	return sb.String()
}
