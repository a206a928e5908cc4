package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alpenrose85-eng/troynik/internal/rd10249"
)

var seriesPalette = []color.RGBA{
	{R: 0, G: 0, B: 139, A: 255},
	{R: 178, G: 34, B: 34, A: 255},
	{R: 0, G: 100, B: 0, A: 255},
	{R: 255, G: 140, B: 0, A: 255},
	{R: 106, G: 90, B: 205, A: 255},
}

// SavePNG draws the allowable-stress curves to an image file. The file
// format follows the extension; anything unknown becomes PNG.
func SavePNG(t *rd10249.Table, filename string) error {
	temps := t.Temperatures()
	durs := t.Durations()
	if len(temps) == 0 || len(durs) == 0 {
		return fmt.Errorf("empty stress table")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Allowable stress, steel %s (RD 10-249-98)", t.Grade())
	p.X.Label.Text = "Temperature (C)"
	p.Y.Label.Text = "[sigma] (MPa)"
	p.Legend.Top = true

	added := 0
	for j, d := range durs {
		var pts plotter.XYs
		for i, temp := range temps {
			if v, ok := t.Cell(i, j); ok {
				pts = append(pts, plotter.XY{X: temp, Y: v})
			}
		}
		if len(pts) == 0 {
			continue
		}
		added++
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = seriesPalette[j%len(seriesPalette)]
		p.Add(line)

		marks, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		marks.GlyphStyle.Color = seriesPalette[j%len(seriesPalette)]
		marks.GlyphStyle.Radius = vg.Points(2)
		marks.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(marks)

		p.Legend.Add(fmt.Sprintf("%.0f h", d), line)
	}
	if added == 0 {
		return fmt.Errorf("empty stress table")
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(8*vg.Inch, 6*vg.Inch, filename)
	default:
		return p.Save(8*vg.Inch, 6*vg.Inch, filename+".png")
	}
}
