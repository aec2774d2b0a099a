// Package charts builds the figures used by the example report: a pairwise
// scatter matrix of the numeric columns and a grouped bar chart of per-group
// means. Both types satisfy figure.Chart and convert to report images
// through figure.Convert.
package charts

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/NICD-UK/reportlab-blog/dataset"
)

// ScatterMatrix is a grid of pairwise scatter plots of a frame's numeric
// columns, with histograms on the diagonal and one point color per class.
type ScatterMatrix struct {
	plots [][]*plot.Plot
}

// NewScatterMatrix builds the matrix from the frame's numeric columns,
// coloring points by the values of the class column.
func NewScatterMatrix(f dataset.Frame, class string) (*ScatterMatrix, error) {
	numeric := f.NumericColumns()
	if len(numeric) == 0 {
		return nil, fmt.Errorf("charts: scatter matrix: no numeric columns")
	}

	values := make(map[string][]float64, len(numeric))
	for _, col := range numeric {
		v, err := f.Numeric(col)
		if err != nil {
			return nil, fmt.Errorf("charts: scatter matrix: %w", err)
		}
		values[col] = v
	}
	classes, byClass, err := classIndex(f, class)
	if err != nil {
		return nil, err
	}

	n := len(numeric)
	plots := make([][]*plot.Plot, n)
	for i := range plots {
		plots[i] = make([]*plot.Plot, n)
		for j := range plots[i] {
			p := plot.New()
			p.X.Tick.Label.Font.Size = vg.Points(6)
			p.Y.Tick.Label.Font.Size = vg.Points(6)
			if j == 0 {
				p.Y.Label.Text = numeric[i]
				p.Y.Label.TextStyle.Font.Size = vg.Points(7)
			}
			if i == n-1 {
				p.X.Label.Text = numeric[j]
				p.X.Label.TextStyle.Font.Size = vg.Points(7)
			}

			if i == j {
				hist, err := plotter.NewHist(plotter.Values(values[numeric[i]]), 10)
				if err != nil {
					return nil, fmt.Errorf("charts: scatter matrix: %w", err)
				}
				hist.FillColor = plotutil.Color(0)
				p.Add(hist)
			} else {
				for ci, cl := range classes {
					xs := values[numeric[j]]
					ys := values[numeric[i]]
					xys := make(plotter.XYs, 0, len(byClass[cl]))
					for _, row := range byClass[cl] {
						xys = append(xys, plotter.XY{X: xs[row], Y: ys[row]})
					}
					sc, err := plotter.NewScatter(xys)
					if err != nil {
						return nil, fmt.Errorf("charts: scatter matrix: %w", err)
					}
					sc.GlyphStyle.Color = plotutil.Color(ci)
					sc.GlyphStyle.Radius = vg.Points(1)
					sc.GlyphStyle.Shape = draw.CircleGlyph{}
					p.Add(sc)
				}
			}
			plots[i][j] = p
		}
	}
	return &ScatterMatrix{plots: plots}, nil
}

// Draw implements figure.Chart, tiling the grid over the canvas.
func (m *ScatterMatrix) Draw(dc draw.Canvas) {
	n := len(m.plots)
	tiles := draw.Tiles{
		Rows: n,
		Cols: n,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}
	canvases := plot.Align(m.plots, tiles, dc)
	for i := range m.plots {
		for j := range m.plots[i] {
			m.plots[i][j].Draw(canvases[i][j])
		}
	}
}

// GroupedBars is a bar chart of per-group means: one bar group per class,
// one bar per numeric column.
type GroupedBars struct {
	p *plot.Plot
}

// NewGroupedBars groups the frame by the given column, averages the numeric
// columns, and lays the means out as grouped bars with a legend.
func NewGroupedBars(f dataset.Frame, by string) (*GroupedBars, error) {
	means, err := f.GroupMeans(by)
	if err != nil {
		return nil, fmt.Errorf("charts: grouped bars: %w", err)
	}
	numeric := means.NumericColumns()

	groups := make([]string, 0, means.NumRows())
	for _, rec := range means.Records() {
		groups = append(groups, rec[0])
	}

	p := plot.New()
	p.Y.Label.Text = "mean"
	barW := vg.Points(10)
	for si, col := range numeric {
		vals, err := means.Numeric(col)
		if err != nil {
			return nil, fmt.Errorf("charts: grouped bars: %w", err)
		}
		bars, err := plotter.NewBarChart(plotter.Values(vals), barW)
		if err != nil {
			return nil, fmt.Errorf("charts: grouped bars: %w", err)
		}
		bars.Color = plotutil.Color(si)
		bars.LineStyle.Width = 0
		bars.Offset = vg.Length(float64(si)-float64(len(numeric)-1)/2) * barW
		p.Add(bars)
		p.Legend.Add(col, bars)
	}
	p.NominalX(groups...)
	p.Legend.Top = true
	return &GroupedBars{p: p}, nil
}

// Draw implements figure.Chart.
func (g *GroupedBars) Draw(dc draw.Canvas) {
	g.p.Draw(dc)
}

// classIndex maps each distinct class value to the row indices holding it.
// Classes come back sorted so colors are stable across runs.
func classIndex(f dataset.Frame, class string) ([]string, map[string][]int, error) {
	cols := f.Columns()
	idx := -1
	for i, c := range cols {
		if c == class {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, fmt.Errorf("charts: no class column %q", class)
	}

	byClass := make(map[string][]int)
	for row, rec := range f.Records() {
		byClass[rec[idx]] = append(byClass[rec[idx]], row)
	}
	classes := make([]string, 0, len(byClass))
	for cl := range byClass {
		classes = append(classes, cl)
	}
	sort.Strings(classes)
	return classes, byClass, nil
}
