package table

import (
	report "github.com/NICD-UK/reportlab-blog"

	"github.com/NICD-UK/reportlab-blog/dataset"
)

// Table is a styled grid flowable: one header row plus data rows. It is an
// immutable value object; rendering never modifies it, so the same table can
// be placed in any number of stories.
type Table struct {
	header []string
	rows   [][]string
	style  Style
}

// New builds a table from a header and data rows.
func New(header []string, rows [][]string) *Table {
	return &Table{header: header, rows: rows, style: DefaultStyle()}
}

// FromFrame converts a dataset frame: column names become the header row,
// records become the data rows. The frame's row index is dropped; callers
// who need it must add it as an explicit column first.
func FromFrame(f dataset.Frame) *Table {
	return New(f.Columns(), f.Records())
}

// WithStyle returns a copy of the table using the given style.
func (t *Table) WithStyle(s Style) *Table {
	return &Table{header: t.header, rows: t.rows, style: s}
}

// NumRows returns the row count including the header row.
func (t *Table) NumRows() int {
	return len(t.rows) + 1
}

// NumCols returns the column count.
func (t *Table) NumCols() int {
	return len(t.header)
}

// lineHeight returns the height of one text line for the active font.
func lineHeight(c *report.Canvas) float64 {
	_, unitSize := c.PDF().GetFontSize()
	return unitSize * 1.35
}

// rowHeight measures one row of cells laid out at the column width.
func (t *Table) rowHeight(c *report.Canvas, cells []string, f report.FontSpec, colW float64) float64 {
	c.SetFont(f)
	pdf := c.PDF()
	lh := lineHeight(c)
	contentW := colW - 2*t.style.Padding
	if contentW < 1 {
		contentW = 1
	}
	max := lh + 2*t.style.Padding
	for _, cell := range cells {
		lines := len(pdf.SplitLines([]byte(cell), contentW))
		if h := float64(lines)*lh + 2*t.style.Padding; h > max {
			max = h
		}
	}
	return max
}

// Measure implements report.Flowable.
func (t *Table) Measure(c *report.Canvas, width float64) float64 {
	if len(t.header) == 0 {
		return 0
	}
	colW := width / float64(len(t.header))
	h := t.rowHeight(c, t.header, t.style.HeaderFont, colW)
	for _, row := range t.rows {
		h += t.rowHeight(c, row, t.style.CellFont, colW)
	}
	return h
}

// Render implements report.Flowable.
func (t *Table) Render(c *report.Canvas, x, y, width float64) error {
	if len(t.header) == 0 {
		return nil
	}
	colW := width / float64(len(t.header))

	y = t.renderRow(c, t.header, t.style.HeaderFont, x, y, colW, t.style.Fill)
	rule := y

	for i, row := range t.rows {
		fill := t.style.Fill
		if i%2 == 0 {
			fill = t.style.AltFill
		}
		y = t.renderRow(c, row, t.style.CellFont, x, y, colW, fill)
	}

	// Header underline rule, drawn last so cell fills cannot cover it.
	pdf := c.PDF()
	pdf.SetLineWidth(t.style.RuleWidth)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(x, rule, x+colW*float64(len(t.header)), rule)

	pdf.SetFillColor(255, 255, 255)
	pdf.SetLineWidth(0.2)
	return nil
}

// renderRow draws one row and returns the y below it.
func (t *Table) renderRow(c *report.Canvas, cells []string, f report.FontSpec, x, y, colW float64, fill RGB) float64 {
	pdf := c.PDF()
	rowH := t.rowHeight(c, cells, f, colW)
	lh := lineHeight(c)
	contentW := colW - 2*t.style.Padding

	for i := 0; i < len(t.header); i++ {
		cx := x + float64(i)*colW

		pdf.SetFillColor(fill.R, fill.G, fill.B)
		pdf.Rect(cx, y, colW, rowH, "F")

		pdf.SetLineWidth(t.style.GridWidth)
		pdf.SetDrawColor(t.style.GridColor.R, t.style.GridColor.G, t.style.GridColor.B)
		pdf.Rect(cx, y, colW, rowH, "D")

		if i < len(cells) {
			pdf.SetXY(cx+t.style.Padding, y+t.style.Padding)
			pdf.MultiCell(contentW, lh, cells[i], "", "L", false)
		}
	}
	return y + rowH
}

// Split implements report.Splitter: the leading part keeps as many data rows
// as fit in avail, the rest repeats the header row before the remaining
// data. ok is false when not even the header and one data row fit.
func (t *Table) Split(c *report.Canvas, width, avail float64) (fit, rest report.Flowable, ok bool) {
	if len(t.header) == 0 || len(t.rows) == 0 {
		return nil, nil, false
	}
	colW := width / float64(len(t.header))
	used := t.rowHeight(c, t.header, t.style.HeaderFont, colW)

	n := 0
	for _, row := range t.rows {
		h := t.rowHeight(c, row, t.style.CellFont, colW)
		if used+h > avail {
			break
		}
		used += h
		n++
	}
	if n == 0 {
		return nil, nil, false
	}
	fit = &Table{header: t.header, rows: t.rows[:n], style: t.style}
	if n == len(t.rows) {
		return fit, nil, true
	}
	rest = &Table{header: t.header, rows: t.rows[n:], style: t.style}
	return fit, rest, true
}
