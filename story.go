package report

// Flowable is a unit of content placed into a story. Implementations are
// immutable value objects: Measure and Render may be called any number of
// times, in any order, and must not retain or modify state between calls.
type Flowable interface {
	// Measure returns the vertical space in millimeters the block needs
	// when laid out at the given width.
	Measure(c *Canvas, width float64) float64
	// Render draws the block with its top-left corner at (x, y), laid out
	// at the given width.
	Render(c *Canvas, x, y, width float64) error
}

// Splitter is implemented by flowables that can divide themselves across a
// page boundary, such as tables.
type Splitter interface {
	Flowable
	// Split divides the block so that fit occupies at most avail height at
	// the given width and rest holds the remainder. ok reports whether a
	// useful leading part exists; when false the whole block moves to the
	// next frame.
	Split(c *Canvas, width, avail float64) (fit, rest Flowable, ok bool)
}

// Story is the ordered list of content blocks and flow-control directives
// that make up a document. Order is the document's reading order.
type Story []Flowable

// Add appends blocks to the story.
func (s *Story) Add(blocks ...Flowable) {
	*s = append(*s, blocks...)
}

// NextTemplate is a directive: content after it renders into the named page
// template, starting from the next page begun (either by a PageBreak or by
// natural overflow).
type NextTemplate struct {
	ID string
}

func (NextTemplate) Measure(*Canvas, float64) float64                { return 0 }
func (NextTemplate) Render(*Canvas, float64, float64, float64) error { return nil }

// PageBreak is a directive that forces a new page under the currently
// selected template.
type PageBreak struct{}

func (PageBreak) Measure(*Canvas, float64) float64                { return 0 }
func (PageBreak) Render(*Canvas, float64, float64, float64) error { return nil }

// Heading is a short emphasized text block. Levels 1-6 map to decreasing
// font sizes; level 1 is the largest.
type Heading struct {
	Text  string
	Level int
	Font  *FontSpec // optional override; Size of 0 keeps the level size
}

// headingSizes maps heading level to font size in points.
var headingSizes = [6]float64{24, 20, 16, 14, 12, 11}

func (h Heading) font(doc FontSpec) FontSpec {
	level := h.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	f := FontSpec{Family: doc.Family, Style: "B", Size: headingSizes[level-1]}
	if h.Font != nil {
		if h.Font.Family != "" {
			f.Family = h.Font.Family
		}
		if h.Font.Style != "" {
			f.Style = h.Font.Style
		}
		if h.Font.Size > 0 {
			f.Size = h.Font.Size
		}
	}
	return f
}

func (h Heading) Measure(c *Canvas, width float64) float64 {
	f := h.font(c.docFont)
	c.SetFont(f)
	lines := len(c.splitLines(h.Text, width))
	lh := c.lineHeight()
	return f.Size*0.4 + float64(lines)*lh + f.Size*0.2
}

func (h Heading) Render(c *Canvas, x, y, width float64) error {
	f := h.font(c.docFont)
	c.SetFont(f)
	lh := c.lineHeight()
	c.pdf.SetXY(x, y+f.Size*0.4)
	c.pdf.MultiCell(width, lh, h.Text, "", "L", false)
	return nil
}

// Paragraph is a block of wrapped body text.
type Paragraph struct {
	Text  string
	Font  *FontSpec // optional override
	Align string    // "L" (default), "C", "R", "J"
}

func (p Paragraph) font(doc FontSpec) FontSpec {
	f := doc
	if p.Font != nil {
		if p.Font.Family != "" {
			f.Family = p.Font.Family
		}
		if p.Font.Style != "" {
			f.Style = p.Font.Style
		}
		if p.Font.Size > 0 {
			f.Size = p.Font.Size
		}
	}
	return f
}

func (p Paragraph) Measure(c *Canvas, width float64) float64 {
	f := p.font(c.docFont)
	c.SetFont(f)
	lines := len(c.splitLines(p.Text, width))
	return float64(lines)*c.lineHeight() + f.Size*0.3
}

func (p Paragraph) Render(c *Canvas, x, y, width float64) error {
	f := p.font(c.docFont)
	c.SetFont(f)
	align := p.Align
	if align == "" {
		align = "L"
	}
	c.pdf.SetXY(x, y)
	c.pdf.MultiCell(width, c.lineHeight(), p.Text, "", align, false)
	return nil
}

// Spacer inserts fixed vertical space.
type Spacer struct {
	H float64 // millimeters
}

func (s Spacer) Measure(*Canvas, float64) float64                { return s.H }
func (s Spacer) Render(*Canvas, float64, float64, float64) error { return nil }
