package report

// Size is a page size in millimeters.
type Size struct {
	W, H float64
}

// Standard page sizes, portrait orientation.
var (
	A4     = Size{210, 297}
	A5     = Size{148, 210}
	Letter = Size{215.9, 279.4}
)

// Landscape returns the size with width and height swapped.
func (s Size) Landscape() Size {
	return Size{W: s.H, H: s.W}
}

// Frame is a rectangular region of a page that content flows into.
// Coordinates are in millimeters from the top-left page corner.
// A Frame is a value and is never modified during assembly.
type Frame struct {
	X, Y    float64
	W, H    float64
	Padding float64 // uniform inner padding
}

// MarginFrame returns a frame covering the page size minus a uniform margin.
func MarginFrame(page Size, margin float64) Frame {
	return Frame{X: margin, Y: margin, W: page.W - 2*margin, H: page.H - 2*margin}
}

// content returns the inner rectangle after padding.
func (f Frame) content() (x, y, w, h float64) {
	return f.X + f.Padding, f.Y + f.Padding, f.W - 2*f.Padding, f.H - 2*f.Padding
}

// PageInfo describes a rendered page. It is handed to the decoration
// callback so a single callback can serve every orientation.
type PageInfo struct {
	Number   int    // 1-indexed page number
	Size     Size   // page size as rendered
	Template string // id of the active page template
}

// DecorationFunc draws fixed per-page elements such as page numbers or a
// logo. It is invoked exactly once per rendered page, before content is laid
// out, so content paints over it.
type DecorationFunc func(c *Canvas, info PageInfo)

// PageTemplate is a named page layout: a page size, one or more frames
// content flows through, and an optional decoration callback. Templates are
// immutable once registered and are selected by id from the story.
type PageTemplate struct {
	ID       string
	Size     Size
	Frames   []Frame
	Decorate DecorationFunc
}

// NewPageTemplate creates a template with a single margin frame, which is
// the common case. Use the struct literal for multi-frame layouts.
func NewPageTemplate(id string, page Size, margin float64, decorate DecorationFunc) *PageTemplate {
	return &PageTemplate{
		ID:       id,
		Size:     page,
		Frames:   []Frame{MarginFrame(page, margin)},
		Decorate: decorate,
	}
}

// FontSpec defines font properties for text rendering.
type FontSpec struct {
	Family string
	Style  string  // "", "B", "I", "BI"
	Size   float64 // in points
}
