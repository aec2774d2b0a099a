package report

import (
	"github.com/go-pdf/fpdf"
)

// Canvas wraps the underlying PDF engine for flowables and decoration
// callbacks. It exposes a few common drawing helpers; anything beyond them
// can go through PDF directly.
type Canvas struct {
	pdf     *fpdf.Fpdf
	docFont FontSpec
}

// PDF returns the underlying engine. Flowable implementations outside this
// package use it for text metrics and drawing.
func (c *Canvas) PDF() *fpdf.Fpdf {
	return c.pdf
}

// DefaultFont returns the document's default font.
func (c *Canvas) DefaultFont() FontSpec {
	return c.docFont
}

// SetFont sets the active font.
func (c *Canvas) SetFont(f FontSpec) {
	c.pdf.SetFont(f.Family, f.Style, f.Size)
}

// Text draws a single line of text with its top-left corner at (x, y),
// aligned within width w ("L", "C" or "R").
func (c *Canvas) Text(x, y, w float64, s string, f FontSpec, align string) {
	c.SetFont(f)
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(w, f.Size*0.5, s, "", 0, align, false, 0, "")
}

// DrawImage places img with its top-left corner at (x, y), scaled to w by h
// millimeters. Zero w or h keeps the image's registered size for that axis.
func (c *Canvas) DrawImage(img *Image, x, y, w, h float64) {
	img.register(c.pdf)
	c.pdf.ImageOptions(img.name, x, y, w, h, false,
		fpdf.ImageOptions{ImageType: img.format}, 0, "")
}

// lineHeight returns the rendered height in document units of one text line
// for the active font.
func (c *Canvas) lineHeight() float64 {
	_, unitSize := c.pdf.GetFontSize()
	return unitSize * 1.35
}

// splitLines wraps s to the given width using the active font.
func (c *Canvas) splitLines(s string, w float64) [][]byte {
	return c.pdf.SplitLines([]byte(s), w)
}
