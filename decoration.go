package report

import "strconv"

// Decorations composes several decoration callbacks into one, invoked in
// order on every page.
func Decorations(fns ...DecorationFunc) DecorationFunc {
	return func(c *Canvas, info PageInfo) {
		for _, fn := range fns {
			if fn != nil {
				fn(c, info)
			}
		}
	}
}

// PageNumber returns a decoration that draws the page number centered near
// the bottom of the page, offset millimeters above the lower edge. The page
// geometry comes from PageInfo, so one callback serves every orientation.
func PageNumber(f FontSpec, offset float64) DecorationFunc {
	if offset <= 0 {
		offset = 15
	}
	return func(c *Canvas, info PageInfo) {
		c.pdf.SetTextColor(0, 0, 0)
		c.Text(0, info.Size.H-offset, info.Size.W,
			strconv.Itoa(info.Number), f, "C")
	}
}

// Logo returns a decoration that anchors img at the page origin, rendered w
// millimeters wide at the image's aspect ratio.
func Logo(img *Image, w float64) DecorationFunc {
	h := 0.0
	if img.w > 0 {
		h = img.h * w / img.w
	}
	return func(c *Canvas, info PageInfo) {
		c.DrawImage(img, 0, 0, w, h)
	}
}
