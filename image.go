package report

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/go-pdf/fpdf"
)

// Image is an embeddable raster image block. It holds the encoded bytes in
// memory and a display size in millimeters. An Image is immutable and can be
// placed in any number of stories; builds never modify it.
type Image struct {
	name   string
	data   []byte
	format string // "PNG", "JPG", "GIF"
	w, h   float64
}

// NewImage reads the encoded image from r and returns a block that renders
// at w by h millimeters. The reader is consumed fully; it can be discarded
// afterwards.
func NewImage(r io.Reader, format string, w, h float64) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newError("NewImage", err)
	}
	if len(data) == 0 {
		return nil, newError("NewImage", ErrEmptyImage)
	}
	return &Image{
		name:   fmt.Sprintf("img-%08x-%d", crc32.ChecksumIEEE(data), len(data)),
		data:   data,
		format: format,
		w:      w,
		h:      h,
	}, nil
}

// Width returns the display width in millimeters.
func (img *Image) Width() float64 { return img.w }

// Height returns the display height in millimeters.
func (img *Image) Height() float64 { return img.h }

// register makes the image bytes known to the engine. Registration is keyed
// by a content-derived name, so registering twice is a no-op.
func (img *Image) register(pdf *fpdf.Fpdf) {
	if info := pdf.GetImageInfo(img.name); info != nil {
		return
	}
	pdf.RegisterImageOptionsReader(img.name,
		fpdf.ImageOptions{ImageType: img.format}, bytes.NewReader(img.data))
}

// NaturalWidth reports the unscaled width for oversize checks.
func (img *Image) NaturalWidth() float64 { return img.w }

// Measure implements Flowable. When the frame is narrower than the image
// the height is reported at the scaled-down size.
func (img *Image) Measure(c *Canvas, width float64) float64 {
	if img.w > width && img.w > 0 {
		return img.h * width / img.w
	}
	return img.h
}

// Render implements Flowable.
func (img *Image) Render(c *Canvas, x, y, width float64) error {
	w, h := img.w, img.h
	if w > width && w > 0 {
		h = h * width / w
		w = width
	}
	c.DrawImage(img, x, y, w, h)
	return nil
}
