package report

import (
	"bytes"
	"image/png"
	"math"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// qrDPI is the raster resolution for generated QR codes.
const qrDPI = 300

// QRCode is a machine-readable-label block: a QR code rendered as a square
// image of side millimeters. Like every flowable it is an immutable value.
type QRCode struct {
	img *Image
}

// NewQRCode encodes content at medium error-correction level.
func NewQRCode(content string, side float64) (*QRCode, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, newError("NewQRCode", err)
	}
	px := int(math.Round(side / 25.4 * qrDPI))
	if px < code.Bounds().Dx() {
		px = code.Bounds().Dx()
	}
	code, err = barcode.Scale(code, px, px)
	if err != nil {
		return nil, newError("NewQRCode", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, newError("NewQRCode", err)
	}
	img, err := NewImage(&buf, "PNG", side, side)
	if err != nil {
		return nil, err
	}
	return &QRCode{img: img}, nil
}

// Image returns the rendered code for use outside the story, e.g. in a
// decoration callback.
func (q *QRCode) Image() *Image { return q.img }

func (q *QRCode) Measure(c *Canvas, width float64) float64 {
	return q.img.Measure(c, width)
}

func (q *QRCode) Render(c *Canvas, x, y, width float64) error {
	return q.img.Render(c, x, y, width)
}
