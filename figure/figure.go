// Package figure converts chart objects into embeddable report images.
//
// A chart is anything that can draw itself onto a gonum/plot draw.Canvas,
// which includes *plot.Plot. Conversion rasterizes the chart into an
// in-memory PNG buffer - no temporary files - and builds an image block
// whose physical size matches the requested canvas size, so the embedded
// image keeps the chart's native aspect ratio.
package figure

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	report "github.com/NICD-UK/reportlab-blog"
)

// Chart is a drawable chart. *plot.Plot satisfies it, as do the composite
// charts in the charts package.
type Chart interface {
	Draw(dc draw.Canvas)
}

// config holds conversion settings.
type config struct {
	dpi int
}

// Option adjusts the conversion.
type Option func(*config)

// WithDPI sets the raster resolution. The default is 150.
func WithDPI(dpi int) Option {
	return func(c *config) {
		c.dpi = dpi
	}
}

// Convert rasterizes chart onto a w by h canvas and returns an image block
// of the same physical size, in document millimeters. Rasterization errors
// propagate to the caller; there is no retry or fallback.
func Convert(chart Chart, w, h vg.Length, opts ...Option) (*report.Image, error) {
	cfg := config{dpi: 150}
	for _, opt := range opts {
		opt(&cfg)
	}

	canvas := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(cfg.dpi))
	chart.Draw(draw.New(canvas))

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("figure: rasterizing chart: %w", err)
	}

	return report.NewImage(&buf, "PNG",
		float64(w/vg.Millimeter), float64(h/vg.Millimeter))
}
