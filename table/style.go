// Package table converts tabular datasets into styled grid flowables for
// the report package.
//
// The first row of a converted table is the column headers, wrapped in
// wrap-capable cells so long names break across lines rather than overflow.
// Data rows carry the raw cell values in column order; no numeric formatting
// is applied. A table splits across page boundaries, repeating its header
// row on each continuation.
package table

import report "github.com/NICD-UK/reportlab-blog"

// RGB is an RGB color value.
type RGB struct {
	R, G, B int
}

// Style defines the visual appearance of a table. The zero value renders
// nothing useful; start from DefaultStyle.
type Style struct {
	HeaderFont report.FontSpec
	CellFont   report.FontSpec

	GridWidth float64 // full grid line width
	GridColor RGB
	RuleWidth float64 // heavier rule under the header row

	Fill    RGB // odd data rows
	AltFill RGB // even data rows
	Padding float64
}

// DefaultStyle is the fixed look the converter applies uniformly: bold
// header with an underline rule, full grid lines, alternating row
// backgrounds, left alignment.
func DefaultStyle() Style {
	return Style{
		HeaderFont: report.FontSpec{Family: "Helvetica", Style: "B", Size: 10},
		CellFont:   report.FontSpec{Family: "Helvetica", Size: 10},
		GridWidth:  0.2,
		GridColor:  RGB{120, 120, 120},
		RuleWidth:  0.6,
		Fill:       RGB{255, 255, 255},
		AltFill:    RGB{235, 238, 245},
		Padding:    1.5,
	}
}
