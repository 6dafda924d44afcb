// Package render provides the three format backends financial reports are
// compiled into. Each backend exposes primitives native to its format: a
// paginated vector document (PDF), a flat delimited stream (CSV) and a
// cell-grid workbook (XLSX). The report generators reconcile layout intent
// across them.
package render

// RGB is a color in the 0..1 range used by the PDF content stream.
type RGB struct {
	R, G, B float64
}

// Style carries the shared visual constants a builder is constructed with.
type Style struct {
	HeaderFill  RGB
	HeaderText  RGB
	FooterFill  RGB
	TitleSize   float64
	BodySize    float64
	TableSize   float64
	MutedText   RGB
	RegularText RGB
}

// DefaultStyle is the application's report theme.
func DefaultStyle() Style {
	return Style{
		HeaderFill:  RGB{R: 0.16, G: 0.50, B: 0.73},
		HeaderText:  RGB{R: 1, G: 1, B: 1},
		FooterFill:  RGB{R: 0.91, G: 0.94, B: 0.97},
		TitleSize:   16,
		BodySize:    10,
		TableSize:   9,
		MutedText:   RGB{R: 0.45, G: 0.45, B: 0.45},
		RegularText: RGB{R: 0.1, G: 0.1, B: 0.1},
	}
}
