package reports

import (
	"fmt"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"
	"github.com/Bhautik-2004/FMS-sub001/pkg/reports/format"
	"github.com/Bhautik-2004/FMS-sub001/pkg/reports/render"
)

// statementSection describes one logical block of a sectioned statement:
// its line items, the tag of its single pre-computed totals row, and the text
// shown on the PDF when the block has no line items.
type statementSection struct {
	Title      string
	ItemTag    string
	TotalTag   string
	TotalLabel string
	EmptyText  string
}

// netLine is a single pre-computed summary figure rendered after the
// sections (net income, net worth, ending balance).
type netLine struct {
	Tag   string
	Label string
}

type statementLayout struct {
	Sections []statementSection
	NetLines []netLine
}

// sectionRows selects line items by exact section-tag match. Totals and net
// rows carry their own tags and therefore never leak into an item slice.
func sectionRows(rows []domain.ReportRow, tag string) []domain.ReportRow {
	var out []domain.ReportRow
	for _, r := range rows {
		if r.Section == tag {
			out = append(out, r)
		}
	}
	return out
}

// sectionRow returns the first row with the exact tag. Absence is not an
// error: the corresponding footer or summary line is simply omitted.
func sectionRow(rows []domain.ReportRow, tag string) (domain.ReportRow, bool) {
	for _, r := range rows {
		if r.Section == tag {
			return r, true
		}
	}
	return domain.ReportRow{}, false
}

// renderStatement lays out a sectioned statement in the requested format.
// The semantic structure (section order, totals placement, net figures) is
// identical across formats; only the rendering primitives differ.
func renderStatement(title string, layout statementLayout, rows []domain.ReportRow, f domain.ReportFormat, p domain.ReportParameters) ([]byte, error) {
	cur := p.CurrencyOrDefault()

	switch f {
	case domain.FormatPDF:
		b := render.NewPDFBuilder(render.PDFOptions{
			Title:       title,
			Subtitle:    p.Subtitle(),
			GeneratedAt: stamp(p),
			Style:       render.DefaultStyle(),
		})
		for _, sec := range layout.Sections {
			b.AddSection(sec.Title)
			items := sectionRows(rows, sec.ItemTag)
			if len(items) == 0 {
				b.AddText(sec.EmptyText, render.TextOptions{Size: 9})
				continue
			}
			body := make([][]string, 0, len(items))
			for _, r := range items {
				body = append(body, []string{
					r.Category,
					format.Currency(r.Amount, cur, format.SurfacePDF),
					format.Percentage(r.Percentage),
				})
			}
			opts := render.TableOptions{Aligns: []render.Align{render.AlignLeft, render.AlignRight, render.AlignRight}}
			if total, ok := sectionRow(rows, sec.TotalTag); ok && sec.TotalTag != "" {
				opts.FooterRows = [][]string{{
					sec.TotalLabel,
					format.Currency(total.Amount, cur, format.SurfacePDF),
					format.Percentage(total.Percentage),
				}}
			}
			b.AddTable([]string{"Category", "Amount", "% of Total"}, body, opts)
		}
		for _, nl := range layout.NetLines {
			if r, ok := sectionRow(rows, nl.Tag); ok {
				b.AddText(fmt.Sprintf("%s: %s", nl.Label, format.Currency(r.Amount, cur, format.SurfacePDF)), render.TextOptions{Bold: true, Size: 11})
			}
		}
		return b.Bytes()

	case domain.FormatCSV:
		b := render.NewCSVBuilder()
		b.AddSection(title)
		if sub := p.Subtitle(); sub != "" {
			b.AddSection(sub)
		}
		data := make([][]string, 0, len(rows))
		for _, r := range rows {
			data = append(data, []string{
				r.Section,
				r.Category,
				format.Currency(r.Amount, cur, format.SurfaceText),
				format.Percentage(r.Percentage),
			})
		}
		b.AddData([]string{"Section", "Category", "Amount", "Percentage"}, data)
		return b.Bytes()

	case domain.FormatXLSX:
		b := render.NewXLSXBuilder(title, stamp(p))
		b.AddHeaderRow(title)
		if sub := p.Subtitle(); sub != "" {
			b.AddRow(sub)
		}
		b.AddEmptyRow()
		b.AddHeaderRow("Section", "Category", "Amount", "Percentage")
		for _, r := range rows {
			b.AddRow(
				r.Section,
				r.Category,
				format.Currency(r.Amount, cur, format.SurfaceText),
				format.Percentage(r.Percentage),
			)
		}
		return b.Bytes()

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}
