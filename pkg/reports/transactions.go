package reports

import (
	"fmt"
	"strconv"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"
	"github.com/Bhautik-2004/FMS-sub001/pkg/reports/format"
	"github.com/Bhautik-2004/FMS-sub001/pkg/reports/render"
)

func transactionDetail(rows []domain.ReportRow, f domain.ReportFormat, p domain.ReportParameters) ([]byte, error) {
	cur := p.CurrencyOrDefault()
	spec := flatSpec{
		Title:     domain.ReportTransactionDetail.Title(),
		Headers:   []string{"Date", "Description", "Category", "Merchant", "Type", "Amount"},
		Aligns:    []render.Align{render.AlignLeft, render.AlignLeft, render.AlignLeft, render.AlignLeft, render.AlignLeft, render.AlignRight},
		Landscape: true,
		EmptyText: "No transactions recorded",
		Cells: func(r domain.ReportRow, surface format.Surface) []string {
			return []string{
				format.Date(r.Date),
				r.Description,
				r.Category,
				r.Merchant,
				r.Type,
				format.Currency(r.Amount, cur, surface),
			}
		},
	}
	return renderFlat(spec, rows, f, p)
}

func merchantAnalysis(rows []domain.ReportRow, f domain.ReportFormat, p domain.ReportParameters) ([]byte, error) {
	cur := p.CurrencyOrDefault()
	spec := flatSpec{
		Title:     domain.ReportMerchantAnalysis.Title(),
		Headers:   []string{"Merchant", "Category", "Transactions", "Total", "Average", "% of Spending"},
		Aligns:    []render.Align{render.AlignLeft, render.AlignLeft, render.AlignRight, render.AlignRight, render.AlignRight, render.AlignRight},
		EmptyText: "No merchant activity recorded",
		Cells: func(r domain.ReportRow, surface format.Surface) []string {
			return []string{
				r.Merchant,
				r.Category,
				strconv.Itoa(r.TransactionCount),
				format.Currency(r.TotalAmount, cur, surface),
				format.Currency(r.AverageAmount, cur, surface),
				format.Percentage(r.Percentage),
			}
		},
	}
	return renderFlat(spec, rows, f, p)
}

// flatSpec describes a report rendered as one table with no grouping.
type flatSpec struct {
	Title     string
	Headers   []string
	Aligns    []render.Align
	Landscape bool
	EmptyText string
	Cells     func(domain.ReportRow, format.Surface) []string
}

func renderFlat(spec flatSpec, rows []domain.ReportRow, f domain.ReportFormat, p domain.ReportParameters) ([]byte, error) {
	switch f {
	case domain.FormatPDF:
		b := render.NewPDFBuilder(render.PDFOptions{
			Title:       spec.Title,
			Subtitle:    p.Subtitle(),
			Landscape:   spec.Landscape,
			GeneratedAt: stamp(p),
			Style:       render.DefaultStyle(),
		})
		if len(rows) == 0 {
			b.AddText(spec.EmptyText, render.TextOptions{Size: 9})
			return b.Bytes()
		}
		body := make([][]string, 0, len(rows))
		for _, r := range rows {
			body = append(body, spec.Cells(r, format.SurfacePDF))
		}
		b.AddTable(spec.Headers, body, render.TableOptions{Aligns: spec.Aligns})
		return b.Bytes()

	case domain.FormatCSV:
		b := render.NewCSVBuilder()
		b.AddSection(spec.Title)
		if sub := p.Subtitle(); sub != "" {
			b.AddSection(sub)
		}
		data := make([][]string, 0, len(rows))
		for _, r := range rows {
			data = append(data, spec.Cells(r, format.SurfaceText))
		}
		b.AddData(spec.Headers, data)
		return b.Bytes()

	case domain.FormatXLSX:
		b := render.NewXLSXBuilder(spec.Title, stamp(p))
		b.AddHeaderRow(spec.Title)
		if sub := p.Subtitle(); sub != "" {
			b.AddRow(sub)
		}
		b.AddEmptyRow()
		hdr := make([]any, len(spec.Headers))
		for i, h := range spec.Headers {
			hdr[i] = h
		}
		b.AddHeaderRow(hdr...)
		for _, r := range rows {
			vals := spec.Cells(r, format.SurfaceText)
			row := make([]any, len(vals))
			for i, v := range vals {
				row[i] = v
			}
			b.AddRow(row...)
		}
		return b.Bytes()

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}
