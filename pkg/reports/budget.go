package reports

import (
	"fmt"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"
	"github.com/Bhautik-2004/FMS-sub001/pkg/reports/format"
	"github.com/Bhautik-2004/FMS-sub001/pkg/reports/render"
)

// budgetGroup is one budget's category rows, in input order.
type budgetGroup struct {
	Name string
	Rows []domain.ReportRow
}

// groupByBudget partitions rows by BudgetName, preserving the order budgets
// first appear in. There is no section tag for these report types.
func groupByBudget(rows []domain.ReportRow) []budgetGroup {
	var groups []budgetGroup
	index := make(map[string]int)
	for _, r := range rows {
		i, ok := index[r.BudgetName]
		if !ok {
			i = len(groups)
			index[r.BudgetName] = i
			groups = append(groups, budgetGroup{Name: r.BudgetName})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	return groups
}

func budgetPerformance(rows []domain.ReportRow, f domain.ReportFormat, p domain.ReportParameters) ([]byte, error) {
	cur := p.CurrencyOrDefault()
	title := domain.ReportBudgetPerformance.Title()
	headers := []string{"Category", "Allocated", "Spent", "Remaining", "% Used", "Status"}
	cells := func(r domain.ReportRow, surface format.Surface) []string {
		return []string{
			r.CategoryName,
			format.Currency(r.Allocated, cur, surface),
			format.Currency(r.Spent, cur, surface),
			format.Currency(r.Remaining, cur, surface),
			format.Percentage(r.PercentUsed),
			r.Status,
		}
	}
	return renderBudget(title, headers, cells, rows, f, p)
}

func budgetVariance(rows []domain.ReportRow, f domain.ReportFormat, p domain.ReportParameters) ([]byte, error) {
	cur := p.CurrencyOrDefault()
	title := domain.ReportBudgetVariance.Title()
	headers := []string{"Category", "Allocated", "Spent", "Variance", "Variance %", "Outcome"}
	cells := func(r domain.ReportRow, surface format.Surface) []string {
		outcome := "Unfavorable"
		if r.Favorable {
			outcome = "Favorable"
		}
		return []string{
			r.CategoryName,
			format.Currency(r.Allocated, cur, surface),
			format.Currency(r.Spent, cur, surface),
			format.Currency(r.Variance, cur, surface),
			format.Percentage(r.Percentage),
			outcome,
		}
	}
	return renderBudget(title, headers, cells, rows, f, p)
}

// renderBudget lays out rows grouped by budget: one titled block per budget
// in PDF and XLSX, one flat block with a leading Budget column in CSV.
func renderBudget(title string, headers []string, cells func(domain.ReportRow, format.Surface) []string, rows []domain.ReportRow, f domain.ReportFormat, p domain.ReportParameters) ([]byte, error) {
	groups := groupByBudget(rows)

	switch f {
	case domain.FormatPDF:
		b := render.NewPDFBuilder(render.PDFOptions{
			Title:       title,
			Subtitle:    p.Subtitle(),
			Landscape:   true,
			GeneratedAt: stamp(p),
			Style:       render.DefaultStyle(),
		})
		if len(groups) == 0 {
			b.AddText("No budget data recorded", render.TextOptions{Size: 9})
			return b.Bytes()
		}
		aligns := []render.Align{render.AlignLeft, render.AlignRight, render.AlignRight, render.AlignRight, render.AlignRight, render.AlignLeft}
		for _, g := range groups {
			b.AddSection(g.Name)
			body := make([][]string, 0, len(g.Rows))
			for _, r := range g.Rows {
				body = append(body, cells(r, format.SurfacePDF))
			}
			b.AddTable(headers, body, render.TableOptions{Aligns: aligns})
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
			data = append(data, append([]string{r.BudgetName}, cells(r, format.SurfaceText)...))
		}
		b.AddData(append([]string{"Budget"}, headers...), data)
		return b.Bytes()

	case domain.FormatXLSX:
		b := render.NewXLSXBuilder(title, stamp(p))
		b.AddHeaderRow(title)
		if sub := p.Subtitle(); sub != "" {
			b.AddRow(sub)
		}
		for _, g := range groups {
			b.AddEmptyRow()
			b.AddHeaderRow(g.Name)
			hdr := make([]any, len(headers))
			for i, h := range headers {
				hdr[i] = h
			}
			b.AddHeaderRow(hdr...)
			for _, r := range g.Rows {
				vals := cells(r, format.SurfaceText)
				row := make([]any, len(vals))
				for i, v := range vals {
					row[i] = v
				}
				b.AddRow(row...)
			}
		}
		return b.Bytes()

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}
