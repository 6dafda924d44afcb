package reports

import "github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"

func incomeStatement(rows []domain.ReportRow, f domain.ReportFormat, p domain.ReportParameters) ([]byte, error) {
	layout := statementLayout{
		Sections: []statementSection{
			{
				Title:      "Income",
				ItemTag:    domain.SectionIncome,
				TotalTag:   domain.SectionIncomeTotal,
				TotalLabel: "Total Income",
				EmptyText:  "No income recorded",
			},
			{
				Title:      "Expenses",
				ItemTag:    domain.SectionExpenses,
				TotalTag:   domain.SectionExpensesTotal,
				TotalLabel: "Total Expenses",
				EmptyText:  "No expenses recorded",
			},
		},
		NetLines: []netLine{
			{Tag: domain.SectionNetIncome, Label: "Net Income"},
		},
	}
	return renderStatement(domain.ReportIncomeStatement.Title(), layout, rows, f, p)
}
