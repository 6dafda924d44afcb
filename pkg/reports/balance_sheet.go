package reports

import "github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"

func balanceSheet(rows []domain.ReportRow, f domain.ReportFormat, p domain.ReportParameters) ([]byte, error) {
	layout := statementLayout{
		Sections: []statementSection{
			{
				Title:      "Assets",
				ItemTag:    domain.SectionAssets,
				TotalTag:   domain.SectionAssetsTotal,
				TotalLabel: "Total Assets",
				EmptyText:  "No assets recorded",
			},
			{
				Title:      "Liabilities",
				ItemTag:    domain.SectionLiabilities,
				TotalTag:   domain.SectionLiabilitiesTotal,
				TotalLabel: "Total Liabilities",
				EmptyText:  "No liabilities recorded",
			},
		},
		NetLines: []netLine{
			{Tag: domain.SectionNetWorth, Label: "Net Worth"},
		},
	}
	return renderStatement(domain.ReportBalanceSheet.Title(), layout, rows, f, p)
}
