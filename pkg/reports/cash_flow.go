package reports

import "github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"

// The cash-flow vocabulary has no INVESTING_TOTAL tag; the investing section
// therefore never carries a footer and the missing-totals policy applies.
// BALANCE is the period's net cash movement, BALANCE_END the closing balance.
func cashFlow(rows []domain.ReportRow, f domain.ReportFormat, p domain.ReportParameters) ([]byte, error) {
	layout := statementLayout{
		Sections: []statementSection{
			{
				Title:      "Operating Activities",
				ItemTag:    domain.SectionOperating,
				TotalTag:   domain.SectionOperatingTotal,
				TotalLabel: "Net Operating Cash",
				EmptyText:  "No operating activity recorded",
			},
			{
				Title:     "Investing Activities",
				ItemTag:   domain.SectionInvesting,
				EmptyText: "No investing activity recorded",
			},
		},
		NetLines: []netLine{
			{Tag: domain.SectionBalance, Label: "Net Change in Cash"},
			{Tag: domain.SectionBalanceEnd, Label: "Ending Balance"},
		},
	}
	return renderStatement(domain.ReportCashFlow.Title(), layout, rows, f, p)
}
