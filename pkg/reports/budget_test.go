package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"
)

func TestGroupByBudget(t *testing.T) {
	rows := []domain.ReportRow{
		{BudgetName: "Monthly", CategoryName: "Groceries"},
		{BudgetName: "Annual", CategoryName: "Travel"},
		{BudgetName: "Monthly", CategoryName: "Dining"},
	}
	groups := groupByBudget(rows)
	require.Len(t, groups, 2)
	assert.Equal(t, "Monthly", groups[0].Name)
	assert.Len(t, groups[0].Rows, 2)
	assert.Equal(t, "Annual", groups[1].Name)
	assert.Len(t, groups[1].Rows, 1)
}

func TestBudgetPerformance_PDF(t *testing.T) {
	data, err := budgetPerformance(rowsFor(domain.ReportBudgetPerformance), domain.FormatPDF, pinnedParams())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "(Budget Performance Report) Tj")
	assert.Contains(t, text, "(Monthly) Tj")
	assert.Contains(t, text, "(Groceries) Tj")
	assert.Contains(t, text, "(80.0%) Tj")
	assert.Contains(t, text, "(on_track) Tj")
	// Landscape page.
	assert.Contains(t, text, "/MediaBox [0 0 792 612]")
}

func TestBudgetPerformance_PDF_Empty(t *testing.T) {
	data, err := budgetPerformance(nil, domain.FormatPDF, pinnedParams())
	require.NoError(t, err)
	assert.Contains(t, string(data), "(No budget data recorded) Tj")
}

func TestBudgetVariance_CSV(t *testing.T) {
	data, err := budgetVariance(rowsFor(domain.ReportBudgetVariance), domain.FormatCSV, domain.ReportParameters{})
	require.NoError(t, err)

	expected := "\"Budget Variance Report\"\n" +
		"\n" +
		"Budget,Category,Allocated,Spent,Variance,Variance %,Outcome\n" +
		"Monthly,Groceries,$600.00,$480.00,$120.00,20.0%,Favorable\n" +
		"Annual,Travel,\"$3,000.00\",\"$3,400.00\",-$400.00,-13.3%,Unfavorable\n"
	assert.Equal(t, expected, string(data))
}

func TestBudgetPerformance_XLSX(t *testing.T) {
	data, err := budgetPerformance(rowsFor(domain.ReportBudgetPerformance), domain.FormatXLSX, pinnedParams())
	require.NoError(t, err)
	assert.Equal(t, "PK", string(data[:2]))
}
