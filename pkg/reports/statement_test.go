package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"
)

func TestIncomeStatement_PDF(t *testing.T) {
	data, err := incomeStatement(rowsFor(domain.ReportIncomeStatement), domain.FormatPDF, pinnedParams())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "(Income Statement) Tj")
	assert.Contains(t, text, "(Income) Tj")
	assert.Contains(t, text, "(Expenses) Tj")
	assert.Contains(t, text, "(Salary) Tj")
	assert.Contains(t, text, "(Total Income) Tj")
	assert.Contains(t, text, "(Total Expenses) Tj")
	assert.Contains(t, text, "(Net Income: $3,000.00) Tj")
}

func TestBalanceSheet_PDF_EmptyLiabilities(t *testing.T) {
	rows := []domain.ReportRow{
		{Section: domain.SectionAssets, Category: "Checking", Amount: dec("12000"), Percentage: 100},
		{Section: domain.SectionAssetsTotal, Amount: dec("12000"), Percentage: 100},
		{Section: domain.SectionNetWorth, Amount: dec("12000")},
	}
	data, err := balanceSheet(rows, domain.FormatPDF, pinnedParams())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "(No liabilities recorded) Tj")
	assert.Contains(t, text, "(Net Worth: $12,000.00) Tj")
	assert.NotContains(t, text, "(Total Liabilities) Tj")
}

func TestBalanceSheet_PDF_MissingTotalsOmitsFooter(t *testing.T) {
	rows := []domain.ReportRow{
		{Section: domain.SectionAssets, Category: "Checking", Amount: dec("12000"), Percentage: 100},
	}
	data, err := balanceSheet(rows, domain.FormatPDF, pinnedParams())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "(Checking) Tj")
	assert.NotContains(t, text, "(Total Assets) Tj")
	assert.NotContains(t, text, "(Net Worth")
}

func TestCashFlow_PDF(t *testing.T) {
	data, err := cashFlow(rowsFor(domain.ReportCashFlow), domain.FormatPDF, pinnedParams())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "(Operating Activities) Tj")
	assert.Contains(t, text, "(Investing Activities) Tj")
	assert.Contains(t, text, "(Net Operating Cash) Tj")
	assert.Contains(t, text, "(Net Change in Cash: $2,700.00) Tj")
	assert.Contains(t, text, "(Ending Balance: $9,400.00) Tj")
}

func TestStatement_CSV_AllRowsInInputOrder(t *testing.T) {
	data, err := balanceSheet(rowsFor(domain.ReportBalanceSheet), domain.FormatCSV, domain.ReportParameters{})
	require.NoError(t, err)

	expected := "\"Balance Sheet\"\n" +
		"\n" +
		"Section,Category,Amount,Percentage\n" +
		"ASSETS,Checking,\"$12,000.00\",80.0%\n" +
		"ASSETS_TOTAL,,\"$15,000.00\",100.0%\n" +
		"LIABILITIES,Credit Card,$900.00,100.0%\n" +
		"LIABILITIES_TOTAL,,$900.00,100.0%\n" +
		"NET_WORTH,,\"$14,100.00\",0.0%\n"
	assert.Equal(t, expected, string(data))
}

func TestStatement_XLSX_HasHeaderAndRows(t *testing.T) {
	data, err := incomeStatement(rowsFor(domain.ReportIncomeStatement), domain.FormatXLSX, pinnedParams())
	require.NoError(t, err)
	assert.Equal(t, "PK", string(data[:2]))
}

func TestStatement_CurrencyFallbackDivergence(t *testing.T) {
	params := pinnedParams()
	params.Currency = "INR"
	rows := rowsFor(domain.ReportIncomeStatement)

	pdf, err := incomeStatement(rows, domain.FormatPDF, params)
	require.NoError(t, err)
	assert.Contains(t, string(pdf), "(Rs.5,000.00) Tj")

	csvOut, err := incomeStatement(rows, domain.FormatCSV, params)
	require.NoError(t, err)
	assert.Contains(t, string(csvOut), "₹5,000.00")
	assert.NotContains(t, string(csvOut), "Rs.")
}
