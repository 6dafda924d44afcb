package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportTypeValid(t *testing.T) {
	for _, rt := range ReportTypes() {
		assert.True(t, rt.Valid(), string(rt))
	}
	assert.False(t, ReportType("foo").Valid())
	assert.False(t, ReportType("").Valid())
}

func TestReportFormatMIME(t *testing.T) {
	assert.Equal(t, "application/pdf", FormatPDF.MIME())
	assert.Equal(t, "text/csv", FormatCSV.MIME())
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		FormatXLSX.MIME())
	assert.False(t, ReportFormat("docx").Valid())
}

func TestReportParameters_Subtitle(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "January 1, 2024 - January 31, 2024",
		ReportParameters{StartDate: &start, EndDate: &end}.Subtitle())
	assert.Equal(t, "As of June 30, 2024",
		ReportParameters{AsOfDate: &asOf}.Subtitle())
	assert.Equal(t, "", ReportParameters{StartDate: &start}.Subtitle())
}

func TestReportParameters_CurrencyOrDefault(t *testing.T) {
	assert.Equal(t, "USD", ReportParameters{}.CurrencyOrDefault())
	assert.Equal(t, "EUR", ReportParameters{Currency: "EUR"}.CurrencyOrDefault())
}
