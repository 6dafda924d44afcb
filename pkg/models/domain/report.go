package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportType identifies one of the supported financial report kinds.
type ReportType string

const (
	ReportIncomeStatement   ReportType = "income_statement"
	ReportBalanceSheet      ReportType = "balance_sheet"
	ReportCashFlow          ReportType = "cash_flow"
	ReportBudgetPerformance ReportType = "budget_performance"
	ReportBudgetVariance    ReportType = "budget_variance"
	ReportTransactionDetail ReportType = "transaction_detail"
	ReportMerchantAnalysis  ReportType = "merchant_analysis"
)

// ReportTypes lists every supported report type in a stable order.
func ReportTypes() []ReportType {
	return []ReportType{
		ReportIncomeStatement,
		ReportBalanceSheet,
		ReportCashFlow,
		ReportBudgetPerformance,
		ReportBudgetVariance,
		ReportTransactionDetail,
		ReportMerchantAnalysis,
	}
}

func (t ReportType) Valid() bool {
	switch t {
	case ReportIncomeStatement, ReportBalanceSheet, ReportCashFlow,
		ReportBudgetPerformance, ReportBudgetVariance,
		ReportTransactionDetail, ReportMerchantAnalysis:
		return true
	}
	return false
}

// Title returns the human-readable report name used in document headers.
func (t ReportType) Title() string {
	switch t {
	case ReportIncomeStatement:
		return "Income Statement"
	case ReportBalanceSheet:
		return "Balance Sheet"
	case ReportCashFlow:
		return "Cash Flow Statement"
	case ReportBudgetPerformance:
		return "Budget Performance Report"
	case ReportBudgetVariance:
		return "Budget Variance Report"
	case ReportTransactionDetail:
		return "Transaction Detail Report"
	case ReportMerchantAnalysis:
		return "Merchant Analysis Report"
	}
	return string(t)
}

// ReportFormat identifies one of the supported output encodings.
type ReportFormat string

const (
	FormatPDF  ReportFormat = "pdf"
	FormatCSV  ReportFormat = "csv"
	FormatXLSX ReportFormat = "xlsx"
)

func ReportFormats() []ReportFormat {
	return []ReportFormat{FormatPDF, FormatCSV, FormatXLSX}
}

func (f ReportFormat) Valid() bool {
	switch f {
	case FormatPDF, FormatCSV, FormatXLSX:
		return true
	}
	return false
}

// MIME returns the content type the encoded document is served with.
func (f ReportFormat) MIME() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// Ext returns the filename extension for the format.
func (f ReportFormat) Ext() string {
	return string(f)
}

// Section discriminators. These tag values are the wire contract with the
// upstream aggregation layer and must match it exactly.
const (
	SectionIncome           = "INCOME"
	SectionIncomeTotal      = "INCOME_TOTAL"
	SectionExpenses         = "EXPENSES"
	SectionExpensesTotal    = "EXPENSES_TOTAL"
	SectionNetIncome        = "NET_INCOME"
	SectionAssets           = "ASSETS"
	SectionAssetsTotal      = "ASSETS_TOTAL"
	SectionLiabilities      = "LIABILITIES"
	SectionLiabilitiesTotal = "LIABILITIES_TOTAL"
	SectionNetWorth         = "NET_WORTH"
	SectionOperating        = "OPERATING"
	SectionOperatingTotal   = "OPERATING_TOTAL"
	SectionInvesting        = "INVESTING"
	SectionBalance          = "BALANCE"
	SectionBalanceEnd       = "BALANCE_END"
)

// ReportRow is a single pre-aggregated report record. Rows carry the union of
// the per-type fields; each generator reads only the fields its report type
// defines. Amounts arrive rounded and percentages pre-computed; report
// generation never performs arithmetic on them.
type ReportRow struct {
	Section    string          `json:"section,omitempty"`
	Category   string          `json:"category,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage,omitempty"`

	// transaction_detail
	Date        time.Time `json:"date,omitzero"`
	Description string    `json:"description,omitempty"`
	Merchant    string    `json:"merchant,omitempty"`
	Type        string    `json:"type,omitempty"`

	// budget_performance / budget_variance
	BudgetName   string          `json:"budgetName,omitempty"`
	CategoryName string          `json:"categoryName,omitempty"`
	Allocated    decimal.Decimal `json:"allocated"`
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	Variance     decimal.Decimal `json:"variance"`
	PercentUsed  float64         `json:"percentUsed,omitempty"`
	Status       string          `json:"status,omitempty"`
	Favorable    bool            `json:"favorable,omitempty"`

	// merchant_analysis
	TransactionCount int             `json:"transactionCount,omitempty"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	AverageAmount    decimal.Decimal `json:"averageAmount"`
}

// ReportParameters carries the header/subtitle inputs for a report. It never
// drives recomputation of row data.
type ReportParameters struct {
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	AsOfDate   *time.Time `json:"asOfDate,omitempty"`
	Currency   string     `json:"currency,omitempty"`
	Limit      int        `json:"limit,omitempty"`
	AccountIDs []string   `json:"accountIds,omitempty"`

	// GeneratedAt pins the document timestamp. When nil, the generation time
	// is used for the PDF header and the filename.
	GeneratedAt *time.Time `json:"generatedAt,omitempty"`
}

// CurrencyOrDefault returns the requested currency code, defaulting to USD.
func (p ReportParameters) CurrencyOrDefault() string {
	if p.Currency == "" {
		return "USD"
	}
	return p.Currency
}

// Subtitle renders the date-range or as-of line shown under the title.
func (p ReportParameters) Subtitle() string {
	const layout = "January 2, 2006"
	switch {
	case p.StartDate != nil && p.EndDate != nil:
		return fmt.Sprintf("%s - %s", p.StartDate.Format(layout), p.EndDate.Format(layout))
	case p.AsOfDate != nil:
		return fmt.Sprintf("As of %s", p.AsOfDate.Format(layout))
	}
	return ""
}

// Document is the sole output artifact of report generation.
type Document struct {
	Data        []byte
	MIME        string
	FileName    string
	RecordCount int
}
