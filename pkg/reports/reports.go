// Package reports compiles pre-aggregated financial report rows into PDF,
// CSV and XLSX documents. It lays out already-computed values only: sums,
// percentages and variances arrive final from the aggregation layer and are
// never recomputed here.
package reports

import (
	"errors"
	"fmt"
	"time"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"
)

var (
	// ErrUnsupportedReportType is returned for a report type outside the
	// closed enumeration. Callers should treat it as a client error.
	ErrUnsupportedReportType = errors.New("unsupported report type")

	// ErrUnsupportedFormat guards the per-generator format switch. It should
	// be unreachable through the public enumeration but is still returned
	// explicitly rather than falling through.
	ErrUnsupportedFormat = errors.New("unsupported report format")
)

type generator func(rows []domain.ReportRow, f domain.ReportFormat, p domain.ReportParameters) ([]byte, error)

// Generate compiles rows into a document of the requested type and format.
// An unknown report type fails before any format backend is constructed.
func Generate(t domain.ReportType, f domain.ReportFormat, rows []domain.ReportRow, p domain.ReportParameters) (domain.Document, error) {
	var gen generator
	switch t {
	case domain.ReportIncomeStatement:
		gen = incomeStatement
	case domain.ReportBalanceSheet:
		gen = balanceSheet
	case domain.ReportCashFlow:
		gen = cashFlow
	case domain.ReportBudgetPerformance:
		gen = budgetPerformance
	case domain.ReportBudgetVariance:
		gen = budgetVariance
	case domain.ReportTransactionDetail:
		gen = transactionDetail
	case domain.ReportMerchantAnalysis:
		gen = merchantAnalysis
	default:
		return domain.Document{}, fmt.Errorf("%w: %q", ErrUnsupportedReportType, string(t))
	}

	data, err := gen(rows, f, p)
	if err != nil {
		return domain.Document{}, err
	}
	at := time.Now()
	if p.GeneratedAt != nil {
		at = *p.GeneratedAt
	}
	return domain.Document{
		Data:        data,
		MIME:        f.MIME(),
		FileName:    FileName(t, f, at),
		RecordCount: len(rows),
	}, nil
}

// FileName builds the filesystem-safe download name for a generated report.
func FileName(t domain.ReportType, f domain.ReportFormat, at time.Time) string {
	return fmt.Sprintf("%s_report_%s.%s", t, at.Format("2006-01-02_15-04-05"), f.Ext())
}

// stamp returns the pinned generation time, or the zero time when the caller
// did not pin one (backends then pick their own default).
func stamp(p domain.ReportParameters) time.Time {
	if p.GeneratedAt != nil {
		return *p.GeneratedAt
	}
	return time.Time{}
}
