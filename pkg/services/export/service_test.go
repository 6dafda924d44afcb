package export

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"
	"github.com/Bhautik-2004/FMS-sub001/pkg/models/store"
)

type mockHistoryStore struct {
	mock.Mock
}

func (m *mockHistoryStore) Add(ctx context.Context, record store.ExportRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockHistoryStore) List(ctx context.Context, limit int) ([]store.ExportRecord, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]store.ExportRecord), args.Error(1)
}

func sampleRows() []domain.ReportRow {
	return []domain.ReportRow{
		{Section: domain.SectionIncome, Category: "Salary", Amount: decimal.NewFromInt(5200), Percentage: 100},
		{Section: domain.SectionIncomeTotal, Category: "Total", Amount: decimal.NewFromInt(5200)},
	}
}

func TestService_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("success records completed entry", func(t *testing.T) {
		hs := new(mockHistoryStore)
		hs.On("Add", mock.Anything, mock.MatchedBy(func(r store.ExportRecord) bool {
			return r.Status == store.StatusCompleted &&
				r.ReportType == "income_statement" &&
				r.Format == "csv" &&
				r.RecordCount == 2 &&
				r.ByteSize > 0 &&
				r.ID != ""
		})).Return(nil)

		svc := NewService(hs)
		doc, err := svc.Export(ctx, domain.ReportIncomeStatement, domain.FormatCSV, sampleRows(), domain.ReportParameters{})
		require.NoError(t, err)
		assert.NotEmpty(t, doc.Data)
		hs.AssertExpectations(t)
	})

	t.Run("unknown type records failed entry", func(t *testing.T) {
		hs := new(mockHistoryStore)
		hs.On("Add", mock.Anything, mock.MatchedBy(func(r store.ExportRecord) bool {
			return r.Status == store.StatusFailed && r.Error != "" && r.FileName == ""
		})).Return(nil)

		svc := NewService(hs)
		_, err := svc.Export(ctx, domain.ReportType("pie_chart"), domain.FormatCSV, nil, domain.ReportParameters{})
		assert.Error(t, err)
		hs.AssertExpectations(t)
	})

	t.Run("history write failure does not fail the export", func(t *testing.T) {
		hs := new(mockHistoryStore)
		hs.On("Add", mock.Anything, mock.Anything).Return(assert.AnError)

		svc := NewService(hs)
		doc, err := svc.Export(ctx, domain.ReportIncomeStatement, domain.FormatCSV, sampleRows(), domain.ReportParameters{})
		require.NoError(t, err)
		assert.NotEmpty(t, doc.Data)
	})
}

func TestService_History(t *testing.T) {
	hs := new(mockHistoryStore)
	expected := []store.ExportRecord{{ID: "r1", RequestedAt: time.Now()}}
	hs.On("List", mock.Anything, 25).Return(expected, nil)

	svc := NewService(hs)
	records, err := svc.History(context.Background(), 25)
	require.NoError(t, err)
	assert.Equal(t, expected, records)
}
