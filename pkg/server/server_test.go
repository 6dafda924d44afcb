package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/api"
	"github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"
	"github.com/Bhautik-2004/FMS-sub001/pkg/models/store"
)

type mockExportService struct {
	mock.Mock
}

func (m *mockExportService) Export(
	ctx context.Context,
	reportType domain.ReportType,
	format domain.ReportFormat,
	rows []domain.ReportRow,
	params domain.ReportParameters,
) (domain.Document, error) {
	args := m.Called(ctx, reportType, format, rows, params)
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *mockExportService) History(ctx context.Context, limit int) ([]store.ExportRecord, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]store.ExportRecord), args.Error(1)
}

func TestNewWebAPI(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	t.Run("configures the http server", func(t *testing.T) {
		api := NewWebAPI(logger, Config{
			Addr:            "localhost:9090",
			ShutdownTimeout: 5 * time.Second,
			Dependencies:    Dependencies{Exports: new(mockExportService)},
		})

		require.NotNil(t, api.server)
		assert.Equal(t, "localhost:9090", api.server.Addr)
		assert.NotNil(t, api.server.Handler)
		assert.Equal(t, 5*time.Second, api.shutdownTimeout)
	})

	t.Run("zero shutdown timeout falls back to default", func(t *testing.T) {
		api := NewWebAPI(logger, Config{
			Addr:         ":8080",
			Dependencies: Dependencies{Exports: new(mockExportService)},
		})
		assert.Equal(t, 10*time.Second, api.shutdownTimeout)
	})

	t.Run("routes are served", func(t *testing.T) {
		mockSvc := new(mockExportService)
		mockSvc.On("History", mock.Anything, 50).
			Return([]store.ExportRecord{}, nil).Once()

		api := NewWebAPI(logger, Config{
			Addr:         ":8080",
			Dependencies: Dependencies{Exports: mockSvc},
		})
		testServer := httptest.NewServer(api.server.Handler)
		defer testServer.Close()

		resp, err := http.Get(testServer.URL + "/api/v1/reports/history")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	mockSvc := new(mockExportService)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Exports:         mockSvc,
			DefaultCurrency: "USD",
			HistoryLimit:    50,
			Logger:          logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	requestedAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func()
		expectedStatus int
		check          func(t *testing.T, resp *http.Response, body []byte)
	}{
		{
			name:   "Export",
			method: http.MethodPost,
			path:   "/api/v1/reports/income_statement/export?format=csv",
			body:   `{"parameters":{"currency":"EUR"},"rows":[]}`,
			setupMocks: func() {
				mockSvc.On("Export",
					mock.Anything,
					domain.ReportIncomeStatement,
					domain.FormatCSV,
					mock.Anything,
					mock.MatchedBy(func(p domain.ReportParameters) bool {
						return p.Currency == "EUR"
					}),
				).Return(domain.Document{
					Data:     []byte("\"Income Statement\"\n"),
					MIME:     "text/csv",
					FileName: "income_statement_report_2024-03-01_09-30-00.csv",
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp *http.Response, body []byte) {
				assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
				assert.Equal(t,
					`attachment; filename="income_statement_report_2024-03-01_09-30-00.csv"`,
					resp.Header.Get("Content-Disposition"))
				assert.Equal(t, "\"Income Statement\"\n", string(body))
			},
		},
		{
			name:   "Export_DefaultCurrencyApplied",
			method: http.MethodPost,
			path:   "/api/v1/reports/income_statement/export?format=csv",
			body:   `{"parameters":{},"rows":[]}`,
			setupMocks: func() {
				mockSvc.On("Export",
					mock.Anything,
					domain.ReportIncomeStatement,
					domain.FormatCSV,
					mock.Anything,
					mock.MatchedBy(func(p domain.ReportParameters) bool {
						return p.Currency == "USD"
					}),
				).Return(domain.Document{
					Data: []byte("x"),
					MIME: "text/csv",
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Export_UnknownType",
			method:         http.MethodPost,
			path:           "/api/v1/reports/pie_chart/export?format=csv",
			body:           `{"rows":[]}`,
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, resp *http.Response, body []byte) {
				assert.Equal(t, "unknown report type \"pie_chart\"\n", string(body))
			},
		},
		{
			name:           "Export_UnknownFormat",
			method:         http.MethodPost,
			path:           "/api/v1/reports/income_statement/export?format=docx",
			body:           `{"rows":[]}`,
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, resp *http.Response, body []byte) {
				assert.Equal(t, "unknown report format \"docx\"\n", string(body))
			},
		},
		{
			name:           "Export_InvalidBody",
			method:         http.MethodPost,
			path:           "/api/v1/reports/income_statement/export?format=csv",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "History",
			method: http.MethodGet,
			path:   "/api/v1/reports/history",
			setupMocks: func() {
				mockSvc.On("History", mock.Anything, 50).
					Return([]store.ExportRecord{{
						ID:          "rec1",
						ReportType:  "balance_sheet",
						Format:      "xlsx",
						Status:      store.StatusCompleted,
						FileName:    "balance_sheet_report_2024-03-01_09-30-00.xlsx",
						RecordCount: 4,
						ByteSize:    2048,
						DurationMS:  7,
						RequestedAt: requestedAt,
					}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp *http.Response, body []byte) {
				var records []api.ExportRecord
				require.NoError(t, json.Unmarshal(body, &records))
				require.Len(t, records, 1)
				assert.Equal(t, "rec1", records[0].ID)
				assert.Equal(t, "balance_sheet", records[0].ReportType)
				assert.Equal(t, int64(7), records[0].DurationMS)
			},
		},
		{
			name:           "History_InvalidLimit",
			method:         http.MethodGet,
			path:           "/api/v1/reports/history?limit=nope",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Types",
			method:         http.MethodGet,
			path:           "/api/v1/reports/types",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp *http.Response, body []byte) {
				var defs []api.ReportTypeDef
				require.NoError(t, json.Unmarshal(body, &defs))
				require.Len(t, defs, 7)
				assert.Equal(t, "income_statement", defs[0].Type)
				assert.Equal(t, "Income Statement", defs[0].Title)
				assert.Equal(t, []string{"pdf", "csv", "xlsx"}, defs[0].Formats)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setupMocks != nil {
				tc.setupMocks()
			}

			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, strings.NewReader(tc.body))
			require.NoError(t, err, "Failed to build request")
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			if tc.check != nil {
				tc.check(t, resp, body)
			}
		})
	}

	mockSvc.AssertExpectations(t)
}
