package history

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/Bhautik-2004/FMS-sub001/pkg/models/store"
	"github.com/Bhautik-2004/FMS-sub001/pkg/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	return db
}

func setupFixture(t *testing.T) *fixture {
	db := setupTestDB(t)
	store, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{
		db:    db,
		store: store,
	}
}

func record(id string, at time.Time) store.ExportRecord {
	return store.ExportRecord{
		ID:          id,
		ReportType:  "income_statement",
		Format:      "pdf",
		Status:      store.StatusCompleted,
		FileName:    "income_statement_report_2024-03-01_09-30-00.pdf",
		RecordCount: 12,
		ByteSize:    4096,
		DurationMS:  18,
		RequestedAt: at,
	}
}

func TestHistoryStore_Add(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("success - add record", func(t *testing.T) {
		err := f.store.Add(ctx, record("record1", time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)))
		require.NoError(t, err)

		var count int
		err = f.db.QueryRow("SELECT COUNT(*) FROM export_history").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("error - duplicate id", func(t *testing.T) {
		rec := record("duplicate", time.Now())

		err := f.store.Add(ctx, rec)
		require.NoError(t, err)

		err = f.store.Add(ctx, rec)
		assert.Error(t, err)
	})
}

func TestHistoryStore_List(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		err := f.store.Add(ctx, record(id, base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	t.Run("newest first", func(t *testing.T) {
		records, err := f.store.List(ctx, 10)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "c", records[0].ID)
		assert.Equal(t, "a", records[2].ID)
	})

	t.Run("limit applies", func(t *testing.T) {
		records, err := f.store.List(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		records, err := f.store.List(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})
}

func TestHistoryStore_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, report_type").WillReturnError(sql.ErrConnDone)

	_, err = s.List(context.Background(), 5)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}
