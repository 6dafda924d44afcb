package sqlite

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

const exportHistorySchema = `
	CREATE TABLE IF NOT EXISTS export_history (
		id TEXT NOT NULL PRIMARY KEY,
		report_type TEXT NOT NULL,
		format TEXT NOT NULL,
		status TEXT NOT NULL,
		file_name TEXT,
		record_count INTEGER NOT NULL DEFAULT 0,
		byte_size INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		error TEXT,
		requested_at TIMESTAMP NOT NULL
	);
`

var bootQueries = []string{
	exportHistorySchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", settings.DbPath)
	if err != nil {
		return nil, err
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}
