package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Form submissions; rows are insert-only from the API's point of view.
-- Status moves past 'new' through back-office tooling, not here.
CREATE TABLE IF NOT EXISTS submissions(
  id TEXT PRIMARY KEY,
  submission_type TEXT NOT NULL CHECK (submission_type IN ('JOIN_LIST','BUY','SELL','TRADE','WATCH_DETAIL')),
  email TEXT NOT NULL,
  full_name TEXT,
  watch_details TEXT,
  watch_name TEXT,
  watch_ref TEXT,
  status TEXT NOT NULL DEFAULT 'new',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_submissions_type       ON submissions(submission_type);
CREATE INDEX IF NOT EXISTS idx_submissions_status     ON submissions(status);
CREATE INDEX IF NOT EXISTS idx_submissions_email      ON submissions(LOWER(email));
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
`
	_, err := db.Exec(schema)
	return err
}
