package sqlite

import (
	"context"
	"database/sql"
	"time"
)

type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(dsn string) (*ActivityRepo, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrateActivity(db); err != nil {
		return nil, err
	}
	return &ActivityRepo{db: db}, nil
}

func migrateActivity(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS activity_events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    action TEXT NOT NULL,
    timestamp TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_activity_user_id ON activity_events(user_id);
CREATE INDEX IF NOT EXISTS idx_activity_timestamp ON activity_events(timestamp);
`)
	return err
}

func (r *ActivityRepo) Append(ctx context.Context, userID int64, action string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_events(user_id, action, timestamp) VALUES(?,?,?)`,
		userID, action, time.Now().UTC())
	return err
}

// DistinctUsersSince — число уникальных user_id с timestamp >= since.
func (r *ActivityRepo) DistinctUsersSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT user_id) FROM activity_events WHERE timestamp >= ?`,
		since.UTC()).Scan(&n)
	return n, err
}

func (r *ActivityRepo) Close() error { return r.db.Close() }
