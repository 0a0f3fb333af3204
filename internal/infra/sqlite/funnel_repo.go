package sqlite

import (
	"database/sql"
	"time"

	"github.com/Artem-be/HRTest/internal/usecase"
)

type FunnelRepo struct {
	db *sql.DB
}

func NewFunnelRepo(dsn string) (*FunnelRepo, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrateFunnel(db); err != nil {
		return nil, err
	}
	return &FunnelRepo{db: db}, nil
}

func migrateFunnel(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS funnel_hits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    step TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_funnel_hits_step ON funnel_hits(step);
CREATE INDEX IF NOT EXISTS idx_funnel_hits_user_step ON funnel_hits(user_id, step);
`)
	return err
}

func (r *FunnelRepo) Hit(step usecase.FunnelStep, userID int64) error {
	_, err := r.db.Exec(`INSERT INTO funnel_hits(user_id, step, created_at) VALUES(?,?,?)`,
		userID, string(step), time.Now().UTC())
	return err
}

func (r *FunnelRepo) Counts() map[usecase.FunnelStep]int {
	rows, err := r.db.Query(`SELECT step, COUNT(DISTINCT user_id) FROM funnel_hits GROUP BY step`)
	if err != nil {
		return map[usecase.FunnelStep]int{}
	}
	defer rows.Close()
	out := map[usecase.FunnelStep]int{}
	for rows.Next() {
		var step string
		var cnt int
		if err := rows.Scan(&step, &cnt); err == nil {
			out[usecase.FunnelStep(step)] = cnt
		}
	}
	return out
}
