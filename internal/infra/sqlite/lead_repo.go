package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Artem-be/HRTest/internal/domain"
)

type LeadRepo struct {
	db *sql.DB
}

func NewLeadRepo(dsn string) (*LeadRepo, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrateLeads(db); err != nil {
		return nil, err
	}
	return &LeadRepo{db: db}, nil
}

func migrateLeads(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS leads (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    tg_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    number_phone TEXT NOT NULL,
    service TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_leads_tg_id ON leads(tg_id);
CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at);
`)
	return err
}

// Create всегда вставляет новую строку; CreatedAt проставляется здесь,
// значение из аргумента игнорируется.
func (r *LeadRepo) Create(ctx context.Context, lead domain.Lead) (domain.Lead, error) {
	lead.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO leads(tg_id, name, number_phone, service, created_at) VALUES(?,?,?,?,?)`,
		lead.TgID, lead.Name, lead.Phone, lead.Service, lead.CreatedAt)
	if err != nil {
		return domain.Lead{}, err
	}
	return lead, nil
}

// CountByTgID используется в тестах и админке.
func (r *LeadRepo) CountByTgID(ctx context.Context, tgID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads WHERE tg_id = ?`, tgID).Scan(&n)
	return n, err
}

func (r *LeadRepo) Close() error { return r.db.Close() }
