package sqlite

import (
	"database/sql"
	"errors"

	"github.com/Artem-be/HRTest/internal/usecase"
)

// SessionRepo — устойчивое к рестартам хранилище анкет. Включается через
// SESSION_DB_PATH, по умолчанию сессии живут в памяти.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(dsn string) (*SessionRepo, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrateSessions(db); err != nil {
		return nil, err
	}
	return &SessionRepo{db: db}, nil
}

func migrateSessions(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS sessions (
    user_id INTEGER PRIMARY KEY,
    step TEXT NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    service TEXT NOT NULL DEFAULT ''
);
`)
	return err
}

func (r *SessionRepo) Get(userID int64) (*usecase.Session, error) {
	row := r.db.QueryRow(`SELECT step, name, service FROM sessions WHERE user_id = ?`, userID)
	var s usecase.Session
	var step string
	if err := row.Scan(&step, &s.Name, &s.Service); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &usecase.Session{Step: usecase.StepIdle}, nil
		}
		return nil, err
	}
	s.Step = usecase.Step(step)
	return &s, nil
}

func (r *SessionRepo) Put(userID int64, s *usecase.Session) error {
	_, err := r.db.Exec(`
INSERT INTO sessions(user_id, step, name, service) VALUES(?,?,?,?)
ON CONFLICT(user_id) DO UPDATE SET
    step    = excluded.step,
    name    = excluded.name,
    service = excluded.service`,
		userID, string(s.Step), s.Name, s.Service)
	return err
}

func (r *SessionRepo) Clear(userID int64) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}
