package usecase

// SessionRepository — хранилище анкет по id пользователя. Реализации:
// память (по умолчанию, состояние теряется при рестарте) и sqlite.
type SessionRepository interface {
	Get(userID int64) (*Session, error)
	Put(userID int64, s *Session) error
	Clear(userID int64) error
}
