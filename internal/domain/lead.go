package domain

import (
	"context"
	"time"
)

// Lead — заявка из бота: имя, телефон и выбранная услуга.
type Lead struct {
	TgID      int64
	Name      string
	Phone     string
	Service   string
	CreatedAt time.Time
}

// LeadRepository всегда вставляет новую строку, дедупликации нет:
// повторная отправка создает вторую заявку. CreatedAt проставляет хранилище.
type LeadRepository interface {
	Create(ctx context.Context, lead Lead) (Lead, error)
}
