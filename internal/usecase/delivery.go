package usecase

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/Artem-be/HRTest/internal/domain"
)

// LeadDelivery описывает внешний канал доставки лида (бэкенд, CRM и т.п.)
type LeadDelivery interface {
	SendLead(ctx context.Context, lead domain.Lead) error
}

const (
	maxAttempts    = 3
	baseDelay      = time.Second
	attemptTimeout = 10 * time.Second
)

// Deliverer доставляет заявку с повторами: экспоненциальная задержка
// base*2^attempt плюс джиттер до 10% от задержки. Семантика at-least-once,
// на стороне бэкенда повтор может создать дубль заявки.
type Deliverer struct {
	delivery LeadDelivery
	log      *slog.Logger

	sleep  func(time.Duration)
	jitter func(max time.Duration) time.Duration
}

func NewDeliverer(delivery LeadDelivery, log *slog.Logger) *Deliverer {
	return &Deliverer{
		delivery: delivery,
		log:      log,
		sleep:    time.Sleep,
		jitter:   randomJitter,
	}
}

func randomJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(max)))
}

// Submit выполняет до трех попыток с таймаутом 10 секунд на каждую.
// Возвращает ok и текст последней ошибки, если все попытки исчерпаны.
func (d *Deliverer) Submit(ctx context.Context, lead domain.Lead) (bool, string) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		d.log.Info("delivery attempt", "attempt", attempt+1, "tg_id", lead.TgID)

		actx, cancel := context.WithTimeout(ctx, attemptTimeout)
		err := d.delivery.SendLead(actx, lead)
		cancel()
		if err == nil {
			d.log.Info("lead delivered", "attempt", attempt+1, "tg_id", lead.TgID)
			return true, ""
		}

		lastErr = err
		d.log.Warn("delivery attempt failed", "attempt", attempt+1, "tg_id", lead.TgID, "error", err)
		if attempt == maxAttempts-1 {
			break
		}

		delay := baseDelay * time.Duration(1<<attempt)
		wait := delay + d.jitter(delay/10)
		d.log.Info("waiting before retry", "wait", wait)
		d.sleep(wait)
	}
	d.log.Error("all delivery attempts exhausted", "tg_id", lead.TgID, "error", lastErr)
	return false, lastErr.Error()
}
