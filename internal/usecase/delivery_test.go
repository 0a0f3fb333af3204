package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Artem-be/HRTest/internal/domain"
)

type stubDelivery struct {
	failFirst int // сколько первых попыток возвращают ошибку
	calls     int
	err       error
}

func (s *stubDelivery) SendLead(ctx context.Context, lead domain.Lead) error {
	s.calls++
	if s.calls <= s.failFirst {
		return s.err
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDeliverer(d LeadDelivery, sleeps *[]time.Duration) *Deliverer {
	dl := NewDeliverer(d, discardLogger())
	dl.sleep = func(wait time.Duration) { *sleeps = append(*sleeps, wait) }
	dl.jitter = func(max time.Duration) time.Duration { return max } // верхняя граница
	return dl
}

func TestSubmitSucceedsOnThirdAttempt(t *testing.T) {
	stub := &stubDelivery{failFirst: 2, err: errors.New("boom")}
	var sleeps []time.Duration
	dl := newTestDeliverer(stub, &sleeps)

	ok, detail := dl.Submit(context.Background(), domain.Lead{TgID: 42})
	if !ok {
		t.Fatalf("expected success, got detail %q", detail)
	}
	if stub.calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", stub.calls)
	}
	if len(sleeps) != 2 {
		t.Fatalf("expected 2 waits, got %d", len(sleeps))
	}
}

func TestSubmitFailsAfterThreeAttempts(t *testing.T) {
	stub := &stubDelivery{failFirst: 100, err: errors.New("backend down")}
	var sleeps []time.Duration
	dl := newTestDeliverer(stub, &sleeps)

	ok, detail := dl.Submit(context.Background(), domain.Lead{TgID: 42})
	if ok {
		t.Fatalf("expected failure")
	}
	if stub.calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", stub.calls)
	}
	if detail != "backend down" {
		t.Fatalf("expected last error detail, got %q", detail)
	}
	if len(sleeps) != 2 {
		t.Fatalf("no wait after the last attempt, got %d waits", len(sleeps))
	}
}

func TestSubmitBackoffBounds(t *testing.T) {
	stub := &stubDelivery{failFirst: 100, err: errors.New("x")}
	var sleeps []time.Duration
	dl := newTestDeliverer(stub, &sleeps)

	dl.Submit(context.Background(), domain.Lead{})

	// перед попыткой k ждем в пределах [base*2^(k-2), 1.1*base*2^(k-2)]
	bounds := []struct{ lo, hi time.Duration }{
		{time.Second, time.Second + 100*time.Millisecond},
		{2 * time.Second, 2*time.Second + 200*time.Millisecond},
	}
	for i, b := range bounds {
		if sleeps[i] < b.lo || sleeps[i] > b.hi {
			t.Fatalf("wait %d out of range: %v not in [%v, %v]", i+1, sleeps[i], b.lo, b.hi)
		}
	}

	// нижняя граница при нулевом джиттере
	stub = &stubDelivery{failFirst: 100, err: errors.New("x")}
	sleeps = nil
	dl = newTestDeliverer(stub, &sleeps)
	dl.jitter = func(time.Duration) time.Duration { return 0 }
	dl.Submit(context.Background(), domain.Lead{})
	if sleeps[0] != time.Second || sleeps[1] != 2*time.Second {
		t.Fatalf("unexpected base delays: %v", sleeps)
	}
}

func TestRandomJitterWithinTenPercent(t *testing.T) {
	for i := 0; i < 100; i++ {
		j := randomJitter(100 * time.Millisecond)
		if j < 0 || j >= 100*time.Millisecond {
			t.Fatalf("jitter out of range: %v", j)
		}
	}
	if randomJitter(0) != 0 {
		t.Fatalf("zero max must give zero jitter")
	}
}
