package usecase

import (
	"strings"
	"testing"
)

type stubFunnelRepo struct {
	hits   []FunnelStep
	counts map[FunnelStep]int
}

func (s *stubFunnelRepo) Hit(step FunnelStep, userID int64) error {
	s.hits = append(s.hits, step)
	return nil
}

func (s *stubFunnelRepo) Counts() map[FunnelStep]int { return s.counts }

func TestFunnelReachIgnoresEmptyStep(t *testing.T) {
	repo := &stubFunnelRepo{}
	u := NewFunnelUsecase(repo)

	u.Reach(1, "")
	u.Reach(1, FunnelStart)
	if len(repo.hits) != 1 || repo.hits[0] != FunnelStart {
		t.Fatalf("unexpected hits: %v", repo.hits)
	}
}

func TestFunnelChart(t *testing.T) {
	repo := &stubFunnelRepo{counts: map[FunnelStep]int{
		FunnelStart:           10,
		FunnelServices:        8,
		FunnelServiceSelected: 5,
		FunnelEnteredName:     4,
		FunnelCompleted:       3,
	}}
	u := NewFunnelUsecase(repo)

	out := u.Chart()
	for _, label := range []string{"Старт", "Услуги", "Выбор услуги", "Имя", "Заявка"} {
		if !strings.Contains(out, label) {
			t.Fatalf("chart misses %q:\n%s", label, out)
		}
	}
}

func TestFunnelGraphDataOrder(t *testing.T) {
	repo := &stubFunnelRepo{counts: map[FunnelStep]int{FunnelStart: 2, FunnelCompleted: 1}}
	u := NewFunnelUsecase(repo)

	labels, values := u.GraphData()
	if len(labels) != 5 || len(values) != 5 {
		t.Fatalf("want 5 steps, got %d/%d", len(labels), len(values))
	}
	if labels[0] != "Старт" || values[0] != 2 {
		t.Fatalf("first step wrong: %s=%d", labels[0], values[0])
	}
	if labels[4] != "Заявка" || values[4] != 1 {
		t.Fatalf("last step wrong: %s=%d", labels[4], values[4])
	}
}
