package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/Artem-be/HRTest/internal/usecase"
)

func TestSessionRepoRoundtrip(t *testing.T) {
	repo, err := NewSessionRepo(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("repo: %v", err)
	}

	// неизвестный пользователь получает пустую анкету
	s, err := repo.Get(42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s.Step != usecase.StepIdle {
		t.Fatalf("want idle, got %s", s.Step)
	}

	s.Step = usecase.StepAwaitingPhone
	s.Name = "Ann"
	s.Service = "Consultation"
	if err := repo.Put(42, s); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Step != usecase.StepAwaitingPhone || got.Name != "Ann" || got.Service != "Consultation" {
		t.Fatalf("unexpected session: %+v", got)
	}

	// повторный Put обновляет, а не дублирует
	s.Name = "Anna"
	if err := repo.Put(42, s); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, _ = repo.Get(42)
	if got.Name != "Anna" {
		t.Fatalf("want updated name, got %q", got.Name)
	}

	if err := repo.Clear(42); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, _ = repo.Get(42)
	if got.Step != usecase.StepIdle || got.Name != "" {
		t.Fatalf("cleared session must be empty, got %+v", got)
	}
}
