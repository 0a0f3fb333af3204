package backendapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Artem-be/HRTest/internal/domain"
)

func TestSendLeadPayload(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/usercontrol/")
	err := c.SendLead(context.Background(), domain.Lead{TgID: 42, Name: "Ann", Phone: "+1555", Service: "Консультации и проектирование"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/usercontrol/create_or_update/" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	// имена полей — контракт бэкенда
	if gotBody["tg_id"] != float64(42) || gotBody["name"] != "Ann" ||
		gotBody["number_phone"] != "+1555" || gotBody["service"] != "Консультации и проектирование" {
		t.Fatalf("unexpected payload: %v", gotBody)
	}
}

func TestSendLeadNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Ошибка сервера"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.SendLead(context.Background(), domain.Lead{TgID: 1, Name: "a", Phone: "b", Service: "c"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("error must carry the status: %v", err)
	}
}

func TestLogActivityPayload(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.LogActivity(context.Background(), 42, "viewed_services"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/log_activity/" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotBody["user_id"] != float64(42) || gotBody["action"] != "viewed_services" {
		t.Fatalf("unexpected payload: %v", gotBody)
	}
}

func TestDailyStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/daily_stats/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"unique_users_24h":9,"period":"last_24_hours"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	st, err := c.DailyStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.UniqueUsers24h != 9 || st.Period != "last_24_hours" {
		t.Fatalf("unexpected stats: %+v", st)
	}
}
