package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"instant_offer/internal/adapter/http/middleware"
	"instant_offer/internal/adapter/persistence/repository"
	"instant_offer/internal/infrastructure/locking"
	"instant_offer/internal/infrastructure/metrics"
	"instant_offer/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)
	clock := usecase.WithClock(func() time.Time { return now })
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		t.Fatalf("register metrics: %v", err)
	}

	repo := repository.NewQuoteMemoryRepository()
	return NewRouter(Dependencies{
		Quotes:             usecase.NewQuoteUseCase(repo, nil, nil, clock, usecase.WithRecorder(rec)),
		Actions:            usecase.NewQuoteActionUseCase(repo, locking.NewMemoryLocker(), nil, nil, clock, usecase.WithRecorder(rec)),
		Condition:          usecase.NewConditionUseCase(nil, clock),
		Vehicles:           usecase.NewVehicleUseCase(nil, nil, clock),
		Gatherer:           reg,
		AdminAPIKey:        "admin-key",
		RateLimitPerMinute: 600,
		RateLimitBurst:     100,
	})
}

func call(r http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

func TestRouter_QuoteLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := call(r, http.MethodPost, "/v1/quotes", `{
	  "vehicle": {"year": 2015, "make": "Toyota", "model": "Camry", "trim": "LE"},
	  "answers": {
	    "ownership": {"option": "owned_outright"}, "title_status": {"option": "clean"},
	    "drivability": {"option": "starts_and_drives"}, "mileage": {"option": "high_mileage"},
	    "exterior_damage": {"option": "minor"}, "interior_damage": {"option": "none"},
	    "mechanical_issues": {"option": "none"}, "flood_fire": {"option": "none"},
	    "airbags": {"option": "no"}, "missing_parts": {"option": "none"}, "keys": {"option": "has_keys"}
	  },
	  "contact": {"name": "Ana", "email": "ana@example.com", "phone": "555-010-2000", "address": "12 Elm St"}
	}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created struct {
		QuoteID     string `json:"quote_id"`
		AccessToken string `json:"access_token"`
		Pricing     struct {
			FinalPrice int `json:"final_price"`
		} `json:"pricing"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode submit response: %v", err)
	}
	if created.Pricing.FinalPrice != 425 {
		t.Fatalf("expected final price 425, got %d", created.Pricing.FinalPrice)
	}
	if created.AccessToken == "" {
		t.Fatalf("expected an access token")
	}

	mine := "/v1/my-quote/" + created.AccessToken

	w = call(r, http.MethodPost, mine+"/accept", `{"pickup_date":"2026-10-19","pickup_window":"morning"}`, nil)
	expectStatus(t, w, http.StatusOK)

	w = call(r, http.MethodPost, mine+"/reschedule", `{"new_date":"2026-10-21","new_time":"evening","reason":"schedule_conflict"}`, nil)
	expectStatus(t, w, http.StatusOK)

	w = call(r, http.MethodPost, mine+"/cancel", `{"reason":"found_better_offer"}`, nil)
	expectStatus(t, w, http.StatusOK)
	w = call(r, http.MethodPost, mine+"/cancel", `{"reason":"found_better_offer"}`, nil)
	expectStatus(t, w, http.StatusConflict)

	w = call(r, http.MethodGet, mine, "", nil)
	expectStatus(t, w, http.StatusOK)
	var view struct {
		Status        string `json:"status"`
		CanCancel     bool   `json:"can_cancel"`
		ActionHistory []struct {
			Action string `json:"action"`
		} `json:"action_history"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.Status != "customer_cancelled" || view.CanCancel {
		t.Fatalf("expected cancelled, non-cancellable quote, got status=%s can_cancel=%v", view.Status, view.CanCancel)
	}
	if len(view.ActionHistory) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(view.ActionHistory))
	}
	if view.ActionHistory[2].Action != "cancelled" {
		t.Fatalf("expected last entry cancelled, got %s", view.ActionHistory[2].Action)
	}

	w = call(r, http.MethodGet, "/v1/admin/quotes/"+created.QuoteID, "", nil)
	expectStatus(t, w, http.StatusUnauthorized)
	w = call(r, http.MethodGet, "/v1/admin/quotes/"+created.QuoteID, "", map[string]string{middleware.AdminKeyHeader: "admin-key"})
	expectStatus(t, w, http.StatusOK)

	w = call(r, http.MethodGet, "/metrics", "", nil)
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `instant_offer_quote_actions_total{action="cancel",outcome="illegal_transition"} 1`) {
		t.Fatalf("expected illegal cancel counter in metrics output")
	}
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)
	w := call(r, http.MethodGet, "/v1/ping", "", nil)
	expectStatus(t, w, http.StatusOK)
	if strings.TrimSpace(w.Body.String()) != `{"message":"pong"}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
