package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"instant_offer/internal/adapter/http/handlers/mocks"
	"instant_offer/internal/domain/entities"
	"instant_offer/internal/usecase"
	"instant_offer/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAdminRouter(h *AdminHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/admin/quotes", h.ListQuotes)
	r.GET("/v1/admin/quotes/:quote_id", h.GetQuote)
	r.POST("/v1/admin/quotes/:quote_id/accept", h.AcceptQuote)
	r.POST("/v1/admin/quotes/:quote_id/complete", h.CompleteQuote)
	return r
}

func TestAdminHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list passes the filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewAdminHandler(quotes, mocks.NewMockIQuoteActionUseCase(ctrl), nil)

		quotes.EXPECT().List(gomock.Any(), interfaces.QuoteFilter{Status: entities.QuoteStatusPending, Limit: 5}).
			Return([]usecase.QuoteView{sampleView(entities.QuoteStatusPending)}, nil)

		w := doJSON(newAdminRouter(h), http.MethodGet, "/v1/admin/quotes?status=pending&limit=5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Count int `json:"count"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Count != 1 {
			t.Fatalf("unexpected count %d", body.Count)
		}
	})

	t.Run("list rejects bad query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewAdminHandler(quotes, mocks.NewMockIQuoteActionUseCase(ctrl), nil)
		r := newAdminRouter(h)

		if w := doJSON(r, http.MethodGet, "/v1/admin/quotes?created_after=yesterday", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodGet, "/v1/admin/quotes?limit=abc", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		quotes.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidQuoteFilter)
		if w := doJSON(r, http.MethodGet, "/v1/admin/quotes?status=archived", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewAdminHandler(quotes, mocks.NewMockIQuoteActionUseCase(ctrl), nil)

		quotes.EXPECT().GetByID(gomock.Any(), "Q-ABCD1234").Return(sampleView(entities.QuoteStatusPending), nil)
		quotes.EXPECT().GetByID(gomock.Any(), "Q-NOPE").Return(usecase.QuoteView{}, usecase.ErrQuoteNotFound)

		r := newAdminRouter(h)
		if w := doJSON(r, http.MethodGet, "/v1/admin/quotes/Q-ABCD1234", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodGet, "/v1/admin/quotes/Q-NOPE", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("accept and complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		actions := mocks.NewMockIQuoteActionUseCase(ctrl)
		h := NewAdminHandler(mocks.NewMockIQuoteUseCase(ctrl), actions, nil)
		r := newAdminRouter(h)

		actions.EXPECT().Accept(gomock.Any(), "Q-ABCD1234", "").Return(sampleView(entities.QuoteStatusAccepted), nil)
		actions.EXPECT().Complete(gomock.Any(), "Q-ABCD1234", "picked up").Return(usecase.QuoteView{}, usecase.ErrIllegalTransition)

		if w := doJSON(r, http.MethodPost, "/v1/admin/quotes/Q-ABCD1234/accept", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPost, "/v1/admin/quotes/Q-ABCD1234/complete", `{"note":"picked up"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPost, "/v1/admin/quotes/Q-ABCD1234/complete", `{"note":`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
