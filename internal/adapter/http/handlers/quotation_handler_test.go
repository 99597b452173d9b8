package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leadpilot/internal/adapter/http/handlers/mocks"
	"leadpilot/internal/domain/entities"
	"leadpilot/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuotationHandler_CreateQuotationForLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/leads/:lead_id/quotations", h.CreateQuotationForLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body defaults multiplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/leads/:lead_id/quotations", h.CreateQuotationForLead)

		uc.EXPECT().CreateForLead(gomock.Any(), "lead-1", 0.0).Return(entities.Quotation{ID: "quo-1", LeadID: "lead-1", Status: entities.QuotationStatusDraft}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/quotations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("nothing to quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/leads/:lead_id/quotations", h.CreateQuotationForLead)

		uc.EXPECT().CreateForLead(gomock.Any(), "lead-1", 1.0).Return(entities.Quotation{}, usecase.ErrNothingToQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/quotations", bytes.NewBufferString(`{"multiplier":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("lead not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/leads/:lead_id/quotations", h.CreateQuotationForLead)

		uc.EXPECT().CreateForLead(gomock.Any(), "lead-1", 0.0).Return(entities.Quotation{}, usecase.ErrLeadNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/quotations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/leads/:lead_id/quotations", h.CreateQuotationForLead)

		now := time.Now().UTC()
		uc.EXPECT().CreateForLead(gomock.Any(), "lead-1", 1.2).Return(entities.Quotation{
			ID:       "quo-1",
			LeadID:   "lead-1",
			Services: []entities.ServiceQuotation{{Service: "ssl_setup", AdjustedPrice: 420}},
			Subtotal: 420, Total: 420,
			Status:    entities.QuotationStatusDraft,
			CreatedAt: now, UpdatedAt: now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/quotations", bytes.NewBufferString(`{"multiplier":1.2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quotation_id"] != "quo-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:quotation_id/accept", h.AcceptQuotation)

		uc.EXPECT().AcceptByID(gomock.Any(), "quo-1").Return(entities.Quotation{ID: "quo-1", Status: entities.QuotationStatusAccepted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/quo-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != string(entities.QuotationStatusAccepted) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("reject already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:quotation_id/reject", h.RejectQuotation)

		uc.EXPECT().RejectByID(gomock.Any(), "quo-1").Return(entities.Quotation{}, usecase.ErrQuotationNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/quo-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("accept not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:quotation_id/accept", h.AcceptQuotation)

		uc.EXPECT().AcceptByID(gomock.Any(), "quo-1").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/quo-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_Getters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get by id success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations/:quotation_id", h.GetQuotation)

		uc.EXPECT().GetByID(gomock.Any(), "quo-1").Return(entities.Quotation{ID: "quo-1", Status: entities.QuotationStatusDraft}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/quo-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("latest for lead not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/leads/:lead_id/quotation", h.GetLatestQuotationForLead)

		uc.EXPECT().GetLatestByLeadID(gomock.Any(), "lead-1").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1/quotation", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("latest for lead success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/leads/:lead_id/quotation", h.GetLatestQuotationForLead)

		uc.EXPECT().GetLatestByLeadID(gomock.Any(), "lead-1").Return(entities.Quotation{ID: "quo-2", LeadID: "lead-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1/quotation", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quotation_id"] != "quo-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapQuotationError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidLeadID, http.StatusBadRequest},
		{usecase.ErrInvalidQuotationID, http.StatusBadRequest},
		{usecase.ErrInvalidMultiplier, http.StatusBadRequest},
		{usecase.ErrNothingToQuote, http.StatusConflict},
		{usecase.ErrQuotationNotPending, http.StatusConflict},
		{usecase.ErrLeadNotFound, http.StatusNotFound},
		{usecase.ErrQuotationNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapQuotationError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
