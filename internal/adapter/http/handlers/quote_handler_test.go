package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"motorcar_consultancy/internal/adapter/http/handlers/mocks"
	"motorcar_consultancy/internal/domain/checkout"
	"motorcar_consultancy/internal/usecase"
	"motorcar_consultancy/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/api/services", h.ListServices)

		uc.EXPECT().Catalog().Return(checkout.Catalog())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/services", nil))
		var body struct {
			Count int `json:"count"`
			Data  []struct {
				Key       string  `json:"key"`
				UnitPrice float64 `json:"unitPrice"`
			} `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Count != 6 || body.Data[0].Key != "whatsapp" || body.Data[0].UnitPrice != 100 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unknown line item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/api/checkout/quote", h.QuoteCheckout)

		uc.EXPECT().Quote(usecase.QuoteInput{Service: "express", Quantities: map[string]int{"senior": 2}}).
			Return(usecase.Quote{}, fmt.Errorf("%w: senior", usecase.ErrUnknownLineItem))

		req := httptest.NewRequest(http.MethodPost, "/api/checkout/quote", bytes.NewBufferString(`{"service":"express","quantities":{"senior":2}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/api/checkout/quote", h.QuoteCheckout)

		q, err := usecase.NewQuoteUseCase().Quote(usecase.QuoteInput{Service: "senior"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc.EXPECT().Quote(usecase.QuoteInput{Service: "senior"}).Return(q, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/checkout/quote", bytes.NewBufferString(`{"service":"senior"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body struct {
			Items []struct {
				ItemKey   string  `json:"itemKey"`
				LineTotal float64 `json:"lineTotal"`
			} `json:"items"`
			Total float64 `json:"total"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body.Total != 700 || len(body.Items) != 2 || body.Items[1].LineTotal != 100 {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIHealthUseCase(ctrl)
	h := NewHealthHandler(uc)

	r := gin.New()
	r.GET("/api/health", h.Health)

	uc.EXPECT().Check(gomock.Any()).Return(usecase.HealthStatus{Storage: usecase.StorageDisconnected, Driver: "mongodb", CheckedAt: time.Now()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 even when storage is down, got %d", w.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Storage string `json:"storage"`
		Driver  string `json:"driver"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if !body.Success || body.Storage != "disconnected" || body.Driver != "mongodb" || body.Message != "MotorCar Consultancy API is running" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestPagesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewPagesHandler(web.Pages)

	r := gin.New()
	r.GET("/checkout", h.Page("checkout.html"))
	r.GET("/missing", h.Page("nope.html"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkout", nil))
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "text/html; charset=utf-8" {
		t.Fatalf("unexpected response %d %q", w.Code, w.Header().Get("Content-Type"))
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("<html")) {
		t.Fatalf("expected html document")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
