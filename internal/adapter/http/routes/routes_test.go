package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"motorcar_consultancy/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// memRepo is an in-memory store for one collection.
type memRepo[T any] struct {
	mu    sync.Mutex
	items map[string]T
	order []string
	setID func(*T, string)
}

func newMemRepo[T any](setID func(*T, string)) *memRepo[T] {
	return &memRepo[T]{items: map[string]T{}, setID: setID}
}

func (r *memRepo[T]) Create(_ context.Context, v T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := fmt.Sprintf("id-%d", len(r.order)+1)
	r.setID(&v, id)
	r.items[id] = v
	r.order = append(r.order, id)
	return v, nil
}

func (r *memRepo[T]) GetByID(_ context.Context, id string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *memRepo[T]) List(_ context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

type memHealth struct{}

func (memHealth) Ping(context.Context) error { return nil }
func (memHealth) Driver() string             { return "memory" }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(Dependencies{Storage: &Storage{
		Orders:     newMemRepo(func(o *entities.Order, id string) { o.ID = id }),
		Selections: newMemRepo(func(s *entities.ServiceSelection, id string) { s.ID = id }),
		Contacts:   newMemRepo(func(m *entities.ContactMessage, id string) { m.ID = id }),
		Health:     memHealth{},
		Close:      func(context.Context) error { return nil },
	}})
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	var rd *bytes.Buffer
	if body != "" {
		rd = bytes.NewBufferString(body)
	} else {
		rd = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return w.Code, out
}

func TestRouter_CheckoutRoundTrip(t *testing.T) {
	r := newTestRouter()

	code, body := do(t, r, http.MethodPost, "/api/checkout",
		`{"fullName":"Asha","email":"asha@example.com","whatsapp":"98765","service":"auto-expert","totalAmount":3695}`)
	if code != http.StatusOK || body["success"] != true {
		t.Fatalf("checkout failed: %d %v", code, body)
	}
	id, _ := body["orderId"].(string)
	if id == "" {
		t.Fatalf("expected order id, got %v", body)
	}

	code, body = do(t, r, http.MethodGet, "/api/consultation-requests/"+id, "")
	if code != http.StatusOK {
		t.Fatalf("get failed: %d", code)
	}
	data := body["data"].(map[string]any)
	customer := data["customerInfo"].(map[string]any)
	service := data["serviceDetails"].(map[string]any)
	if customer["fullName"] != "Asha" || customer["email"] != "asha@example.com" || customer["whatsapp"] != "98765" {
		t.Fatalf("unexpected customer %v", customer)
	}
	if service["service"] != "auto-expert" || service["totalAmount"] != 3695.0 || data["status"] != "pending" {
		t.Fatalf("unexpected order %v", data)
	}
}

func TestRouter_MissingFieldWritesNothing(t *testing.T) {
	r := newTestRouter()

	code, body := do(t, r, http.MethodPost, "/api/checkout", `{"fullName":"Asha","whatsapp":"98765","service":"senior"}`)
	if code != http.StatusBadRequest || body["success"] != false {
		t.Fatalf("expected 400, got %d %v", code, body)
	}

	_, body = do(t, r, http.MethodGet, "/api/consultation-requests", "")
	if body["count"] != 0.0 {
		t.Fatalf("expected no stored orders, got %v", body)
	}
}

func TestRouter_UnknownIDIs404(t *testing.T) {
	r := newTestRouter()
	for _, path := range []string{"/api/consultation-requests/nope", "/api/service-selections/nope", "/api/contact-messages/nope"} {
		if code, _ := do(t, r, http.MethodGet, path, ""); code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, code)
		}
	}
}

func TestRouter_ContactDefaultsSubject(t *testing.T) {
	r := newTestRouter()

	code, body := do(t, r, http.MethodPost, "/api/contact", `{"name":"B","email":"b@x.io","message":"hello"}`)
	if code != http.StatusOK {
		t.Fatalf("contact failed: %d %v", code, body)
	}
	id := body["id"].(string)

	_, body = do(t, r, http.MethodGet, "/api/contact-messages/"+id, "")
	data := body["data"].(map[string]any)
	if data["subject"] != "General Inquiry" || data["status"] != "new" || data["phone"] != nil {
		t.Fatalf("unexpected message %v", data)
	}
}

func TestRouter_SelectionsAndHealth(t *testing.T) {
	r := newTestRouter()

	for _, svc := range []string{"whatsapp", "express"} {
		if code, _ := do(t, r, http.MethodPost, "/api/select-service", `{"service":"`+svc+`"}`); code != http.StatusOK {
			t.Fatalf("select %s: %d", svc, code)
		}
	}
	_, body := do(t, r, http.MethodGet, "/api/service-selections", "")
	if body["count"] != 2.0 {
		t.Fatalf("expected 2 selections, got %v", body)
	}

	_, body = do(t, r, http.MethodGet, "/api/health", "")
	if body["storage"] != "connected" || body["driver"] != "memory" {
		t.Fatalf("unexpected health %v", body)
	}
}

func TestRouter_QuoteAndPages(t *testing.T) {
	r := newTestRouter()

	code, body := do(t, r, http.MethodPost, "/api/checkout/quote", `{"service":"auto-expert","quantities":{"4calls":2}}`)
	if code != http.StatusOK || body["total"] != 4994.0 {
		t.Fatalf("unexpected quote %d %v", code, body)
	}

	for _, path := range []string{"/", "/consult", "/checkout", "/admin"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestRouter_RequestIDHeader(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("X-Request-ID") != "rid-1" {
		t.Fatalf("expected request id to be echoed, got %q", w.Header().Get("X-Request-ID"))
	}
}

func TestRouter_CheckoutFalsyTotalStoresZero(t *testing.T) {
	r := newTestRouter()

	code, body := do(t, r, http.MethodPost, "/api/checkout",
		`{"fullName":"Asha","email":"asha@example.com","whatsapp":"98765","service":"express","totalAmount":""}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d %v", code, body)
	}
	service := body["data"].(map[string]any)["serviceDetails"].(map[string]any)
	if service["totalAmount"] != 0.0 {
		t.Fatalf("expected zero total, got %v", service["totalAmount"])
	}
}
