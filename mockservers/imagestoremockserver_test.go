package mockservers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestImageStoreHandler(t *testing.T) {
	body := strings.NewReader(`{"name": "review_1", "image": "aGVsbG8="}`)
	req := httptest.NewRequest(http.MethodPost, "/images", body)
	w := httptest.NewRecorder()

	ImageStoreHandler(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	if !strings.Contains(w.Body.String(), "http://localhost:8081/images/") {
		t.Errorf("expected an image URL, got %s", w.Body.String())
	}
}

func TestImageStoreHandlerMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/images", nil)
	w := httptest.NewRecorder()

	ImageStoreHandler(w, req)

	if w.Result().StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Result().StatusCode)
	}
}
