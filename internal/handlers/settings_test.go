package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/bactien/YCBG/internal/services"
)

func settingsRouter(t *testing.T) chi.Router {
	t.Helper()
	h := &SettingsHandler{Svc: services.NewSettingsService(setupTestDB(t))}
	r := chi.NewRouter()
	r.Route("/settings/logo", func(r chi.Router) {
		r.Get("/", h.GetLogo)
		r.Post("/", h.SaveLogo)
		r.Delete("/", h.RemoveLogo)
		r.Get("/thumbnail", h.Thumbnail)
	})
	return r
}

func testLogoBody(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	body, err := json.Marshal(map[string]string{"logo": services.BuildDataURL("image/png", buf.Bytes())})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(body)
}

func TestLogoLifecycle(t *testing.T) {
	r := settingsRouter(t)

	// nothing uploaded yet
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settings/logo", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before upload, got %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodPost, "/settings/logo", strings.NewReader(testLogoBody(t))))
	if w2.Code != http.StatusOK {
		t.Fatalf("upload: expected 200 got %d: %s", w2.Code, w2.Body.String())
	}

	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/settings/logo", nil))
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200 after upload, got %d", w3.Code)
	}
	if !strings.Contains(w3.Body.String(), "logoThumbnail") {
		t.Fatal("expected thumbnail in response")
	}

	w4 := httptest.NewRecorder()
	r.ServeHTTP(w4, httptest.NewRequest(http.MethodDelete, "/settings/logo", nil))
	if w4.Code != http.StatusNoContent {
		t.Fatalf("remove: expected 204 got %d", w4.Code)
	}

	w5 := httptest.NewRecorder()
	r.ServeHTTP(w5, httptest.NewRequest(http.MethodGet, "/settings/logo", nil))
	if w5.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after removal, got %d", w5.Code)
	}
}

func TestLogoThumbnailServedAsImage(t *testing.T) {
	r := settingsRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settings/logo/thumbnail", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before upload, got %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodPost, "/settings/logo", strings.NewReader(testLogoBody(t))))
	if w2.Code != http.StatusOK {
		t.Fatalf("upload: expected 200 got %d", w2.Code)
	}

	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/settings/logo/thumbnail", nil))
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w3.Code)
	}
	if ct := w3.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %s", ct)
	}
	if _, err := png.Decode(bytes.NewReader(w3.Body.Bytes())); err != nil {
		t.Fatalf("body is not a decodable png: %v", err)
	}
}

func TestLogoUploadRejectsBadImage(t *testing.T) {
	r := settingsRouter(t)
	body := `{"logo":"data:image/png;base64,bm90IGFuIGltYWdl"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/settings/logo", strings.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid_logo") {
		t.Fatalf("expected invalid_logo, got %s", w.Body.String())
	}
}
