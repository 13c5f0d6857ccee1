package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bactien/YCBG/internal/services"
)

type stubSuggester struct {
	s   *services.Suggestion
	err error
}

func (f stubSuggester) Suggest(ctx context.Context, doorName string) (*services.Suggestion, error) {
	return f.s, f.err
}

func TestSuggestReturnsFields(t *testing.T) {
	h := &SuggestHandler{Suggester: stubSuggester{s: &services.Suggestion{System: "Xingfa Class A", Glass: "10mm cường lực", Accessories: "Bản lề 3D"}}}
	w := httptest.NewRecorder()
	h.Suggest(w, httptest.NewRequest(http.MethodPost, "/suggest", strings.NewReader(`{"doorName":"Cửa chính"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Xingfa Class A") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestSuggestRequiresDoorName(t *testing.T) {
	h := &SuggestHandler{Suggester: stubSuggester{}}
	w := httptest.NewRecorder()
	h.Suggest(w, httptest.NewRequest(http.MethodPost, "/suggest", strings.NewReader(`{"doorName":"  "}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestSuggestUpstreamFailure(t *testing.T) {
	h := &SuggestHandler{Suggester: stubSuggester{err: services.ErrSuggestionFailed}}
	w := httptest.NewRecorder()
	h.Suggest(w, httptest.NewRequest(http.MethodPost, "/suggest", strings.NewReader(`{"doorName":"Cửa chính"}`)))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "suggestion_failed") {
		t.Fatalf("expected suggestion_failed, got %s", w.Body.String())
	}
}
