package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bactien/YCBG/internal/models"
	"github.com/bactien/YCBG/internal/repo"
	"github.com/bactien/YCBG/internal/services"
)

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	quotations := repo.New[models.QuotationRequest, *models.QuotationRequest](db)
	for _, q := range []models.QuotationRequest{
		{ID: "q1", Code: "YCBG-202407-0001", Date: "2024-07-21", CustomerName: "KH", Status: models.StatusDraft},
		{ID: "q2", Code: "YCBG-202407-0002", Date: "2024-07-22", CustomerName: "KH", Status: models.StatusFinal},
		{ID: "q3", Code: "YCBG-202407-0003", Date: "2024-07-23", CustomerName: "KH", Status: models.StatusFinal},
	} {
		q := q
		if err := quotations.Save(&q); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	h := &DashboardHandler{Repo: quotations}
	w := httptest.NewRecorder()
	h.Stats(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var out struct {
		Stats services.DashboardStats `json:"stats"`
		Pie   []services.PieSlice     `json:"pie"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Stats.Total != 3 || out.Stats.Draft != 1 || out.Stats.Final != 2 {
		t.Fatalf("unexpected stats: %+v", out.Stats)
	}
	if len(out.Pie) != 2 {
		t.Fatalf("expected 2 pie slices, got %d", len(out.Pie))
	}
}

func TestDashboardEmptyOmitsPie(t *testing.T) {
	db := setupTestDB(t)
	h := &DashboardHandler{Repo: repo.New[models.QuotationRequest, *models.QuotationRequest](db)}
	w := httptest.NewRecorder()
	h.Stats(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	var out map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := out["pie"]; ok {
		t.Fatal("pie must be omitted when there are no quotations")
	}
}
