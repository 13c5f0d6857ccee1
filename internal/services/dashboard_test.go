package services

import (
	"math"
	"strings"
	"testing"

	"github.com/bactien/YCBG/internal/models"
)

func TestComputeStats(t *testing.T) {
	quotations := []models.QuotationRequest{
		{Status: models.StatusDraft},
		{Status: models.StatusDraft},
		{Status: models.StatusFinal},
	}
	s := ComputeStats(quotations)
	if s.Total != 3 || s.Draft != 2 || s.Final != 1 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestComputePieEmpty(t *testing.T) {
	if pie := ComputePie(DashboardStats{}); pie != nil {
		t.Fatalf("expected nil pie for no data, got %+v", pie)
	}
}

func TestComputePieSlices(t *testing.T) {
	pie := ComputePie(DashboardStats{Total: 4, Draft: 1, Final: 3})
	if len(pie) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(pie))
	}
	draft, final := pie[0], pie[1]
	if draft.Label != "Nháp" || final.Label != "Hoàn tất" {
		t.Fatalf("unexpected labels: %s / %s", draft.Label, final.Label)
	}
	if math.Abs(draft.Percent-25) > 1e-9 || math.Abs(final.Percent-75) > 1e-9 {
		t.Fatalf("unexpected percents: %v / %v", draft.Percent, final.Percent)
	}
	if !strings.Contains(final.Path, "A 1 1 0 1 1") {
		t.Fatalf("majority slice should use the large-arc flag: %s", final.Path)
	}
	if !strings.Contains(draft.Path, "A 1 1 0 0 1") {
		t.Fatalf("minority slice should not use the large-arc flag: %s", draft.Path)
	}
	if !strings.HasPrefix(draft.Path, "M 1.000000 0.000000") {
		t.Fatalf("first slice should start at the unit circle origin point: %s", draft.Path)
	}
}
