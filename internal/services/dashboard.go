package services

import (
	"fmt"
	"math"

	"github.com/bactien/YCBG/internal/models"
)

type DashboardStats struct {
	Total int `json:"totalCount"`
	Draft int `json:"draftCount"`
	Final int `json:"finalCount"`
}

// PieSlice carries one wedge of the status chart, with the SVG arc path
// precomputed on a unit circle so the client only has to paint it.
type PieSlice struct {
	Label   string  `json:"label"`
	Value   int     `json:"value"`
	Color   string  `json:"color"`
	Percent float64 `json:"percent"`
	Path    string  `json:"path"`
}

func ComputeStats(quotations []models.QuotationRequest) DashboardStats {
	s := DashboardStats{Total: len(quotations)}
	for _, q := range quotations {
		switch q.Status {
		case models.StatusDraft:
			s.Draft++
		case models.StatusFinal:
			s.Final++
		}
	}
	return s
}

// ComputePie derives the two-slice draft/final chart. With no quotations the
// slice list is empty and the client shows its no-data placeholder.
func ComputePie(s DashboardStats) []PieSlice {
	total := s.Draft + s.Final
	if total == 0 {
		return nil
	}
	parts := []PieSlice{
		{Label: "Nháp", Value: s.Draft, Color: "#f59e0b"},
		{Label: "Hoàn tất", Value: s.Final, Color: "#10b981"},
	}
	cumulative := 0.0
	out := make([]PieSlice, 0, len(parts))
	for _, p := range parts {
		percent := float64(p.Value) / float64(total)
		startX, startY := coordinatesForPercent(cumulative)
		cumulative += percent
		endX, endY := coordinatesForPercent(cumulative)
		largeArc := 0
		if percent > 0.5 {
			largeArc = 1
		}
		p.Percent = percent * 100
		p.Path = fmt.Sprintf("M %s %s A 1 1 0 %d 1 %s %s L 0 0",
			fmtCoord(startX), fmtCoord(startY), largeArc, fmtCoord(endX), fmtCoord(endY))
		out = append(out, p)
	}
	return out
}

func coordinatesForPercent(percent float64) (float64, float64) {
	return math.Cos(2 * math.Pi * percent), math.Sin(2 * math.Pi * percent)
}

func fmtCoord(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
