package services

import (
	"sort"
	"strings"

	"github.com/bactien/YCBG/internal/models"
)

// QuotationFilter mirrors the list screen's filter row: substring match on
// code and customer name, exact match on date and requester type. Empty
// fields match everything.
type QuotationFilter struct {
	Code          string
	CustomerName  string
	Date          string
	RequesterType string
}

// Apply filters and sorts (code descending, newest codes first) a copy of
// the given list.
func (f QuotationFilter) Apply(quotations []models.QuotationRequest) []models.QuotationRequest {
	out := make([]models.QuotationRequest, 0, len(quotations))
	for _, q := range quotations {
		if !strings.Contains(strings.ToLower(q.Code), strings.ToLower(f.Code)) {
			continue
		}
		if !strings.Contains(strings.ToLower(q.CustomerName), strings.ToLower(f.CustomerName)) {
			continue
		}
		if f.Date != "" && q.Date != f.Date {
			continue
		}
		if f.RequesterType != "" && string(q.RequesterType) != f.RequesterType {
			continue
		}
		out = append(out, q)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code > out[j].Code })
	return out
}
