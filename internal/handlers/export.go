package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bactien/YCBG/internal/httpx"
	"github.com/bactien/YCBG/internal/models"
	"github.com/bactien/YCBG/internal/repo"
	"github.com/bactien/YCBG/internal/services"
)

// ExportHandler serves the quotation table as a downloadable file. The same
// filter params as the list route apply, so what you see is what you export.
type ExportHandler struct {
	Repo *repo.Repo[models.QuotationRequest, *models.QuotationRequest]
	Now  func() time.Time
}

func NewExportHandler(r *repo.Repo[models.QuotationRequest, *models.QuotationRequest]) *ExportHandler {
	return &ExportHandler{Repo: r, Now: time.Now}
}

func (h *ExportHandler) filtered(r *http.Request) ([]models.QuotationRequest, error) {
	quotations, err := h.Repo.All("")
	if err != nil {
		return nil, err
	}
	q := r.URL.Query()
	filter := services.QuotationFilter{
		Code:          q.Get("code"),
		CustomerName:  q.Get("customerName"),
		Date:          q.Get("date"),
		RequesterType: q.Get("requesterType"),
	}
	return filter.Apply(quotations), nil
}

// CSV: GET /quotations/export/csv. UTF-8 BOM included so Excel opens the
// Vietnamese headers correctly.
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "csv", "text/csv; charset=utf-8", services.CSVExport)
}

// XLSX: GET /quotations/export/xlsx.
func (h *ExportHandler) XLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", services.XLSXExport)
}

func (h *ExportHandler) export(w http.ResponseWriter, r *http.Request, ext, contentType string, build func([]models.QuotationRequest) ([]byte, error)) {
	quotations, err := h.filtered(r)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list", nil)
		return
	}
	body, err := build(quotations)
	if errors.Is(err, services.ErrNothingToExport) {
		httpx.JSONError(w, http.StatusBadRequest, "nothing_to_export", err.Error())
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_export", nil)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFilename(h.Now(), ext)))
	if _, err := w.Write(body); err != nil {
		_ = err
	}
}
