package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bactien/YCBG/internal/httpx"
	"github.com/bactien/YCBG/internal/models"
	"github.com/bactien/YCBG/internal/services"
	"github.com/bactien/YCBG/internal/view"
)

// ShareHandler turns a quotation into a self-contained base64 payload and
// back. The payload carries the whole quotation, so a share link keeps
// working after the original is edited or deleted.
type ShareHandler struct {
	Settings *services.SettingsService
}

// Encode: POST /share with a quotation body.
func (h *ShareHandler) Encode(w http.ResponseWriter, r *http.Request) {
	var quotation models.QuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&quotation); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	payload, err := services.EncodeShare(&quotation)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_encode", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{
		"payload": payload,
		"url":     services.ShareFragment(payload),
	})
}

// Decode: GET /view/{payload}.
func (h *ShareHandler) Decode(w http.ResponseWriter, r *http.Request) {
	quotation, err := h.decode(w, r)
	if err != nil {
		return
	}
	httpx.JSON(w, http.StatusOK, quotation)
}

// DecodePrint: GET /view/{payload}/print renders the shared quotation as the
// A4 print layout, same as the owner's print route.
func (h *ShareHandler) DecodePrint(w http.ResponseWriter, r *http.Request) {
	quotation, err := h.decode(w, r)
	if err != nil {
		return
	}
	logo := ""
	if settings, err := h.Settings.Get(); err == nil && settings != nil {
		logo = settings.Logo
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderPrint(w, quotation, logo); err != nil {
		_ = err
	}
}

func (h *ShareHandler) decode(w http.ResponseWriter, r *http.Request) (*models.QuotationRequest, error) {
	quotation, err := services.DecodeShare(chi.URLParam(r, "payload"))
	if errors.Is(err, services.ErrInvalidPayload) {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", "Link chia sẻ không hợp lệ hoặc đã bị hỏng.")
		return nil, err
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_decode", nil)
		return nil, err
	}
	return quotation, nil
}
