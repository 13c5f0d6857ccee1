package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bactien/YCBG/internal/httpx"
	"github.com/bactien/YCBG/internal/models"
	"github.com/bactien/YCBG/internal/repo"
	"github.com/bactien/YCBG/internal/services"
	"github.com/bactien/YCBG/internal/view"
)

type QuotationHandler struct {
	Repo     *repo.Repo[models.QuotationRequest, *models.QuotationRequest]
	Codes    *services.CodeGenerator
	Settings *services.SettingsService
}

func NewQuotationHandler(r *repo.Repo[models.QuotationRequest, *models.QuotationRequest], codes *services.CodeGenerator, settings *services.SettingsService) *QuotationHandler {
	return &QuotationHandler{Repo: r, Codes: codes, Settings: settings}
}

// List: GET /quotations with the list screen's filter query params.
func (h *QuotationHandler) List(w http.ResponseWriter, r *http.Request) {
	quotations, err := h.Repo.All("")
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list", nil)
		return
	}
	q := r.URL.Query()
	filter := services.QuotationFilter{
		Code:          q.Get("code"),
		CustomerName:  q.Get("customerName"),
		Date:          q.Get("date"),
		RequesterType: q.Get("requesterType"),
	}
	httpx.JSON(w, http.StatusOK, filter.Apply(quotations))
}

func (h *QuotationHandler) Get(w http.ResponseWriter, r *http.Request) {
	quotation, err := h.Repo.ByID(chi.URLParam(r, "id"))
	if errors.Is(err, repo.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_get", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, quotation)
}

// Save upserts the posted quotation. Validation runs before anything is
// written; a fresh quotation arriving without a code gets the next monthly
// sequence code here, so a create and its code are assigned together.
func (h *QuotationHandler) Save(w http.ResponseWriter, r *http.Request) {
	var quotation models.QuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&quotation); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if err := quotation.Validate(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	if quotation.Code == "" {
		code, err := h.Codes.NextRequestCode()
		if err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "failed_to_generate_code", nil)
			return
		}
		quotation.Code = code
	}
	if quotation.Status == "" {
		quotation.Status = models.StatusDraft
	}
	if err := h.Repo.Save(&quotation); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, quotation)
}

func (h *QuotationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(chi.URLParam(r, "id")); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NextCode: GET /quotations/next-code previews the code a new quotation
// would receive. Nothing is reserved; the save assigns the final code.
func (h *QuotationHandler) NextCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.Codes.NextRequestCode()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_generate_code", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"code": code})
}

// Print: GET /quotations/{id}/print renders the stored quotation as the A4
// print layout with the current company logo.
func (h *QuotationHandler) Print(w http.ResponseWriter, r *http.Request) {
	quotation, err := h.Repo.ByID(chi.URLParam(r, "id"))
	if errors.Is(err, repo.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_get", nil)
		return
	}
	h.renderPrint(w, quotation)
}

func (h *QuotationHandler) renderPrint(w http.ResponseWriter, quotation *models.QuotationRequest) {
	logo := ""
	if settings, err := h.Settings.Get(); err == nil && settings != nil {
		logo = settings.Logo
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderPrint(w, quotation, logo); err != nil {
		_ = err
	}
}

// CustomerCodeHandler serves GET /customers/next-code.
type CustomerCodeHandler struct {
	Codes *services.CodeGenerator
}

func (h *CustomerCodeHandler) NextCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.Codes.NextCustomerCode()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_generate_code", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"code": code})
}
