package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bactien/YCBG/internal/httpx"
	"github.com/bactien/YCBG/internal/services"
)

type SettingsHandler struct {
	Svc *services.SettingsService
}

// GetLogo: GET /settings/logo. 404 while no logo has been uploaded.
func (h *SettingsHandler) GetLogo(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Svc.Get()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_get", nil)
		return
	}
	if settings == nil || settings.Logo == "" {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, settings)
}

// SaveLogo: POST /settings/logo with {"logo": "data:image/...;base64,..."}.
// Oversized or undecodable images are rejected before anything is stored.
func (h *SettingsHandler) SaveLogo(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Logo string `json:"logo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	settings, err := h.Svc.SaveLogo(body.Logo)
	if errors.Is(err, services.ErrLogoTooLarge) || errors.Is(err, services.ErrInvalidImage) {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_logo", err.Error())
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, settings)
}

// Thumbnail: GET /settings/logo/thumbnail streams the derived raster
// directly, for clients that want an <img> source instead of the JSON field.
func (h *SettingsHandler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Svc.Get()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_get", nil)
		return
	}
	if settings == nil || settings.LogoThumbnail == "" {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	mime, data, err := services.ParseDataURL(settings.LogoThumbnail)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_get", nil)
		return
	}
	w.Header().Set("Content-Type", mime)
	if _, err := w.Write(data); err != nil {
		_ = err
	}
}

func (h *SettingsHandler) RemoveLogo(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.RemoveLogo(); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
