package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bactien/YCBG/internal/httpx"
	"github.com/bactien/YCBG/internal/services"
)

type SuggestHandler struct {
	Suggester services.Suggester
}

// Suggest: POST /suggest with {"doorName": "..."}. The response carries only
// the fields the collaborator filled in; the client merges them over what the
// user already typed.
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DoorName string `json:"doorName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if strings.TrimSpace(body.DoorName) == "" {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", "Vui lòng nhập Tên cửa trước khi gợi ý.")
		return
	}
	suggestion, err := h.Suggester.Suggest(r.Context(), body.DoorName)
	if err != nil {
		httpx.JSONError(w, http.StatusBadGateway, "suggestion_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, suggestion)
}
