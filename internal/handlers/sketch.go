package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bactien/YCBG/internal/httpx"
	"github.com/bactien/YCBG/internal/sketch"
)

type SketchHandler struct{}

// Flatten: POST /sketch/flatten with a sketch document. The default response
// carries a PNG data URL ready to store on a quotation item; ?raw=1 streams
// the PNG bytes instead, for previews.
func (h *SketchHandler) Flatten(w http.ResponseWriter, r *http.Request) {
	var doc sketch.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if r.URL.Query().Get("raw") == "1" {
		png, err := doc.PNG()
		if err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "failed_to_render", nil)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if _, err := w.Write(png); err != nil {
			_ = err
		}
		return
	}
	dataURL, err := doc.DataURL()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_render", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"imageUrl": dataURL})
}
