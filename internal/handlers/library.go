package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bactien/YCBG/internal/httpx"
	"github.com/bactien/YCBG/internal/repo"
)

// LibraryHandler serves one reference collection (customers, systems, glass
// types, accessory sets) over the shared repo contract. Every collection gets
// the same three routes; only the record type and list ordering differ.
type LibraryHandler[T any, PT interface {
	*T
	repo.Entity
	Validate() error
}] struct {
	Repo  *repo.Repo[T, PT]
	Order string
}

func NewLibraryHandler[T any, PT interface {
	*T
	repo.Entity
	Validate() error
}](r *repo.Repo[T, PT], order string) *LibraryHandler[T, PT] {
	return &LibraryHandler[T, PT]{Repo: r, Order: order}
}

func (h *LibraryHandler[T, PT]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.Repo.All(h.Order)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, records)
}

// Save upserts the posted record: an unknown or empty id creates, a known id
// replaces. The saved record, id filled in, comes back in the response.
func (h *LibraryHandler[T, PT]) Save(w http.ResponseWriter, r *http.Request) {
	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if err := PT(&rec).Validate(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	if err := h.Repo.Save(&rec); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, rec)
}

func (h *LibraryHandler[T, PT]) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Repo.Delete(id); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Mount registers the collection routes on a chi sub-router.
func (h *LibraryHandler[T, PT]) Mount(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Save)
	r.Delete("/{id}", h.Delete)
}
