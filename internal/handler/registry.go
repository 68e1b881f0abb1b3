package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripledger/tripledger/internal/domain"
)

// registryHandler serves one registry (/categories or /payment-modes).
// Both registries share the same rules and wire shape; kind only flavors
// error messages.
type registryHandler struct {
	svc  RegistryServicer
	kind string
}

// registryRequest is the JSON body of registry create and update calls.
// No ID field: identifiers are derived from the name on create and
// immutable afterwards.
type registryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

func (h registryHandler) routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h registryHandler) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse[domain.RegistryEntry]{Data: entries})
}

func (h registryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req registryRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := h.svc.Create(r.Context(), requestToEntry(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h registryHandler) update(w http.ResponseWriter, r *http.Request) {
	var req registryRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), requestToEntry(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// delete removes an entry and echoes it back, so clients can offer undo.
// Seeded defaults are protected and come back as 403.
func (h registryHandler) delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, deleted)
}

func requestToEntry(req registryRequest) domain.RegistryEntry {
	return domain.RegistryEntry{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}
}
