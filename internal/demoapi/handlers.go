package demoapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}

func readBody(w http.ResponseWriter, r *http.Request) (Record, bool) {
	var fields Record
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest,
			"invalid request body: "+err.Error())
		return nil, false
	}
	return fields, true
}

func (h *Handler) list(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK,
			h.store.List(collection, r.URL.Query()))
	}
}

func (h *Handler) create(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, ok := readBody(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusCreated, h.store.Create(collection, fields))
	}
}

func (h *Handler) get(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		record, exists := h.store.Get(collection, id)
		if !exists {
			writeError(w, http.StatusNotFound, "no such "+collection+": "+id)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

func (h *Handler) replace(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		fields, ok := readBody(w, r)
		if !ok {
			return
		}
		record, exists := h.store.Replace(collection, id, fields)
		if !exists {
			writeError(w, http.StatusNotFound, "no such "+collection+": "+id)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

func (h *Handler) remove(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !h.store.Delete(collection, id) {
			writeError(w, http.StatusNotFound, "no such "+collection+": "+id)
			return
		}
		writeJSON(w, http.StatusOK, Record{})
	}
}

// children serves a scoped collection like /posts/{id}/comments by
// filtering on the foreign key pointing back at the owner.
func (h *Handler) children(collection, foreignKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := r.URL.Query()
		filters.Set(foreignKey, chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, h.store.List(collection, filters))
	}
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	profile, exists := h.store.Profile(userID)
	if !exists {
		writeError(w, http.StatusNotFound, "user "+userID+" has no profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) putProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if _, exists := h.store.Get("users", userID); !exists {
		writeError(w, http.StatusNotFound, "no such users: "+userID)
		return
	}
	fields, ok := readBody(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.store.SetProfile(userID, fields))
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if !h.store.DeleteProfile(userID) {
		writeError(w, http.StatusNotFound, "user "+userID+" has no profile")
		return
	}
	writeJSON(w, http.StatusOK, Record{})
}
