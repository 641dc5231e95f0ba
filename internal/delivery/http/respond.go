package menu_service_http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	internalErrors "github.com/restomenu/menu_service/internal/lib/errors"
	httpresponse "github.com/restomenu/menu_service/internal/lib/http"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("write response", slog.String("error", err.Error()))
	}
}

// handleServiceError maps domain absences onto 404 and everything else onto
// 500. Services wrap repository errors, so errors.Is walks the chain.
func (h *Handler) handleServiceError(w http.ResponseWriter, op string, err error) {
	notFound := []error{
		internalErrors.ErrMenuNotFound,
		internalErrors.ErrSubmenuNotFound,
		internalErrors.ErrDishNotFound,
		internalErrors.ErrExportTaskNotFound,
	}

	for _, sentinel := range notFound {
		if errors.Is(err, sentinel) {
			h.writeJSON(w, http.StatusNotFound, httpresponse.H{"detail": sentinel.Error()})
			return
		}
	}

	h.log.Error(op, slog.String("error", err.Error()))
	h.writeJSON(w, http.StatusInternalServerError, httpresponse.H{"detail": "internal server error"})
}

// pathUUID parses a uuid path parameter and answers 400 on malformed input.
func (h *Handler) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, httpresponse.H{"detail": name + " is not a valid uuid"})
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, httpresponse.H{"detail": "malformed request body"})
		return false
	}

	if err := h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, httpresponse.H{"detail": err.Error()})
		return false
	}

	return true
}
