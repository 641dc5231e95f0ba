package menu_service_http

import (
	"net/http"

	"github.com/restomenu/menu_service/internal/domain/models"
	httpresponse "github.com/restomenu/menu_service/internal/lib/http"
)

type createSubmenuRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type updateSubmenuRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

func (h *Handler) createSubmenu(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.createSubmenu"

	menuUUID, ok := h.pathUUID(w, r, "menu_id")
	if !ok {
		return
	}

	var req createSubmenuRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	submenu, err := h.submenuService.Create(r.Context(), menuUUID, &models.Submenu{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, submenu)
}

func (h *Handler) listSubmenus(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.listSubmenus"

	menuUUID, ok := h.pathUUID(w, r, "menu_id")
	if !ok {
		return
	}

	submenus, err := h.submenuService.List(r.Context(), menuUUID)
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusOK, submenus)
}

func (h *Handler) getSubmenu(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.getSubmenu"

	menuUUID, ok := h.pathUUID(w, r, "menu_id")
	if !ok {
		return
	}
	submenuUUID, ok := h.pathUUID(w, r, "submenu_id")
	if !ok {
		return
	}

	submenu, err := h.submenuService.Get(r.Context(), menuUUID, submenuUUID)
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusOK, submenu)
}

func (h *Handler) updateSubmenu(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.updateSubmenu"

	menuUUID, ok := h.pathUUID(w, r, "menu_id")
	if !ok {
		return
	}
	submenuUUID, ok := h.pathUUID(w, r, "submenu_id")
	if !ok {
		return
	}

	var req updateSubmenuRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	submenu, err := h.submenuService.Update(r.Context(), menuUUID, submenuUUID, models.SubmenuUpdate{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusOK, submenu)
}

func (h *Handler) deleteSubmenu(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.deleteSubmenu"

	menuUUID, ok := h.pathUUID(w, r, "menu_id")
	if !ok {
		return
	}
	submenuUUID, ok := h.pathUUID(w, r, "submenu_id")
	if !ok {
		return
	}

	if err := h.submenuService.Delete(r.Context(), menuUUID, submenuUUID); err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusOK, httpresponse.H{"deleted": true})
}
