package menu_service_http

import (
	"net/http"

	"github.com/restomenu/menu_service/internal/domain/models"
	httpresponse "github.com/restomenu/menu_service/internal/lib/http"
)

type createMenuRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type updateMenuRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.createMenu"

	var req createMenuRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	menu, err := h.menuService.Create(r.Context(), &models.Menu{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, menu)
}

func (h *Handler) listMenus(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.listMenus"

	menus, err := h.menuService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusOK, menus)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.getMenu"

	menuUUID, ok := h.pathUUID(w, r, "menu_id")
	if !ok {
		return
	}

	menu, err := h.menuService.Get(r.Context(), menuUUID)
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.updateMenu"

	menuUUID, ok := h.pathUUID(w, r, "menu_id")
	if !ok {
		return
	}

	var req updateMenuRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	menu, err := h.menuService.Update(r.Context(), menuUUID, models.MenuUpdate{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) deleteMenu(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.deleteMenu"

	menuUUID, ok := h.pathUUID(w, r, "menu_id")
	if !ok {
		return
	}

	if err := h.menuService.Delete(r.Context(), menuUUID); err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusOK, httpresponse.H{"deleted": true})
}
