package menu_service_http

import (
	"net/http"

	"github.com/restomenu/menu_service/internal/domain/models"
	httpresponse "github.com/restomenu/menu_service/internal/lib/http"
	"github.com/shopspring/decimal"
)

type createDishRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"`
}

type updateDishRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.createDish"

	menuUUID, ok := h.pathUUID(w, r, "menu_id")
	if !ok {
		return
	}
	submenuUUID, ok := h.pathUUID(w, r, "submenu_id")
	if !ok {
		return
	}

	var req createDishRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.Price.IsNegative() {
		h.writeJSON(w, http.StatusBadRequest, httpresponse.H{"detail": "price must not be negative"})
		return
	}

	dish, err := h.dishService.Create(r.Context(), menuUUID, submenuUUID, &models.Dish{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.listDishes"

	menuUUID, ok := h.pathUUID(w, r, "menu_id")
	if !ok {
		return
	}
	submenuUUID, ok := h.pathUUID(w, r, "submenu_id")
	if !ok {
		return
	}

	dishes, err := h.dishService.List(r.Context(), menuUUID, submenuUUID)
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.getDish"

	menuUUID, ok := h.pathUUID(w, r, "menu_id")
	if !ok {
		return
	}
	submenuUUID, ok := h.pathUUID(w, r, "submenu_id")
	if !ok {
		return
	}
	dishUUID, ok := h.pathUUID(w, r, "dish_id")
	if !ok {
		return
	}

	dish, err := h.dishService.Get(r.Context(), menuUUID, submenuUUID, dishUUID)
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.updateDish"

	menuUUID, ok := h.pathUUID(w, r, "menu_id")
	if !ok {
		return
	}
	submenuUUID, ok := h.pathUUID(w, r, "submenu_id")
	if !ok {
		return
	}
	dishUUID, ok := h.pathUUID(w, r, "dish_id")
	if !ok {
		return
	}

	var req updateDishRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.Price != nil && req.Price.IsNegative() {
		h.writeJSON(w, http.StatusBadRequest, httpresponse.H{"detail": "price must not be negative"})
		return
	}

	dish, err := h.dishService.Update(r.Context(), menuUUID, submenuUUID, dishUUID, models.DishUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.deleteDish"

	menuUUID, ok := h.pathUUID(w, r, "menu_id")
	if !ok {
		return
	}
	submenuUUID, ok := h.pathUUID(w, r, "submenu_id")
	if !ok {
		return
	}
	dishUUID, ok := h.pathUUID(w, r, "dish_id")
	if !ok {
		return
	}

	if err := h.dishService.Delete(r.Context(), menuUUID, submenuUUID, dishUUID); err != nil {
		h.handleServiceError(w, op, err)
		return
	}

	h.writeJSON(w, http.StatusOK, httpresponse.H{"deleted": true})
}
