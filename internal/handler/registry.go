package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planora/wedding-planner/internal/model"
	"github.com/planora/wedding-planner/internal/planner"
)

// RegistryHandler covers a wedding's gift registry. Items are keyed by
// name within one wedding.
type RegistryHandler struct {
	Planner *planner.Planner
}

// NewRegistryHandler constructs a RegistryHandler. The planner must be
// non-nil.
func NewRegistryHandler(p *planner.Planner) *RegistryHandler {
	if p == nil {
		panic("nil planner passed to NewRegistryHandler")
	}
	return &RegistryHandler{Planner: p}
}

type addRegistryItemReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       uint64 `json:"price"`
}

type updateRegistryItemReq struct {
	Status      string `json:"status"`
	PurchasedBy string `json:"purchased_by"`
}

// Add handles POST /v1/weddings/:id/registry.
func (h *RegistryHandler) Add(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	var req addRegistryItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	item, err := h.Planner.AddRegistryItem(c.Request().Context(), planner.AddRegistryItemInput{
		WeddingID:   weddingID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "registry item added successfully",
		"item":    item,
	})
}

// UpdateStatus handles PATCH /v1/weddings/:id/registry/:name.
func (h *RegistryHandler) UpdateStatus(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	var req updateRegistryItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	item, err := h.Planner.UpdateRegistryItemStatus(c.Request().Context(), weddingID,
		c.Param("name"), model.RegistryStatus(req.Status), req.PurchasedBy)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "registry item updated successfully",
		"item":    item,
	})
}

// Delete handles DELETE /v1/weddings/:id/registry/:name.
func (h *RegistryHandler) Delete(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	item, err := h.Planner.DeleteRegistryItem(c.Request().Context(), weddingID, c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "registry item deleted successfully",
		"item":    item,
	})
}

// List handles GET /v1/weddings/:id/registry.
func (h *RegistryHandler) List(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	items, err := h.Planner.GetRegistryItems(c.Request().Context(), weddingID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"registry": items})
}

// Get handles GET /v1/weddings/:id/registry/:name.
func (h *RegistryHandler) Get(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	item, err := h.Planner.GetRegistryItemDetails(c.Request().Context(), weddingID, c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": item})
}
