package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planora/wedding-planner/internal/planner"
)

// WeddingHandler exposes the wedding aggregate lifecycle: creation, vendor
// booking and cancellation, plus the wedding-level query projections.
type WeddingHandler struct {
	Planner *planner.Planner
}

// NewWeddingHandler constructs a WeddingHandler. The planner must be non-nil.
func NewWeddingHandler(p *planner.Planner) *WeddingHandler {
	if p == nil {
		panic("nil planner passed to NewWeddingHandler")
	}
	return &WeddingHandler{Planner: p}
}

type createWeddingReq struct {
	CoupleNames []string `json:"couple_names"`
	Date        string   `json:"date"`
	Budget      uint64   `json:"budget"`
	Location    string   `json:"location"`
	GuestCount  uint64   `json:"guest_count"`
}

type bookVendorReq struct {
	VendorID          uint64  `json:"vendor_id"`
	WeddingOffer      uint64  `json:"wedding_offer"`
	AdditionalDetails *string `json:"additional_details"`
}

// Create handles POST /v1/weddings.
func (h *WeddingHandler) Create(c echo.Context) error {
	var req createWeddingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	wedding, err := h.Planner.CreateWedding(c.Request().Context(), planner.CreateWeddingInput{
		CoupleNames: req.CoupleNames,
		Date:        req.Date,
		Budget:      req.Budget,
		Location:    req.Location,
		GuestCount:  req.GuestCount,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "wedding created successfully",
		"wedding": wedding,
	})
}

// BookVendor handles POST /v1/weddings/:id/bookings.
func (h *WeddingHandler) BookVendor(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	var req bookVendorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	res, err := h.Planner.BookVendor(c.Request().Context(), planner.BookVendorInput{
		VendorID:          req.VendorID,
		WeddingID:         weddingID,
		WeddingOffer:      req.WeddingOffer,
		AdditionalDetails: req.AdditionalDetails,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "vendor booked successfully",
		"wedding": res.Wedding,
		"vendor":  res.Vendor,
		"booking": res.Booking,
	})
}

// CancelBooking handles DELETE /v1/weddings/:id/bookings/:vendor_id. Every
// booking for the vendor on this wedding is removed.
func (h *WeddingHandler) CancelBooking(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	vendorID, err := pathID(c, "vendor_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid vendor id"})
	}
	wedding, err := h.Planner.CancelVendorBooking(c.Request().Context(), weddingID, vendorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "vendor booking cancelled successfully",
		"wedding": wedding,
	})
}

// Get handles GET /v1/weddings/:id.
func (h *WeddingHandler) Get(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	wedding, err := h.Planner.GetWeddingDetails(c.Request().Context(), weddingID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"wedding": wedding})
}

// List handles GET /v1/weddings. With ?date=2026-09-12 the result is
// filtered to weddings on that date.
func (h *WeddingHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if date := c.QueryParam("date"); date != "" {
		weddings, err := h.Planner.SearchWeddingsByDate(ctx, date)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"weddings": weddings})
	}
	weddings, err := h.Planner.GetAllWeddings(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"weddings": weddings})
}
