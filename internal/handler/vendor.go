package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/planora/wedding-planner/internal/model"
	"github.com/planora/wedding-planner/internal/planner"
	"github.com/planora/wedding-planner/internal/queue"
	queue_publisher "github.com/planora/wedding-planner/internal/service"
)

// VendorHandler exposes the vendor side of the API: registration,
// verification, availability updates and booking confirmation. Methods
// assume JWT authentication has already run; booking confirmation is
// additionally gated on the vendor's registering principal inside the
// operation core.
type VendorHandler struct {
	Planner *planner.Planner
}

// NewVendorHandler constructs a VendorHandler. The planner must be non-nil.
func NewVendorHandler(p *planner.Planner) *VendorHandler {
	if p == nil {
		panic("nil planner passed to NewVendorHandler")
	}
	return &VendorHandler{Planner: p}
}

type registerVendorReq struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	ServiceCost  uint64   `json:"service_cost"`
	Availability []string `json:"availability"`
	Portfolio    []string `json:"portfolio"`
}

type updateAvailabilityReq struct {
	Availability []string `json:"availability"`
}

// Register handles POST /v1/vendors. The caller becomes the vendor's
// owning principal.
func (h *VendorHandler) Register(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req registerVendorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	vendor, err := h.Planner.RegisterVendor(c.Request().Context(), userID, planner.RegisterVendorInput{
		Name:         req.Name,
		Category:     model.Category(req.Category),
		Description:  req.Description,
		ServiceCost:  req.ServiceCost,
		Availability: req.Availability,
		Portfolio:    req.Portfolio,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "vendor registered successfully",
		"vendor":  vendor,
	})
}

// Verify handles POST /v1/vendors/:id/verify.
func (h *VendorHandler) Verify(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid vendor id"})
	}
	vendor, err := h.Planner.VerifyVendor(c.Request().Context(), vendorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "vendor verified successfully",
		"vendor":  vendor,
	})
}

// UpdateAvailability handles PUT /v1/vendors/:id/availability. The new set
// replaces the old one wholesale.
func (h *VendorHandler) UpdateAvailability(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid vendor id"})
	}
	var req updateAvailabilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	vendor, err := h.Planner.UpdateVendorAvailability(c.Request().Context(), vendorID, req.Availability)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "vendor availability updated successfully",
		"vendor":  vendor,
	})
}

// ConfirmBooking handles POST /v1/vendors/:id/bookings/:wedding_id/confirm.
// Only the vendor's registering principal may confirm. On success a
// booking.confirmed event is published best-effort.
func (h *VendorHandler) ConfirmBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	vendorID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid vendor id"})
	}
	weddingID, err := pathID(c, "wedding_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}

	booking, err := h.Planner.VerifyVendorBooking(c.Request().Context(), userID, vendorID, weddingID)
	if err != nil {
		return respondError(c, err)
	}

	// Publish asynchronously; a broker outage must not fail the request.
	vendor, verr := h.Planner.GetVendorDetails(c.Request().Context(), vendorID)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		ev := queue.BookingConfirmedEvent{
			VendorID:     vendorID,
			WeddingID:    weddingID,
			WeddingDate:  booking.Date,
			WeddingOffer: booking.WeddingOffer,
			ConfirmedAt:  time.Now().UTC().Format(time.RFC3339),
		}
		if verr == nil {
			ev.VendorName = vendor.Name
			ev.VendorOwner = vendor.Owner
		}
		_ = queue_publisher.PublishBookingConfirmed(ctx, ev)
	}()

	return c.JSON(http.StatusOK, echo.Map{
		"message": "vendor booking verified successfully",
		"booking": booking,
	})
}

// Get handles GET /v1/vendors/:id.
func (h *VendorHandler) Get(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid vendor id"})
	}
	vendor, err := h.Planner.GetVendorDetails(c.Request().Context(), vendorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"vendor": vendor})
}

// List handles GET /v1/vendors. With ?category=CATERING the result is
// filtered; an empty result set is a 404, not an empty array.
func (h *VendorHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if cat := c.QueryParam("category"); cat != "" {
		vendors, err := h.Planner.SearchVendorsByCategory(ctx, model.Category(cat))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"vendors": vendors})
	}
	vendors, err := h.Planner.GetAllVendors(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"vendors": vendors})
}
