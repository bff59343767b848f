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

// GuestHandler covers the RSVP flow: submission, approval with table
// assignment, and the guest-list query projections.
type GuestHandler struct {
	Planner *planner.Planner
}

// NewGuestHandler constructs a GuestHandler. The planner must be non-nil.
func NewGuestHandler(p *planner.Planner) *GuestHandler {
	if p == nil {
		panic("nil planner passed to NewGuestHandler")
	}
	return &GuestHandler{Planner: p}
}

type rsvpReq struct {
	Name                string `json:"name"`
	GuestEmail          string `json:"guest_email"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	PlusOne             bool   `json:"plus_one"`
}

type approveRSVPReq struct {
	GuestEmail      string `json:"guest_email"`
	TableAssignment string `json:"table_assignment"`
}

// RSVP handles POST /v1/weddings/:id/guests.
func (h *GuestHandler) RSVP(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	var req rsvpReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	guest, err := h.Planner.GuestRSVP(c.Request().Context(), planner.GuestRSVPInput{
		WeddingID:           weddingID,
		Name:                req.Name,
		Email:               req.GuestEmail,
		DietaryRestrictions: req.DietaryRestrictions,
		PlusOne:             req.PlusOne,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "guest RSVP submitted successfully",
		"guest":   guest,
	})
}

// Approve handles POST /v1/weddings/:id/guests/approve. The table value
// uses the wire form (VIP_TABLE, FAMILY_TABLE, TABLE_3, UNASSIGNED). On
// success an rsvp.approved event is published best-effort.
func (h *GuestHandler) Approve(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	var req approveRSVPReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	table, err := model.ParseTableAssignment(req.TableAssignment)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	guest, err := h.Planner.ApproveRSVP(c.Request().Context(), weddingID, req.GuestEmail, table)
	if err != nil {
		return respondError(c, err)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishRSVPApproved(ctx, queue.RSVPApprovedEvent{
			WeddingID:  weddingID,
			GuestName:  guest.Name,
			GuestEmail: guest.Email,
			PlusOne:    guest.PlusOne,
			Table:      guest.TableAssignment.String(),
			ApprovedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusOK, echo.Map{
		"message": "guest RSVP approved successfully",
		"guest":   guest,
	})
}

// List handles GET /v1/weddings/:id/guests.
func (h *GuestHandler) List(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	guests, err := h.Planner.GetGuestList(c.Request().Context(), weddingID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"guests": guests})
}

// Get handles GET /v1/weddings/:id/guests/:email.
func (h *GuestHandler) Get(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	guest, err := h.Planner.GetGuestDetails(c.Request().Context(), weddingID, c.Param("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"guest": guest})
}

// Status handles GET /v1/weddings/:id/guests/:email/status.
func (h *GuestHandler) Status(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	status, err := h.Planner.GetGuestRSVPStatus(c.Request().Context(), weddingID, c.Param("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"rsvp_status": status})
}

// Count handles GET /v1/weddings/:id/guests/count. Counts every submitted
// RSVP regardless of status.
func (h *GuestHandler) Count(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	count, err := h.Planner.GetGuestRSVPCount(c.Request().Context(), weddingID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}
