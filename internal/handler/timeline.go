package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planora/wedding-planner/internal/model"
	"github.com/planora/wedding-planner/internal/planner"
)

// TimelineHandler covers a wedding's day-of timeline.
type TimelineHandler struct {
	Planner *planner.Planner
}

// NewTimelineHandler constructs a TimelineHandler. The planner must be
// non-nil.
func NewTimelineHandler(p *planner.Planner) *TimelineHandler {
	if p == nil {
		panic("nil planner passed to NewTimelineHandler")
	}
	return &TimelineHandler{Planner: p}
}

type addTimelineItemReq struct {
	Time        string `json:"time"`
	Description string `json:"description"`
	Responsible string `json:"responsible"`
	Status      string `json:"status"`
}

type completeTimelineReq struct {
	Time string `json:"time"`
}

// Add handles POST /v1/weddings/:id/timeline.
func (h *TimelineHandler) Add(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	var req addTimelineItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	item, err := h.Planner.AddTimelineItem(c.Request().Context(), planner.AddTimelineItemInput{
		WeddingID:   weddingID,
		Time:        req.Time,
		Description: req.Description,
		Responsible: req.Responsible,
		Status:      model.TimelineStatus(req.Status),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "timeline item added successfully",
		"item":    item,
	})
}

// Complete handles POST /v1/weddings/:id/timeline/complete. Every entry
// whose time equals the supplied value transitions to completed.
func (h *TimelineHandler) Complete(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	var req completeTimelineReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	wedding, err := h.Planner.MarkTimelineItemCompleted(c.Request().Context(), weddingID, req.Time)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "timeline item marked as completed",
		"wedding": wedding,
	})
}

// List handles GET /v1/weddings/:id/timeline. An empty timeline is a 404.
func (h *TimelineHandler) List(c echo.Context) error {
	weddingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid wedding id"})
	}
	items, err := h.Planner.GetWeddingTimeline(c.Request().Context(), weddingID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"timeline": items})
}
