package handler // handler defines http handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/planora/wedding-planner/internal/planner"
)

// getUserID extracts the user_id from echo.Context and converts it to uint64.
// The JWT middleware stores the sub claim without normalizing its type.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses the named path parameter as a uint64 id.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind planner.Kind) int {
	switch kind {
	case planner.KindInvalidInput:
		return http.StatusBadRequest
	case planner.KindVendorNotFound, planner.KindWeddingNotFound, planner.KindNoTimelineItems:
		return http.StatusNotFound
	case planner.KindUnauthorizedAction:
		return http.StatusForbidden
	case planner.KindDateUnavailable, planner.KindBudgetExceeded:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// respondError writes an operation error as JSON. Tagged errors carry their
// kind and detail; anything else is an infrastructure failure and surfaces
// as 500 without internal detail.
func respondError(c echo.Context, err error) error {
	if pe, ok := planner.AsError(err); ok {
		return c.JSON(statusFor(pe.Kind), echo.Map{
			"error": pe.Detail,
			"kind":  pe.Kind,
		})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
