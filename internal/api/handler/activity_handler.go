package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
)

// ActivityHandler serves the admin audit feed.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

type activityResponse struct {
	Data []domain.ActivityEntry `json:"data"`
}

// List handles GET /api/activity (admin only).
//
// @Summary      List recent activity entries
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max entries (default 50, cap 200)"
// @Success      200    {object}  activityResponse
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.service.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activityResponse{Data: entries})
}
