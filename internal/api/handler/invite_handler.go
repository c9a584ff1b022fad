package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
)

// InviteHandler handles HTTP requests for RSVP invites.
type InviteHandler struct {
	service ports.InviteService
}

func NewInviteHandler(service ports.InviteService) *InviteHandler {
	return &InviteHandler{service: service}
}

type guestRequest struct {
	FullName string `json:"fullName"`
	Age      string `json:"age"`
}

type inviteRequest struct {
	MainGuest   guestRequest   `json:"mainGuest"`
	OtherGuests []guestRequest `json:"otherGuests"`
}

// inviteEnvelope is the {success, data} / {success, error} response shape the
// RSVP page consumes.
type inviteEnvelope struct {
	Success bool           `json:"success"`
	Data    *domain.Invite `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type inviteListResponse struct {
	Success bool            `json:"success"`
	Data    []domain.Invite `json:"data"`
}

// Save handles POST /api/invite.
//
// @Summary      Submit an RSVP invite
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        body  body      inviteRequest  true  "Main guest and companions"
// @Success      200   {object}  inviteEnvelope
// @Failure      500   {object}  inviteEnvelope
// @Router       /api/invite [post]
func (h *InviteHandler) Save(c echo.Context) error {
	var req inviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	in := ports.InviteInput{
		MainGuest:   ports.GuestInput{FullName: req.MainGuest.FullName, Age: req.MainGuest.Age},
		OtherGuests: make([]ports.GuestInput, 0, len(req.OtherGuests)),
	}
	for _, g := range req.OtherGuests {
		in.OtherGuests = append(in.OtherGuests, ports.GuestInput{FullName: g.FullName, Age: g.Age})
	}

	saved, err := h.service.Save(c.Request().Context(), in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, inviteEnvelope{Success: false, Error: "Server error"})
	}
	return c.JSON(http.StatusOK, inviteEnvelope{Success: true, Data: saved})
}

// List handles GET /api/invites (admin only).
//
// @Summary      List all received invites
// @Tags         invites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  inviteListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/invites [get]
func (h *InviteHandler) List(c echo.Context) error {
	invites, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inviteListResponse{Success: true, Data: invites})
}
