package doctor

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

// Handler exposes doctor endpoints over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/doctors/", h.CreateDoctor)
	g.GET("/doctors/", h.ListDoctors)
}

func (h *Handler) CreateDoctor(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	d, err := h.svc.CreateDoctor(c.Request().Context(), &req)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, d)
	case errors.Is(err, ErrInvalid):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create doctor")
	}
}

func (h *Handler) ListDoctors(c echo.Context) error {
	p := pagination.FromContext(c)
	items, err := h.svc.ListDoctors(c.Request().Context(), p.Skip, p.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list doctors")
	}
	return c.JSON(http.StatusOK, items)
}
