package appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

// Handler exposes appointment endpoints over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/appointments/", h.CreateAppointment)
	g.GET("/appointments/", h.ListAppointments)
	g.GET("/appointments/doctor/:doctor_id/date/:date", h.FindByDoctorAndDate)
	g.GET("/appointments/:appointment_id", h.GetAppointment)
	g.DELETE("/appointments/:appointment_id", h.CancelAppointment)
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	a, err := h.svc.CreateAppointment(c.Request().Context(), &req)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, a)
	case errors.Is(err, ErrInvalid):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create appointment")
	}
}

func (h *Handler) GetAppointment(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("appointment_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}

	a, err := h.svc.GetAppointment(c.Request().Context(), id)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, a)
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Appointment not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get appointment")
	}
}

func (h *Handler) ListAppointments(c echo.Context) error {
	p := pagination.FromContext(c)
	items, err := h.svc.ListAppointments(c.Request().Context(), p.Skip, p.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list appointments")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CancelAppointment(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("appointment_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}

	a, err := h.svc.CancelAppointment(c.Request().Context(), id)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, a)
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Appointment not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to cancel appointment")
	}
}

func (h *Handler) FindByDoctorAndDate(c echo.Context) error {
	doctorID, err := strconv.ParseInt(c.Param("doctor_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}

	items, err := h.svc.FindByDoctorAndDate(c.Request().Context(), doctorID, c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to find appointments")
	}
	return c.JSON(http.StatusOK, items)
}
