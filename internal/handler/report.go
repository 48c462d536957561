package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-reservation/internal/repository"
)

// ReportHandler serves the staff reporting endpoints.  The reports are
// plain aggregate reads, so the handler talks to the repositories
// directly.
type ReportHandler struct {
	Repairs      *repository.RepairRepo
	Reservations *repository.ReservationRepo
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(rp *repository.RepairRepo, rsv *repository.ReservationRepo) *ReportHandler {
	if rp == nil || rsv == nil {
		panic("nil dependency passed to NewReportHandler")
	}
	return &ReportHandler{Repairs: rp, Reservations: rsv}
}

// RepairsPerPlane handles GET /v1/reports/repairs-per-plane.
func (h *ReportHandler) RepairsPerPlane(c echo.Context) error {
	counts, err := h.Repairs.CountPerPlane(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"planes": counts})
}

// RepairsPerYear handles GET /v1/reports/repairs-per-year.
func (h *ReportHandler) RepairsPerYear(c echo.Context) error {
	counts, err := h.Repairs.CountPerYear(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"years": counts})
}

// ReservationsByStatus handles GET /v1/reports/reservations-by-status.
func (h *ReportHandler) ReservationsByStatus(c echo.Context) error {
	counts, err := h.Reservations.CountByStatus(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"statuses": counts})
}
