package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// FleetService is the slice of the service layer the fleet endpoints
// use.  Implemented by *service.FleetService.
type FleetService interface {
	AddPlane(ctx context.Context, planeMake, planeModel string, age, seats uint32) (uint64, error)
	AddPilot(ctx context.Context, fullName, nationality string) (uint64, error)
	AddTechnician(ctx context.Context, fullName string) (uint64, error)
}

// FleetHandler exposes plane, pilot and technician registration to
// staff users.
type FleetHandler struct {
	Fleet FleetService
}

// NewFleetHandler constructs a FleetHandler.
func NewFleetHandler(fleet FleetService) *FleetHandler {
	if fleet == nil {
		panic("nil service passed to NewFleetHandler")
	}
	return &FleetHandler{Fleet: fleet}
}

type addPlaneReq struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Age   uint32 `json:"age"`
	Seats uint32 `json:"seats"`
}

// AddPlane handles POST /v1/planes.
func (h *FleetHandler) AddPlane(c echo.Context) error {
	var req addPlaneReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	id, err := h.Fleet.AddPlane(c.Request().Context(), req.Make, req.Model, req.Age, req.Seats)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"plane_id": id})
}

type addPilotReq struct {
	FullName    string `json:"fullname"`
	Nationality string `json:"nationality"`
}

// AddPilot handles POST /v1/pilots.
func (h *FleetHandler) AddPilot(c echo.Context) error {
	var req addPilotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	id, err := h.Fleet.AddPilot(c.Request().Context(), req.FullName, req.Nationality)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"pilot_id": id})
}

type addTechnicianReq struct {
	FullName string `json:"fullname"`
}

// AddTechnician handles POST /v1/technicians.
func (h *FleetHandler) AddTechnician(c echo.Context) error {
	var req addTechnicianReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	id, err := h.Fleet.AddTechnician(c.Request().Context(), req.FullName)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"technician_id": id})
}
