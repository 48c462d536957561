package service

import (
	"context"
	"strings"

	"github.com/iliyamo/airline-reservation/internal/model"
	"github.com/iliyamo/airline-reservation/internal/repository"
)

// FleetUnit is the unit-of-work surface for fleet record creation.
// Implemented by *repository.Unit.
type FleetUnit interface {
	NextID(ctx context.Context, entity string) (uint64, error)
	InsertPlane(ctx context.Context, p *model.Plane) error
	InsertPilot(ctx context.Context, p *model.Pilot) error
	InsertTechnician(ctx context.Context, t *model.Technician) error
	Commit() error
	Rollback() error
}

// FleetService creates planes, pilots and technicians.  Each creation
// allocates the identifier and inserts the row in one transaction so a
// rolled-back insert can never leak its id to another entity.
type FleetService struct {
	begin func(ctx context.Context) (FleetUnit, error)
}

// NewFleetService constructs the fleet registry service.
func NewFleetService(begin func(ctx context.Context) (FleetUnit, error)) *FleetService {
	if begin == nil {
		panic("nil begin passed to NewFleetService")
	}
	return &FleetService{begin: begin}
}

// AddPlane registers a plane and returns its id.  Seats must be
// positive: a zero-capacity plane would waitlist every booking.
func (s *FleetService) AddPlane(ctx context.Context, planeMake, planeModel string, age, seats uint32) (uint64, error) {
	planeMake = strings.TrimSpace(planeMake)
	planeModel = strings.TrimSpace(planeModel)
	if planeMake == "" || planeModel == "" {
		return 0, invalidf("make and model are required")
	}
	if seats == 0 {
		return 0, invalidf("seat capacity must be positive")
	}
	return s.create(ctx, repository.SeqPlane, func(ctx context.Context, u FleetUnit, id uint64) error {
		return u.InsertPlane(ctx, &model.Plane{ID: id, Make: planeMake, Model: planeModel, Age: age, Seats: seats})
	})
}

// AddPilot registers a pilot and returns their id.
func (s *FleetService) AddPilot(ctx context.Context, fullName, nationality string) (uint64, error) {
	fullName = strings.TrimSpace(fullName)
	nationality = strings.TrimSpace(nationality)
	if fullName == "" {
		return 0, invalidf("pilot name is required")
	}
	if nationality == "" {
		return 0, invalidf("nationality is required")
	}
	return s.create(ctx, repository.SeqPilot, func(ctx context.Context, u FleetUnit, id uint64) error {
		return u.InsertPilot(ctx, &model.Pilot{ID: id, FullName: fullName, Nationality: nationality})
	})
}

// AddTechnician registers a technician and returns their id.
func (s *FleetService) AddTechnician(ctx context.Context, fullName string) (uint64, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return 0, invalidf("technician name is required")
	}
	return s.create(ctx, repository.SeqTechnician, func(ctx context.Context, u FleetUnit, id uint64) error {
		return u.InsertTechnician(ctx, &model.Technician{ID: id, FullName: fullName})
	})
}

// create runs the shared allocate-then-insert transaction.
func (s *FleetService) create(ctx context.Context, entity string, insert func(ctx context.Context, u FleetUnit, id uint64) error) (uint64, error) {
	u, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = u.Rollback()
		}
	}()
	id, err := u.NextID(ctx, entity)
	if err != nil {
		return 0, err
	}
	if err := insert(ctx, u, id); err != nil {
		return 0, err
	}
	if err := u.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return id, nil
}
