package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/airline-reservation/internal/model"
)

type fakeFleetUnit struct {
	nextID uint64

	plane      *model.Plane
	pilot      *model.Pilot
	technician *model.Technician

	committed  bool
	rolledBack bool
}

func (u *fakeFleetUnit) NextID(ctx context.Context, entity string) (uint64, error) {
	u.nextID++
	return u.nextID, nil
}

func (u *fakeFleetUnit) InsertPlane(ctx context.Context, p *model.Plane) error {
	u.plane = p
	return nil
}

func (u *fakeFleetUnit) InsertPilot(ctx context.Context, p *model.Pilot) error {
	u.pilot = p
	return nil
}

func (u *fakeFleetUnit) InsertTechnician(ctx context.Context, tech *model.Technician) error {
	u.technician = tech
	return nil
}

func (u *fakeFleetUnit) Commit() error   { u.committed = true; return nil }
func (u *fakeFleetUnit) Rollback() error { u.rolledBack = true; return nil }

func beginFleet(u *fakeFleetUnit) func(ctx context.Context) (FleetUnit, error) {
	return func(ctx context.Context) (FleetUnit, error) { return u, nil }
}

func TestAddPlane(t *testing.T) {
	unit := &fakeFleetUnit{}
	svc := NewFleetService(beginFleet(unit))

	id, err := svc.AddPlane(context.Background(), " Boeing ", "777-300ER", 4, 396)
	require.NoError(t, err)
	require.True(t, unit.committed)
	require.NotNil(t, unit.plane)
	assert.Equal(t, id, unit.plane.ID)
	assert.Equal(t, "Boeing", unit.plane.Make)
	assert.Equal(t, uint32(396), unit.plane.Seats)
}

func TestAddPlaneRejectsZeroSeats(t *testing.T) {
	unit := &fakeFleetUnit{}
	svc := NewFleetService(beginFleet(unit))

	_, err := svc.AddPlane(context.Background(), "Airbus", "A320", 2, 0)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, unit.plane)
}

func TestAddPlaneRequiresMakeAndModel(t *testing.T) {
	svc := NewFleetService(beginFleet(&fakeFleetUnit{}))

	_, err := svc.AddPlane(context.Background(), "", "A320", 2, 150)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddPlane(context.Background(), "Airbus", "   ", 2, 150)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddPilot(t *testing.T) {
	unit := &fakeFleetUnit{}
	svc := NewFleetService(beginFleet(unit))

	id, err := svc.AddPilot(context.Background(), "Amelia Reyes", "Chilean")
	require.NoError(t, err)
	require.NotNil(t, unit.pilot)
	assert.Equal(t, id, unit.pilot.ID)
	assert.Equal(t, "Amelia Reyes", unit.pilot.FullName)
	assert.Equal(t, "Chilean", unit.pilot.Nationality)
}

func TestAddPilotValidation(t *testing.T) {
	svc := NewFleetService(beginFleet(&fakeFleetUnit{}))

	_, err := svc.AddPilot(context.Background(), "", "Chilean")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddPilot(context.Background(), "Amelia Reyes", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddTechnician(t *testing.T) {
	unit := &fakeFleetUnit{}
	svc := NewFleetService(beginFleet(unit))

	id, err := svc.AddTechnician(context.Background(), "Kenji Mori")
	require.NoError(t, err)
	require.NotNil(t, unit.technician)
	assert.Equal(t, id, unit.technician.ID)
	assert.Equal(t, "Kenji Mori", unit.technician.FullName)
}

func TestAddTechnicianRequiresName(t *testing.T) {
	unit := &fakeFleetUnit{}
	svc := NewFleetService(beginFleet(unit))

	_, err := svc.AddTechnician(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, unit.technician)
}

// Sequential creations on one unit get distinct identifiers.
func TestFleetIdentifiersAreDistinct(t *testing.T) {
	unit := &fakeFleetUnit{}
	svc := NewFleetService(beginFleet(unit))

	planeID, err := svc.AddPlane(context.Background(), "Boeing", "737", 1, 180)
	require.NoError(t, err)
	pilotID, err := svc.AddPilot(context.Background(), "Sam Okafor", "Nigerian")
	require.NoError(t, err)

	assert.NotEqual(t, planeID, pilotID)
}
