package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/airline-reservation/internal/model"
)

// Store opens units of work that span multiple repositories.  A Unit
// wraps one SQL transaction; every read and write issued through it
// commits together or not at all.  Services depend on narrow interfaces
// satisfied by *Unit, which keeps the coordination logic testable
// without a database.
type Store struct {
	db          *sql.DB
	seq         *SequenceRepo
	planes      *PlaneRepo
	pilots      *PilotRepo
	technicians *TechnicianRepo
	customers   *CustomerRepo
	flights     *FlightRepo
	crews       *CrewAssignmentRepo
	schedules   *ScheduleEntryRepo
	rsvs        *ReservationRepo
}

// NewStore wires a Store from the shared DB handle and repositories.
func NewStore(db *sql.DB, seq *SequenceRepo, planes *PlaneRepo, pilots *PilotRepo,
	technicians *TechnicianRepo, customers *CustomerRepo, flights *FlightRepo,
	crews *CrewAssignmentRepo, schedules *ScheduleEntryRepo, rsvs *ReservationRepo) *Store {
	return &Store{
		db:          db,
		seq:         seq,
		planes:      planes,
		pilots:      pilots,
		technicians: technicians,
		customers:   customers,
		flights:     flights,
		crews:       crews,
		schedules:   schedules,
		rsvs:        rsvs,
	}
}

// Begin starts a unit of work.  The caller must finish it with Commit
// or Rollback.
func (s *Store) Begin(ctx context.Context) (*Unit, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Unit{tx: tx, s: s}, nil
}

// Unit is one transaction over the airline tables.
type Unit struct {
	tx *sql.Tx
	s  *Store
}

// NextID allocates the next identifier for an entity class (see the
// Seq* constants).
func (u *Unit) NextID(ctx context.Context, entity string) (uint64, error) {
	return u.s.seq.NextTx(ctx, u.tx, entity)
}

// PlaneExists reports whether the plane row exists.
func (u *Unit) PlaneExists(ctx context.Context, id uint64) (bool, error) {
	return u.s.planes.ExistsTx(ctx, u.tx, id)
}

// PilotExists reports whether the pilot row exists.
func (u *Unit) PilotExists(ctx context.Context, id uint64) (bool, error) {
	return u.s.pilots.ExistsTx(ctx, u.tx, id)
}

// CustomerExists reports whether the customer row exists.
func (u *Unit) CustomerExists(ctx context.Context, id uint64) (bool, error) {
	return u.s.customers.ExistsTx(ctx, u.tx, id)
}

// InsertPlane writes a plane row.
func (u *Unit) InsertPlane(ctx context.Context, p *model.Plane) error {
	return u.s.planes.CreateTx(ctx, u.tx, p)
}

// InsertPilot writes a pilot row.
func (u *Unit) InsertPilot(ctx context.Context, p *model.Pilot) error {
	return u.s.pilots.CreateTx(ctx, u.tx, p)
}

// InsertTechnician writes a technician row.
func (u *Unit) InsertTechnician(ctx context.Context, t *model.Technician) error {
	return u.s.technicians.CreateTx(ctx, u.tx, t)
}

// InsertFlight writes a flight row.
func (u *Unit) InsertFlight(ctx context.Context, f *model.Flight) error {
	return u.s.flights.CreateTx(ctx, u.tx, f)
}

// InsertCrewAssignment writes a crew assignment row.
func (u *Unit) InsertCrewAssignment(ctx context.Context, ca *model.CrewAssignment) error {
	return u.s.crews.CreateTx(ctx, u.tx, ca)
}

// InsertScheduleEntry writes a schedule entry row.
func (u *Unit) InsertScheduleEntry(ctx context.Context, se *model.ScheduleEntry) error {
	return u.s.schedules.CreateTx(ctx, u.tx, se)
}

// InsertReservation writes a reservation row.
func (u *Unit) InsertReservation(ctx context.Context, res *model.Reservation) error {
	return u.s.rsvs.CreateTx(ctx, u.tx, res)
}

// FlightSeatState locks the flight row and returns plane capacity and
// sold count.
func (u *Unit) FlightSeatState(ctx context.Context, fnum uint64) (capacity, sold uint32, err error) {
	return u.s.flights.SeatStateTx(ctx, u.tx, fnum)
}

// IncrementSold adds one sold seat, guarded by capacity.
func (u *Unit) IncrementSold(ctx context.Context, fnum uint64, capacity uint32) error {
	return u.s.flights.IncrementSoldTx(ctx, u.tx, fnum, capacity)
}

// Commit makes every write in the unit durable.
func (u *Unit) Commit() error { return u.tx.Commit() }

// Rollback discards the unit.  Safe to call after Commit; the redundant
// call returns sql.ErrTxDone which callers ignore.
func (u *Unit) Rollback() error { return u.tx.Rollback() }
