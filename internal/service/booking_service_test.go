package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/airline-reservation/internal/model"
	"github.com/iliyamo/airline-reservation/internal/queue"
	"github.com/iliyamo/airline-reservation/internal/repository"
)

// fakeBookingStore mimics the storage gateway for booking tests.  Like
// the real store, reading the seat state takes the flight lock and
// Commit/Rollback release it, so concurrent bookings serialize exactly
// as they would on the row lock.
type fakeBookingStore struct {
	mu        sync.Mutex
	capacity  uint32
	sold      uint32
	nextID    uint64
	customers map[uint64]bool

	reservations []model.Reservation

	insertErr error
	commitErr error
}

func newFakeBookingStore(capacity, sold uint32, customers ...uint64) *fakeBookingStore {
	known := make(map[uint64]bool, len(customers))
	for _, id := range customers {
		known[id] = true
	}
	return &fakeBookingStore{capacity: capacity, sold: sold, customers: known}
}

func (s *fakeBookingStore) begin(ctx context.Context) (BookingUnit, error) {
	return &fakeBookingUnit{s: s}, nil
}

type fakeBookingUnit struct {
	s      *fakeBookingStore
	locked bool

	pendingRes  []model.Reservation
	pendingSold uint32

	rolledBack bool
	committed  bool
}

func (u *fakeBookingUnit) CustomerExists(ctx context.Context, id uint64) (bool, error) {
	return u.s.customers[id], nil
}

func (u *fakeBookingUnit) FlightSeatState(ctx context.Context, fnum uint64) (uint32, uint32, error) {
	u.s.mu.Lock()
	u.locked = true
	return u.s.capacity, u.s.sold, nil
}

func (u *fakeBookingUnit) NextID(ctx context.Context, entity string) (uint64, error) {
	u.s.nextID++
	return u.s.nextID, nil
}

func (u *fakeBookingUnit) InsertReservation(ctx context.Context, res *model.Reservation) error {
	if u.s.insertErr != nil {
		return u.s.insertErr
	}
	u.pendingRes = append(u.pendingRes, *res)
	return nil
}

func (u *fakeBookingUnit) IncrementSold(ctx context.Context, fnum uint64, capacity uint32) error {
	if u.s.sold+u.pendingSold >= capacity {
		return repository.ErrConflict
	}
	u.pendingSold++
	return nil
}

func (u *fakeBookingUnit) Commit() error {
	if u.s.commitErr != nil {
		return u.s.commitErr
	}
	u.s.reservations = append(u.s.reservations, u.pendingRes...)
	u.s.sold += u.pendingSold
	u.committed = true
	if u.locked {
		u.locked = false
		u.s.mu.Unlock()
	}
	return nil
}

func (u *fakeBookingUnit) Rollback() error {
	u.rolledBack = true
	if u.locked {
		u.locked = false
		u.s.mu.Unlock()
	}
	return nil
}

type fakeLedger struct {
	remaining int64
	err       error
}

func (l *fakeLedger) RemainingSeats(ctx context.Context, fnum uint64, departure time.Time) (int64, error) {
	return l.remaining, l.err
}

type capturePublisher struct {
	mu     sync.Mutex
	events []queue.ReservationConfirmedEvent
	err    error
}

func (p *capturePublisher) PublishReservationConfirmed(ctx context.Context, ev queue.ReservationConfirmedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ev)
	return nil
}

func TestBookConfirmsWhenSeatsRemain(t *testing.T) {
	store := newFakeBookingStore(100, 40, 7)
	pub := &capturePublisher{}
	svc := NewBookingService(store.begin, &fakeLedger{}, pub)

	result, err := svc.Book(context.Background(), 7, 12)
	require.NoError(t, err)

	assert.Equal(t, model.StatusConfirmed, result.Status)
	assert.NotZero(t, result.ReservationID)
	assert.Equal(t, uint32(41), store.sold)
	require.Len(t, store.reservations, 1)
	assert.Equal(t, uint64(7), store.reservations[0].CustomerID)
	assert.Equal(t, uint64(12), store.reservations[0].FlightNumber)

	require.Len(t, pub.events, 1)
	assert.Equal(t, result.ReservationID, pub.events[0].ReservationID)
}

func TestBookWaitlistsWhenFull(t *testing.T) {
	store := newFakeBookingStore(50, 50, 7)
	pub := &capturePublisher{}
	svc := NewBookingService(store.begin, &fakeLedger{}, pub)

	result, err := svc.Book(context.Background(), 7, 12)
	require.NoError(t, err)

	assert.Equal(t, model.StatusWaitlisted, result.Status)
	assert.Equal(t, uint32(50), store.sold, "waitlisting must not consume a seat")
	require.Len(t, store.reservations, 1)
	assert.Equal(t, model.StatusWaitlisted, store.reservations[0].Status)
	assert.Empty(t, pub.events, "no event for waitlisted bookings")
}

func TestBookWaitlistsWhenOversold(t *testing.T) {
	// Sold beyond capacity; remaining is negative.
	store := newFakeBookingStore(50, 53, 7)
	svc := NewBookingService(store.begin, &fakeLedger{}, nil)

	result, err := svc.Book(context.Background(), 7, 12)
	require.NoError(t, err)

	assert.Equal(t, model.StatusWaitlisted, result.Status)
	assert.Equal(t, uint32(53), store.sold)
}

func TestBookUnknownCustomer(t *testing.T) {
	store := newFakeBookingStore(50, 0)
	svc := NewBookingService(store.begin, &fakeLedger{}, nil)

	_, err := svc.Book(context.Background(), 99, 12)
	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
	assert.Empty(t, store.reservations)
	assert.Zero(t, store.sold)
}

func TestBookValidatesIdentifiers(t *testing.T) {
	store := newFakeBookingStore(50, 0, 7)
	svc := NewBookingService(store.begin, &fakeLedger{}, nil)

	_, err := svc.Book(context.Background(), 0, 12)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Book(context.Background(), 7, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBookInsertFailureRollsBack(t *testing.T) {
	store := newFakeBookingStore(50, 10, 7)
	store.insertErr = errors.New("storage unavailable")
	svc := NewBookingService(store.begin, &fakeLedger{}, nil)

	_, err := svc.Book(context.Background(), 7, 12)
	require.Error(t, err)
	assert.Empty(t, store.reservations)
	assert.Equal(t, uint32(10), store.sold)
}

func TestBookCommitFailureReportsError(t *testing.T) {
	store := newFakeBookingStore(50, 10, 7)
	store.commitErr = errors.New("connection lost")
	pub := &capturePublisher{}
	svc := NewBookingService(store.begin, &fakeLedger{}, pub)

	_, err := svc.Book(context.Background(), 7, 12)
	require.Error(t, err)
	assert.Empty(t, store.reservations)
	assert.Empty(t, pub.events, "no event when the transaction did not commit")
}

func TestBookPublishFailureDoesNotFailBooking(t *testing.T) {
	store := newFakeBookingStore(50, 10, 7)
	pub := &capturePublisher{err: errors.New("broker down")}
	svc := NewBookingService(store.begin, &fakeLedger{}, pub)

	result, err := svc.Book(context.Background(), 7, 12)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, result.Status)
}

// TestBookConcurrentNoOversell hammers one flight with more bookings
// than seats.  Exactly the remaining seats confirm; the rest waitlist.
func TestBookConcurrentNoOversell(t *testing.T) {
	const (
		capacity = 10
		sold     = 7
		attempts = 25
	)
	store := newFakeBookingStore(capacity, sold, 7)
	svc := NewBookingService(store.begin, &fakeLedger{}, nil)

	var wg sync.WaitGroup
	results := make([]BookingResult, attempts)
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Book(context.Background(), 7, 12)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "booking %d", i)
	}

	confirmed := 0
	for _, r := range results {
		if r.Status == model.StatusConfirmed {
			confirmed++
		}
	}
	assert.Equal(t, capacity-sold, confirmed)
	assert.Equal(t, uint32(capacity), store.sold)
	assert.Len(t, store.reservations, attempts)
}

func TestRemainingSeatsDelegates(t *testing.T) {
	store := newFakeBookingStore(10, 0, 7)
	svc := NewBookingService(store.begin, &fakeLedger{remaining: -3}, nil)

	remaining, err := svc.RemainingSeats(context.Background(), 12, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(-3), remaining)

	_, err = svc.RemainingSeats(context.Background(), 0, time.Now())
	assert.ErrorIs(t, err, ErrValidation)
}
