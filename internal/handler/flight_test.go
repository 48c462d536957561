package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/airline-reservation/internal/repository"
	"github.com/iliyamo/airline-reservation/internal/service"
)

type assemblerMock struct{ mock.Mock }

func (m *assemblerMock) CreateFlight(ctx context.Context, in service.FlightInput) (uint64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(uint64), args.Error(1)
}

type seatCounterMock struct{ mock.Mock }

func (m *seatCounterMock) RemainingSeats(ctx context.Context, fnum uint64, departure time.Time) (int64, error) {
	args := m.Called(ctx, fnum, departure)
	return args.Get(0).(int64), args.Error(1)
}

func seatsRequest(t *testing.T, h *FlightHandler, fnum, departure string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?departure="+departure, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/flights/:fnum/seats")
	c.SetParamNames("fnum")
	c.SetParamValues(fnum)
	require.NoError(t, h.RemainingSeats(c))
	return rec
}

func TestRemainingSeatsHandler(t *testing.T) {
	departure := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	seats := new(seatCounterMock)
	seats.On("RemainingSeats", mock.Anything, uint64(12), departure).Return(int64(42), nil)
	h := NewFlightHandler(new(assemblerMock), seats)

	rec := seatsRequest(t, h, "12", "2026-03-14T09%3A30%3A00Z")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["remaining_seats"])
	seats.AssertExpectations(t)
}

func TestRemainingSeatsHandlerNegativeCount(t *testing.T) {
	departure := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	seats := new(seatCounterMock)
	seats.On("RemainingSeats", mock.Anything, uint64(12), departure).Return(int64(-2), nil)
	h := NewFlightHandler(new(assemblerMock), seats)

	rec := seatsRequest(t, h, "12", "2026-03-14T09%3A30%3A00Z")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(-2), body["remaining_seats"])
}

func TestRemainingSeatsHandlerBadInput(t *testing.T) {
	h := NewFlightHandler(new(assemblerMock), new(seatCounterMock))

	rec := seatsRequest(t, h, "abc", "2026-03-14T09%3A30%3A00Z")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = seatsRequest(t, h, "12", "march-14")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemainingSeatsHandlerUnknownFlight(t *testing.T) {
	seats := new(seatCounterMock)
	seats.On("RemainingSeats", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), repository.ErrFlightNotFound)
	h := NewFlightHandler(new(assemblerMock), seats)

	rec := seatsRequest(t, h, "12", "2026-03-14T09%3A30%3A00Z")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateFlightHandler(t *testing.T) {
	flights := new(assemblerMock)
	flights.On("CreateFlight", mock.Anything, mock.MatchedBy(func(in service.FlightInput) bool {
		return in.PilotID == 3 && in.PlaneID == 5 && in.ArrivalAirport == "JFK"
	})).Return(uint64(77), nil)
	h := NewFlightHandler(flights, new(seatCounterMock))

	payload := `{
		"cost": 350,
		"stops": 1,
		"departure": "2026-03-14T09:30:00Z",
		"arrival": "2026-03-14T15:30:00Z",
		"arrival_airport": "JFK",
		"departure_airport": "SFO",
		"pilot_id": 3,
		"plane_id": 5
	}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/flights", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.CreateFlight(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(77), body["flight_number"])
	flights.AssertExpectations(t)
}

func TestCreateFlightHandlerValidationError(t *testing.T) {
	flights := new(assemblerMock)
	flights.On("CreateFlight", mock.Anything, mock.Anything).
		Return(uint64(0), service.ErrValidation)
	h := NewFlightHandler(flights, new(seatCounterMock))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/flights", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.CreateFlight(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
