package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/airline-reservation/internal/model"
	"github.com/iliyamo/airline-reservation/internal/repository"
	"github.com/iliyamo/airline-reservation/internal/service"
)

type bookerMock struct{ mock.Mock }

func (m *bookerMock) Book(ctx context.Context, customerID, flightNumber uint64) (service.BookingResult, error) {
	args := m.Called(ctx, customerID, flightNumber)
	return args.Get(0).(service.BookingResult), args.Error(1)
}

func bookRequest(t *testing.T, h *BookingHandler, fnum string, customerID interface{}) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/flights/:fnum/reservations")
	c.SetParamNames("fnum")
	c.SetParamValues(fnum)
	if customerID != nil {
		c.Set("user_id", customerID)
	}
	require.NoError(t, h.Book(c))
	return rec
}

func TestBookHandlerConfirmed(t *testing.T) {
	b := new(bookerMock)
	b.On("Book", mock.Anything, uint64(7), uint64(12)).
		Return(service.BookingResult{ReservationID: 99, Status: model.StatusConfirmed}, nil)
	h := NewBookingHandler(b, repository.NewReservationRepo(nil))

	rec := bookRequest(t, h, "12", float64(7)) // JWT claims decode numbers as float64

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(99), body["reservation_id"])
	assert.Equal(t, "CONFIRMED", body["status"])
	assert.Equal(t, true, body["confirmed"])
	b.AssertExpectations(t)
}

func TestBookHandlerWaitlisted(t *testing.T) {
	b := new(bookerMock)
	b.On("Book", mock.Anything, uint64(7), uint64(12)).
		Return(service.BookingResult{ReservationID: 100, Status: model.StatusWaitlisted}, nil)
	h := NewBookingHandler(b, repository.NewReservationRepo(nil))

	rec := bookRequest(t, h, "12", float64(7))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "WAITLISTED", body["status"])
	assert.Equal(t, false, body["confirmed"])
}

func TestBookHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", service.ErrValidation, http.StatusBadRequest},
		{"flight missing", repository.ErrFlightNotFound, http.StatusNotFound},
		{"customer missing", repository.ErrCustomerNotFound, http.StatusNotFound},
		{"seat race", repository.ErrConflict, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := new(bookerMock)
			b.On("Book", mock.Anything, uint64(7), uint64(12)).
				Return(service.BookingResult{}, tc.err)
			h := NewBookingHandler(b, repository.NewReservationRepo(nil))

			rec := bookRequest(t, h, "12", float64(7))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestBookHandlerRejectsBadFlightNumber(t *testing.T) {
	b := new(bookerMock)
	h := NewBookingHandler(b, repository.NewReservationRepo(nil))

	rec := bookRequest(t, h, "not-a-number", float64(7))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	b.AssertNotCalled(t, "Book")
}

func TestBookHandlerRequiresIdentity(t *testing.T) {
	b := new(bookerMock)
	h := NewBookingHandler(b, repository.NewReservationRepo(nil))

	rec := bookRequest(t, h, "12", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	b.AssertNotCalled(t, "Book")
}
