package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymbook/internal/slot"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEngine struct{ mock.Mock }

func (m *MockEngine) ReserveSession(ctx context.Context, req BookRequest) (*Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockEngine) CancelBooking(ctx context.Context, gymID, bookingID string) (*Booking, error) {
	args := m.Called(ctx, gymID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockEngine) ListBookingsForGym(ctx context.Context, gymID string) ([]Booking, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockEngine) ListSlotsForGym(ctx context.Context, gymID string) ([]slot.TimeSlot, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]slot.TimeSlot), args.Error(1)
}

func bookingRouter(engine Engine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(engine)

	r := gin.New()
	r.POST("/book", h.BookSession)
	r.POST("/dashboard/bookings/:bookingID/cancel", func(c *gin.Context) {
		c.Set("gym_id", "g1")
		h.CancelBooking(c)
	})
	r.GET("/dashboard", func(c *gin.Context) {
		c.Set("gym_id", "g1")
		h.Dashboard(c)
	})
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookSession_Created(t *testing.T) {
	engine := new(MockEngine)
	engine.On("ReserveSession", mock.Anything, mock.AnythingOfType("booking.BookRequest")).
		Return(&Booking{BookingID: "b1", GymID: "g1", SlotID: "s1", Status: StatusConfirmed}, nil)

	w := postJSON(t, bookingRouter(engine), "/book", testRequest())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"booking_id":"b1"`)
}

func TestBookSession_SlotGone(t *testing.T) {
	engine := new(MockEngine)
	engine.On("ReserveSession", mock.Anything, mock.Anything).Return(nil, ErrSlotUnavailable)

	w := postJSON(t, bookingRouter(engine), "/book", testRequest())
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookSession_SlotNotFound(t *testing.T) {
	engine := new(MockEngine)
	engine.On("ReserveSession", mock.Anything, mock.Anything).Return(nil, ErrSlotNotFound)

	w := postJSON(t, bookingRouter(engine), "/book", testRequest())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookSession_MissingFields(t *testing.T) {
	engine := new(MockEngine)

	w := postJSON(t, bookingRouter(engine), "/book", map[string]string{"gym_id": "g1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	engine.AssertNotCalled(t, "ReserveSession", mock.Anything, mock.Anything)
}

func TestCancelBookingHandler(t *testing.T) {
	engine := new(MockEngine)
	engine.On("CancelBooking", mock.Anything, "g1", "b1").
		Return(&Booking{BookingID: "b1", Status: StatusCancelled}, nil)

	w := postJSON(t, bookingRouter(engine), "/dashboard/bookings/b1/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"cancelled"`)
}

func TestCancelBookingHandler_AlreadyCancelled(t *testing.T) {
	engine := new(MockEngine)
	engine.On("CancelBooking", mock.Anything, "g1", "b1").Return(nil, ErrAlreadyCancelled)

	w := postJSON(t, bookingRouter(engine), "/dashboard/bookings/b1/cancel", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelBookingHandler_NotFound(t *testing.T) {
	engine := new(MockEngine)
	engine.On("CancelBooking", mock.Anything, "g1", "missing").Return(nil, ErrBookingNotFound)

	w := postJSON(t, bookingRouter(engine), "/dashboard/bookings/missing/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardHandler(t *testing.T) {
	engine := new(MockEngine)
	engine.On("ListBookingsForGym", mock.Anything, "g1").
		Return([]Booking{{BookingID: "b1", GymID: "g1"}}, nil)
	engine.On("ListSlotsForGym", mock.Anything, "g1").
		Return([]slot.TimeSlot{{GymID: "g1", SlotID: "s1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	bookingRouter(engine).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 1)
	assert.Len(t, resp.TimeSlots, 1)
}
