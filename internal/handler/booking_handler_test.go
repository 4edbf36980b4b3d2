package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/stayhub/listings-service/internal/apperrors"
	"github.com/stayhub/listings-service/internal/dto"
	"github.com/stayhub/listings-service/internal/models"
)

// --- Mock BookingService ---

type mockBookingService struct {
	createFn       func(ctx context.Context, booking *models.Booking) error
	getFn          func(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	listFn         func(ctx context.Context, listingID *uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return m.createFn(ctx, booking)
}
func (m *mockBookingService) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return m.getFn(ctx, id)
}
func (m *mockBookingService) ListBookings(ctx context.Context, listingID *uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	return m.listFn(ctx, listingID, status)
}
func (m *mockBookingService) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	return m.updateStatusFn(ctx, id, status)
}

// --- Tests ---

func TestCreateBooking_Handler_Success(t *testing.T) {
	listingID := uuid.New()
	svc := &mockBookingService{
		createFn: func(ctx context.Context, booking *models.Booking) error {
			booking.BookingID = uuid.New()
			booking.CreatedAt = time.Now()
			return nil
		},
	}

	e := echo.New()
	body := fmt.Sprintf(`{"listing":"%s","start_date":"2024-06-01","end_date":"2024-06-05","total_price":400.00,"status":"pending"}`, listingID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.BookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.BookingID)
	assert.Equal(t, listingID, *resp.Listing)
	assert.Equal(t, "2024-06-01", resp.StartDate)
	assert.Equal(t, "2024-06-05", resp.EndDate)
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Equal(t, 400.00, resp.TotalPrice)
}

func TestCreateBooking_Handler_EqualDates(t *testing.T) {
	e := echo.New()
	body := fmt.Sprintf(`{"listing":"%s","start_date":"2024-06-01","end_date":"2024-06-01","total_price":100.00}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(&mockBookingService{})
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "Start date must be before end date", he.Message)
}

func TestCreateBooking_Handler_UnknownListing(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, booking *models.Booking) error {
			return apperrors.ErrListingNotFound
		},
	}

	e := echo.New()
	body := fmt.Sprintf(`{"listing":"%s","start_date":"2024-06-01","end_date":"2024-06-05","total_price":400.00}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
	assert.Equal(t, "listing not found", he.Message)
}

func TestCreateBooking_Handler_UnknownStatus(t *testing.T) {
	e := echo.New()
	body := fmt.Sprintf(`{"listing":"%s","start_date":"2024-06-01","end_date":"2024-06-05","status":"archived"}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(&mockBookingService{})
	err := h.CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetBooking_Handler_NotFound(t *testing.T) {
	svc := &mockBookingService{
		getFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return nil, apperrors.ErrBookingNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	h := NewBookingHandler(svc)
	err := h.GetBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestListBookings_Handler_StatusFilter(t *testing.T) {
	var gotStatus *models.BookingStatus
	svc := &mockBookingService{
		listFn: func(ctx context.Context, listingID *uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
			gotStatus = status
			return []models.Booking{}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?status=confirmed", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(svc)
	err := h.ListBookings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusConfirmed, *gotStatus)
}

func TestListBookings_Handler_BadStatusFilter(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?status=archived", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(&mockBookingService{})
	err := h.ListBookings(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUpdateBookingStatus_Handler_Success(t *testing.T) {
	listingID := uuid.New()
	svc := &mockBookingService{
		updateStatusFn: func(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
			return &models.Booking{
				BookingID: id,
				ListingID: &listingID,
				StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
				Status:    status,
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+uuid.NewString()+"/status", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	h := NewBookingHandler(svc)
	err := h.UpdateBookingStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusConfirmed, resp.Status)
}
