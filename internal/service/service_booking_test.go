// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/store"
	"github.com/MKhiriev/shareit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBookingService(t *testing.T) (*bookingService, storeMocks) {
	t.Helper()
	storages, m := newStoreMocks(t)
	svc := NewBookingService(storages, logger.Nop()).(*bookingService)
	svc.now = fixedClock
	return svc, m
}

func bookingRequest(itemID int64, start, end time.Time) models.CreateBookingRequest {
	s, e := models.NewTimestamp(start), models.NewTimestamp(end)
	return models.CreateBookingRequest{ItemID: itemID, Start: &s, End: &e}
}

// ── CreateBooking ────────────────────────────────────────────────────────────

func TestBookingService_CreateBooking_Success(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	start, end := fixedNow.Add(24*time.Hour), fixedNow.Add(48*time.Hour)

	m.users.EXPECT().GetUser(ctx, int64(2)).Return(models.User{ID: 2}, nil)
	m.items.EXPECT().GetItem(ctx, int64(10)).Return(models.Item{ID: 10, OwnerID: 1, Available: true}, nil)
	m.bookings.EXPECT().HasApprovedOverlap(ctx, int64(10), start, end).Return(false, nil)
	m.bookings.EXPECT().CreateBooking(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Booking) (models.Booking, error) {
			assert.Equal(t, models.StatusWaiting, b.Status)
			assert.Equal(t, int64(10), b.Item.ID)
			assert.Equal(t, int64(2), b.Booker.ID)
			b.ID = 100
			return b, nil
		})

	got, err := svc.CreateBooking(ctx, 2, bookingRequest(10, start, end))

	require.NoError(t, err)
	assert.Equal(t, int64(100), got.ID)
	assert.Equal(t, models.StatusWaiting, got.Status)
}

func TestBookingService_CreateBooking_OwnerCannotBook(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	m.users.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1}, nil)
	m.items.EXPECT().GetItem(ctx, int64(10)).Return(models.Item{ID: 10, OwnerID: 1, Available: true}, nil)

	_, err := svc.CreateBooking(ctx, 1, bookingRequest(10, fixedNow.Add(time.Hour), fixedNow.Add(2*time.Hour)))

	assert.ErrorIs(t, err, ErrOwnerCannotBook)
}

func TestBookingService_CreateBooking_Unavailable(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	m.users.EXPECT().GetUser(ctx, int64(2)).Return(models.User{ID: 2}, nil)
	m.items.EXPECT().GetItem(ctx, int64(10)).Return(models.Item{ID: 10, OwnerID: 1, Available: false}, nil)

	_, err := svc.CreateBooking(ctx, 2, bookingRequest(10, fixedNow.Add(time.Hour), fixedNow.Add(2*time.Hour)))

	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestBookingService_CreateBooking_StartNotBeforeEnd(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	m.users.EXPECT().GetUser(ctx, int64(2)).Return(models.User{ID: 2}, nil)
	m.items.EXPECT().GetItem(ctx, int64(10)).Return(models.Item{ID: 10, OwnerID: 1, Available: true}, nil)

	at := fixedNow.Add(time.Hour)
	_, err := svc.CreateBooking(ctx, 2, bookingRequest(10, at, at))

	assert.ErrorIs(t, err, ErrInvalidBookingPeriod)
}

func TestBookingService_CreateBooking_Overlap(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	start, end := fixedNow.Add(time.Hour), fixedNow.Add(2*time.Hour)
	m.users.EXPECT().GetUser(ctx, int64(2)).Return(models.User{ID: 2}, nil)
	m.items.EXPECT().GetItem(ctx, int64(10)).Return(models.Item{ID: 10, OwnerID: 1, Available: true}, nil)
	m.bookings.EXPECT().HasApprovedOverlap(ctx, int64(10), start, end).Return(true, nil)

	_, err := svc.CreateBooking(ctx, 2, bookingRequest(10, start, end))

	assert.ErrorIs(t, err, ErrBookingOverlap)
}

func TestBookingService_CreateBooking_UnknownItem(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	m.users.EXPECT().GetUser(ctx, int64(2)).Return(models.User{ID: 2}, nil)
	m.items.EXPECT().GetItem(ctx, int64(10)).Return(models.Item{}, store.ErrItemNotFound)

	_, err := svc.CreateBooking(ctx, 2, bookingRequest(10, fixedNow.Add(time.Hour), fixedNow.Add(2*time.Hour)))

	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

// ── DecideBooking ────────────────────────────────────────────────────────────

func TestBookingService_DecideBooking(t *testing.T) {
	tests := []struct {
		name       string
		approved   bool
		wantStatus models.BookingStatus
	}{
		{name: "approve", approved: true, wantStatus: models.StatusApproved},
		{name: "reject", approved: false, wantStatus: models.StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestBookingService(t)
			ctx := context.Background()

			m.users.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1}, nil)
			m.bookings.EXPECT().GetBooking(ctx, int64(100)).
				Return(models.Booking{ID: 100, Status: models.StatusWaiting, ItemOwnerID: 1}, nil)
			if tt.approved {
				m.bookings.EXPECT().HasApprovedOverlapExcept(ctx, int64(0), int64(100), gomock.Any(), gomock.Any()).Return(false, nil)
			}
			m.bookings.EXPECT().UpdateBookingStatus(ctx, int64(100), tt.wantStatus).
				Return(models.Booking{ID: 100, Status: tt.wantStatus, ItemOwnerID: 1}, nil)

			got, err := svc.DecideBooking(ctx, 1, 100, tt.approved)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

// Two WAITING bookings may overlap; once one is approved the other can
// only be rejected.
func TestBookingService_DecideBooking_ApproveOverlapping(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	start, end := fixedNow.Add(48*time.Hour), fixedNow.Add(96*time.Hour)
	waiting := models.Booking{
		ID:          101,
		Start:       models.NewTimestamp(start),
		End:         models.NewTimestamp(end),
		Status:      models.StatusWaiting,
		Item:        models.BookingItem{ID: 10},
		Booker:      models.BookingUser{ID: 3},
		ItemOwnerID: 1,
	}

	m.users.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1}, nil)
	m.bookings.EXPECT().GetBooking(ctx, int64(101)).Return(waiting, nil)
	m.bookings.EXPECT().HasApprovedOverlapExcept(ctx, int64(10), int64(101), start, end).Return(true, nil)
	m.bookings.EXPECT().UpdateBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.DecideBooking(ctx, 1, 101, true)

	assert.ErrorIs(t, err, ErrBookingOverlap)
}

func TestBookingService_DecideBooking_RejectSkipsOverlapCheck(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	m.users.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1}, nil)
	m.bookings.EXPECT().GetBooking(ctx, int64(101)).
		Return(models.Booking{ID: 101, Status: models.StatusWaiting, Item: models.BookingItem{ID: 10}, ItemOwnerID: 1}, nil)
	m.bookings.EXPECT().HasApprovedOverlapExcept(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.bookings.EXPECT().UpdateBookingStatus(ctx, int64(101), models.StatusRejected).
		Return(models.Booking{ID: 101, Status: models.StatusRejected}, nil)

	got, err := svc.DecideBooking(ctx, 1, 101, false)

	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, got.Status)
}

func TestBookingService_DecideBooking_OverlapCheckFails(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	m.users.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1}, nil)
	m.bookings.EXPECT().GetBooking(ctx, int64(101)).
		Return(models.Booking{ID: 101, Status: models.StatusWaiting, Item: models.BookingItem{ID: 10}, ItemOwnerID: 1}, nil)
	m.bookings.EXPECT().HasApprovedOverlapExcept(ctx, int64(10), int64(101), gomock.Any(), gomock.Any()).Return(false, dbErr)

	_, err := svc.DecideBooking(ctx, 1, 101, true)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrBookingOverlap)
}

func TestBookingService_DecideBooking_NotOwner(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	m.users.EXPECT().GetUser(ctx, int64(2)).Return(models.User{ID: 2}, nil)
	m.bookings.EXPECT().GetBooking(ctx, int64(100)).
		Return(models.Booking{ID: 100, Status: models.StatusWaiting, ItemOwnerID: 1}, nil)

	_, err := svc.DecideBooking(ctx, 2, 100, true)

	assert.ErrorIs(t, err, ErrBookingAccessDenied)
}

func TestBookingService_DecideBooking_AlreadyDecided(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	m.users.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1}, nil)
	m.bookings.EXPECT().GetBooking(ctx, int64(100)).
		Return(models.Booking{ID: 100, Status: models.StatusApproved, ItemOwnerID: 1}, nil)

	_, err := svc.DecideBooking(ctx, 1, 100, false)

	assert.ErrorIs(t, err, ErrBookingAlreadyDecided)
}

// ── GetBooking ───────────────────────────────────────────────────────────────

func TestBookingService_GetBooking_Access(t *testing.T) {
	booking := models.Booking{ID: 100, Booker: models.BookingUser{ID: 2}, ItemOwnerID: 1}

	tests := []struct {
		name    string
		userID  int64
		wantErr error
	}{
		{name: "booker", userID: 2},
		{name: "owner", userID: 1},
		{name: "stranger", userID: 3, wantErr: ErrBookingAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestBookingService(t)
			ctx := context.Background()

			m.users.EXPECT().GetUser(ctx, tt.userID).Return(models.User{ID: tt.userID}, nil)
			m.bookings.EXPECT().GetBooking(ctx, int64(100)).Return(booking, nil)

			got, err := svc.GetBooking(ctx, tt.userID, 100)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(100), got.ID)
		})
	}
}

// ── ListBookings ─────────────────────────────────────────────────────────────

func TestBookingService_ListBookings_UnknownState(t *testing.T) {
	svc, _ := newTestBookingService(t)

	_, err := svc.ListBookings(context.Background(), models.BookingQuery{
		UserID: 1, State: "SOMETIME", Page: models.DefaultPage,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownState))
	assert.Equal(t, "Unknown state: SOMETIME", err.Error())
}

func TestBookingService_ListBookings_ZeroSize(t *testing.T) {
	svc, _ := newTestBookingService(t)

	_, err := svc.ListBookings(context.Background(), models.BookingQuery{
		UserID: 1, State: models.StateAll, Page: models.Page{From: 0, Size: 0},
	})

	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestBookingService_ListBookings_EmptyIsNotNil(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	query := models.BookingQuery{UserID: 1, AsOwner: true, State: models.StateFuture, Page: models.DefaultPage}
	m.users.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1}, nil)
	m.bookings.EXPECT().ListBookings(ctx, query, fixedNow).Return(nil, nil)

	got, err := svc.ListBookings(ctx, query)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBookingService_ListBookings_DefaultsToAll(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	m.users.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1}, nil)
	m.bookings.EXPECT().ListBookings(ctx, models.BookingQuery{UserID: 1, State: models.StateAll, Page: models.DefaultPage}, fixedNow).
		Return([]models.Booking{{ID: 1}}, nil)

	got, err := svc.ListBookings(ctx, models.BookingQuery{UserID: 1, Page: models.DefaultPage})

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestBookingService_ListBookings_NormalisesState(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	m.users.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1}, nil)
	m.bookings.EXPECT().ListBookings(ctx, models.BookingQuery{UserID: 1, State: models.StateWaiting, Page: models.DefaultPage}, fixedNow).
		Return([]models.Booking{}, nil)

	_, err := svc.ListBookings(ctx, models.BookingQuery{UserID: 1, State: "waiting", Page: models.DefaultPage})

	require.NoError(t, err)
}
