// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/internal/store"
	"github.com/MKhiriev/shareit/models"
)

type bookingService struct {
	userRepository    store.UserRepository
	itemRepository    store.ItemRepository
	bookingRepository store.BookingRepository

	now    clock
	logger *logger.Logger
}

func NewBookingService(storages *store.Storages, logger *logger.Logger) BookingService {
	return &bookingService{
		userRepository:    storages.UserRepository,
		itemRepository:    storages.ItemRepository,
		bookingRepository: storages.BookingRepository,
		now:               systemClock,
		logger:            logger,
	}
}

// CreateBooking registers a WAITING booking of an available item for
// [req.Start, req.End]. The owner may not book their own item, and the
// period must not touch an approved booking of the same item.
func (s *bookingService) CreateBooking(ctx context.Context, bookerID int64, req models.CreateBookingRequest) (models.Booking, error) {
	log := logger.FromContext(ctx)

	if req.Start == nil || req.End == nil || req.ItemID <= 0 {
		return models.Booking{}, ErrInvalidDataProvided
	}

	if _, err := s.userRepository.GetUser(ctx, bookerID); err != nil {
		return models.Booking{}, err
	}

	item, err := s.itemRepository.GetItem(ctx, req.ItemID)
	if err != nil {
		return models.Booking{}, err
	}

	if item.OwnerID == bookerID {
		return models.Booking{}, ErrOwnerCannotBook
	}
	if !item.Available {
		return models.Booking{}, ErrItemUnavailable
	}

	start, end := models.NewTimestamp(req.Start.Time), models.NewTimestamp(req.End.Time)
	if !start.Before(end.Time) {
		return models.Booking{}, ErrInvalidBookingPeriod
	}

	overlap, err := s.bookingRepository.HasApprovedOverlap(ctx, item.ID, start.Time, end.Time)
	if err != nil {
		return models.Booking{}, fmt.Errorf("error checking booking overlap: %w", err)
	}
	if overlap {
		return models.Booking{}, ErrBookingOverlap
	}

	booking, err := s.bookingRepository.CreateBooking(ctx, models.Booking{
		Start:  start,
		End:    end,
		Status: models.StatusWaiting,
		Item:   models.BookingItem{ID: item.ID},
		Booker: models.BookingUser{ID: bookerID},
	})
	if err != nil {
		log.Err(err).Str("func", "*bookingService.CreateBooking").Int64("item_id", item.ID).Msg("error creating booking")
		return models.Booking{}, fmt.Errorf("error creating booking: %w", err)
	}

	log.Info().Str("func", "*bookingService.CreateBooking").Int64("booking_id", booking.ID).Msg("booking created")
	return booking, nil
}

// DecideBooking approves or rejects a WAITING booking. Only the owner of
// the booked item may decide, and only once.
func (s *bookingService) DecideBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (models.Booking, error) {
	if _, err := s.userRepository.GetUser(ctx, ownerID); err != nil {
		return models.Booking{}, err
	}

	booking, err := s.bookingRepository.GetBooking(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	if booking.ItemOwnerID != ownerID {
		return models.Booking{}, ErrBookingAccessDenied
	}
	if booking.Status != models.StatusWaiting {
		return models.Booking{}, fmt.Errorf("%w: %s", ErrBookingAlreadyDecided, booking.Status)
	}

	status := models.StatusRejected
	if approved {
		// another booking of the item may have been approved since this one was created
		overlap, err := s.bookingRepository.HasApprovedOverlapExcept(ctx, booking.Item.ID, booking.ID, booking.Start.Time, booking.End.Time)
		if err != nil {
			return models.Booking{}, fmt.Errorf("error checking booking overlap: %w", err)
		}
		if overlap {
			return models.Booking{}, ErrBookingOverlap
		}
		status = models.StatusApproved
	}

	decided, err := s.bookingRepository.UpdateBookingStatus(ctx, bookingID, status)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingService.DecideBooking").Int64("booking_id", bookingID).Msg("error updating booking status")
		return models.Booking{}, fmt.Errorf("error updating booking status: %w", err)
	}

	return decided, nil
}

// GetBooking returns the booking to its booker or to the owner of the item.
func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID int64) (models.Booking, error) {
	if _, err := s.userRepository.GetUser(ctx, userID); err != nil {
		return models.Booking{}, err
	}

	booking, err := s.bookingRepository.GetBooking(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	if booking.Booker.ID != userID && booking.ItemOwnerID != userID {
		return models.Booking{}, ErrBookingAccessDenied
	}

	return booking, nil
}

// ListBookings returns the bookings of query.UserID filtered by state,
// newest start first.
func (s *bookingService) ListBookings(ctx context.Context, query models.BookingQuery) ([]models.Booking, error) {
	state, ok := models.ParseBookingState(string(query.State))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownState, query.State)
	}
	query.State = state

	if query.Page.Size == 0 {
		return nil, ErrInvalidPage
	}

	if _, err := s.userRepository.GetUser(ctx, query.UserID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepository.ListBookings(ctx, query, s.now())
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	return bookings, nil
}
