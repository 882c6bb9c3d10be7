package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/models"
)

// bookingRepository is the SQL implementation of [BookingRepository]. Reads
// join "items" and "users" so a booking always comes back with the item name,
// its owner and the booker name.
type bookingRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBooking inserts the booking and reads it back with its joined fields.
func (r *bookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	insert := r.db.builder.
		Insert(booking.TableName()).
		Columns("start_date", "end_date", "item_id", "booker_id", "status").
		Values(booking.Start, booking.End, booking.Item.ID, booking.Booker.ID, string(booking.Status))

	id, err := r.db.insertReturningID(ctx, insert)
	if err != nil {
		log.Err(err).
			Str("func", "*bookingRepository.CreateBooking").
			Int64("item_id", booking.Item.ID).
			Int64("booker_id", booking.Booker.ID).
			Str("class", r.db.errorClassificator.Classify(err).String()).
			Msg("error inserting booking")
		return models.Booking{}, err
	}

	return r.GetBooking(ctx, id)
}

func (r *bookingRepository) GetBooking(ctx context.Context, bookingID int64) (models.Booking, error) {
	query, args, err := selectBookings(r.db.builder).Where(sq.Eq{"b.id": bookingID}).ToSql()
	if err != nil {
		return models.Booking{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingRepository.GetBooking").Int64("booking_id", bookingID).Msg("error scanning booking")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return booking, nil
}

func (r *bookingRepository) UpdateBookingStatus(ctx context.Context, bookingID int64, status models.BookingStatus) (models.Booking, error) {
	update := r.db.builder.
		Update(models.Booking{}.TableName()).
		Set("status", string(status)).
		Where(sq.Eq{"id": bookingID})

	affected, err := r.db.execAffected(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingRepository.UpdateBookingStatus").Int64("booking_id", bookingID).Msg("error updating booking")
		return models.Booking{}, err
	}
	if affected == 0 {
		return models.Booking{}, ErrBookingNotFound
	}

	return r.GetBooking(ctx, bookingID)
}

func (r *bookingRepository) ListBookings(ctx context.Context, query models.BookingQuery, now time.Time) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	q, args, err := buildListBookingsQuery(r.db.builder, query, now)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.ListBookings").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*bookingRepository.ListBookings").
			Int64("user_id", query.UserID).
			Bool("as_owner", query.AsOwner).
			Str("state", string(query.State)).
			Msg("error querying bookings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collect(rows, scanBooking)
}

func (r *bookingRepository) HasApprovedOverlap(ctx context.Context, itemID int64, start, end time.Time) (bool, error) {
	found, err := r.db.exists(ctx, buildOverlapQuery(r.db.builder, itemID, start, end))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingRepository.HasApprovedOverlap").Int64("item_id", itemID).Msg("error checking overlap")
		return false, err
	}

	return found, nil
}

func (r *bookingRepository) HasApprovedOverlapExcept(ctx context.Context, itemID, bookingID int64, start, end time.Time) (bool, error) {
	found, err := r.db.exists(ctx, buildOverlapExceptQuery(r.db.builder, itemID, bookingID, start, end))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingRepository.HasApprovedOverlapExcept").Int64("booking_id", bookingID).Msg("error checking overlap")
		return false, err
	}
	return found, nil
}

func (r *bookingRepository) HasFinishedApprovedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	found, err := r.db.exists(ctx, buildFinishedBookingQuery(r.db.builder, itemID, bookerID, now))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingRepository.HasFinishedApprovedBooking").Int64("item_id", itemID).Msg("error checking finished booking")
		return false, err
	}

	return found, nil
}

// ListApprovedBookingsByItems returns approved bookings of the given items
// ordered by start, used to derive each item's last and next booking.
func (r *bookingRepository) ListApprovedBookingsByItems(ctx context.Context, itemIDs []int64) ([]models.Booking, error) {
	if len(itemIDs) == 0 {
		return []models.Booking{}, nil
	}

	query, args, err := selectBookings(r.db.builder).
		Where(sq.Eq{"b.item_id": itemIDs, "b.status": string(models.StatusApproved)}).
		OrderBy("b.start_date", "b.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingRepository.ListApprovedBookingsByItems").Msg("error querying bookings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collect(rows, scanBooking)
}
