package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shareit/internal/logger"
	"github.com/MKhiriev/shareit/models"
)

var bookingRowColumns = []string{"id", "start_date", "end_date", "status", "item_id", "item_name", "owner_id", "booker_id", "booker_name"}

func newTestBookingRepo(t *testing.T) (*bookingRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &bookingRepository{db: db, logger: logger.Nop()}, mock
}

func TestGetBooking_Success(t *testing.T) {
	repo, mock := newTestBookingRepo(t)
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT b.id, .* FROM bookings b JOIN items i ON i.id = b.item_id JOIN users u ON u.id = b.booker_id WHERE b.id = \\$1").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns).
			AddRow(11, start, start.Add(time.Hour), "WAITING", 2, "Drill", 1, 3, "Bob"))

	b, err := repo.GetBooking(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaiting, b.Status)
	assert.Equal(t, models.BookingItem{ID: 2, Name: "Drill"}, b.Item)
	assert.Equal(t, models.BookingUser{ID: 3, Name: "Bob"}, b.Booker)
	assert.Equal(t, int64(1), b.ItemOwnerID)
	assert.True(t, b.Start.Equal(start))
}

func TestGetBooking_NotFound(t *testing.T) {
	repo, mock := newTestBookingRepo(t)

	mock.ExpectQuery("FROM bookings b").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBooking(context.Background(), 11)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateBookingStatus_NotFound(t *testing.T) {
	repo, mock := newTestBookingRepo(t)

	mock.ExpectExec("UPDATE bookings SET status = \\$1 WHERE id = \\$2").
		WithArgs("APPROVED", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateBookingStatus(context.Background(), 4, models.StatusApproved)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListBookings_QueryError(t *testing.T) {
	repo, mock := newTestBookingRepo(t)

	mock.ExpectQuery("FROM bookings b").WillReturnError(errors.New("boom"))

	_, err := repo.ListBookings(context.Background(), models.BookingQuery{UserID: 1, State: models.StateAll, Page: models.DefaultPage}, time.Now())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListBookings_UnknownState(t *testing.T) {
	repo, _ := newTestBookingRepo(t)

	_, err := repo.ListBookings(context.Background(), models.BookingQuery{UserID: 1, State: "NEVER", Page: models.DefaultPage}, time.Now())
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestHasApprovedOverlap(t *testing.T) {
	repo, mock := newTestBookingRepo(t)

	mock.ExpectQuery("SELECT 1 FROM bookings b WHERE .* LIMIT 1").
		WithArgs(int64(2), "APPROVED", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	found, err := repo.HasApprovedOverlap(context.Background(), 2, time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, found)
}

func TestHasApprovedOverlapExcept(t *testing.T) {
	repo, mock := newTestBookingRepo(t)

	mock.ExpectQuery("SELECT 1 FROM bookings b WHERE .* AND b.id <> \\$5 LIMIT 1").
		WithArgs(int64(2), "APPROVED", sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	found, err := repo.HasApprovedOverlapExcept(context.Background(), 2, 7, time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApprovedBookingsByItems_NoItemsSkipsQuery(t *testing.T) {
	repo, mock := newTestBookingRepo(t)

	bookings, err := repo.ListApprovedBookingsByItems(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── item repository ───────────────────────────────────────────────────────────

func TestCreateItem_WithRequest(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &itemRepository{db: db, logger: logger.Nop()}
	reqID := int64(5)

	mock.ExpectQuery("INSERT INTO items \\(name,description,is_available,owner_id,request_id\\)").
		WithArgs("Ladder", "3m", true, int64(1), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	item, err := repo.CreateItem(context.Background(), models.Item{Name: "Ladder", Description: "3m", Available: true, OwnerID: 1, RequestID: &reqID})
	require.NoError(t, err)
	assert.Equal(t, int64(10), item.ID)
}

func TestGetItem_NullRequest(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &itemRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("SELECT id, name, description, is_available, owner_id, request_id FROM items WHERE id = \\$1").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(10, "Ladder", "3m", true, 1, nil))

	item, err := repo.GetItem(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, item.RequestID)
	assert.True(t, item.Available)
}

func TestDeleteItem_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &itemRepository{db: db, logger: logger.Nop()}

	mock.ExpectExec("DELETE FROM items WHERE id = \\$1").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteItem(context.Background(), 10), ErrItemNotFound)
}

// ── request repository ────────────────────────────────────────────────────────

func TestGetRequest_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &itemRequestRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("SELECT id, description, requester_id, created FROM requests WHERE id = \\$1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRequest(context.Background(), 3)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestListRequestsOfOthers_Pagination(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &itemRequestRepository{db: db, logger: logger.Nop()}
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM requests WHERE requester_id <> \\$1 ORDER BY created DESC, id DESC LIMIT 5 OFFSET 10").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(requestColumns).AddRow(1, "Need a tent", 3, created))

	requests, err := repo.ListRequestsOfOthers(context.Background(), 2, models.Page{From: 10, Size: 5})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, int64(3), requests[0].RequesterID)
}
