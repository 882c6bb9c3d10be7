package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/shareit/internal/mock"
	"github.com/MKhiriev/shareit/internal/store"
	"go.uber.org/mock/gomock"
)

// fixedNow is the clock used by every service test.
var fixedNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type storeMocks struct {
	users    *mock.MockUserRepository
	items    *mock.MockItemRepository
	comments *mock.MockCommentRepository
	bookings *mock.MockBookingRepository
	requests *mock.MockItemRequestRepository
	pinger   *mock.MockPinger
}

func newStoreMocks(t *testing.T) (*store.Storages, storeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := storeMocks{
		users:    mock.NewMockUserRepository(ctrl),
		items:    mock.NewMockItemRepository(ctrl),
		comments: mock.NewMockCommentRepository(ctrl),
		bookings: mock.NewMockBookingRepository(ctrl),
		requests: mock.NewMockItemRequestRepository(ctrl),
		pinger:   mock.NewMockPinger(ctrl),
	}

	return &store.Storages{
		UserRepository:        m.users,
		ItemRepository:        m.items,
		CommentRepository:     m.comments,
		BookingRepository:     m.bookings,
		ItemRequestRepository: m.requests,
		Pinger:                m.pinger,
	}, m
}

func ptr[T any](v T) *T { return &v }
