package store

import (
	"context"
	"time"

	"github.com/MKhiriev/shareit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists users.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	// EmailTaken reports whether email belongs to a user other than exceptUserID.
	EmailTaken(ctx context.Context, email string, exceptUserID int64) (bool, error)
}

// ItemRepository persists items.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItem(ctx context.Context, itemID int64) (models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error
	ListItemsByOwner(ctx context.Context, ownerID int64) ([]models.Item, error)
	// SearchAvailableItems matches text case-insensitively against name and
	// description of available items.
	SearchAvailableItems(ctx context.Context, text string) ([]models.Item, error)
	ListItemsByRequests(ctx context.Context, requestIDs []int64) ([]models.RequestItem, error)
}

// CommentRepository persists comments. Comments are append-only.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListCommentsByItems(ctx context.Context, itemIDs []int64) ([]models.Comment, error)
}

// BookingRepository persists bookings. Bookings are never deleted directly.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	GetBooking(ctx context.Context, bookingID int64) (models.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID int64, status models.BookingStatus) (models.Booking, error)
	ListBookings(ctx context.Context, query models.BookingQuery, now time.Time) ([]models.Booking, error)
	// HasApprovedOverlap reports whether an approved booking of the item
	// intersects [start, end] with both endpoints inclusive.
	HasApprovedOverlap(ctx context.Context, itemID int64, start, end time.Time) (bool, error)
	// HasApprovedOverlapExcept is HasApprovedOverlap ignoring the booking
	// with bookingID.
	HasApprovedOverlapExcept(ctx context.Context, itemID, bookingID int64, start, end time.Time) (bool, error)
	// HasFinishedApprovedBooking reports whether the booker holds an approved
	// booking of the item that ended before now.
	HasFinishedApprovedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
	ListApprovedBookingsByItems(ctx context.Context, itemIDs []int64) ([]models.Booking, error)
}

// ItemRequestRepository persists item requests.
type ItemRequestRepository interface {
	CreateRequest(ctx context.Context, request models.ItemRequest) (models.ItemRequest, error)
	GetRequest(ctx context.Context, requestID int64) (models.ItemRequest, error)
	ListRequestsByRequester(ctx context.Context, requesterID int64) ([]models.ItemRequest, error)
	ListRequestsOfOthers(ctx context.Context, requesterID int64, page models.Page) ([]models.ItemRequest, error)
}

// Pinger reports database liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}
