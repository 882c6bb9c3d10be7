package service

import (
	"context"

	"github.com/MKhiriev/shareit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type UserService interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID int64, patch models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type ItemService interface {
	CreateItem(ctx context.Context, ownerID int64, req models.CreateItemRequest) (models.ItemDetails, error)
	// GetItem returns the item with comments; last and next bookings are
	// filled only when userID owns the item.
	GetItem(ctx context.Context, userID, itemID int64) (models.ItemDetails, error)
	UpdateItem(ctx context.Context, ownerID, itemID int64, patch models.UpdateItemRequest) (models.ItemDetails, error)
	DeleteItem(ctx context.Context, ownerID, itemID int64) error
	ListOwnerItems(ctx context.Context, ownerID int64) ([]models.ItemDetails, error)
	SearchItems(ctx context.Context, text string) ([]models.ItemDetails, error)
	AddComment(ctx context.Context, authorID, itemID int64, req models.CreateCommentRequest) (models.Comment, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, bookerID int64, req models.CreateBookingRequest) (models.Booking, error)
	DecideBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (models.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID int64) (models.Booking, error)
	ListBookings(ctx context.Context, query models.BookingQuery) ([]models.Booking, error)
}

type ItemRequestService interface {
	CreateRequest(ctx context.Context, requesterID int64, req models.CreateItemRequestRequest) (models.ItemRequest, error)
	ListOwnRequests(ctx context.Context, requesterID int64) ([]models.ItemRequest, error)
	ListOtherRequests(ctx context.Context, requesterID int64, page models.Page) ([]models.ItemRequest, error)
	GetRequest(ctx context.Context, userID, requestID int64) (models.ItemRequest, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the service can reach its storage.
type HealthService interface {
	Check(ctx context.Context) error
}
