package gateway

import (
	"time"

	"github.com/MKhiriev/shareit/internal/handler/middleware"
	"github.com/MKhiriev/shareit/models"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Limits configures the gateway's per-client rate limiter and request
// deadline. A zero Rate disables limiting.
type Limits struct {
	Rate           float64
	Burst          int
	RequestTimeout time.Duration
}

func (h *Handler) Init(limits Limits) *chi.Mux {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.TraceID(h.logger))
	router.Use(middleware.Logging)
	router.Use(middleware.RateLimit(limits.Rate, limits.Burst))
	router.Use(middleware.GZip)
	router.Use(middleware.Deadline(limits.RequestTimeout))

	router.Route("/users", func(r chi.Router) {
		r.Post("/", h.forward("createUser", jsonBody[models.CreateUserRequest]()))
		r.Get("/", h.forward("listUsers"))
		r.Get("/{userId}", h.forward("getUser", pathID("userId")))
		r.Patch("/{userId}", h.forward("updateUser", pathID("userId"), jsonBody[models.UpdateUserRequest]()))
		r.Delete("/{userId}", h.forward("deleteUser", pathID("userId")))
	})

	router.Group(func(r chi.Router) {
		r.Get("/items/search", h.forward("searchItems"))

		r.With(middleware.RequireUserID).Route("/items", func(r chi.Router) {
			r.Post("/", h.forward("createItem", jsonBody[models.CreateItemRequest]()))
			r.Get("/", h.forward("listOwnerItems"))
			r.Get("/{itemId}", h.forward("getItem", pathID("itemId")))
			r.Patch("/{itemId}", h.forward("updateItem", pathID("itemId"), jsonBody[models.UpdateItemRequest]()))
			r.Delete("/{itemId}", h.forward("deleteItem", pathID("itemId")))
			r.Post("/{itemId}/comment", h.forward("addComment", pathID("itemId"), jsonBody[models.CreateCommentRequest]()))
		})

		r.With(middleware.RequireUserID).Route("/bookings", func(r chi.Router) {
			r.Post("/", h.forward("createBooking", jsonBody[models.CreateBookingRequest]()))
			r.Get("/", h.forward("listBookerBookings", bookingState, pagination))
			r.Get("/owner", h.forward("listOwnerBookings", bookingState, pagination))
			r.Get("/{bookingId}", h.forward("getBooking", pathID("bookingId")))
			r.Patch("/{bookingId}", h.forward("decideBooking", pathID("bookingId"), approved))
		})

		r.With(middleware.RequireUserID).Route("/requests", func(r chi.Router) {
			r.Post("/", h.forward("createRequest", jsonBody[models.CreateItemRequestRequest]()))
			r.Get("/", h.forward("listOwnRequests"))
			r.Get("/all", h.forward("listOtherRequests", pagination))
			r.Get("/{requestId}", h.forward("getRequest", pathID("requestId")))
		})
	})

	router.NotFound(middleware.NotFound)
	router.MethodNotAllowed(middleware.CheckHTTPMethod(router))

	return router
}
