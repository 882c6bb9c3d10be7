package http

import (
	"time"

	"github.com/MKhiriev/shareit/internal/handler/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. A positive requestTimeout bounds every request
// context.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.TraceID(h.logger))
	router.Use(middleware.Logging)
	router.Use(middleware.GZip)
	router.Use(middleware.Deadline(requestTimeout))

	router.Get("/version", h.getServerVersion)

	router.Route("/users", func(r chi.Router) {
		r.Post("/", h.createUser)
		r.Get("/", h.listUsers)
		r.Get("/{userId}", h.getUser)
		r.Patch("/{userId}", h.updateUser)
		r.Delete("/{userId}", h.deleteUser)
	})

	// routes acting on behalf of the X-Sharer-User-Id caller
	router.Group(func(r chi.Router) {
		r.Get("/items/search", h.searchItems)

		r.With(middleware.RequireUserID).Route("/items", func(r chi.Router) {
			r.Post("/", h.createItem)
			r.Get("/", h.listOwnerItems)
			r.Get("/{itemId}", h.getItem)
			r.Patch("/{itemId}", h.updateItem)
			r.Delete("/{itemId}", h.deleteItem)
			r.Post("/{itemId}/comment", h.addComment)
		})

		r.With(middleware.RequireUserID).Route("/bookings", func(r chi.Router) {
			r.Post("/", h.createBooking)
			r.Get("/", h.listBookerBookings)
			r.Get("/owner", h.listOwnerBookings)
			r.Get("/{bookingId}", h.getBooking)
			r.Patch("/{bookingId}", h.decideBooking)
		})

		r.With(middleware.RequireUserID).Route("/requests", func(r chi.Router) {
			r.Post("/", h.createRequest)
			r.Get("/", h.listOwnRequests)
			r.Get("/all", h.listOtherRequests)
			r.Get("/{requestId}", h.getRequest)
		})
	})

	router.NotFound(middleware.NotFound)
	router.MethodNotAllowed(middleware.CheckHTTPMethod(router))

	return router
}
