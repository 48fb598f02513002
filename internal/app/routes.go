package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("movie-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(middleware.Logger)
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", app.Signup)
		r.Post("/login", app.Login)
		r.Post("/logout", app.Logout)
		r.With(app.requireAuthentication).Get("/me", app.GetCurrentUser)
	})

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Get("/movies", app.GetMoviesHandler)
		r.Get("/showtimes/{showtimeId}/seats", app.GetSeatMapByShowtime)

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", app.CreateBookingHandler)
			r.Get("/", app.GetBookingHistoryHandler)
			r.Delete("/{bookingId}", app.CancelBookingHandler)
		})
	})

	return r
}
