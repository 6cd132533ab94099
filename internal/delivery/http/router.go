package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "tutorly/docs"
	"tutorly/internal/delivery/http/controllers"
	"tutorly/internal/delivery/http/helpers"
	"tutorly/internal/delivery/http/middleware"
	"tutorly/internal/domain"
)

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	Auth         *controllers.AuthController
	Tutors       *controllers.TutorController
	Reservations *controllers.ReservationController
	Admin        *controllers.AdminController

	TokenVerifier  domain.TokenVerifier
	BookingLimiter *middleware.RateLimiter
	Metrics        http.Handler
}

// NewRouter builds the HTTP route table. Cross-cutting middleware (CORS,
// request logging) wraps the returned mux at server construction.
func NewRouter(d RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	authed := middleware.RequireAuth(d.TokenVerifier)
	tutorOnly := middleware.RequireRole(domain.RoleTutor)
	studentOnly := middleware.RequireRole(domain.RoleStudent)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// Auth
	mux.HandleFunc("POST /auth/signup", d.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", d.Auth.Login)

	// Tutor directory and availability
	mux.HandleFunc("GET /tutors", d.Tutors.List)
	mux.HandleFunc("GET /tutors/{tutorID}", d.Tutors.Get)
	mux.HandleFunc("GET /tutors/{tutorID}/slots", d.Tutors.ListSlots)
	mux.HandleFunc("POST /tutors/{tutorID}/slots", authed(tutorOnly(d.Tutors.AddSlot)))
	mux.HandleFunc("DELETE /tutors/{tutorID}/slots/{slotID}", authed(tutorOnly(d.Tutors.RemoveSlot)))

	// Booking and sessions
	mux.HandleFunc("POST /tutors/{tutorID}/slots/{slotID}/book",
		authed(studentOnly(d.BookingLimiter.Limit(d.Reservations.Book))))
	mux.HandleFunc("GET /sessions", authed(d.Reservations.List))
	mux.HandleFunc("GET /sessions/{sessionID}", authed(d.Reservations.Get))
	mux.HandleFunc("POST /sessions/{sessionID}/complete", authed(d.Reservations.Complete))

	// Admin moderation
	mux.HandleFunc("PATCH /admin/tutors/{tutorID}/status", authed(adminOnly(d.Admin.UpdateTutorStatus)))

	// Operational endpoints
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics)
	}
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
