package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	"github.com/voyage-travel/storefront/internal/middleware"
	"github.com/voyage-travel/storefront/internal/session"
)

// NewRouter constructs the storefront's HTTP handler.
//
// Middleware chain (applied in order):
//  1. Recoverer                    — turns panics into 500s
//  2. WithRequestLogging(logger)   — logs each request
//  3. WithSession(sessions)        — resolves role/token/identity into ctx
//  4. RoleBounce                   — pins admins to /admin, bounces users
//     off entry views
//
// Protected groups apply RequireUser / RequireAdmin on top; unknown paths
// redirect to the public home. When csrfKey is non-empty the whole router
// is wrapped in CSRF protection.
func NewRouter(h *Handler, sessions *session.Manager, logger *zap.Logger, csrfKey []byte) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithSession(sessions))
	r.Use(middleware.RoleBounce)

	// Static assets
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Public pages
	r.Get("/", h.Home)
	r.Post("/testimonials", h.AddTestimonial)
	r.Get("/packages", h.PackagesPage)
	r.Get("/packages/{id}", h.PackageDetails)
	r.Post("/packages/{id}/book", h.StartBooking)
	r.Get("/about", h.About)
	r.Get("/contact", h.ContactPage)
	r.Post("/contact", h.SubmitContact)
	r.Get("/landing", h.Landing)

	// Authentication
	r.Get("/login", h.UserLoginPage)
	r.Post("/login", h.UserLogin)
	r.Get("/register", h.UserRegisterPage)
	r.Post("/register/send-otp", h.SendRegisterOTP)
	r.Post("/register/verify", h.VerifyRegister)
	r.Post("/logout", h.Logout)

	// User-protected pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/my-bookings", h.MyBookings)
		r.Post("/my-bookings/{id}/cancel", h.CancelBooking)
		r.Get("/my-profile", h.MyProfile)
		r.Post("/my-profile/update", h.UpdateProfile)
		r.Post("/my-profile/password", h.ChangePassword)
		r.Get("/payment", h.PaymentPage)
		r.Post("/payment", h.SubmitPayment)
	})

	// Admin section: login and password recovery are open, everything
	// else requires the admin role.
	r.Route("/admin", func(r chi.Router) {
		r.Get("/login", h.AdminLoginPage)
		r.Post("/login", h.AdminLogin)
		r.Get("/forgot-password", h.AdminForgotPage)
		r.Post("/forgot-password", h.AdminSendResetOTP)
		r.Get("/reset-password", h.AdminResetPage)
		r.Post("/reset-password", h.AdminResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/", h.AdminDashboard)
			r.Get("/packages", h.AdminPackages)
			r.Post("/packages/save", h.AdminSavePackage)
			r.Post("/packages/{id}/delete", h.AdminDeletePackage)
			r.Get("/requests", h.AdminRequests)
			r.Get("/requests/{id}/invoice", h.AdminInvoice)
			r.Post("/requests/{id}/status", h.AdminUpdateRequestStatus)
			r.Post("/requests/{id}/delete", h.AdminDeleteRequest)
			r.Get("/team", h.AdminTeam)
			r.Post("/team/save", h.AdminSaveTeamMember)
			r.Post("/team/{id}/delete", h.AdminDeleteTeamMember)
			r.Get("/responses", h.AdminResponses)
			r.Post("/responses/{id}/respond", h.AdminRespond)
			r.Get("/users", h.AdminUsers)
			r.Post("/users/{id}/toggle-block", h.AdminToggleBlock)
		})
	})

	// Unknown paths go back to the public home.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/", http.StatusSeeOther)
	})

	if len(csrfKey) == 0 {
		logger.Warn("csrf protection disabled: no signing key configured")
		return r
	}
	return csrf.Protect(csrfKey, csrf.Path("/"))(r)
}
