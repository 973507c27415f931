package http

import (
	"net/http"

	"github.com/voyage-travel/storefront/internal/session"
)

// loginData feeds the login and recovery templates.
type loginData struct {
	Email string
	// OtpSent flips the registration form into its verification phase.
	OtpSent bool
	Name    string
	// Password is echoed through the OTP verification phase only; the
	// storefront never stores it.
	Password string
}

// UserLoginPage renders the end-user login form.
func (h *Handler) UserLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", loginData{})
}

// UserLogin exchanges credentials with the API and activates the user
// role. The user slot displaces any admin token.
func (h *Handler) UserLogin(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	token, err := h.API.LoginUser(r.Context(), email, password)
	if err != nil {
		h.renderError(w, r, "login.html", loginData{Email: email}, apiMessage(err, "Invalid credentials."))
		return
	}
	if err := h.Sessions.LoginAs(w, r, session.RoleUser, token); err != nil {
		h.renderError(w, r, "login.html", loginData{Email: email}, "Login failed. Please try again.")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// UserRegisterPage renders the registration form in its initial phase.
func (h *Handler) UserRegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register.html", loginData{})
}

// SendRegisterOTP starts registration: the API mails a one-time code and
// the form flips into its verification phase.
func (h *Handler) SendRegisterOTP(w http.ResponseWriter, r *http.Request) {
	data := loginData{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if data.Name == "" || data.Email == "" || data.Password == "" {
		h.renderError(w, r, "register.html", data, "Please fill in name, email, and password.")
		return
	}

	if err := h.API.SendRegisterOTP(r.Context(), data.Name, data.Email, data.Password); err != nil {
		h.renderError(w, r, "register.html", data, apiMessage(err, "Could not send the verification code."))
		return
	}
	data.OtpSent = true
	h.render(w, r, "register.html", data)
}

// VerifyRegister completes registration with the mailed code.
func (h *Handler) VerifyRegister(w http.ResponseWriter, r *http.Request) {
	data := loginData{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		OtpSent:  true,
	}
	otp := r.PostFormValue("otp")

	if err := h.API.VerifyRegister(r.Context(), data.Name, data.Email, data.Password, otp); err != nil {
		h.renderError(w, r, "register.html", data, apiMessage(err, "Verification failed. Check the code and try again."))
		return
	}
	http.Redirect(w, r, "/login?flash=Registration+complete.+Please+log+in.", http.StatusSeeOther)
}

// AdminLoginPage renders the admin login form.
func (h *Handler) AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin_login.html", loginData{})
}

// AdminLogin exchanges admin credentials with the API and activates the
// admin role. The admin slot displaces any user token.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	token, err := h.API.LoginAdmin(r.Context(), email, password)
	if err != nil {
		h.renderError(w, r, "admin_login.html", loginData{Email: email}, apiMessage(err, "Invalid credentials."))
		return
	}
	if err := h.Sessions.LoginAs(w, r, session.RoleAdmin, token); err != nil {
		h.renderError(w, r, "admin_login.html", loginData{Email: email}, "Login failed. Please try again.")
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// AdminForgotPage renders the admin password recovery form.
func (h *Handler) AdminForgotPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin_forgot_password.html", loginData{})
}

// AdminSendResetOTP mails a recovery code and moves on to the reset form.
func (h *Handler) AdminSendResetOTP(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	if email == "" {
		h.renderError(w, r, "admin_forgot_password.html", loginData{}, "Please enter your email.")
		return
	}

	if err := h.API.SendAdminResetOTP(r.Context(), email); err != nil {
		h.renderError(w, r, "admin_forgot_password.html", loginData{Email: email}, apiMessage(err, "Could not send the recovery code."))
		return
	}
	h.render(w, r, "admin_reset_password.html", loginData{Email: email, OtpSent: true})
}

// AdminResetPage renders the reset form directly, for recovery links.
func (h *Handler) AdminResetPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin_reset_password.html", loginData{Email: r.URL.Query().Get("email")})
}

// AdminResetPassword completes admin password recovery.
func (h *Handler) AdminResetPassword(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	otp := r.PostFormValue("otp")
	newPassword := r.PostFormValue("newPassword")

	if err := h.API.ResetAdminPassword(r.Context(), email, otp, newPassword); err != nil {
		h.renderError(w, r, "admin_reset_password.html", loginData{Email: email, OtpSent: true},
			apiMessage(err, "Reset failed. Check the code and try again."))
		return
	}
	http.Redirect(w, r, "/admin/login?flash=Password+reset.+Please+log+in.", http.StatusSeeOther)
}

// Logout clears both role slots and returns to the landing page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Logout(w, r); err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/landing", http.StatusSeeOther)
}
