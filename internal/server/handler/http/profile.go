package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/voyage-travel/storefront/internal/api"
	"github.com/voyage-travel/storefront/internal/models"
)

// uploadLimit bounds multipart form memory for photo uploads.
const uploadLimit = 16 << 20

// profileData feeds the profile template.
type profileData struct {
	Profile  models.Profile
	Bookings []models.BookingRequest
}

// MyProfile renders the user's profile with a booking summary. Both reads
// degrade independently.
func (h *Handler) MyProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := profileData{}

	profile, err := h.API.Profile(ctx)
	if err != nil {
		h.Log.Error("failed to load profile", zap.Error(err))
	} else {
		data.Profile = profile
	}

	bookings, err := h.API.MyBookings(ctx)
	if err != nil {
		h.Log.Error("failed to load profile bookings", zap.Error(err))
	} else {
		data.Bookings = bookings
	}

	h.render(w, r, "my_profile.html", data)
}

// UpdateProfile submits profile edits, forwarding an uploaded photo as
// multipart form data.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(uploadLimit); err != nil {
		h.renderError(w, r, "my_profile.html", profileData{}, "Invalid form submission.")
		return
	}

	form := api.ProfileForm{
		Name: r.PostFormValue("name"),
		Bio:  r.PostFormValue("bio"),
	}
	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		form.Photo = &api.Upload{Field: "photo", Name: header.Filename, Content: file}
	}

	if _, err := h.API.UpdateProfile(r.Context(), form); err != nil {
		h.renderError(w, r, "my_profile.html", profileData{}, apiMessage(err, "Could not update your profile."))
		return
	}
	http.Redirect(w, r, "/my-profile?flash=Profile+updated.", http.StatusSeeOther)
}

// ChangePassword changes the user's password through the API.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	current := r.PostFormValue("currentPassword")
	next := r.PostFormValue("newPassword")
	if current == "" || next == "" {
		h.renderError(w, r, "my_profile.html", profileData{}, "Both the current and the new password are required.")
		return
	}

	if err := h.API.ChangePassword(r.Context(), current, next); err != nil {
		h.renderError(w, r, "my_profile.html", profileData{}, apiMessage(err, "Could not change your password."))
		return
	}
	http.Redirect(w, r, "/my-profile?flash=Password+changed.", http.StatusSeeOther)
}
