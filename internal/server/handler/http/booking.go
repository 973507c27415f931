package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voyage-travel/storefront/internal/api"
	"github.com/voyage-travel/storefront/internal/booking"
	"github.com/voyage-travel/storefront/internal/models"
	"github.com/voyage-travel/storefront/internal/session"
)

// detailsData feeds the package details template.
type detailsData struct {
	Package models.Package
	// Today bounds the travel-date input.
	Today string
	// Form echoes the entered booking details back after a validation
	// failure.
	Form struct {
		Date     string
		Guests   string
		Phone    string
		Requests string
	}
	FieldErrors map[string]string
}

// PackageDetails renders one package with its booking form.
func (h *Handler) PackageDetails(w http.ResponseWriter, r *http.Request) {
	h.Packages.Ensure(r.Context())
	pkg, ok := h.Packages.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Redirect(w, r, "/packages", http.StatusSeeOther)
		return
	}

	data := detailsData{Package: pkg, Today: time.Now().Format("2006-01-02")}
	data.Form.Guests = "2"
	h.render(w, r, "package_details.html", data)
}

// StartBooking validates the booking details form and, for an
// authenticated user, parks the draft in memory and moves on to payment.
// An anonymous visitor is sent to the user login instead; the draft is
// not kept across that navigation.
func (h *Handler) StartBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Packages.Ensure(ctx)
	pkg, ok := h.Packages.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Redirect(w, r, "/packages", http.StatusSeeOther)
		return
	}

	st := session.FromContext(ctx)
	if st.Role != session.RoleUser {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	data := detailsData{Package: pkg, Today: time.Now().Format("2006-01-02")}
	data.Form.Date = r.PostFormValue("date")
	data.Form.Guests = r.PostFormValue("guests")
	data.Form.Phone = r.PostFormValue("phone")
	data.Form.Requests = r.PostFormValue("requests")

	if errs := booking.ValidateDetails(data.Form.Date, data.Form.Guests, data.Form.Phone, time.Now()); len(errs) > 0 {
		data.FieldErrors = errs
		h.render(w, r, "package_details.html", data)
		return
	}
	guests, _ := strconv.Atoi(data.Form.Guests)

	draft := &booking.Draft{
		PackageID:    pkg.ID,
		PackageTitle: pkg.Title,
		Price:        pkg.Price,
		Date:         data.Form.Date,
		Guests:       guests,
		Phone:        data.Form.Phone,
		Requests:     data.Form.Requests,
	}
	if st.Identity != nil {
		draft.ClientName = st.Identity.Name
		draft.ClientEmail = st.Identity.Email
	}

	// A restarted booking replaces the session's previous draft; drop
	// the old body so abandoned drafts do not pile up.
	if prev := h.Sessions.DraftID(r); prev != "" {
		h.Drafts.Delete(prev)
	}

	draftID := uuid.NewString()
	h.Drafts.Put(draftID, draft)
	if err := h.Sessions.SetDraftID(w, r, draftID); err != nil {
		h.Log.Error("failed to bind booking draft to session", zap.Error(err))
		http.Redirect(w, r, "/packages", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/payment", http.StatusSeeOther)
}

// paymentData feeds the payment template.
type paymentData struct {
	Draft *booking.Draft
	Total float64
	Card  booking.Card
	// FieldErrors holds card validation messages keyed by field.
	FieldErrors map[string]string
}

// draftForRequest resolves the session's in-progress draft.
func (h *Handler) draftForRequest(r *http.Request) (*booking.Draft, string, bool) {
	id := h.Sessions.DraftID(r)
	if id == "" {
		return nil, "", false
	}
	d, ok := h.Drafts.Get(id)
	return d, id, ok
}

// PaymentPage renders the checkout for the session's draft. Without a
// draft there is nothing to pay for, so the catalog is the fallback.
func (h *Handler) PaymentPage(w http.ResponseWriter, r *http.Request) {
	draft, _, ok := h.draftForRequest(r)
	if !ok {
		http.Redirect(w, r, "/packages", http.StatusSeeOther)
		return
	}

	data := paymentData{Draft: draft, Total: draft.Total()}
	data.Card.Name = draft.ClientName
	h.render(w, r, "payment.html", data)
}

// successData feeds the confirmation template.
type successData struct {
	Draft   *booking.Draft
	Booking models.BookingRequest
}

// SubmitPayment validates the card, waits out the simulated processing
// delay, and submits the finalized booking. A card validation failure
// makes no API call; an API failure re-renders the form with the draft
// retained so the user can retry.
func (h *Handler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	draft, draftID, ok := h.draftForRequest(r)
	if !ok {
		http.Redirect(w, r, "/packages", http.StatusSeeOther)
		return
	}

	card := booking.Card{
		Name:   r.PostFormValue("cardName"),
		Number: r.PostFormValue("cardNumber"),
		Expiry: r.PostFormValue("expiry"),
		CVC:    r.PostFormValue("cvc"),
	}
	data := paymentData{Draft: draft, Total: draft.Total(), Card: card}

	if errs := card.Validate(); len(errs) > 0 {
		data.FieldErrors = errs
		h.render(w, r, "payment.html", data)
		return
	}

	// Simulated processing; no real gateway is involved.
	time.Sleep(h.PaymentDelay)

	form := api.BookingForm{
		ClientName:    draft.ClientName,
		ClientEmail:   draft.ClientEmail,
		ClientPhone:   draft.Phone,
		PackageName:   draft.PackageTitle,
		Date:          draft.Date,
		Guests:        draft.Guests,
		Requests:      draft.Requests,
		TotalAmount:   draft.Total(),
		PaymentStatus: "Completed",
		TransactionID: booking.NewTransactionID(),
	}
	created, err := h.Requests.Create(ctx, form)
	if err != nil {
		h.renderError(w, r, "payment.html", data, "Payment failed. Please check details and try again.")
		return
	}

	h.Drafts.Delete(draftID)
	if err := h.Sessions.SetDraftID(w, r, ""); err != nil {
		h.Log.Error("failed to clear booking draft", zap.Error(err))
	}
	h.render(w, r, "payment_success.html", successData{Draft: draft, Booking: created})
}

// bookingsData feeds the my-bookings template.
type bookingsData struct {
	Bookings []models.BookingRequest
}

// MyBookings lists the authenticated user's booking requests. This is
// user-scoped data, so it is fetched per request instead of living in a
// process-wide cache.
func (h *Handler) MyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.API.MyBookings(r.Context())
	if err != nil {
		h.Log.Error("failed to load user bookings", zap.Error(err))
		bookings = nil
	}
	h.render(w, r, "my_bookings.html", bookingsData{Bookings: bookings})
}

// CancelBooking moves one of the user's bookings to Cancelled. Only
// pending and approved bookings qualify.
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	bookings, err := h.API.MyBookings(ctx)
	if err != nil {
		h.renderError(w, r, "my_bookings.html", bookingsData{}, "Could not cancel the booking. Please try again.")
		return
	}
	var target *models.BookingRequest
	for i := range bookings {
		if bookings[i].ID == id {
			target = &bookings[i]
			break
		}
	}
	if target == nil || !target.Cancellable() {
		http.Redirect(w, r, "/my-bookings", http.StatusSeeOther)
		return
	}

	updated, err := h.API.UpdateRequestStatus(ctx, id, models.StatusCancelled)
	if err != nil {
		h.renderError(w, r, "my_bookings.html", bookingsData{Bookings: bookings},
			apiMessage(err, "Could not cancel the booking. Please try again."))
		return
	}
	// Keep the admin view in step when its cache is already warm.
	h.Requests.Patch(updated)
	http.Redirect(w, r, "/my-bookings", http.StatusSeeOther)
}
