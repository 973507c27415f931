package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/voyage-travel/storefront/internal/api"
	"github.com/voyage-travel/storefront/internal/models"
	"github.com/voyage-travel/storefront/internal/session"
)

// homeData feeds the home template.
type homeData struct {
	Featured     []models.Package
	Testimonials []models.Testimonial
}

// Home renders the public home page. Testimonials are fetched per render
// rather than cached: the home page is the only consumer and fresh
// feedback should show up without a restart.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Packages.Ensure(ctx)

	featured := h.Packages.All()
	if len(featured) > 6 {
		featured = featured[:6]
	}

	testimonials, err := h.API.Testimonials(ctx)
	if err != nil {
		h.Log.Error("failed to load testimonials", zap.Error(err))
		testimonials = nil
	}

	h.render(w, r, "home.html", homeData{Featured: featured, Testimonials: testimonials})
}

// AddTestimonial accepts feedback from any visitor. Authenticated users
// get their identity prefilled; anonymous visitors supply name and email
// in the form.
func (h *Handler) AddTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	form := api.TestimonialForm{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Feedback: r.PostFormValue("feedback"),
	}
	if id := session.FromContext(ctx).Identity; id != nil {
		form.Name = id.Name
		form.Email = id.Email
	}
	if form.Feedback == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if _, err := h.API.CreateTestimonial(ctx, form); err != nil {
		h.Log.Error("failed to submit testimonial", zap.Error(err))
		http.Redirect(w, r, "/?flash=Could+not+submit+your+feedback.+Please+try+again.", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/?flash=Thank+you+for+your+feedback!", http.StatusSeeOther)
}

// packagesData feeds the catalog template.
type packagesData struct {
	Packages []models.Package
	Query    string
}

// PackagesPage renders the catalog with an optional case-insensitive
// title/location filter applied over the cached collection.
func (h *Handler) PackagesPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.URL.Query().Get("reload") == "1" {
		h.Packages.Reload(ctx)
	} else {
		h.Packages.Ensure(ctx)
	}

	q := r.URL.Query().Get("q")
	list := h.Packages.Filter(q, func(p models.Package) []string {
		return []string{p.Title, p.Location}
	})
	h.render(w, r, "packages.html", packagesData{Packages: list, Query: q})
}

// aboutData feeds the about template.
type aboutData struct {
	Team []models.TeamMember
}

// About renders the about page with the team roster.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.Team.Ensure(r.Context())
	h.render(w, r, "about.html", aboutData{Team: h.Team.All()})
}

// contactData feeds the contact template.
type contactData struct {
	Form api.ContactForm
}

// ContactPage renders the public contact form.
func (h *Handler) ContactPage(w http.ResponseWriter, r *http.Request) {
	data := contactData{}
	if id := session.FromContext(r.Context()).Identity; id != nil {
		data.Form.Name = id.Name
		data.Form.Email = id.Email
	}
	h.render(w, r, "contact.html", data)
}

// SubmitContact submits a contact message to the API.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	form := api.ContactForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}
	if form.Name == "" || form.Email == "" || form.Message == "" {
		h.renderError(w, r, "contact.html", contactData{Form: form}, "Please fill in your name, email, and message.")
		return
	}

	if _, err := h.API.CreateContactMessage(ctx, form); err != nil {
		h.renderError(w, r, "contact.html", contactData{Form: form}, apiMessage(err, "Could not send your message. Please try again."))
		return
	}
	http.Redirect(w, r, "/contact?flash=Message+sent.+We+will+get+back+to+you+soon.", http.StatusSeeOther)
}

// Landing renders the marketing landing page shown to logged-out
// visitors.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "landing.html", nil)
}
