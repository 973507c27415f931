// Package http renders the storefront pages and drives the external
// travel API through the cached per-entity collections.
package http

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/csrf"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/voyage-travel/storefront/internal/api"
	"github.com/voyage-travel/storefront/internal/booking"
	"github.com/voyage-travel/storefront/internal/models"
	"github.com/voyage-travel/storefront/internal/repository"
	"github.com/voyage-travel/storefront/internal/session"
)

// Handler serves every storefront page. It owns the per-entity cached
// collections and the in-memory booking drafts.
type Handler struct {
	API      *api.Client
	Sessions *session.Manager
	Log      *zap.Logger
	Drafts   *booking.DraftStore

	// PaymentDelay is the simulated card-processing pause before the
	// booking request is submitted.
	PaymentDelay time.Duration

	Packages *repository.Store[models.Package, api.PackageForm]
	Requests *repository.Store[models.BookingRequest, api.BookingForm]
	Team     *repository.Store[models.TeamMember, api.TeamForm]
	Messages *repository.Store[models.ContactMessage, api.ContactForm]
	Users    *repository.Store[models.UserAccount, struct{}]

	tmpl *template.Template
}

// New wires a Handler over the API client: each cached collection binds
// its fetch and mutation calls, and the page templates are parsed from
// templatesDir.
func New(client *api.Client, sessions *session.Manager, log *zap.Logger, paymentDelay time.Duration, templatesDir string) (*Handler, error) {
	h := &Handler{
		API:          client,
		Sessions:     sessions,
		Log:          log,
		Drafts:       booking.NewDraftStore(),
		PaymentDelay: paymentDelay,
	}

	h.Packages = repository.New("packages", log, repository.Ops[models.Package, api.PackageForm]{
		Fetch:  client.Packages,
		Create: client.CreatePackage,
		Update: client.UpdatePackage,
		Remove: client.DeletePackage,
	})
	h.Requests = repository.New("requests", log, repository.Ops[models.BookingRequest, api.BookingForm]{
		Fetch:  client.Requests,
		Create: client.CreateRequest,
		Remove: client.DeleteRequest,
	})
	h.Team = repository.New("team", log, repository.Ops[models.TeamMember, api.TeamForm]{
		Fetch:  client.Teams,
		Create: client.CreateTeamMember,
		Update: client.UpdateTeamMember,
		Remove: client.DeleteTeamMember,
	})
	h.Messages = repository.New("messages", log, repository.Ops[models.ContactMessage, api.ContactForm]{
		Fetch: client.ContactMessages,
	})
	h.Users = repository.New("users", log, repository.Ops[models.UserAccount, struct{}]{
		Fetch: client.Users,
	})

	printer := message.NewPrinter(language.English)
	funcs := template.FuncMap{
		"imageURL": func(ref string) string {
			return models.ImageURL(client.BaseURL(), ref)
		},
		"money": func(v float64) string {
			return printer.Sprintf("%.0f", v)
		},
	}

	tmpl, err := template.New("").Funcs(funcs).ParseGlob(templatesDir + "/*.html")
	if err != nil {
		return nil, err
	}
	h.tmpl = tmpl
	return h, nil
}

// page is the envelope every template receives.
type page struct {
	Role      session.Role
	Identity  *models.Identity
	CSRFField template.HTML
	// Error is the blocking banner shown after a failed write.
	Error string
	// Flash is a one-shot success notice.
	Flash string
	Data  any
}

// render executes the named template with the session state and data.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderPage(w, r, name, page{Data: data})
}

// renderError renders the page with a blocking error banner, leaving the
// underlying data untouched so the user can retry.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, name string, data any, errMsg string) {
	h.renderPage(w, r, name, page{Data: data, Error: errMsg})
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, p page) {
	st := session.FromContext(r.Context())
	p.Role = st.Role
	p.Identity = st.Identity
	p.CSRFField = csrf.TemplateField(r)
	if p.Flash == "" {
		p.Flash = r.URL.Query().Get("flash")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, p); err != nil {
		h.Log.Error("failed to render template", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// apiMessage extracts a presentable message from an API error.
func apiMessage(err error, fallback string) string {
	if se, ok := err.(*api.StatusError); ok && se.Message != "" {
		return se.Message
	}
	return fallback
}
