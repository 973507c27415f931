package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/voyage-travel/storefront/internal/api"
	"github.com/voyage-travel/storefront/internal/models"
)

// dashboardData feeds the admin dashboard template.
type dashboardData struct {
	PackageCount int
	RequestCount int
	PendingCount int
	TeamCount    int
	MessageCount int
	UserCount    int
}

// AdminDashboard renders collection counts for the back office.
func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Packages.Ensure(ctx)
	h.Requests.Ensure(ctx)
	h.Team.Ensure(ctx)
	h.Messages.Ensure(ctx)
	h.Users.Ensure(ctx)

	data := dashboardData{
		PackageCount: h.Packages.Len(),
		RequestCount: h.Requests.Len(),
		TeamCount:    h.Team.Len(),
		MessageCount: h.Messages.Len(),
		UserCount:    h.Users.Len(),
	}
	for _, req := range h.Requests.All() {
		if req.Status == models.StatusPending {
			data.PendingCount++
		}
	}
	h.render(w, r, "admin_dashboard.html", data)
}

// adminPackagesData feeds the admin packages template.
type adminPackagesData struct {
	Packages []models.Package
	Query    string
	// Editing is the package loaded into the edit form, zero for the
	// blank create form.
	Editing models.Package
}

// AdminPackages renders the package management screen with the
// title/location filter applied over the cached collection.
func (h *Handler) AdminPackages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.URL.Query().Get("reload") == "1" {
		h.Packages.Reload(ctx)
	} else {
		h.Packages.Ensure(ctx)
	}

	data := adminPackagesData{Query: r.URL.Query().Get("q")}
	data.Packages = h.Packages.Filter(data.Query, func(p models.Package) []string {
		return []string{p.Title, p.Location}
	})
	if editID := r.URL.Query().Get("edit"); editID != "" {
		if pkg, ok := h.Packages.Get(editID); ok {
			data.Editing = pkg
		}
	}
	h.render(w, r, "admin_packages.html", data)
}

// packageFormFromRequest reads the multipart package form. The highlights
// textarea holds one highlight per line.
func packageFormFromRequest(r *http.Request) (string, api.PackageForm, error) {
	if err := r.ParseMultipartForm(uploadLimit); err != nil {
		return "", api.PackageForm{}, err
	}

	price, _ := strconv.ParseFloat(r.PostFormValue("price"), 64)
	rating, _ := strconv.ParseFloat(r.PostFormValue("rating"), 64)

	var highlights []string
	for _, line := range strings.Split(r.PostFormValue("highlights"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			highlights = append(highlights, line)
		}
	}

	form := api.PackageForm{
		Title:       r.PostFormValue("title"),
		Location:    r.PostFormValue("location"),
		Price:       price,
		Duration:    r.PostFormValue("duration"),
		Rating:      rating,
		Type:        r.PostFormValue("type"),
		Description: r.PostFormValue("description"),
		Highlights:  highlights,
	}
	if file, header, err := r.FormFile("image"); err == nil {
		form.Image = &api.Upload{Field: "image", Name: header.Filename, Content: file}
	}
	return r.PostFormValue("_id"), form, nil
}

// AdminSavePackage creates or updates a package depending on whether the
// form carries an id, then patches the cached collection with the
// server's record.
func (h *Handler) AdminSavePackage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, form, err := packageFormFromRequest(r)
	if err != nil {
		h.renderError(w, r, "admin_packages.html", adminPackagesData{Packages: h.Packages.All()}, "Invalid form submission.")
		return
	}

	if id == "" {
		_, err = h.Packages.Create(ctx, form)
	} else {
		_, err = h.Packages.Update(ctx, id, form)
	}
	if err != nil {
		h.renderError(w, r, "admin_packages.html", adminPackagesData{Packages: h.Packages.All()},
			apiMessage(err, "Failed to save package."))
		return
	}
	http.Redirect(w, r, "/admin/packages", http.StatusSeeOther)
}

// AdminDeletePackage removes a package. The form carries a confirm
// prompt; by the time the POST lands the decision is made.
func (h *Handler) AdminDeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := h.Packages.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.renderError(w, r, "admin_packages.html", adminPackagesData{Packages: h.Packages.All()},
			apiMessage(err, "Failed to delete package."))
		return
	}
	http.Redirect(w, r, "/admin/packages", http.StatusSeeOther)
}

// adminRequestsData feeds the admin requests template.
type adminRequestsData struct {
	Requests []models.BookingRequest
	Query    string
	Statuses []models.RequestStatus
}

var requestStatuses = []models.RequestStatus{
	models.StatusPending, models.StatusApproved, models.StatusRejected, models.StatusCancelled,
}

// AdminRequests renders booking requests with the name/email/package
// filter applied over the cached collection.
func (h *Handler) AdminRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.URL.Query().Get("reload") == "1" {
		h.Requests.Reload(ctx)
	} else {
		h.Requests.Ensure(ctx)
	}

	data := adminRequestsData{Query: r.URL.Query().Get("q"), Statuses: requestStatuses}
	data.Requests = h.Requests.Filter(data.Query, func(b models.BookingRequest) []string {
		return []string{b.ClientName, b.ClientEmail, b.PackageName}
	})
	h.render(w, r, "admin_requests.html", data)
}

// AdminUpdateRequestStatus moves a booking request to the posted status
// and patches the cached record with the server's version.
func (h *Handler) AdminUpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := models.RequestStatus(r.PostFormValue("status"))

	valid := false
	for _, s := range requestStatuses {
		if s == status {
			valid = true
			break
		}
	}
	if !valid {
		http.Redirect(w, r, "/admin/requests", http.StatusSeeOther)
		return
	}

	updated, err := h.API.UpdateRequestStatus(ctx, chi.URLParam(r, "id"), status)
	if err != nil {
		h.renderError(w, r, "admin_requests.html",
			adminRequestsData{Requests: h.Requests.All(), Statuses: requestStatuses},
			apiMessage(err, "Failed to update request status."))
		return
	}
	h.Requests.Patch(updated)
	http.Redirect(w, r, "/admin/requests", http.StatusSeeOther)
}

// invoiceData feeds the printable invoice template.
type invoiceData struct {
	Request models.BookingRequest
	// Number is the short invoice reference derived from the record id.
	Number string
	// PerGuest is the per-person price backed out of the charged total.
	PerGuest float64
}

// AdminInvoice renders a printable invoice for one booking request.
func (h *Handler) AdminInvoice(w http.ResponseWriter, r *http.Request) {
	h.Requests.Ensure(r.Context())
	req, ok := h.Requests.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Redirect(w, r, "/admin/requests", http.StatusSeeOther)
		return
	}

	data := invoiceData{Request: req, Number: invoiceNumber(req.ID)}
	if req.Guests > 0 {
		data.PerGuest = req.TotalAmount / float64(req.Guests)
	}
	h.render(w, r, "admin_invoice.html", data)
}

// invoiceNumber derives the short invoice reference shown on the
// document: the last eight characters of the record id, uppercased.
func invoiceNumber(id string) string {
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}

// AdminDeleteRequest removes a booking request.
func (h *Handler) AdminDeleteRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.Requests.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.renderError(w, r, "admin_requests.html",
			adminRequestsData{Requests: h.Requests.All(), Statuses: requestStatuses},
			apiMessage(err, "Failed to delete request."))
		return
	}
	http.Redirect(w, r, "/admin/requests", http.StatusSeeOther)
}

// adminTeamData feeds the admin team template.
type adminTeamData struct {
	Members []models.TeamMember
	Query   string
	Editing models.TeamMember
}

// AdminTeam renders the team management screen with the name/title filter
// applied over the cached collection.
func (h *Handler) AdminTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.URL.Query().Get("reload") == "1" {
		h.Team.Reload(ctx)
	} else {
		h.Team.Ensure(ctx)
	}

	data := adminTeamData{Query: r.URL.Query().Get("q")}
	data.Members = h.Team.Filter(data.Query, func(t models.TeamMember) []string {
		return []string{t.Name, t.Title}
	})
	if editID := r.URL.Query().Get("edit"); editID != "" {
		if member, ok := h.Team.Get(editID); ok {
			data.Editing = member
		}
	}
	h.render(w, r, "admin_team.html", data)
}

// AdminSaveTeamMember creates or updates a team member depending on
// whether the form carries an id.
func (h *Handler) AdminSaveTeamMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(uploadLimit); err != nil {
		h.renderError(w, r, "admin_team.html", adminTeamData{Members: h.Team.All()}, "Invalid form submission.")
		return
	}

	form := api.TeamForm{
		Name:  r.PostFormValue("name"),
		Title: r.PostFormValue("title"),
	}
	if file, header, err := r.FormFile("image"); err == nil {
		form.Image = &api.Upload{Field: "image", Name: header.Filename, Content: file}
	}

	var err error
	if id := r.PostFormValue("_id"); id == "" {
		_, err = h.Team.Create(ctx, form)
	} else {
		_, err = h.Team.Update(ctx, id, form)
	}
	if err != nil {
		h.renderError(w, r, "admin_team.html", adminTeamData{Members: h.Team.All()},
			apiMessage(err, "Failed to save team member."))
		return
	}
	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}

// AdminDeleteTeamMember removes a team member.
func (h *Handler) AdminDeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	if err := h.Team.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.renderError(w, r, "admin_team.html", adminTeamData{Members: h.Team.All()},
			apiMessage(err, "Failed to delete team member."))
		return
	}
	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}

// adminMessagesData feeds the admin responses template.
type adminMessagesData struct {
	Messages []models.ContactMessage
}

// AdminResponses renders contact messages awaiting or carrying responses.
func (h *Handler) AdminResponses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.URL.Query().Get("reload") == "1" {
		h.Messages.Reload(ctx)
	} else {
		h.Messages.Ensure(ctx)
	}
	h.render(w, r, "admin_responses.html", adminMessagesData{Messages: h.Messages.All()})
}

// AdminRespond records a response to a contact message; the API emails
// the sender as part of the call.
func (h *Handler) AdminRespond(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	responseText := r.PostFormValue("responseText")
	if responseText == "" {
		http.Redirect(w, r, "/admin/responses", http.StatusSeeOther)
		return
	}

	msg, ok := h.Messages.Get(id)
	if !ok {
		http.Redirect(w, r, "/admin/responses", http.StatusSeeOther)
		return
	}

	updated, err := h.API.RespondToMessage(ctx, id, responseText, msg.Email)
	if err != nil {
		h.renderError(w, r, "admin_responses.html", adminMessagesData{Messages: h.Messages.All()},
			apiMessage(err, "Failed to send response."))
		return
	}
	h.Messages.Patch(updated)
	http.Redirect(w, r, "/admin/responses", http.StatusSeeOther)
}

// adminUsersData feeds the admin users template.
type adminUsersData struct {
	Users []models.UserAccount
}

// AdminUsers renders the registered accounts.
func (h *Handler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.URL.Query().Get("reload") == "1" {
		h.Users.Reload(ctx)
	} else {
		h.Users.Ensure(ctx)
	}
	h.render(w, r, "admin_users.html", adminUsersData{Users: h.Users.All()})
}

// AdminToggleBlock flips an account's blocked flag and patches the cached
// record.
func (h *Handler) AdminToggleBlock(w http.ResponseWriter, r *http.Request) {
	updated, err := h.API.ToggleUserBlock(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, "admin_users.html", adminUsersData{Users: h.Users.All()},
			apiMessage(err, "Failed to update user."))
		return
	}
	h.Users.Patch(updated)
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}
