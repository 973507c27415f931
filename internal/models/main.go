// Package models defines the record types exchanged with the external
// travel API. The API owns the schema; these types carry only what the
// storefront renders and mutates, with JSON keys mirroring the API.
package models

import "strings"

// Package represents a travel package offered in the catalog.
type Package struct {
	// ID is the server-assigned identifier of the package.
	ID string `json:"_id"`
	// Title is the display name of the package.
	Title string `json:"title"`
	// Location is the destination shown on cards and used for filtering.
	Location string `json:"location"`
	// Price is the per-person price.
	Price float64 `json:"price"`
	// Duration is a free-form duration label ("5 days / 4 nights").
	Duration string `json:"duration"`
	// Rating is the 0-5 catalog rating.
	Rating float64 `json:"rating"`
	// Image is the image reference as stored by the API: either an
	// absolute URL or a path relative to the API host.
	Image string `json:"image"`
	// Description is the long-form package description.
	Description string `json:"description"`
	// Highlights is the ordered list of highlight lines.
	Highlights []string `json:"highlights"`
	// Type is the package category ("Adventure", "Leisure", ...).
	Type string `json:"type"`
}

// Key returns the record identifier used by cached collections.
func (p Package) Key() string { return p.ID }

// RequestStatus enumerates the lifecycle states of a booking request.
type RequestStatus string

const (
	// StatusPending marks a freshly created booking request.
	StatusPending RequestStatus = "Pending"
	// StatusApproved marks a request accepted by an administrator.
	StatusApproved RequestStatus = "Approved"
	// StatusRejected marks a request declined by an administrator.
	StatusRejected RequestStatus = "Rejected"
	// StatusCancelled marks a request withdrawn by its owner.
	StatusCancelled RequestStatus = "Cancelled"
)

// BookingRequest represents a client booking request as stored by the API.
type BookingRequest struct {
	ID            string        `json:"_id"`
	ClientName    string        `json:"clientName"`
	ClientEmail   string        `json:"clientEmail"`
	ClientPhone   string        `json:"clientPhone"`
	PackageName   string        `json:"packageName"`
	Date          string        `json:"date"`
	Guests        int           `json:"guests"`
	Requests      string        `json:"requests"`
	Status        RequestStatus `json:"status"`
	PaymentStatus string        `json:"paymentStatus"`
	TransactionID string        `json:"transactionId"`
	TotalAmount   float64       `json:"totalAmount"`
	CreatedAt     string        `json:"createdAt"`
}

// Key returns the record identifier used by cached collections.
func (b BookingRequest) Key() string { return b.ID }

// Cancellable reports whether the owner may still cancel the request.
// Only pending and approved requests can be cancelled.
func (b BookingRequest) Cancellable() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// TeamMember represents a member shown on the about page.
type TeamMember struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// Key returns the record identifier used by cached collections.
func (t TeamMember) Key() string { return t.ID }

// Testimonial represents visitor feedback shown on the home page.
type Testimonial struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Feedback string `json:"feedback"`
}

// Key returns the record identifier used by cached collections.
func (t Testimonial) Key() string { return t.ID }

// MessageStatus enumerates the states of a contact message.
type MessageStatus string

const (
	// MessagePending marks a message awaiting an admin response.
	MessagePending MessageStatus = "Pending"
	// MessageResponded marks a message that has been answered.
	MessageResponded MessageStatus = "Responded"
)

// ContactMessage represents a message sent through the contact form.
// Responding to one also emails the sender; the email is the API's job.
type ContactMessage struct {
	ID           string        `json:"_id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Subject      string        `json:"subject"`
	Message      string        `json:"message"`
	Status       MessageStatus `json:"status"`
	ResponseText string        `json:"responseText"`
	RespondedAt  string        `json:"respondedAt"`
}

// Key returns the record identifier used by cached collections.
func (m ContactMessage) Key() string { return m.ID }

// UserAccount is the admin-facing view of a registered user.
type UserAccount struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	IsBlocked bool   `json:"isBlocked"`
}

// Key returns the record identifier used by cached collections.
func (u UserAccount) Key() string { return u.ID }

// Profile is the authenticated user's own profile record.
type Profile struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
	Photo string `json:"photo"`
}

// Identity is the lightweight identity decoded from a session token.
// It is advisory display data, never a verified credential.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ImageURL resolves an image reference against the API base URL.
// Absolute references pass through unchanged; relative ones are joined
// onto the base.
func ImageURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}
