package api

import (
	"context"
	"net/url"

	"github.com/voyage-travel/storefront/internal/models"
)

// BookingForm is the payload for a finalized booking request, submitted
// after the simulated payment succeeds.
type BookingForm struct {
	ClientName    string  `json:"clientName"`
	ClientEmail   string  `json:"clientEmail"`
	ClientPhone   string  `json:"clientPhone"`
	PackageName   string  `json:"packageName"`
	Date          string  `json:"date"`
	Guests        int     `json:"guests"`
	Requests      string  `json:"requests"`
	TotalAmount   float64 `json:"totalAmount"`
	PaymentStatus string  `json:"paymentStatus"`
	TransactionID string  `json:"transactionId"`
}

// Requests lists every booking request (admin).
func (c *Client) Requests(ctx context.Context) ([]models.BookingRequest, error) {
	var out []models.BookingRequest
	if err := c.get(ctx, "/requests", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyBookings lists the booking requests of the authenticated user.
func (c *Client) MyBookings(ctx context.Context) ([]models.BookingRequest, error) {
	var out []models.BookingRequest
	if err := c.get(ctx, "/requests/mybookings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRequest submits a finalized booking request.
func (c *Client) CreateRequest(ctx context.Context, form BookingForm) (models.BookingRequest, error) {
	var out models.BookingRequest
	err := c.postJSON(ctx, "/requests/add", form, &out)
	return out, err
}

// UpdateRequestStatus moves a booking request to a new status and returns
// the updated record. Admins may set any status; users only reach this
// through cancellation.
func (c *Client) UpdateRequestStatus(ctx context.Context, id string, status models.RequestStatus) (models.BookingRequest, error) {
	var out models.BookingRequest
	body := map[string]models.RequestStatus{"status": status}
	err := c.postJSON(ctx, "/requests/update/"+url.PathEscape(id), body, &out)
	return out, err
}

// DeleteRequest removes a booking request (admin).
func (c *Client) DeleteRequest(ctx context.Context, id string) error {
	return c.del(ctx, "/requests/"+url.PathEscape(id))
}
