package api

import (
	"context"
	"net/url"

	"github.com/voyage-travel/storefront/internal/models"
)

// ContactForm is the public contact-page payload.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// TestimonialForm is the public feedback payload from the home page.
type TestimonialForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Feedback string `json:"feedback"`
}

// Testimonials lists visitor feedback for the home page.
func (c *Client) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	var out []models.Testimonial
	if err := c.get(ctx, "/testimonials", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTestimonial submits visitor feedback. Open to any visitor.
func (c *Client) CreateTestimonial(ctx context.Context, form TestimonialForm) (models.Testimonial, error) {
	var out models.Testimonial
	err := c.postJSON(ctx, "/testimonials/add", form, &out)
	return out, err
}

// ContactMessages lists contact messages (admin).
func (c *Client) ContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	if err := c.get(ctx, "/contact", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateContactMessage submits a message from the public contact form.
func (c *Client) CreateContactMessage(ctx context.Context, form ContactForm) (models.ContactMessage, error) {
	var out models.ContactMessage
	err := c.postJSON(ctx, "/contact/add", form, &out)
	return out, err
}

// RespondToMessage records an admin response; the API also emails the
// sender. Returns the updated message.
func (c *Client) RespondToMessage(ctx context.Context, id, responseText, userEmail string) (models.ContactMessage, error) {
	var out models.ContactMessage
	body := map[string]string{"responseText": responseText, "userEmail": userEmail}
	err := c.postJSON(ctx, "/contact/respond/"+url.PathEscape(id), body, &out)
	return out, err
}
