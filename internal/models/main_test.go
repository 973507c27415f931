package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	base := "http://api.example.com"

	assert.Equal(t, "", ImageURL(base, ""))
	assert.Equal(t, "https://cdn.example.com/a.jpg", ImageURL(base, "https://cdn.example.com/a.jpg"))
	assert.Equal(t, "http://elsewhere/b.png", ImageURL(base, "http://elsewhere/b.png"))
	assert.Equal(t, "http://api.example.com/uploads/c.jpg", ImageURL(base, "uploads/c.jpg"))
	assert.Equal(t, "http://api.example.com/uploads/c.jpg", ImageURL(base, "/uploads/c.jpg"))
	assert.Equal(t, "http://api.example.com/uploads/c.jpg", ImageURL(base+"/", "/uploads/c.jpg"))
}

func TestBookingRequestCancellable(t *testing.T) {
	assert.True(t, BookingRequest{Status: StatusPending}.Cancellable())
	assert.True(t, BookingRequest{Status: StatusApproved}.Cancellable())
	assert.False(t, BookingRequest{Status: StatusRejected}.Cancellable())
	assert.False(t, BookingRequest{Status: StatusCancelled}.Cancellable())
}
