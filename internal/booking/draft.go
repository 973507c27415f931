// Package booking holds the transient state of an in-progress
// reservation between package selection and payment completion, plus the
// client-side validation that gates each step.
package booking

import (
	"strconv"
	"sync"
	"time"
)

// Draft is the unsaved state of a user's in-progress reservation. It
// lives in process memory only and is lost on restart.
type Draft struct {
	PackageID    string
	PackageTitle string
	// Price is the per-person price copied from the selected package.
	Price       float64
	Date        string // travel date, YYYY-MM-DD
	Guests      int
	Phone       string
	Requests    string
	ClientName  string
	ClientEmail string
}

// Total is the amount charged at checkout: per-person price times guests.
func (d *Draft) Total() float64 {
	return d.Price * float64(d.Guests)
}

// ValidateDetails checks the booking details form. It returns a map of
// field name to message for every violation; an empty map means the draft
// may proceed to payment. The travel date must be today or later.
func ValidateDetails(date string, guests, phone string, now time.Time) map[string]string {
	errs := map[string]string{}

	if phone == "" {
		errs["phone"] = "Contact phone is required."
	}

	if date == "" {
		errs["date"] = "Travel date is required."
	} else if d, err := time.Parse("2006-01-02", date); err != nil {
		errs["date"] = "Enter the travel date as YYYY-MM-DD."
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if d.Before(today) {
			errs["date"] = "Travel date must be today or later."
		}
	}

	if guests == "" {
		errs["guests"] = "Guest count is required."
	} else if n, err := strconv.Atoi(guests); err != nil || n < 1 {
		errs["guests"] = "At least one guest is required."
	}

	return errs
}

// DraftStore holds in-progress drafts keyed by a session-scoped id.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

// NewDraftStore returns an empty DraftStore.
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]*Draft)}
}

// Put stores a draft under id, replacing any previous one.
func (s *DraftStore) Put(id string, d *Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[id] = d
}

// Get returns the draft stored under id.
func (s *DraftStore) Get(id string) (*Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	return d, ok
}

// Delete removes the draft stored under id, if any.
func (s *DraftStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

// Len reports the number of parked drafts.
func (s *DraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
