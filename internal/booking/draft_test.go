package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDraftTotal(t *testing.T) {
	d := &Draft{Price: 1000, Guests: 2}
	assert.Equal(t, float64(2000), d.Total())

	d.Guests = 1
	assert.Equal(t, float64(1000), d.Total())
}

func TestValidateDetails(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		date   string
		guests string
		phone  string
		want   []string
	}{
		{name: "valid", date: "2026-03-20", guests: "2", phone: "+1 555 0100"},
		{name: "today is allowed", date: "2026-03-15", guests: "1", phone: "555"},
		{name: "missing everything", want: []string{"date", "guests", "phone"}},
		{name: "past date", date: "2026-03-14", guests: "2", phone: "555", want: []string{"date"}},
		{name: "garbage date", date: "soon", guests: "2", phone: "555", want: []string{"date"}},
		{name: "zero guests", date: "2026-03-20", guests: "0", phone: "555", want: []string{"guests"}},
		{name: "non-numeric guests", date: "2026-03-20", guests: "two", phone: "555", want: []string{"guests"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateDetails(tt.date, tt.guests, tt.phone, now)
			assert.Len(t, errs, len(tt.want))
			for _, field := range tt.want {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestDraftStore(t *testing.T) {
	s := NewDraftStore()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	d := &Draft{PackageID: "p1", Guests: 2}
	s.Put("id-1", d)
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get("id-1")
	assert.True(t, ok)
	assert.Same(t, d, got)

	s.Delete("id-1")
	_, ok = s.Get("id-1")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}
