package booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCard() Card {
	return Card{
		Name:   "Asha Verma",
		Number: "4111111111111111",
		Expiry: "12/29",
		CVC:    "123",
	}
}

func TestCardValidate_Valid(t *testing.T) {
	assert.Empty(t, validCard().Validate())
}

func TestCardValidate_SpacesInNumberIgnored(t *testing.T) {
	c := validCard()
	c.Number = "4111 1111 1111 1111"
	assert.Empty(t, c.Validate())
}

func TestCardValidate_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Card)
		field  string
	}{
		{"blank name", func(c *Card) { c.Name = "  " }, "cardName"},
		{"short number", func(c *Card) { c.Number = "411111111111" }, "cardNumber"},
		{"letters in number", func(c *Card) { c.Number = "4111111111111abc" }, "cardNumber"},
		{"month out of range", func(c *Card) { c.Expiry = "13/29" }, "expiry"},
		{"zero month", func(c *Card) { c.Expiry = "00/29" }, "expiry"},
		{"four digit year", func(c *Card) { c.Expiry = "12/2029" }, "expiry"},
		{"short cvc", func(c *Card) { c.CVC = "12" }, "cvc"},
		{"long cvc", func(c *Card) { c.CVC = "12345" }, "cvc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCard()
			tt.mutate(&c)
			errs := c.Validate()
			assert.Len(t, errs, 1)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestCardValidate_FourDigitCVC(t *testing.T) {
	c := validCard()
	c.CVC = "1234"
	assert.Empty(t, c.Validate())
}

func TestNewTransactionID(t *testing.T) {
	a := NewTransactionID()
	b := NewTransactionID()
	assert.True(t, strings.HasPrefix(a, "VOYAGE-"))
	assert.NotEqual(t, a, b)
}
