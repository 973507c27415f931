package booking

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvcRe        = regexp.MustCompile(`^\d{3,4}$`)
)

// Card holds the payment form fields. Card details never leave the
// process: payment is simulated client-side, and only the resulting
// transaction identifier is sent to the API.
type Card struct {
	Name   string
	Number string
	Expiry string
	CVC    string
}

// Validate checks the payment form. It returns a map of field name to
// message for every violation; an empty map means the card passes and the
// booking may be submitted. Spaces in the card number are ignored.
func (c Card) Validate() map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(c.Name) == "" {
		errs["cardName"] = "Name on card is required."
	}
	if !cardNumberRe.MatchString(strings.ReplaceAll(c.Number, " ", "")) {
		errs["cardNumber"] = "Enter a valid 16-digit card number."
	}
	if !expiryRe.MatchString(c.Expiry) {
		errs["expiry"] = "Use MM/YY format."
	}
	if !cvcRe.MatchString(c.CVC) {
		errs["cvc"] = "Enter a valid CVC."
	}
	return errs
}

// NewTransactionID generates the locally assigned transaction identifier
// attached to a completed booking.
func NewTransactionID() string {
	return "VOYAGE-" + uuid.NewString()
}
