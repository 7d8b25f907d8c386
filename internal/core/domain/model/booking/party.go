package booking

import (
	"freight/internal/pkg/errs"
)

// Party is a value object naming one side of a consignment: the consignor
// (sender) or the consignee (receiver). Contact details are captured as a
// snapshot at booking time; later edits to the customer master never rewrite
// a booked consignment.
type Party struct {
	name    string
	mobile  string
	address string
}

// NewParty creates a party snapshot. Name and mobile are required; the
// address may be empty for the consignor (the consignee's destination
// address is validated separately on the booking itself).
func NewParty(name, mobile, address string) (Party, error) {
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("name")
	}
	if mobile == "" {
		return Party{}, errs.NewValueIsRequiredError("mobile")
	}

	return Party{name: name, mobile: mobile, address: address}, nil
}

// Name returns the party's name.
func (p Party) Name() string {
	return p.name
}

// Mobile returns the party's contact number.
func (p Party) Mobile() string {
	return p.mobile
}

// Address returns the party's address snapshot.
func (p Party) Address() string {
	return p.address
}

// Validate checks that the party carries its required fields.
func (p Party) Validate() error {
	if p.name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if p.mobile == "" {
		return errs.NewValueIsRequiredError("mobile")
	}
	return nil
}
