package booking

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// PaymentMode enumerates how the freight charge is settled.
type PaymentMode int

const (
	// PaymentUnknown represents an invalid or undefined payment mode.
	PaymentUnknown PaymentMode = iota

	// PaymentPaid means charges were collected from the consignor at booking.
	PaymentPaid

	// PaymentToPay means charges are collected from the consignee on delivery.
	PaymentToPay

	// PaymentQuotation means the booking travels under a negotiated quote;
	// the amount is settled outside the engine.
	PaymentQuotation
)

func getPaymentModeStrings() map[PaymentMode]string {
	return map[PaymentMode]string{
		PaymentUnknown:   "unknown",
		PaymentPaid:      "paid",
		PaymentToPay:     "to_pay",
		PaymentQuotation: "quotation",
	}
}

// String returns the wire-visible name of the payment mode.
func (m PaymentMode) String() string {
	if s, ok := getPaymentModeStrings()[m]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the mode is one of paid, to_pay, or quotation.
func (m PaymentMode) Validate() error {
	if m != PaymentPaid && m != PaymentToPay && m != PaymentQuotation {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment mode", fmt.Errorf("%d is not a valid payment mode", m))
	}
	return nil
}

// PaymentModeFromString parses a payment mode from its wire representation.
func PaymentModeFromString(s string) (PaymentMode, error) {
	for mode, str := range getPaymentModeStrings() {
		if mode != PaymentUnknown && str == s {
			return mode, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment mode", fmt.Errorf("%q is not a valid payment mode", s))
}

// ArticleLine is one line of goods on a booking: a description, the number
// of packages, their declared weight, and the freight amount charged for
// the line. A booking carries at least one article line.
type ArticleLine struct {
	description string
	packages    int
	weightKg    float64
	amount      float64
}

// NewArticleLine creates a validated article line.
func NewArticleLine(description string, packages int, weightKg, amount float64) (ArticleLine, error) {
	if description == "" {
		return ArticleLine{}, errs.NewValueIsRequiredError("article description")
	}
	if packages <= 0 {
		return ArticleLine{}, errs.NewValueIsInvalidErrorWithCause(
			"packages", fmt.Errorf("%d must be greater than 0", packages))
	}
	if weightKg <= 0 {
		return ArticleLine{}, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v must be greater than 0", weightKg))
	}
	if amount < 0 {
		return ArticleLine{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%v must not be negative", amount))
	}

	return ArticleLine{
		description: description,
		packages:    packages,
		weightKg:    weightKg,
		amount:      amount,
	}, nil
}

// Description returns the goods description.
func (a ArticleLine) Description() string {
	return a.description
}

// Packages returns the declared package count.
func (a ArticleLine) Packages() int {
	return a.packages
}

// WeightKg returns the declared weight in kilograms.
func (a ArticleLine) WeightKg() float64 {
	return a.weightKg
}

// Amount returns the freight amount for the line.
func (a ArticleLine) Amount() float64 {
	return a.amount
}

// Validate checks the line's invariants.
func (a ArticleLine) Validate() error {
	if a.description == "" {
		return errs.NewValueIsRequiredError("article description")
	}
	if a.packages <= 0 {
		return errs.NewValueIsInvalidError("packages")
	}
	return nil
}
