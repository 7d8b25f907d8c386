package customer

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a registered consignor. Bookings reference customers by id;
// only an active customer can be booked against. Mobile numbers are unique
// across customers and serve as the operator-facing lookup key.
type Customer struct {
	id        kernel.UUID
	name      string
	mobile    string
	address   string
	active    bool
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates an active customer.
func NewCustomer(id kernel.UUID, name, mobile, address string, createdAt time.Time) (*Customer, error) {
	c := &Customer{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setMobile(mobile),
		c.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	c.address = address
	return c, nil
}

// RestoreCustomer reconstructs a customer from persistent storage.
func RestoreCustomer(
	id kernel.UUID,
	name, mobile, address string,
	active bool,
	createdAt time.Time,
) (*Customer, error) {
	c, err := NewCustomer(id, name, mobile, address, createdAt)
	if err != nil {
		return nil, err
	}

	c.active = active
	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Mobile returns the customer's unique mobile number.
func (c *Customer) Mobile() string {
	return c.mobile
}

// Address returns the customer's address, possibly empty.
func (c *Customer) Address() string {
	return c.address
}

// IsActive reports whether the customer can be booked against.
func (c *Customer) IsActive() bool {
	return c.active
}

// CreatedAt returns the registration time.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// Deactivate retires the customer. Existing bookings are unaffected; new
// bookings against the customer are rejected.
func (c *Customer) Deactivate() {
	c.active = false
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setMobile(mobile string) error {
	if mobile == "" {
		return errs.NewValueIsRequiredError("customer mobile")
	}
	c.mobile = mobile
	return nil
}

func (c *Customer) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	c.createdAt = createdAt
	return nil
}
