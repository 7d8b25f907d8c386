package commands

import (
	"errors"

	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired   = errors.New("name is required")
	ErrCustomerMobileIsRequired = errors.New("mobile is required")
)

// CreateCustomerCommand represents a request to register a new customer.
// The mobile number is the operator-facing lookup key and must be unique
// across the organization.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	actor      auth.Context
	customerID kernel.UUID
	name       string
	mobile     string
	address    string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Name and mobile are required; address is optional.
func NewCreateCustomerCommand(
	actor auth.Context,
	customerID kernel.UUID,
	name, mobile, address string,
) (CreateCustomerCommand, error) {
	customerCommand := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setActor(actor),
		customerCommand.setCustomerID(customerID),
		customerCommand.setName(name),
		customerCommand.setMobile(mobile),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	customerCommand.address = address
	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c CreateCustomerCommand) Actor() auth.Context {
	return c.actor
}

// CustomerID returns the unique identifier for the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Mobile returns the customer's mobile number.
func (c CreateCustomerCommand) Mobile() string {
	return c.mobile
}

// Address returns the customer's address, possibly empty.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

func (c *CreateCustomerCommand) setActor(actor auth.Context) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setMobile(mobile string) error {
	if mobile == "" {
		return ErrCustomerMobileIsRequired
	}

	c.mobile = mobile
	return nil
}
