package ports

import (
	"context"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer. A customer with the same mobile number
	// must not already exist.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByMobile retrieves a customer by its unique mobile number.
	GetByMobile(ctx context.Context, mobile string) (*customer.Customer, error)
}
