// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. The mobile number carries a unique index; it is the natural
// key front-desk staff look customers up by.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Mobile    string    `gorm:"type:varchar(16);not null;uniqueIndex"`
	Address   string    `gorm:"type:varchar(512)"`
	Active    bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Mobile:    aggregate.Mobile(),
		Address:   aggregate.Address(),
		Active:    aggregate.IsActive(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate using
// RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Mobile, dto.Address, dto.Active, dto.CreatedAt)
}
