// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"doorstep/internal/domain/entity"
	"doorstep/internal/errors"
)

// ErrAddressNotFound is returned when an address record is not found.
var ErrAddressNotFound = errors.New("address record not found")

// AddressRepository defines the operations on the address record collection.
// Implementations own the derived progress fields and rewrite them on every
// mutation.
type AddressRepository interface {
	// ListAddresses returns copies of all records in seed order.
	ListAddresses(ctx context.Context) ([]*entity.AddressRecord, error)

	// FindAddressByID retrieves a copy of a record by its ID.
	// Returns ErrAddressNotFound if no record has that ID.
	FindAddressByID(ctx context.Context, id string) (*entity.AddressRecord, error)

	// UpdateAddress merges the patch into the record and re-derives its
	// progress in one atomic replace. It returns copies of the record as it
	// was right before the replace and as stored after it. An unknown ID is
	// ignored and reported with false.
	UpdateAddress(ctx context.Context, id string, patch *entity.AddressPatch) (before, after *entity.AddressRecord, ok bool)
}
