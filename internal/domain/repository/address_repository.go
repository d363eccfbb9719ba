// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found or has been soft-deleted.
	ErrAddressNotFound = errors.New("address not found")
)

// FlagFilter matches addresses whose flag column equals Value.
type FlagFilter struct {
	Flag  entity.AddressFlag
	Value bool
}

// AddressOrder orders results by a flag column. Ties are always broken by ID ascending.
type AddressOrder struct {
	Flag      entity.AddressFlag
	Direction entity.Direction
}

// AddressQuery narrows an owner's address list.
// The zero value returns every live address of the owner in storage order.
type AddressQuery struct {
	Flags   []FlagFilter
	Country string
	OrderBy *AddressOrder
}

// Designated builds the query used for designated address lookups:
// filter on flag = true, then order by the same flag.
func Designated(flag entity.AddressFlag, direction entity.Direction) AddressQuery {
	return AddressQuery{
		Flags:   []FlagFilter{{Flag: flag, Value: true}},
		OrderBy: &AddressOrder{Flag: flag, Direction: direction},
	}
}

// IsZero reports whether the query has no filter and no ordering.
func (q AddressQuery) IsZero() bool {
	return len(q.Flags) == 0 && q.Country == "" && q.OrderBy == nil
}

// AddressRepository defines the interface for address-related database operations.
// Addresses are linked to owners through a polymorphic one-to-many association.
type AddressRepository interface {
	// CreateAddress persists a new address. ID and timestamps are filled in on success.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves a live address by its ID.
	// Returns ErrAddressNotFound if no live address matches.
	FindAddressByID(ctx context.Context, id uint64) (*entity.Address, error)

	// UpdateAddress writes every attribute of an existing live address.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address. It reports false when nothing matched.
	DeleteAddress(ctx context.Context, id uint64, mode entity.DeleteMode) (bool, error)

	// FindAddressesByOwner retrieves the owner's live addresses narrowed by the query.
	FindAddressesByOwner(ctx context.Context, owner entity.Owner, query AddressQuery) ([]*entity.Address, error)

	// FindFirstAddressByOwner returns the first address of FindAddressesByOwner.
	// Returns ErrAddressNotFound if the result is empty.
	FindFirstAddressByOwner(ctx context.Context, owner entity.Owner, query AddressQuery) (*entity.Address, error)

	// CountAddressesByOwner returns the number of live addresses of the owner.
	CountAddressesByOwner(ctx context.Context, owner entity.Owner) (int64, error)

	// DeleteAddressesByOwner removes every address of the owner and returns the affected row count.
	DeleteAddressesByOwner(ctx context.Context, owner entity.Owner, mode entity.DeleteMode) (int64, error)
}
