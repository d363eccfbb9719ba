// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"

	"github.com/paulmach/orb"
)

// DeleteStatus is the result of deleting one referenced address.
type DeleteStatus string

const (
	// DeleteStatusDeleted means the address was removed.
	DeleteStatusDeleted DeleteStatus = "deleted"
	// DeleteStatusNotOwned means the address is not linked to the owner and was left alone.
	DeleteStatusNotOwned DeleteStatus = "not_owned"
	// DeleteStatusNotFound means the address disappeared before it could be removed.
	DeleteStatusNotFound DeleteStatus = "not_found"
)

// DeleteOutcome reports what happened to one address of a delete request.
type DeleteOutcome struct {
	AddressID uint64       `json:"address_id"`
	Status    DeleteStatus `json:"status"`
}

// AddressUsecase manages the addresses linked to an owner.
// Every operation is scoped to the owner passed in.
type AddressUsecase interface {
	// AddAddress validates the fields and stores a new address for the owner.
	AddAddress(ctx context.Context, owner entity.Owner, fields service.AddressFields) (*entity.Address, error)

	// UpdateAddress validates the fields and applies them to one of the owner's addresses.
	UpdateAddress(ctx context.Context, owner entity.Owner, addressID uint64, fields service.AddressFields) (*entity.Address, error)

	// DeleteAddress deletes every referenced address the owner holds.
	// It returns one outcome per distinct referenced ID, in reference order.
	DeleteAddress(ctx context.Context, owner entity.Owner, ref entity.AddressRef, mode entity.DeleteMode) ([]DeleteOutcome, error)

	// ForceDeleteAddress is DeleteAddress with entity.ForceDelete.
	ForceDeleteAddress(ctx context.Context, owner entity.Owner, ref entity.AddressRef) ([]DeleteOutcome, error)

	// HasAddress reports whether any referenced address belongs to the owner.
	HasAddress(ctx context.Context, owner entity.Owner, ref entity.AddressRef) (bool, error)

	// HasAddresses reports whether the owner has at least one address.
	HasAddresses(ctx context.Context, owner entity.Owner) (bool, error)

	GetAddresses(ctx context.Context, owner entity.Owner, query repository.AddressQuery) ([]*entity.Address, error)
	GetAddress(ctx context.Context, owner entity.Owner, addressID uint64) (*entity.Address, error)
	GetAddressLabels(ctx context.Context, owner entity.Owner) ([]string, error)

	// Designated address accessors. They return nil without error when the owner
	// has no address carrying the flag. Every candidate carries the flag, so the
	// direction never changes the pick: the lowest id wins either way.
	GetDesignatedAddress(ctx context.Context, owner entity.Owner, flag entity.AddressFlag, direction entity.Direction) (*entity.Address, error)
	GetPrimaryAddress(ctx context.Context, owner entity.Owner, direction entity.Direction) (*entity.Address, error)
	GetBillingAddress(ctx context.Context, owner entity.Owner, direction entity.Direction) (*entity.Address, error)
	GetShippingAddress(ctx context.Context, owner entity.Owner, direction entity.Direction) (*entity.Address, error)
	GetPublicAddress(ctx context.Context, owner entity.Owner, direction entity.Direction) (*entity.Address, error)

	// GetNearestAddress returns the owner's address closest to point, using stored coordinates only.
	GetNearestAddress(ctx context.Context, owner entity.Owner, point orb.Point) (*entity.Address, error)

	// DeleteOwner cascades the owner's deletion to its addresses.
	// purge erases them permanently, otherwise they are soft-deleted.
	DeleteOwner(ctx context.Context, owner entity.Owner, purge bool) (int64, error)
}
