// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Address is the core entity for a postal address.
// It belongs to exactly one owner, identified by owner type and owner ID.
type Address struct {
	ID                 uint64     `json:"id" mapstructure:"-"`                                   // Assigned by the store on creation.
	OwnerType          string     `json:"owner_type" mapstructure:"-"`                           // The type tag of the owner (e.g., "customer").
	OwnerID            uint64     `json:"owner_id" mapstructure:"-"`                             // The ID of the owning entity.
	Relation           string     `json:"-" mapstructure:"-"`                                    // Relation discriminator on the polymorphic link.
	Label              string     `json:"label" mapstructure:"label"`                            // A user-defined label, e.g., "Home", "Office".
	Street             string     `json:"street,omitempty" mapstructure:"street"`                // Street name.
	HouseNumber        string     `json:"housenumber,omitempty" mapstructure:"housenumber"`      // House number.
	HouseNumberPostfix string     `json:"housenumber_postfix,omitempty" mapstructure:"housenumber_postfix"`
	PostalCode         string     `json:"postal_code,omitempty" mapstructure:"postal_code"`
	City               string     `json:"city,omitempty" mapstructure:"city"`
	State              string     `json:"state,omitempty" mapstructure:"state"`
	Country            string     `json:"country,omitempty" mapstructure:"country"` // ISO 3166-1 alpha-2 code.
	Latitude           *float64   `json:"latitude,omitempty" mapstructure:"latitude"`
	Longitude          *float64   `json:"longitude,omitempty" mapstructure:"longitude"`
	IsPublic           bool       `json:"is_public" mapstructure:"is_public"`
	IsPrimary          bool       `json:"is_primary" mapstructure:"is_primary"`
	IsBilling          bool       `json:"is_billing" mapstructure:"is_billing"`
	IsShipping         bool       `json:"is_shipping" mapstructure:"is_shipping"`
	CreatedAt          time.Time  `json:"created_at" mapstructure:"-"`
	UpdatedAt          time.Time  `json:"updated_at" mapstructure:"-"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty" mapstructure:"-"`
}

// BelongsTo reports whether the address is linked to the given owner.
func (a *Address) BelongsTo(owner Owner) bool {
	return a != nil && a.OwnerType == owner.OwnerType() && a.OwnerID == owner.OwnerID()
}

// Flag returns the value of the given designation flag.
func (a *Address) Flag(flag AddressFlag) bool {
	switch flag {
	case FlagPublic:
		return a.IsPublic
	case FlagPrimary:
		return a.IsPrimary
	case FlagBilling:
		return a.IsBilling
	case FlagShipping:
		return a.IsShipping
	default:
		return false
	}
}

// Point returns the coordinates of the address as an orb.Point.
// The second result is false when the address has no coordinates.
func (a *Address) Point() (orb.Point, bool) {
	if a.Latitude == nil || a.Longitude == nil {
		return orb.Point{}, false
	}

	return orb.Point{*a.Longitude, *a.Latitude}, true
}
