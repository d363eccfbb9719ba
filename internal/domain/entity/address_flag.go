package entity

import "strings"

// AddressFlag names one of the boolean designation columns of an address.
type AddressFlag string

const (
	// FlagPublic marks an address as publicly visible.
	FlagPublic AddressFlag = "is_public"
	// FlagPrimary marks the owner's primary address.
	FlagPrimary AddressFlag = "is_primary"
	// FlagBilling marks a billing address.
	FlagBilling AddressFlag = "is_billing"
	// FlagShipping marks a shipping address.
	FlagShipping AddressFlag = "is_shipping"
)

// AllFlags lists every designation flag in column order.
func AllFlags() []AddressFlag {
	return []AddressFlag{FlagPublic, FlagPrimary, FlagBilling, FlagShipping}
}

// String returns the column name of the flag.
func (f AddressFlag) String() string {
	return string(f)
}

// IsValid checks if the AddressFlag is a valid value.
func (f AddressFlag) IsValid() bool {
	switch f {
	case FlagPublic, FlagPrimary, FlagBilling, FlagShipping:
		return true
	default:
		return false
	}
}

// Direction is a sort direction.
type Direction string

const (
	// DirectionAsc sorts ascending.
	DirectionAsc Direction = "asc"
	// DirectionDesc sorts descending. It is the default for designated address lookups.
	DirectionDesc Direction = "desc"
)

// ParseDirection parses "asc"/"desc" case-insensitively. Empty input yields DirectionDesc.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc":
		return DirectionDesc, true
	case "asc":
		return DirectionAsc, true
	default:
		return "", false
	}
}

// IsDesc reports whether the direction is descending.
func (d Direction) IsDesc() bool {
	return d != DirectionAsc
}

// DeleteMode selects between soft and permanent removal.
type DeleteMode int

const (
	// SoftDelete marks rows as deleted through deleted_at.
	SoftDelete DeleteMode = iota
	// ForceDelete permanently erases rows.
	ForceDelete
)

// String returns a human readable form of the mode.
func (m DeleteMode) String() string {
	if m == ForceDelete {
		return "force"
	}

	return "soft"
}
