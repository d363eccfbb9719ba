// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "addressbook/internal/domain/entity"

// AddressFields is a flat field map submitted for an address, keyed by column name.
type AddressFields map[string]any

// Has reports whether the key is present, even with a nil value.
func (f AddressFields) Has(key string) bool {
	_, ok := f[key]

	return ok
}

// AddressValidator validates field maps against a rule table before any write.
type AddressValidator interface {
	// Validate checks the label pre-condition and every present field against its rule.
	// It returns only the fields known to the rule table. Failures are returned as a
	// single *errors.ValidationError aggregating all messages.
	Validate(fields AddressFields) (AddressFields, error)

	// Apply decodes validated fields onto the address. Keys with a nil value clear the attribute.
	Apply(fields AddressFields, address *entity.Address) error
}
