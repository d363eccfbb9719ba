package entity

import "strconv"

// Owner is implemented by any entity that can possess addresses.
type Owner interface {
	OwnerType() string
	OwnerID() uint64
}

// OwnerRef is a plain value implementation of Owner.
type OwnerRef struct {
	Type string `json:"owner_type"`
	ID   uint64 `json:"owner_id"`
}

// NewOwnerRef creates an OwnerRef for the given type and ID.
func NewOwnerRef(ownerType string, ownerID uint64) OwnerRef {
	return OwnerRef{Type: ownerType, ID: ownerID}
}

// OwnerType returns the owner's type tag.
func (o OwnerRef) OwnerType() string {
	return o.Type
}

// OwnerID returns the owner's ID.
func (o OwnerRef) OwnerID() uint64 {
	return o.ID
}

// String returns the "type:id" representation of the owner.
func (o OwnerRef) String() string {
	return o.Type + ":" + strconv.FormatUint(o.ID, 10)
}

// RefOf converts any Owner into an OwnerRef.
func RefOf(owner Owner) OwnerRef {
	if ref, ok := owner.(OwnerRef); ok {
		return ref
	}

	return OwnerRef{Type: owner.OwnerType(), ID: owner.OwnerID()}
}
