package entity

import "slices"

// AddressRef refers to one or more addresses. It is a closed set of variants:
// ByID, ByRecord, ByList and BySet.
type AddressRef interface {
	isAddressRef()
}

// ByID refers to an address by its ID.
type ByID uint64

// ByRecord refers to an address through a loaded record.
type ByRecord struct {
	Address *Address
}

// ByList refers to a sequence of references. Order is preserved.
type ByList []AddressRef

// BySet refers to a set of address IDs.
type BySet map[uint64]struct{}

func (ByID) isAddressRef()     {}
func (ByRecord) isAddressRef() {}
func (ByList) isAddressRef()   {}
func (BySet) isAddressRef()    {}

// IDs builds a ByList of ByID references.
func IDs(ids ...uint64) ByList {
	list := make(ByList, 0, len(ids))
	for _, id := range ids {
		list = append(list, ByID(id))
	}

	return list
}

// NewIDSet builds a BySet from the given IDs.
func NewIDSet(ids ...uint64) BySet {
	set := make(BySet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

// FlattenRef expands a reference into the address IDs it names, in order.
// Nested lists are flattened and set members are returned in ascending order.
// A ByRecord with a nil address contributes nothing.
func FlattenRef(ref AddressRef) []uint64 {
	var ids []uint64

	switch r := ref.(type) {
	case ByID:
		ids = append(ids, uint64(r))
	case ByRecord:
		if r.Address != nil {
			ids = append(ids, r.Address.ID)
		}
	case ByList:
		for _, item := range r {
			ids = append(ids, FlattenRef(item)...)
		}
	case BySet:
		members := make([]uint64, 0, len(r))
		for id := range r {
			members = append(members, id)
		}
		slices.Sort(members)
		ids = append(ids, members...)
	}

	return ids
}
