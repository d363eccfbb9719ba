package service

import (
	"context"
	"time"
)

// AddressEventType names an address lifecycle event.
type AddressEventType string

const (
	// EventAddressCreated is published after an address is added to an owner.
	EventAddressCreated AddressEventType = "address.created"
	// EventAddressUpdated is published after an address is updated.
	EventAddressUpdated AddressEventType = "address.updated"
	// EventAddressDeleted is published after an address is soft- or force-deleted.
	EventAddressDeleted AddressEventType = "address.deleted"
	// EventOwnerAddressesDeleted is published after an owner's addresses are cascaded away.
	EventOwnerAddressesDeleted AddressEventType = "owner.addresses_deleted"
)

// AddressEvent is an address lifecycle event published to a message queue.
type AddressEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	EventID    string           `json:"event_id"`
	Type       AddressEventType `json:"type"`
	OwnerType  string           `json:"owner_type"`
	OwnerID    uint64           `json:"owner_id"`
	AddressIDs []uint64         `json:"address_ids,omitempty"`
	Force      bool             `json:"force,omitempty"`
	Count      int64            `json:"count,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAddressEvent publishes an address lifecycle event
	PublishAddressEvent(ctx context.Context, event *AddressEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
