package pubsub

import (
	"encoding/json"
	"strconv"

	"addressbook/internal/domain/service"

	"github.com/pkg/errors"
)

// Supported publisher providers.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// encodeEvent serializes an address event and derives the message attributes
// subscribers filter on.
func encodeEvent(event *service.AddressEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": string(event.Type),
		"owner_type": event.OwnerType,
		"owner_id":   strconv.FormatUint(event.OwnerID, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
