package messaging

import (
	"context"
	"encoding/json"
	"fmt"
)

// PublishJSON encodes v as JSON and publishes it with the given key and headers.
func PublishJSON(ctx context.Context, p Publisher, destination string, key string, v any, headers ...Header) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("messaging: encode %s payload: %w", destination, err)
	}

	msg := OutgoingMessage{Body: body, Headers: headers}
	if key != "" {
		msg.Key = []byte(key)
	}

	_, err = p.Publish(ctx, destination, msg)
	return err
}
