package machine

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodePayload decodes an event's payload into a typed struct. Field
// names are matched by mapstructure tags, falling back to case-insensitive
// field names. Unknown payload fields are an error so that a mistyped case
// fails loudly instead of silently dropping data.
func DecodePayload(ev Event, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(map[string]any(ev.Payload)); err != nil {
		return fmt.Errorf("event %q: failed to decode payload: %w", ev.Type, err)
	}
	return nil
}
