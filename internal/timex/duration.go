// Package timex adds JSON support for durations so config files can
// say "15s" instead of integer nanoseconds.
package timex

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration wraps time.Duration with JSON unmarshalling that accepts
// either a duration string ("15s", "2m") or a number of nanoseconds.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration value %v", v)
	}
}
