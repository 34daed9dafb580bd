package usecase

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Flag is a boolean that also accepts the string values HTML checkboxes
// submit, so both true and "on" decode to an enabled flag.
type Flag bool

// Bool returns the plain boolean value.
func (f Flag) Bool() bool {
	return bool(f)
}

// UnmarshalJSON decodes a JSON bool or a checkbox string value.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "flag must be a bool or a string")
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1":
		*f = true
	case "", "off", "false", "0":
		*f = false
	default:
		return errors.Errorf("invalid flag value: %q", s)
	}

	return nil
}

// MarshalJSON encodes the flag as a plain JSON bool.
func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}
