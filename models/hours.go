package models

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ErrNotANumber is returned by [Hours.UnmarshalJSON] when the JSON value is
// neither a number nor a numeric string.
var ErrNotANumber = errors.New("hours is not a number")

// Hours is the number of hours recorded on a work entry. Clients may send it
// as a JSON number or a numeric string ("8.5"); it always marshals back as a
// number.
type Hours float64

// Float returns the plain float64 value.
func (h Hours) Float() float64 {
	return float64(h)
}

// MarshalJSON implements [json.Marshaler].
func (h Hours) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(h))
}

// UnmarshalJSON implements [json.Unmarshaler]. Accepts both `8.5` and `"8.5"`.
func (h *Hours) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ErrNotANumber
	}

	*h = Hours(parsed)
	return nil
}
