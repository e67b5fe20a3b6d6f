package entity

import (
	"strings"
	"time"

	"storefront/internal/errors"
)

// Timestamp layouts accepted from the API. The backend emits ISO 8601
// without a zone offset; RFC 3339 is accepted for forward compatibility.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// Timestamp is a point in time as serialized by the remote API.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON parses the API's timestamp formats. Null and empty
// strings decode to the zero value.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}

		return nil
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed

			return nil
		}
	}

	return errors.Errorf("unrecognized timestamp %q", raw)
}

// MarshalJSON renders the timestamp as RFC 3339, or null when zero.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}
