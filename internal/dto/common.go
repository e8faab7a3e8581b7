package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// FlexDate accepts either a bare calendar date ("2006-01-02") or a full
// RFC 3339 instant. DateOnly records which form was supplied so services can
// apply the time-of-day promotion rule.
type FlexDate struct {
	Time     time.Time
	DateOnly bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *FlexDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("date must not be empty")
	}
	if len(raw) == len(dateOnlyLayout) {
		t, err := time.Parse(dateOnlyLayout, raw)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", raw, err)
		}
		d.Time = t
		d.DateOnly = true
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid datetime %q: %w", raw, err)
	}
	d.Time = t
	d.DateOnly = false
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d FlexDate) MarshalJSON() ([]byte, error) {
	if d.DateOnly {
		return json.Marshal(d.Time.Format(dateOnlyLayout))
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// IsZero reports whether no date was supplied.
func (d FlexDate) IsZero() bool {
	return d.Time.IsZero()
}
