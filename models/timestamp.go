// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the wire format of every date-time field in the API:
// an ISO-8601 local date-time without offset, always interpreted as UTC.
const TimestampLayout = "2006-01-02T15:04:05"

// inputLayouts lists the formats accepted when decoding a timestamp from
// JSON or from a database driver that hands back text (SQLite).
var inputLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Timestamp is a UTC, second-precision point in time.
//
// It embeds [time.Time] so comparison helpers (Before, After, Equal) are
// available directly, and implements JSON and database/sql codecs so the
// same value travels from the request body down to the storage layer.
type Timestamp struct {
	time.Time
}

// NewTimestamp normalises t to UTC and truncates it to whole seconds.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Second)}
}

// MarshalJSON encodes the timestamp using [TimestampLayout].
// The zero value is encoded as null.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(TimestampLayout))
}

// UnmarshalJSON accepts null, [TimestampLayout] and RFC 3339 strings.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	parsed, err := parseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements [driver.Valuer].
func (t Timestamp) Value() (driver.Value, error) {
	return t.UTC(), nil
}

// Scan implements [sql.Scanner]. PostgreSQL hands back time.Time while
// SQLite may return the stored text representation.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = Timestamp{}
	case time.Time:
		*t = NewTimestamp(v)
	case string:
		parsed, err := parseTimestamp(v)
		if err != nil {
			return err
		}
		*t = parsed
	case []byte:
		parsed, err := parseTimestamp(string(v))
		if err != nil {
			return err
		}
		*t = parsed
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
	return nil
}

func parseTimestamp(s string) (Timestamp, error) {
	for _, layout := range inputLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(parsed), nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q, expected format %s", s, TimestampLayout)
}
