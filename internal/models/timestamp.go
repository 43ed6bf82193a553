package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Timestamp is a point in time persisted as ISO-8601 text (RFC 3339 with
// UTC offset) rather than the store's native date type, and rendered the
// same way in JSON responses.
type Timestamp struct {
	time.Time
}

// Now returns the current UTC time as a Timestamp
func Now() Timestamp {
	return Timestamp{time.Now().UTC()}
}

// NewTimestamp wraps an existing time value
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t}
}

// MarshalBSONValue stores the timestamp as an RFC 3339 string
func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.String, bsoncore.AppendString(nil, t.UTC().Format(time.RFC3339)), nil
}

// UnmarshalBSONValue parses the stored RFC 3339 string back into a time value
func (t *Timestamp) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	if bt != bsontype.String {
		return fmt.Errorf("timestamp: expected BSON string, got %s", bt)
	}
	raw, _, ok := bsoncore.ReadString(data)
	if !ok {
		return fmt.Errorf("timestamp: malformed BSON string")
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON renders the timestamp as an RFC 3339 string
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON parses an RFC 3339 string
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	raw := string(data)
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return fmt.Errorf("timestamp: expected JSON string")
	}
	parsed, err := time.Parse(time.RFC3339, raw[1:len(raw)-1])
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	t.Time = parsed
	return nil
}
