package models

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Hello World/Two", "hello-world-two"},
		{"Scaling Go Services/Part 1", "scaling-go-services-part-1"},
		{"already-a-slug", "already-a-slug"},
		{"Mixed CASE Title", "mixed-case-title"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestTimestampJSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC))

	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2024-03-15T09:30:00Z"` {
		t.Errorf("Unexpected JSON: %s", data)
	}

	var parsed Timestamp
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !parsed.Equal(ts.Time) {
		t.Errorf("Round trip changed the value: %v != %v", parsed, ts)
	}

	if err := json.Unmarshal([]byte(`"not a time"`), &parsed); err == nil {
		t.Error("Expected an error for a malformed timestamp")
	}
}

func TestTimestampBSON_StoredAsString(t *testing.T) {
	type doc struct {
		At Timestamp `bson:"at"`
	}

	in := doc{At: NewTimestamp(time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC))}
	data, err := bson.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// The stored representation must be text, not a native date
	var raw bson.M
	if err := bson.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal to map failed: %v", err)
	}
	if s, ok := raw["at"].(string); !ok || s != "2024-03-15T09:30:00Z" {
		t.Errorf("Expected ISO string in the document, got %T %v", raw["at"], raw["at"])
	}

	var out doc
	if err := bson.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !out.At.Equal(in.At.Time) {
		t.Errorf("Round trip changed the value: %v != %v", out.At, in.At)
	}
}
