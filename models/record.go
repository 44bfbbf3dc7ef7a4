package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Record is one schema-free JSON document of a collection.
type Record map[string]any

// IDField is the key every backend stores the record id under.
const IDField = "id"

// ID returns the raw id value (float64/int64 for file and sql backends, hex string for mongo).
func (r Record) ID() any { return r[IDField] }

// IDString renders the id the way it appears in URLs and session entries.
func (r Record) IDString() string { return IDString(r[IDField]) }

// Clone makes a shallow copy.
func (r Record) Clone() Record {
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Str returns the field as a string, "" when missing or not a string.
func (r Record) Str(key string) string {
	s, _ := r[key].(string)
	return s
}

// IDString formats an id value; integral floats print without a fraction.
func IDString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		if id == math.Trunc(id) && !math.IsInf(id, 0) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	case float32:
		return IDString(float64(id))
	case int:
		return strconv.Itoa(id)
	case int32:
		return strconv.FormatInt(int64(id), 10)
	case int64:
		return strconv.FormatInt(id, 10)
	case json.Number:
		return id.String()
	default:
		b, _ := json.Marshal(id)
		return string(b)
	}
}

// IntID reports the id as an integer when it is one.
func IntID(v any) (int64, bool) {
	switch id := v.(type) {
	case float64:
		if id == math.Trunc(id) && !math.IsInf(id, 0) && !math.IsNaN(id) {
			return int64(id), true
		}
	case int:
		return int64(id), true
	case int32:
		return int64(id), true
	case int64:
		return id, true
	case json.Number:
		n, err := id.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(id, 10, 64)
		return n, err == nil
	}
	return 0, false
}

// ToRecord converts a typed entity into a Record through its json tags.
func ToRecord(v any) (Record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// FromRecord decodes a Record into a typed entity through its json tags.
func FromRecord(rec Record, v any) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
