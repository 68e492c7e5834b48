package model

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Data is the view-data map a controller hands to an element. Elements treat
// it as read-only; use With or Clone to derive a variant for a sub-element.
type Data map[string]any

// Has reports whether key is present, even when its value is empty.
func (d Data) Has(key string) bool {
	if d == nil {
		return false
	}
	_, ok := d[key]
	return ok
}

// Empty reports whether key is missing or holds a zero-ish value: nil, a
// blank string or "0", false, 0, or an empty slice/map.
func (d Data) Empty(key string) bool {
	if d == nil {
		return true
	}
	value, ok := d[key]
	if !ok {
		return true
	}
	return isEmptyValue(value)
}

// String returns the value under key formatted as a string, or "" when absent.
func (d Data) String(key string) string {
	if d == nil {
		return ""
	}
	return toString(d[key])
}

// StringOr returns the string under key or fallback when it is blank.
func (d Data) StringOr(key, fallback string) string {
	if value := strings.TrimSpace(d.String(key)); value != "" {
		return value
	}
	return fallback
}

// Bool interprets the value under key as a flag. Numbers are true when
// non-zero; strings accept "1", "true", "on" and "yes".
func (d Data) Bool(key string) bool {
	if d == nil {
		return false
	}
	return toBool(d[key])
}

// Int returns the value under key as an int, or 0 when it cannot be parsed.
func (d Data) Int(key string) int {
	if d == nil {
		return 0
	}
	return toInt(d[key])
}

// Float returns the value under key as a float64 and whether it was present
// and numeric.
func (d Data) Float(key string) (float64, bool) {
	if d == nil {
		return 0, false
	}
	return toFloat(d[key])
}

// Map returns the nested map under key. Maps decoded from YAML or JSON with
// string keys are accepted; anything else yields nil.
func (d Data) Map(key string) Data {
	if d == nil {
		return nil
	}
	return toData(d[key])
}

// Slice returns the list under key, or nil.
func (d Data) Slice(key string) []any {
	if d == nil {
		return nil
	}
	switch v := d[key].(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	case []Data:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = map[string]any(m)
		}
		return out
	}
	return nil
}

// Strings returns the list under key as strings.
func (d Data) Strings(key string) []string {
	items := d.Slice(key)
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, toString(item))
	}
	return out
}

// StringMap returns the nested map under key flattened to strings, which is
// the shape of locale and option lists.
func (d Data) StringMap(key string) map[string]string {
	nested := d.Map(key)
	if len(nested) == 0 {
		return nil
	}
	out := make(map[string]string, len(nested))
	for k, v := range nested {
		out[k] = toString(v)
	}
	return out
}

// Decode copies the value under key into out through a JSON round-trip, the
// same path controllers use when they serialise records into the map. A
// missing or empty value ("", "0", false, 0, empty list or map) leaves out
// untouched and returns nil.
func (d Data) Decode(key string, out any) error {
	if d == nil {
		return nil
	}
	value, ok := d[key]
	if !ok || isEmptyValue(value) {
		return nil
	}
	raw, err := json.Marshal(normalize(value))
	if err != nil {
		return fmt.Errorf("model: encode %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("model: decode %q: %w", key, err)
	}
	return nil
}

// Clone returns a shallow copy.
func (d Data) Clone() Data {
	if d == nil {
		return Data{}
	}
	return maps.Clone(d)
}

// With returns a shallow copy with key set to value.
func (d Data) With(key string, value any) Data {
	out := d.Clone()
	out[key] = value
	return out
}

// Keys returns the sorted keys, mostly useful for debugging output.
func (d Data) Keys() []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == "" || v == "0"
	case bool:
		return !v
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		f, _ := toFloat(v)
		return f == 0
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	case Data:
		return len(v) == 0
	}
	return false
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

func toBool(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "on", "yes":
			return true
		}
		return false
	}
	f, ok := toFloat(value)
	return ok && f != 0
}

func toInt(value any) int {
	f, ok := toFloat(value)
	if !ok {
		return 0
	}
	return int(f)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

func toData(value any) Data {
	switch v := value.(type) {
	case Data:
		return v
	case map[string]any:
		return Data(v)
	case map[string]string:
		out := make(Data, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out
	case map[any]any:
		out := make(Data, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = item
		}
		return out
	}
	return nil
}

// normalize converts map[any]any values (older YAML decoders) into string
// keyed maps so encoding/json accepts them.
func normalize(value any) any {
	switch v := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = normalize(item)
		}
		return out
	case Data:
		return normalize(map[string]any(v))
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	}
	return value
}
