package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// decode turns any supported raw value into plain JSON-like Go values
// (map[string]interface{}, []interface{}, float64, string, bool, nil)
func decode(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil:
		return nil, recordError(ErrUnsupportedInput, "")
	case map[string]interface{}, []interface{}:
		return v, nil
	case json.RawMessage:
		return unmarshal(v)
	case []byte:
		return unmarshal(v)
	case string:
		return unmarshal([]byte(v))
	default:
		// Structs (including already-canonical records) go through JSON
		data, err := json.Marshal(v)
		if err != nil {
			return nil, recordError(ErrUnsupportedInput, fmt.Sprintf("%T", raw))
		}
		return unmarshal(data)
	}
}

func unmarshal(data []byte) (interface{}, error) {
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, recordError(ErrUnsupportedInput, "json")
	}
	if out == nil {
		return nil, recordError(ErrUnsupportedInput, "null")
	}
	return out, nil
}

func decodeObject(raw interface{}) (map[string]interface{}, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, recordError(ErrUnsupportedInput, fmt.Sprintf("%T", v))
	}
	return obj, nil
}

// first returns the value of the first key present with a non-nil value
func first(obj map[string]interface{}, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := obj[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// firstID returns the first key whose value coerces to a non-blank identifier
func firstID(obj map[string]interface{}, keys ...string) (string, bool) {
	for _, k := range keys {
		if id, ok := toID(obj[k]); ok {
			return id, true
		}
	}
	return "", false
}

// toID coerces integer and string identifiers to one string form
func toID(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return "", false
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return toID(float64(t))
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case json.Number:
		return toID(t.String())
	default:
		return "", false
	}
}

// toFloat reads numbers, numeric strings and percent strings.
// NaN and infinities are rejected.
func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, !math.IsNaN(t) && !math.IsInf(t, 0)
	case float32:
		return toFloat(float64(t))
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case int32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSuffix(strings.TrimSpace(t), "%")
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func toInt(v interface{}) (int, bool) {
	f, ok := toFloat(v)
	if !ok || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// toText renders scalar values as text; nil becomes ""
func toText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func stringField(obj map[string]interface{}, keys ...string) string {
	v, _ := first(obj, keys...)
	return toText(v)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// toTime parses the timestamp layouts the pipeline has written over time
func toTime(v interface{}) *time.Time {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		// Canonical records must re-encode as RFC 3339
		if t = t.UTC(); t.Year() < 0 || t.Year() > 9999 {
			return nil
		}
		return &t
	}
	return nil
}
