package tools

import (
	"encoding/json"
	"math"
)

// Params holds a request's params object. Accessors read loosely: a
// key whose value has the wrong JSON type counts as absent.
type Params map[string]any

// ParseParams decodes a raw params payload. Anything that is not a
// JSON object yields empty Params.
func ParseParams(raw json.RawMessage) Params {
	if len(raw) == 0 {
		return Params{}
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return Params{}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return Params{}
	}
	return Params(m)
}

// Has reports whether key is present, regardless of its value type.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the value for key when it is a string.
func (p Params) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// StringOr returns the string value for key, or def.
func (p Params) StringOr(key, def string) string {
	if s, ok := p.String(key); ok {
		return s
	}
	return def
}

// Bool returns the value for key when it is a boolean.
func (p Params) Bool(key string) (bool, bool) {
	b, ok := p[key].(bool)
	return b, ok
}

// BoolOr returns the boolean value for key, or def.
func (p Params) BoolOr(key string, def bool) bool {
	if b, ok := p.Bool(key); ok {
		return b
	}
	return def
}

// Int returns the value for key when it is a whole JSON number.
func (p Params) Int(key string) (int64, bool) {
	f, ok := p[key].(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

// IntOr returns the integer value for key, or def.
func (p Params) IntOr(key string, def int64) int64 {
	if n, ok := p.Int(key); ok {
		return n
	}
	return def
}

// StringSlice returns the string elements for key when the value is an
// array. Elements of other types are dropped, so a present array can
// come back empty.
func (p Params) StringSlice(key string) ([]string, bool) {
	arr, ok := p[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// Object returns the value for key when it is a JSON object.
func (p Params) Object(key string) (Params, bool) {
	m, ok := p[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Params(m), true
}

// requireString reads a mandatory string argument.
func requireString(p Params, key string) (string, error) {
	s, ok := p.String(key)
	if !ok {
		return "", &MissingParameterError{Param: key}
	}
	return s, nil
}
