package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Params
	}{
		{"object", `{"node": "10.0.0.5"}`, Params{"node": "10.0.0.5"}},
		{"empty payload", ``, Params{}},
		{"null", `null`, Params{}},
		{"array", `[1, 2]`, Params{}},
		{"string", `"params"`, Params{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseParams(json.RawMessage(tt.raw)))
		})
	}
}

func TestStringReads(t *testing.T) {
	p := ParseParams(json.RawMessage(`{"node": "10.0.0.5", "count": 3, "flag": true}`))

	s, ok := p.String("node")
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.5", s)

	// Wrong type reads as absent.
	_, ok = p.String("count")
	assert.False(t, ok)
	_, ok = p.String("flag")
	assert.False(t, ok)
	_, ok = p.String("missing")
	assert.False(t, ok)

	assert.Equal(t, "rss", p.StringOr("missing", "rss"))
	assert.Equal(t, "10.0.0.5", p.StringOr("node", "rss"))
}

func TestBoolReads(t *testing.T) {
	p := ParseParams(json.RawMessage(`{"flag": true, "name": "yes"}`))

	b, ok := p.Bool("flag")
	assert.True(t, ok)
	assert.True(t, b)

	// A truthy-looking string is not a boolean.
	_, ok = p.Bool("name")
	assert.False(t, ok)

	assert.True(t, p.BoolOr("missing", true))
	assert.False(t, p.BoolOr("missing", false))
}

func TestIntReads(t *testing.T) {
	p := ParseParams(json.RawMessage(`{"whole": 5, "wholeFloat": 5.0, "fraction": 5.5, "text": "5"}`))

	n, ok := p.Int("whole")
	assert.True(t, ok)
	assert.Equal(t, int64(5), n)

	// 5.0 decodes to the same float64 as 5.
	n, ok = p.Int("wholeFloat")
	assert.True(t, ok)
	assert.Equal(t, int64(5), n)

	_, ok = p.Int("fraction")
	assert.False(t, ok)
	_, ok = p.Int("text")
	assert.False(t, ok)

	assert.Equal(t, int64(1), p.IntOr("missing", 1))
}

func TestStringSliceReads(t *testing.T) {
	p := ParseParams(json.RawMessage(`{"mixed": ["a", 1, "b", null], "nums": [1, 2], "str": "a"}`))

	// Non-string elements are dropped, not rejected.
	got, ok := p.StringSlice("mixed")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	// An array of non-strings is still "present", just empty.
	got, ok = p.StringSlice("nums")
	require.True(t, ok)
	assert.Empty(t, got)

	_, ok = p.StringSlice("str")
	assert.False(t, ok)
	_, ok = p.StringSlice("missing")
	assert.False(t, ok)
}

func TestObjectReads(t *testing.T) {
	p := ParseParams(json.RawMessage(`{"arguments": {"node": "10.0.0.5"}, "name": "list"}`))

	obj, ok := p.Object("arguments")
	require.True(t, ok)
	assert.Equal(t, "10.0.0.5", obj.StringOr("node", ""))

	_, ok = p.Object("name")
	assert.False(t, ok)
}

func TestRequireString(t *testing.T) {
	p := Params{"node": "10.0.0.5", "count": float64(3)}

	s, err := requireString(p, "node")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", s)

	_, err = requireString(p, "missing")
	require.EqualError(t, err, "Missing missing param")

	// Present with the wrong type reads as missing.
	_, err = requireString(p, "count")
	require.EqualError(t, err, "Missing count param")

	var mp *MissingParameterError
	require.ErrorAs(t, err, &mp)
	assert.Equal(t, "count", mp.Param)
}
