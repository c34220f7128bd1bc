package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golovatskygroup/talos-mcp/internal/testutil"
)

func TestList(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]any
		wantArgs []string
		want     map[string]any
	}{
		{
			name:     "defaults",
			params:   map[string]any{"node": "10.0.0.5"},
			wantArgs: []string{"--nodes", "10.0.0.5", "list", "/"},
			want: map[string]any{
				"list": "OUT", "path": "/", "long": false, "humanize": false,
				"recurse": false, "depth": int64(1), "types": nil,
			},
		},
		{
			name:     "long and humanize",
			params:   map[string]any{"node": "10.0.0.5", "path": "/etc", "long": true, "humanize": true},
			wantArgs: []string{"--nodes", "10.0.0.5", "list", "/etc", "--long", "--humanize"},
			want: map[string]any{
				"list": "OUT", "path": "/etc", "long": true, "humanize": true,
				"recurse": false, "depth": int64(1), "types": nil,
			},
		},
		{
			name:     "depth flag only when not 1",
			params:   map[string]any{"node": "10.0.0.5", "depth": 3},
			wantArgs: []string{"--nodes", "10.0.0.5", "list", "/", "--depth", "3"},
			want: map[string]any{
				"list": "OUT", "path": "/", "long": false, "humanize": false,
				"recurse": false, "depth": int64(3), "types": nil,
			},
		},
		{
			name:     "recurse wins over depth",
			params:   map[string]any{"node": "10.0.0.5", "recurse": true, "depth": 3},
			wantArgs: []string{"--nodes", "10.0.0.5", "list", "/", "--recurse"},
			want: map[string]any{
				"list": "OUT", "path": "/", "long": false, "humanize": false,
				"recurse": true, "depth": int64(3), "types": nil,
			},
		},
		{
			name:     "type filters repeat per value",
			params:   map[string]any{"node": "10.0.0.5", "type": []any{"f", "d"}},
			wantArgs: []string{"--nodes", "10.0.0.5", "list", "/", "--type", "f", "--type", "d"},
			want: map[string]any{
				"list": "OUT", "path": "/", "long": false, "humanize": false,
				"recurse": false, "depth": int64(1), "types": []string{"f", "d"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &testutil.Runner{Default: testutil.Result{Output: "OUT"}}
			d := newTestDispatcher(r)

			out := d.Dispatch(context.Background(), "list", mustJSON(t, tt.params))
			require.False(t, out.Failed())
			assert.Equal(t, tt.want, out.Result())
			assert.Equal(t, tt.wantArgs, r.LastCall().Args)
		})
	}
}

func TestRead(t *testing.T) {
	r := &testutil.Runner{Default: testutil.Result{Output: "file contents"}}
	d := newTestDispatcher(r)

	out := d.Dispatch(context.Background(), "read", mustJSON(t, map[string]any{
		"node": "10.0.0.5",
		"path": "/etc/hostname",
	}))
	require.False(t, out.Failed())
	assert.Equal(t, map[string]any{"content": "file contents"}, out.Result())
	assert.Equal(t, []string{"--nodes", "10.0.0.5", "read", "/etc/hostname"}, r.LastCall().Args)
}

func TestReadChecksNodeBeforePath(t *testing.T) {
	d := newTestDispatcher(&testutil.Runner{})

	out := d.Dispatch(context.Background(), "read", mustJSON(t, map[string]any{}))
	require.True(t, out.Failed())
	assert.EqualError(t, out.Err(), "Missing node param")
}

func TestCopy(t *testing.T) {
	r := &testutil.Runner{Default: testutil.Result{Output: "copied"}}
	d := newTestDispatcher(r)

	out := d.Dispatch(context.Background(), "copy", mustJSON(t, map[string]any{
		"node":        "10.0.0.5",
		"source":      "/var/log/pods",
		"destination": "/tmp/pods",
	}))
	require.False(t, out.Failed())
	assert.Equal(t, map[string]any{"copy": "copied"}, out.Result())
	assert.Equal(t, []string{"--nodes", "10.0.0.5", "copy", "/var/log/pods", "/tmp/pods"}, r.LastCall().Args)
}

func TestUsage(t *testing.T) {
	r := &testutil.Runner{Default: testutil.Result{Output: "USAGE"}}
	d := newTestDispatcher(r)

	out := d.Dispatch(context.Background(), "get_usage", mustJSON(t, map[string]any{"node": "10.0.0.5"}))
	require.False(t, out.Failed())
	assert.Equal(t, map[string]any{"usage": "USAGE"}, out.Result())
	assert.Equal(t, []string{"--nodes", "10.0.0.5", "usage", "/"}, r.LastCall().Args)

	out = d.Dispatch(context.Background(), "get_usage", mustJSON(t, map[string]any{
		"node": "10.0.0.5",
		"path": "/var",
	}))
	require.False(t, out.Failed())
	assert.Equal(t, []string{"--nodes", "10.0.0.5", "usage", "/var"}, r.LastCall().Args)
}

func TestMounts(t *testing.T) {
	r := &testutil.Runner{Default: testutil.Result{Output: "MOUNTS"}}
	d := newTestDispatcher(r)

	out := d.Dispatch(context.Background(), "get_mounts", mustJSON(t, map[string]any{"node": "10.0.0.5"}))
	require.False(t, out.Failed())
	assert.Equal(t, map[string]any{"mounts": "MOUNTS"}, out.Result())
	assert.Equal(t, []string{"--nodes", "10.0.0.5", "mounts"}, r.LastCall().Args)
}
