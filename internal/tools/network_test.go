package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golovatskygroup/talos-mcp/internal/testutil"
)

func TestInterfaces(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]any
		wantArgs []string
		want     map[string]any
	}{
		{
			name:     "defaults",
			params:   map[string]any{"node": "10.0.0.5"},
			wantArgs: []string{"--nodes", "10.0.0.5", "get", "addresses", "--output", "table"},
			want:     map[string]any{"interfaces": "OUT", "namespace": nil, "output_format": "table"},
		},
		{
			name:     "namespace and output",
			params:   map[string]any{"node": "10.0.0.5", "namespace": "network", "output": "yaml"},
			wantArgs: []string{"--nodes", "10.0.0.5", "get", "addresses", "--namespace", "network", "--output", "yaml"},
			want:     map[string]any{"interfaces": "OUT", "namespace": "network", "output_format": "yaml"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &testutil.Runner{Default: testutil.Result{Output: "OUT"}}
			d := newTestDispatcher(r)

			out := d.Dispatch(context.Background(), "interfaces", mustJSON(t, tt.params))
			require.False(t, out.Failed())
			assert.Equal(t, tt.want, out.Result())
			assert.Equal(t, tt.wantArgs, r.LastCall().Args)
		})
	}
}

func TestRoutes(t *testing.T) {
	r := &testutil.Runner{Default: testutil.Result{Output: "ROUTES"}}
	d := newTestDispatcher(r)

	out := d.Dispatch(context.Background(), "routes", mustJSON(t, map[string]any{
		"node":   "10.0.0.5",
		"output": "json",
	}))
	require.False(t, out.Failed())
	assert.Equal(t, map[string]any{"routes": "ROUTES", "namespace": nil, "output_format": "json"}, out.Result())
	assert.Equal(t, []string{"--nodes", "10.0.0.5", "get", "routes", "--output", "json"}, r.LastCall().Args)
}

func TestNetstat(t *testing.T) {
	r := &testutil.Runner{Default: testutil.Result{Output: "NETSTAT"}}
	d := newTestDispatcher(r)

	out := d.Dispatch(context.Background(), "get_netstat", mustJSON(t, map[string]any{"node": "10.0.0.5"}))
	require.False(t, out.Failed())
	assert.Equal(t, map[string]any{"netstat": "NETSTAT"}, out.Result())
	assert.Equal(t, []string{"--nodes", "10.0.0.5", "netstat"}, r.LastCall().Args)
}

func TestCapturePackets(t *testing.T) {
	r := &testutil.Runner{Default: testutil.Result{Output: "PCAP"}}
	d := newTestDispatcher(r)

	out := d.Dispatch(context.Background(), "capture_packets", mustJSON(t, map[string]any{"node": "10.0.0.5"}))
	require.False(t, out.Failed())
	assert.Equal(t, map[string]any{"packets": "PCAP"}, out.Result())
	assert.Equal(t, []string{"--nodes", "10.0.0.5", "pcap", "--interface", "eth0", "--duration", "10s"}, r.LastCall().Args)

	out = d.Dispatch(context.Background(), "capture_packets", mustJSON(t, map[string]any{
		"node":      "10.0.0.5",
		"interface": "bond0",
		"duration":  "30s",
	}))
	require.False(t, out.Failed())
	assert.Equal(t, []string{"--nodes", "10.0.0.5", "pcap", "--interface", "bond0", "--duration", "30s"}, r.LastCall().Args)
}

func TestNetworkIOCgroups(t *testing.T) {
	r := &testutil.Runner{Default: testutil.Result{Output: "IO"}}
	d := newTestDispatcher(r)

	out := d.Dispatch(context.Background(), "get_network_io_cgroups", mustJSON(t, map[string]any{"node": "10.0.0.5"}))
	require.False(t, out.Failed())
	assert.Equal(t, map[string]any{"network_io": "IO"}, out.Result())
	assert.Equal(t, []string{"--nodes", "10.0.0.5", "cgroups", "--preset", "io"}, r.LastCall().Args)
}

func TestListNetworkInterfaces(t *testing.T) {
	r := &testutil.Runner{Default: testutil.Result{Output: "eth0\neth1"}}
	d := newTestDispatcher(r)

	out := d.Dispatch(context.Background(), "list_network_interfaces", mustJSON(t, map[string]any{"node": "10.0.0.5"}))
	require.False(t, out.Failed())
	assert.Equal(t, map[string]any{"interfaces": "eth0\neth1"}, out.Result())
	assert.Equal(t, []string{"--nodes", "10.0.0.5", "list", "/sys/class/net"}, r.LastCall().Args)
}
