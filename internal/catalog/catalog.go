// Package catalog holds the static descriptors for every tool the
// server exposes. The set is fixed at build time; tools/list serves it
// verbatim and the dispatcher resolves tool names against it.
package catalog

import (
	"encoding/json"

	"github.com/golovatskygroup/talos-mcp/pkg/mcp"
)

// tools is the advertised catalog, grouped in listing order: system
// inspection, file operations, network, service/log, storage, cluster,
// node lifecycle, configuration, etcd.
var tools = []mcp.Tool{
	{
		Name:        "containers",
		Description: "List running containers on a Talos node with their current status",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"},
				"kubernetes": {"type": "boolean", "description": "Use the k8s.io containerd namespace to list Kubernetes containers (defaults to false)", "default": false}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "stats",
		Description: "Get resource usage statistics (CPU, memory) for containers on a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"},
				"kubernetes": {"type": "boolean", "description": "Use the k8s.io containerd namespace to get Kubernetes containers stats (defaults to false)", "default": false}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "get_processes",
		Description: "List running processes on a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"},
				"sort": {"type": "string", "description": "Column to sort output by (defaults to 'rss')", "enum": ["rss", "cpu"], "default": "rss"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "memory_verbose",
		Description: "Get detailed memory usage information from a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "get_cpu_memory_usage",
		Description: "Get CPU and memory usage statistics from a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "list",
		Description: "List files and directories at a specified path on a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"},
				"path": {"type": "string", "description": "Directory path to list (defaults to root /)", "default": "/"},
				"long": {"type": "boolean", "description": "Display additional file details", "default": false},
				"humanize": {"type": "boolean", "description": "Humanize size and time in the output", "default": false},
				"recurse": {"type": "boolean", "description": "Recurse into subdirectories", "default": false},
				"depth": {"type": "integer", "description": "Maximum recursion depth (defaults to 1)", "minimum": 1, "default": 1},
				"type": {"type": "array", "description": "Filter by specified file types", "items": {"type": "string", "enum": ["f", "d", "l", "L"]}}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "read",
		Description: "Read the contents of a file on a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"},
				"path": {"type": "string", "description": "Full path to the file to read"}
			},
			"required": ["node", "path"]
		}`),
	},
	{
		Name:        "copy",
		Description: "Copy files to/from a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node"},
				"source": {"type": "string", "description": "Source file path (local or remote)"},
				"destination": {"type": "string", "description": "Destination file path (local or remote)"}
			},
			"required": ["node", "source", "destination"]
		}`),
	},
	{
		Name:        "get_usage",
		Description: "Get disk usage information for a path on a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"},
				"path": {"type": "string", "description": "Path to check disk usage for (defaults to root /)", "default": "/"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "get_mounts",
		Description: "Get filesystem mount information from a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "interfaces",
		Description: "Get detailed network interface information including addresses and links",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"},
				"namespace": {"type": "string", "description": "Resource namespace (default is to use default namespace per resource)"},
				"output": {"type": "string", "description": "Output mode (default: table)", "enum": ["json", "table", "yaml", "jsonpath"], "default": "table"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "routes",
		Description: "Get network routing table information for a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"},
				"namespace": {"type": "string", "description": "Resource namespace (default is to use default namespace per resource)"},
				"output": {"type": "string", "description": "Output mode (default: table)", "enum": ["json", "table", "yaml", "jsonpath"], "default": "table"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "get_netstat",
		Description: "Get network connection statistics from a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "capture_packets",
		Description: "Capture network packets on a Talos node interface",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to capture from"},
				"interface": {"type": "string", "description": "Network interface to capture from (defaults to eth0)", "default": "eth0"},
				"duration": {"type": "string", "description": "Duration to capture packets (defaults to 10s)", "default": "10s"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "get_network_io_cgroups",
		Description: "Get network I/O cgroup statistics from a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "list_network_interfaces",
		Description: "List network interfaces on a Talos node (legacy method)",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "dmesg",
		Description: "Get kernel ring buffer messages (system logs) from a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "service",
		Description: "Manage services on a Talos node (get status, start, stop, restart)",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"},
				"service": {"type": "string", "description": "Name of the service to manage (e.g., kubelet, etcd, containerd)"},
				"action": {"type": "string", "description": "Action to perform on the service (defaults to 'status')", "enum": ["status", "start", "stop", "restart"], "default": "status"}
			},
			"required": ["node", "service"]
		}`),
	},
	{
		Name:        "restart",
		Description: "Restart a specific service on a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node"},
				"service": {"type": "string", "description": "Name of the service to restart (e.g., kubelet, etcd, containerd)"}
			},
			"required": ["node", "service"]
		}`),
	},
	{
		Name:        "get_logs",
		Description: "Get service logs from a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"},
				"service": {"type": "string", "description": "Name of the service to get logs for (e.g., kubelet, etcd)"},
				"tail": {"type": "integer", "description": "Number of lines to show from the end of the logs (e.g., 100)", "minimum": 1},
				"kubernetes": {"type": "boolean", "description": "Use the k8s.io containerd namespace to access Kubernetes containers (defaults to false)", "default": false}
			},
			"required": ["node", "service"]
		}`),
	},
	{
		Name:        "get_events",
		Description: "Get system events from a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "disks",
		Description: "Get detailed disk information from a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"},
				"namespace": {"type": "string", "description": "Resource namespace (default is to use default namespace per resource)"},
				"output": {"type": "string", "description": "Output mode (default: table)", "enum": ["json", "table", "yaml", "jsonpath"], "default": "table"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "list_disks",
		Description: "List disk devices on a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "get_health",
		Description: "Check the health status of the Talos cluster",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"control_planes": {"type": "array", "description": "Array of IP addresses or hostnames of control plane nodes (defaults to [192.168.1.77])", "items": {"type": "string"}, "default": ["192.168.1.77"]},
				"worker_nodes": {"type": "array", "description": "Array of IP addresses or hostnames of worker nodes", "items": {"type": "string"}},
				"init_node": {"type": "string", "description": "IP address or hostname of the init node"},
				"timeout": {"type": "string", "description": "Timeout duration for health check (defaults to 120s)", "default": "120s"},
				"run_e2e": {"type": "boolean", "description": "Run Kubernetes e2e test (defaults to false)", "default": false},
				"k8s_endpoint": {"type": "string", "description": "Use endpoint instead of kubeconfig default"},
				"server": {"type": "boolean", "description": "Run server-side check (defaults to true)", "default": true}
			}
		}`),
	},
	{
		Name:        "get_version",
		Description: "Get Talos client version information",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"short": {"type": "boolean", "description": "Print the short version (defaults to false)", "default": false}
			}
		}`),
	},
	{
		Name:        "get_time",
		Description: "Get current time from a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"},
				"check": {"type": "string", "description": "Check server time against specified NTP server (e.g., 'pool.ntp.org')"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "reboot_node",
		Description: "Reboot a Talos node (DESTRUCTIVE OPERATION)",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to reboot"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "shutdown_node",
		Description: "Shutdown a Talos node (DESTRUCTIVE OPERATION)",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to shutdown"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "reset_node",
		Description: "Reset a Talos node to factory defaults (DESTRUCTIVE OPERATION)",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to reset"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "upgrade_node",
		Description: "Upgrade a Talos node to a new image version",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to upgrade"},
				"image": {"type": "string", "description": "Container image to upgrade to (defaults to latest installer)", "default": "ghcr.io/siderolabs/installer:latest"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "upgrade_k8s",
		Description: "Upgrade Kubernetes cluster version",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"from": {"type": "string", "description": "Current Kubernetes version (defaults to 1.28.0)", "default": "1.28.0"},
				"to": {"type": "string", "description": "Target Kubernetes version (defaults to 1.29.0)", "default": "1.29.0"}
			}
		}`),
	},
	{
		Name:        "apply_config",
		Description: "Apply a configuration file to a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to configure"},
				"file": {"type": "string", "description": "Path to the configuration file to apply"}
			},
			"required": ["node", "file"]
		}`),
	},
	{
		Name:        "validate_config",
		Description: "Validate a Talos configuration file",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"config": {"type": "string", "description": "Path to the configuration file to validate"},
				"mode": {"type": "string", "description": "Validation mode (defaults to 'container')", "default": "container"}
			},
			"required": ["config"]
		}`),
	},
	{
		Name:        "get_etcd_status",
		Description: "Get etcd cluster status from a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "get_etcd_members",
		Description: "Get etcd cluster member information from a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to query"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "bootstrap_etcd",
		Description: "Bootstrap etcd cluster on a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to bootstrap"}
			},
			"required": ["node"]
		}`),
	},
	{
		Name:        "defrag_etcd",
		Description: "Defragment etcd database on a Talos node",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"node": {"type": "string", "description": "IP address or hostname of the Talos node to defragment"}
			},
			"required": ["node"]
		}`),
	},
}

var index = func() map[string]int {
	m := make(map[string]int, len(tools))
	for i, t := range tools {
		m[t.Name] = i
	}
	return m
}()

// All returns every descriptor in advertised order. Callers must not
// mutate the result.
func All() []mcp.Tool {
	return tools
}

// Names returns the tool names in advertised order.
func Names() []string {
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the descriptor for name.
func Lookup(name string) (mcp.Tool, bool) {
	i, ok := index[name]
	if !ok {
		return mcp.Tool{}, false
	}
	return tools[i], true
}
