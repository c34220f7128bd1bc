package tools

import "context"

func (d *Dispatcher) registerNetworkTools() {
	d.register("interfaces", d.interfaces)
	d.register("routes", d.routes)
	d.register("get_netstat", d.netstat)
	d.register("capture_packets", d.capturePackets)
	d.register("get_network_io_cgroups", d.networkIOCgroups)
	d.register("list_network_interfaces", d.listNetworkInterfaces)
}

// getResource runs `talosctl get <resource>` with the shared
// namespace/output plumbing used by interfaces, routes and disks. key
// names the output field carrying the command output.
func (d *Dispatcher) getResource(ctx context.Context, p Params, resource, key string) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	namespace, hasNS := p.String("namespace")
	format := p.StringOr("output", "table")

	args := []string{"--nodes", node, "get", resource}
	if hasNS {
		args = append(args, "--namespace", namespace)
	}
	args = append(args, "--output", format)

	out, err := d.runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	var nsVal any
	if hasNS {
		nsVal = namespace
	}
	return map[string]any{
		key:             out,
		"namespace":     nsVal,
		"output_format": format,
	}, nil
}

func (d *Dispatcher) interfaces(ctx context.Context, p Params) (any, error) {
	return d.getResource(ctx, p, "addresses", "interfaces")
}

func (d *Dispatcher) routes(ctx context.Context, p Params) (any, error) {
	return d.getResource(ctx, p, "routes", "routes")
}

func (d *Dispatcher) netstat(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	out, err := d.runner.Run(ctx, "--nodes", node, "netstat")
	if err != nil {
		return nil, err
	}
	return map[string]any{"netstat": out}, nil
}

func (d *Dispatcher) capturePackets(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	iface := p.StringOr("interface", "eth0")
	duration := p.StringOr("duration", "10s")

	out, err := d.runner.Run(ctx, "--nodes", node, "pcap", "--interface", iface, "--duration", duration)
	if err != nil {
		return nil, err
	}
	return map[string]any{"packets": out}, nil
}

func (d *Dispatcher) networkIOCgroups(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	out, err := d.runner.Run(ctx, "--nodes", node, "cgroups", "--preset", "io")
	if err != nil {
		return nil, err
	}
	return map[string]any{"network_io": out}, nil
}

// listNetworkInterfaces is the historical sysfs-based variant kept for
// clients that still call it.
func (d *Dispatcher) listNetworkInterfaces(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	out, err := d.runner.Run(ctx, "--nodes", node, "list", "/sys/class/net")
	if err != nil {
		return nil, err
	}
	return map[string]any{"interfaces": out}, nil
}
