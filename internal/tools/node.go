package tools

import "context"

func (d *Dispatcher) registerNodeTools() {
	d.register("reboot_node", d.reboot)
	d.register("shutdown_node", d.shutdown)
	d.register("reset_node", d.reset)
	d.register("upgrade_node", d.upgrade)
	d.register("upgrade_k8s", d.upgradeK8s)
}

// Lifecycle tools report initiation only. talosctl returns before the
// node finishes acting, so there is no completion to observe here.

func (d *Dispatcher) reboot(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	if _, err := d.runner.Run(ctx, "--nodes", node, "reboot"); err != nil {
		return nil, err
	}
	return map[string]any{"status": "reboot initiated"}, nil
}

func (d *Dispatcher) shutdown(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	if _, err := d.runner.Run(ctx, "--nodes", node, "shutdown"); err != nil {
		return nil, err
	}
	return map[string]any{"status": "node shutdown initiated"}, nil
}

func (d *Dispatcher) reset(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	if _, err := d.runner.Run(ctx, "--nodes", node, "reset"); err != nil {
		return nil, err
	}
	return map[string]any{"status": "node reset initiated"}, nil
}

func (d *Dispatcher) upgrade(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	image := p.StringOr("image", "ghcr.io/siderolabs/installer:latest")

	if _, err := d.runner.Run(ctx, "--nodes", node, "upgrade", "--image", image); err != nil {
		return nil, err
	}
	return map[string]any{"status": "upgrade initiated"}, nil
}

// upgradeK8s is cluster-wide; talosctl resolves the members itself, so
// no --nodes flag is passed.
func (d *Dispatcher) upgradeK8s(ctx context.Context, p Params) (any, error) {
	from := p.StringOr("from", "1.28.0")
	to := p.StringOr("to", "1.29.0")

	if _, err := d.runner.Run(ctx, "upgrade-k8s", "--from", from, "--to", to); err != nil {
		return nil, err
	}
	return map[string]any{"status": "k8s upgrade initiated"}, nil
}
