package tools

import "context"

func (d *Dispatcher) registerConfigEtcdTools() {
	d.register("apply_config", d.applyConfig)
	d.register("validate_config", d.validateConfig)
	d.register("get_etcd_status", d.etcdStatus)
	d.register("get_etcd_members", d.etcdMembers)
	d.register("bootstrap_etcd", d.bootstrapEtcd)
	d.register("defrag_etcd", d.defragEtcd)
}

func (d *Dispatcher) applyConfig(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	file, err := requireString(p, "file")
	if err != nil {
		return nil, err
	}
	if _, err := d.runner.Run(ctx, "--nodes", node, "apply-config", "--file", file); err != nil {
		return nil, err
	}
	return map[string]any{"status": "config applied"}, nil
}

// validateConfig runs locally against a file; no node is involved.
func (d *Dispatcher) validateConfig(ctx context.Context, p Params) (any, error) {
	config, err := requireString(p, "config")
	if err != nil {
		return nil, err
	}
	mode := p.StringOr("mode", "container")

	out, err := d.runner.Run(ctx, "validate", "--config", config, "--mode", mode)
	if err != nil {
		return nil, err
	}
	return map[string]any{"validation": out}, nil
}

func (d *Dispatcher) etcdStatus(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	out, err := d.runner.Run(ctx, "--nodes", node, "etcd", "status")
	if err != nil {
		return nil, err
	}
	return map[string]any{"etcd_status": out}, nil
}

func (d *Dispatcher) etcdMembers(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	out, err := d.runner.Run(ctx, "--nodes", node, "etcd", "members")
	if err != nil {
		return nil, err
	}
	return map[string]any{"etcd_members": out}, nil
}

func (d *Dispatcher) bootstrapEtcd(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	if _, err := d.runner.Run(ctx, "--nodes", node, "bootstrap"); err != nil {
		return nil, err
	}
	return map[string]any{"status": "etcd bootstrapped"}, nil
}

func (d *Dispatcher) defragEtcd(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	if _, err := d.runner.Run(ctx, "--nodes", node, "etcd", "defrag"); err != nil {
		return nil, err
	}
	return map[string]any{"status": "etcd defragmented"}, nil
}
