package tools

import "context"

func (d *Dispatcher) registerStorageTools() {
	d.register("disks", d.disks)
	d.register("list_disks", d.listDisks)
}

func (d *Dispatcher) disks(ctx context.Context, p Params) (any, error) {
	return d.getResource(ctx, p, "disks", "disks")
}

func (d *Dispatcher) listDisks(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	out, err := d.runner.Run(ctx, "--nodes", node, "list", "/sys/block")
	if err != nil {
		return nil, err
	}
	return map[string]any{"disks": out}, nil
}
