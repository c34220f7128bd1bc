package tools

import (
	"context"
	"strconv"
)

func (d *Dispatcher) registerServiceTools() {
	d.register("dmesg", d.dmesg)
	d.register("service", d.service)
	d.register("restart", d.restart)
	d.register("get_logs", d.logs)
	d.register("get_events", d.events)
}

func (d *Dispatcher) dmesg(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	out, err := d.runner.Run(ctx, "--nodes", node, "dmesg")
	if err != nil {
		return nil, err
	}
	return map[string]any{"dmesg": out}, nil
}

func (d *Dispatcher) service(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	service, err := requireString(p, "service")
	if err != nil {
		return nil, err
	}
	action := p.StringOr("action", "status")

	out, err := d.runner.Run(ctx, "--nodes", node, "service", service, action)
	if err != nil {
		return nil, err
	}
	return map[string]any{"service": out}, nil
}

func (d *Dispatcher) restart(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	service, err := requireString(p, "service")
	if err != nil {
		return nil, err
	}
	out, err := d.runner.Run(ctx, "--nodes", node, "service", service, "restart")
	if err != nil {
		return nil, err
	}
	return map[string]any{"restart": out}, nil
}

func (d *Dispatcher) logs(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	service, err := requireString(p, "service")
	if err != nil {
		return nil, err
	}
	tail, hasTail := p.Int("tail")
	kubernetes := p.BoolOr("kubernetes", false)

	args := []string{"--nodes", node, "logs", service}
	if hasTail {
		args = append(args, "--tail", strconv.FormatInt(tail, 10))
	}
	if kubernetes {
		args = append(args, "--kubernetes")
	}

	out, err := d.runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	var tailLines any
	if hasTail {
		tailLines = tail
	}
	return map[string]any{
		"logs":       out,
		"service":    service,
		"tail_lines": tailLines,
		"namespace":  containerdNamespace(kubernetes),
	}, nil
}

func (d *Dispatcher) events(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	out, err := d.runner.Run(ctx, "--nodes", node, "events")
	if err != nil {
		return nil, err
	}
	return map[string]any{"events": out}, nil
}
