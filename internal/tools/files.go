package tools

import (
	"context"
	"strconv"
)

func (d *Dispatcher) registerFileTools() {
	d.register("list", d.list)
	d.register("read", d.read)
	d.register("copy", d.copy)
	d.register("get_usage", d.usage)
	d.register("get_mounts", d.mounts)
}

func (d *Dispatcher) list(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	path := p.StringOr("path", "/")
	long := p.BoolOr("long", false)
	humanize := p.BoolOr("humanize", false)
	recurse := p.BoolOr("recurse", false)
	depth := p.IntOr("depth", 1)
	types, hasTypes := p.StringSlice("type")

	args := []string{"--nodes", node, "list", path}
	if long {
		args = append(args, "--long")
	}
	if humanize {
		args = append(args, "--humanize")
	}
	// --recurse and --depth are mutually exclusive; recurse wins and
	// the default depth of 1 is left implicit.
	if recurse {
		args = append(args, "--recurse")
	} else if depth != 1 {
		args = append(args, "--depth", strconv.FormatInt(depth, 10))
	}
	for _, t := range types {
		args = append(args, "--type", t)
	}

	out, err := d.runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	var typesVal any
	if hasTypes {
		typesVal = types
	}
	return map[string]any{
		"list":     out,
		"path":     path,
		"long":     long,
		"humanize": humanize,
		"recurse":  recurse,
		"depth":    depth,
		"types":    typesVal,
	}, nil
}

func (d *Dispatcher) read(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	path, err := requireString(p, "path")
	if err != nil {
		return nil, err
	}
	out, err := d.runner.Run(ctx, "--nodes", node, "read", path)
	if err != nil {
		return nil, err
	}
	return map[string]any{"content": out}, nil
}

func (d *Dispatcher) copy(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	source, err := requireString(p, "source")
	if err != nil {
		return nil, err
	}
	destination, err := requireString(p, "destination")
	if err != nil {
		return nil, err
	}
	out, err := d.runner.Run(ctx, "--nodes", node, "copy", source, destination)
	if err != nil {
		return nil, err
	}
	return map[string]any{"copy": out}, nil
}

func (d *Dispatcher) usage(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	path := p.StringOr("path", "/")

	out, err := d.runner.Run(ctx, "--nodes", node, "usage", path)
	if err != nil {
		return nil, err
	}
	return map[string]any{"usage": out}, nil
}

func (d *Dispatcher) mounts(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	out, err := d.runner.Run(ctx, "--nodes", node, "mounts")
	if err != nil {
		return nil, err
	}
	return map[string]any{"mounts": out}, nil
}
