package tools

import (
	"context"

	"golang.org/x/sync/errgroup"
)

func (d *Dispatcher) registerSystemTools() {
	d.register("containers", d.containers)
	d.register("stats", d.stats)
	d.register("get_processes", d.processes)
	d.register("memory_verbose", d.memoryVerbose)
	d.register("get_cpu_memory_usage", d.cpuMemoryUsage)
}

// containerdNamespace names the containerd namespace a kubernetes
// toggle selects.
func containerdNamespace(kubernetes bool) string {
	if kubernetes {
		return "k8s.io"
	}
	return "system"
}

func (d *Dispatcher) containers(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	kubernetes := p.BoolOr("kubernetes", false)

	args := []string{"--nodes", node, "containers"}
	if kubernetes {
		args = append(args, "--kubernetes")
	}
	out, err := d.runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"containers": out,
		"namespace":  containerdNamespace(kubernetes),
	}, nil
}

func (d *Dispatcher) stats(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	kubernetes := p.BoolOr("kubernetes", false)

	args := []string{"--nodes", node, "stats"}
	if kubernetes {
		args = append(args, "--kubernetes")
	}
	out, err := d.runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"stats":     out,
		"namespace": containerdNamespace(kubernetes),
	}, nil
}

func (d *Dispatcher) processes(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	sort := p.StringOr("sort", "rss")

	out, err := d.runner.Run(ctx, "--nodes", node, "processes", "--sort", sort)
	if err != nil {
		return nil, err
	}
	return map[string]any{"processes": out, "sort_by": sort}, nil
}

func (d *Dispatcher) memoryVerbose(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}
	out, err := d.runner.Run(ctx, "--nodes", node, "memory", "--verbose")
	if err != nil {
		return nil, err
	}
	return map[string]any{"memory_verbose": out}, nil
}

// cpuMemoryUsage combines two talosctl calls into one result. Both
// always run to completion; either failure fails the call, and a
// partial result is never returned.
func (d *Dispatcher) cpuMemoryUsage(ctx context.Context, p Params) (any, error) {
	node, err := requireString(p, "node")
	if err != nil {
		return nil, err
	}

	var mem, cgroups string
	var g errgroup.Group
	g.Go(func() error {
		var err error
		mem, err = d.runner.Run(ctx, "--nodes", node, "memory")
		return err
	})
	g.Go(func() error {
		var err error
		cgroups, err = d.runner.Run(ctx, "--nodes", node, "cgroups", "--preset", "cpu")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return map[string]any{"memory": mem, "cpu": cgroups}, nil
}
