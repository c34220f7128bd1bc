package tools

import (
	"context"
	"fmt"
	"strings"
)

func (d *Dispatcher) registerClusterTools() {
	d.register("get_version", d.version)
	d.register("get_time", d.time)
	d.register("get_health", d.health)
}

func (d *Dispatcher) version(ctx context.Context, p Params) (any, error) {
	short := p.BoolOr("short", false)

	args := []string{"version", "--client"}
	if short {
		args = append(args, "--short")
	}
	out, err := d.runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return map[string]any{"version": out, "short_format": short}, nil
}

func (d *Dispatcher) time(ctx context.Context, p Params) (any, error) {
	// Without --nodes talosctl would silently query the configured
	// endpoint, so an absent or empty node is rejected outright.
	node := p.StringOr("node", "")
	if node == "" {
		return nil, &ValidationError{Message: "Time command requires a node to be specified. Please provide a node parameter."}
	}
	check, hasCheck := p.String("check")

	args := []string{"--nodes", node, "time"}
	if hasCheck {
		args = append(args, "--check", check)
	}
	out, err := d.runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	var ntpCheck any
	if hasCheck {
		ntpCheck = check
	}
	return map[string]any{"time": out, "node": node, "ntp_check": ntpCheck}, nil
}

func (d *Dispatcher) health(ctx context.Context, p Params) (any, error) {
	controlPlanes, ok := p.StringSlice("control_planes")
	if !ok {
		controlPlanes = []string{"192.168.1.77"}
	}
	workers, hasWorkers := p.StringSlice("worker_nodes")
	initNode, hasInit := p.String("init_node")
	timeout := p.StringOr("timeout", "120s")
	runE2E := p.BoolOr("run_e2e", false)
	k8sEndpoint, hasEndpoint := p.String("k8s_endpoint")
	server := p.BoolOr("server", true)

	if len(controlPlanes) == 0 {
		return nil, &ValidationError{Message: "At least one control plane node must be specified"}
	}

	// The first control plane is the RPC target; the full set goes to
	// --control-plane-nodes.
	args := []string{
		"--nodes", controlPlanes[0],
		"health",
		"--control-plane-nodes", strings.Join(controlPlanes, ","),
	}
	if hasWorkers {
		args = append(args, "--worker-nodes", strings.Join(workers, ","))
	}
	if hasInit {
		args = append(args, "--init-node", initNode)
	}
	args = append(args, "--wait-timeout", timeout)
	if runE2E {
		args = append(args, "--run-e2e")
	}
	if hasEndpoint {
		args = append(args, "--k8s-endpoint", k8sEndpoint)
	}
	if !server {
		args = append(args, "--server=false")
	}

	// health reports progress on stderr; stdout stays empty even on
	// success.
	out, err := d.runner.RunStderr(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("Health check failed: %w", err)
	}

	var workersVal, initVal, endpointVal any
	if hasWorkers {
		workersVal = workers
	}
	if hasInit {
		initVal = initNode
	}
	if hasEndpoint {
		endpointVal = k8sEndpoint
	}
	return map[string]any{
		"health": out,
		"cluster_info": map[string]any{
			"control_planes": controlPlanes,
			"worker_nodes":   workersVal,
			"init_node":      initVal,
			"timeout":        timeout,
			"run_e2e":        runE2E,
			"k8s_endpoint":   endpointVal,
			"server_side":    server,
		},
	}, nil
}
