// Package talosctl invokes the talosctl binary and captures its output.
// Every invocation carries the client config via --talosconfig; the
// path is injected once at startup rather than read from the
// environment on each call.
package talosctl

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Runner executes one talosctl command. Run returns the stdout payload.
// RunStderr returns the stderr payload instead; talosctl health writes
// its progress there, with nothing useful on stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
	RunStderr(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs talosctl as a child process. The zero value is not
// usable; construct it with NewExecRunner.
type ExecRunner struct {
	binary      string
	talosconfig string
}

// NewExecRunner returns a runner that invokes binary with the given
// talosconfig path. An empty binary falls back to "talosctl" on PATH.
// An empty talosconfig is allowed here but fails every call with
// ErrNoTalosconfig.
func NewExecRunner(binary, talosconfig string) *ExecRunner {
	if binary == "" {
		binary = "talosctl"
	}
	return &ExecRunner{binary: binary, talosconfig: talosconfig}
}

// Run executes talosctl and returns its stdout.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	stdout, _, err := r.exec(ctx, args)
	return stdout, err
}

// RunStderr executes talosctl and returns its stderr.
func (r *ExecRunner) RunStderr(ctx context.Context, args ...string) (string, error) {
	_, stderr, err := r.exec(ctx, args)
	return stderr, err
}

func (r *ExecRunner) exec(ctx context.Context, args []string) (string, string, error) {
	if r.talosconfig == "" {
		return "", "", ErrNoTalosconfig
	}

	argv := append([]string{"--talosconfig", r.talosconfig}, args...)
	cmd := exec.CommandContext(ctx, r.binary, argv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", "", &ExitError{ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return "", "", &SpawnError{Err: err}
	}

	return stdout.String(), stderr.String(), nil
}
