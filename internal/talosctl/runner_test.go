package talosctl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript installs a stand-in talosctl binary whose behavior is the
// given shell body.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talosctl")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestRunReturnsStdout(t *testing.T) {
	bin := writeScript(t, `echo "node output"; echo "progress" >&2`)
	r := NewExecRunner(bin, "/etc/talos/config")

	out, err := r.Run(context.Background(), "--nodes", "10.0.0.5", "version")
	require.NoError(t, err)
	assert.Equal(t, "node output\n", out)
}

func TestRunStderrReturnsStderr(t *testing.T) {
	bin := writeScript(t, `echo "ignored"; echo "waiting for etcd to be healthy" >&2`)
	r := NewExecRunner(bin, "/etc/talos/config")

	out, err := r.RunStderr(context.Background(), "health")
	require.NoError(t, err)
	assert.Equal(t, "waiting for etcd to be healthy\n", out)
}

func TestRunPrependsTalosconfigFlag(t *testing.T) {
	bin := writeScript(t, `echo "$@"`)
	r := NewExecRunner(bin, "/etc/talos/config")

	out, err := r.Run(context.Background(), "--nodes", "10.0.0.5", "containers")
	require.NoError(t, err)
	assert.Equal(t, "--talosconfig /etc/talos/config --nodes 10.0.0.5 containers\n", out)
}

func TestRunFailsWithoutTalosconfig(t *testing.T) {
	bin := writeScript(t, `echo "should not run"; exit 0`)
	r := NewExecRunner(bin, "")

	_, err := r.Run(context.Background(), "version")
	assert.ErrorIs(t, err, ErrNoTalosconfig)
	assert.EqualError(t, err, "TALOSCONFIG env var not set")
}

func TestRunReportsNonZeroExit(t *testing.T) {
	bin := writeScript(t, `echo "rpc error: connection refused" >&2; exit 1`)
	r := NewExecRunner(bin, "/etc/talos/config")

	_, err := r.Run(context.Background(), "--nodes", "10.0.0.5", "reboot")
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.ExitCode)
	assert.Equal(t, "rpc error: connection refused\n", exitErr.Stderr)
	assert.Contains(t, err.Error(), "talosctl failed: rpc error: connection refused")
}

func TestRunReportsSpawnFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-talosctl")
	r := NewExecRunner(missing, "/etc/talos/config")

	_, err := r.Run(context.Background(), "version")
	var spawnErr *SpawnError
	require.True(t, errors.As(err, &spawnErr))
	assert.Contains(t, err.Error(), "Failed to execute talosctl: ")
}

func TestNewExecRunnerDefaultsBinary(t *testing.T) {
	r := NewExecRunner("", "/etc/talos/config")
	assert.Equal(t, "talosctl", r.binary)
}
