package talosctl

import "errors"

// ErrNoTalosconfig is returned before any process is spawned when the
// runner has no client config path. The message matches what callers of
// the original server saw when TALOSCONFIG was unset.
var ErrNoTalosconfig = errors.New("TALOSCONFIG env var not set")

// SpawnError means talosctl could not be started at all: binary not
// found, permission denied, and the like.
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string {
	return "Failed to execute talosctl: " + e.Err.Error()
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError means talosctl ran and exited non-zero. Stderr holds the
// diagnostic text the tool printed.
type ExitError struct {
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	return "talosctl failed: " + e.Stderr
}
