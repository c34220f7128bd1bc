// Package testutil provides test doubles shared across packages.
package testutil

import (
	"context"
	"sync"

	"github.com/golovatskygroup/talos-mcp/internal/talosctl"
)

// Call records one invocation seen by the fake runner.
type Call struct {
	Args   []string
	Stderr bool // true when the stderr-capturing variant was used
}

// Result scripts the response for one invocation.
type Result struct {
	Output string
	Err    error
}

// Runner is a scriptable stand-in for talosctl.Runner. Queued results
// are consumed in order; once drained, Default answers every call. The
// zero value succeeds with empty output.
type Runner struct {
	Default Result

	mu    sync.Mutex
	calls []Call
	queue []Result
}

var _ talosctl.Runner = (*Runner)(nil)

func (r *Runner) Run(_ context.Context, args ...string) (string, error) {
	return r.record(Call{Args: args})
}

func (r *Runner) RunStderr(_ context.Context, args ...string) (string, error) {
	return r.record(Call{Args: args, Stderr: true})
}

func (r *Runner) record(c Call) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
	if len(r.queue) > 0 {
		res := r.queue[0]
		r.queue = r.queue[1:]
		return res.Output, res.Err
	}
	return r.Default.Output, r.Default.Err
}

// Enqueue scripts the next response. Calls can be chained.
func (r *Runner) Enqueue(output string, err error) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, Result{Output: output, Err: err})
	return r
}

// Calls returns a copy of every recorded invocation.
func (r *Runner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallCount returns how many invocations were recorded.
func (r *Runner) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// LastCall returns the most recent invocation. It panics when nothing
// was recorded; tests should assert CallCount first.
func (r *Runner) LastCall() Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[len(r.calls)-1]
}
