package tools

// Outcome is the dispatcher's verdict on one request: reply with a
// result, reply with an error, or write nothing at all.
type Outcome struct {
	result any
	err    error
	silent bool
}

// Reply produces an outcome carrying a result payload.
func Reply(result any) Outcome { return Outcome{result: result} }

// Fail produces an outcome carrying an application error.
func Fail(err error) Outcome { return Outcome{err: err} }

// Silence produces an outcome that suppresses the response entirely.
// Notifications must never be answered, not even with an error.
func Silence() Outcome { return Outcome{silent: true} }

// Silent reports whether no response may be written.
func (o Outcome) Silent() bool { return o.silent }

// Failed reports whether the request ended in an application error.
func (o Outcome) Failed() bool { return o.err != nil }

// Result returns the success payload.
func (o Outcome) Result() any { return o.result }

// Err returns the application error, if any.
func (o Outcome) Err() error { return o.err }
