package tools

import (
	"errors"
	"fmt"
)

// Every failure below travels to the client as a JSON-RPC error with
// code -32600; the distinct types exist for callers and tests. The
// message texts are part of the wire contract and must not change.

// ErrMissingToolName is returned by tools/call when params carry no
// usable tool name.
var ErrMissingToolName = errors.New("Missing tool name")

// ErrMissingInitializeParams is returned when an initialize request
// omits any of its three mandatory fields.
var ErrMissingInitializeParams = errors.New("Missing required initialize parameters: capabilities, clientInfo, and protocolVersion are required")

// MissingParameterError reports a required tool argument that was not
// supplied (or not supplied as a string where one is expected).
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("Missing %s param", e.Param)
}

// ValidationError reports arguments that are present but unusable.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UnknownToolError reports a tools/call for a name outside the
// catalog, with the nearest catalog name when one is plausibly close.
type UnknownToolError struct {
	Name       string
	Suggestion string
}

func (e *UnknownToolError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("Unknown tool: %s (closest match: %s)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// UnknownMethodError reports a request method that matches neither a
// protocol method nor a tool name.
type UnknownMethodError struct {
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("Unknown method: %s", e.Method)
}
