package catalog

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Compiled schemas are cached by tool name; the catalog is immutable so
// the name fully identifies the schema.
var schemaCache sync.Map // tool name -> *jsonschema.Schema

func compiled(name string) (*jsonschema.Schema, error) {
	if v, ok := schemaCache.Load(name); ok {
		return v.(*jsonschema.Schema), nil
	}
	t, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no catalog entry for tool %s", name)
	}
	s, err := jsonschema.CompileString(name+".json", string(t.InputSchema))
	if err != nil {
		return nil, fmt.Errorf("invalid inputSchema for %s: %w", name, err)
	}
	schemaCache.Store(name, s)
	return s, nil
}

// CompileAll compiles every catalog schema, priming the cache. The
// server calls it at startup so a broken descriptor fails the process
// instead of the first request that trips over it.
func CompileAll() error {
	for _, t := range tools {
		if _, err := compiled(t.Name); err != nil {
			return err
		}
	}
	return nil
}

// Required returns the property names the named tool's schema marks as
// required. Unknown tools have an empty required set.
func Required(name string) []string {
	s, err := compiled(name)
	if err != nil {
		return nil
	}
	return s.Required
}

func firstLeafValidationError(err *jsonschema.ValidationError) *jsonschema.ValidationError {
	if err == nil {
		return nil
	}
	if len(err.Causes) == 0 {
		return err
	}
	for _, c := range err.Causes {
		if leaf := firstLeafValidationError(c); leaf != nil {
			return leaf
		}
	}
	return err
}

// Validate checks args against the named tool's input schema and
// reports the first offending location on mismatch.
func Validate(name string, args map[string]any) error {
	s, err := compiled(name)
	if err != nil {
		return err
	}
	if err := s.Validate(map[string]any(args)); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			leaf := firstLeafValidationError(ve)
			loc := leaf.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			msg := leaf.Message
			if msg == "" {
				msg = leaf.Error()
			}
			return fmt.Errorf("args schema validation failed for %s at %s: %s", name, loc, msg)
		}
		return fmt.Errorf("args schema validation failed for %s: %v", name, err)
	}
	return nil
}
