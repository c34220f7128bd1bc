package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golovatskygroup/talos-mcp/internal/catalog"
	"github.com/golovatskygroup/talos-mcp/pkg/mcp"
)

// callTool implements tools/call: resolve the tool, validate the
// arguments against its input schema, run it, and wrap the structured
// result as pretty-printed JSON text.
func (d *Dispatcher) callTool(ctx context.Context, params Params) Outcome {
	name, ok := params.String("name")
	if !ok {
		return Fail(ErrMissingToolName)
	}

	args, ok := params.Object("arguments")
	if !ok {
		args = Params{}
	}

	h, ok := d.handlers[name]
	if !ok {
		return Fail(&UnknownToolError{Name: name, Suggestion: catalog.Nearest(name)})
	}

	// Absent required arguments get the historical per-parameter
	// message; everything else defers to the schema.
	for _, req := range catalog.Required(name) {
		if !args.Has(req) {
			return Fail(&MissingParameterError{Param: req})
		}
	}
	if err := catalog.Validate(name, args); err != nil {
		return Fail(&ValidationError{Message: err.Error()})
	}

	result, err := d.invoke(ctx, name, h, args)
	if err != nil {
		return Fail(err)
	}

	text, err := encodePretty(result)
	if err != nil {
		return Fail(fmt.Errorf("encode %s result: %w", name, err))
	}
	return Reply(&mcp.CallToolResult{
		Content: []mcp.ContentBlock{{Type: "text", Text: text}},
	})
}

// encodePretty renders v as two-space indented JSON without HTML
// escaping and without a trailing newline.
func encodePretty(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
