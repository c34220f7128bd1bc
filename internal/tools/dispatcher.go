// Package tools routes JSON-RPC methods to protocol handlers and to
// the talosctl-backed tool handlers.
package tools

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/golovatskygroup/talos-mcp/internal/audit"
	"github.com/golovatskygroup/talos-mcp/internal/catalog"
	"github.com/golovatskygroup/talos-mcp/internal/talosctl"
	"github.com/golovatskygroup/talos-mcp/pkg/mcp"
)

// The initialize descriptor is frozen: clients key on these values, so
// they stay put even when the binary's build version moves.
const (
	protocolVersion = "2025-06-18"
	serverName      = "talos-mcp-server"
	serverTitle     = "Talos OS MCP Server"
	serverVersion   = "1.0.0"
)

type handlerFunc func(ctx context.Context, p Params) (any, error)

// Dispatcher resolves request methods. Tools are reachable both
// through tools/call and directly by name; the direct form predates
// tools/call and some clients still use it.
type Dispatcher struct {
	runner   talosctl.Runner
	log      *zap.Logger
	audit    *audit.Store
	handlers map[string]handlerFunc
}

// New builds a dispatcher around runner. logger may be nil for no
// logging; store may be nil to disable audit recording.
func New(runner talosctl.Runner, logger *zap.Logger, store *audit.Store) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{
		runner:   runner,
		log:      logger,
		audit:    store,
		handlers: make(map[string]handlerFunc),
	}
	d.registerSystemTools()
	d.registerFileTools()
	d.registerNetworkTools()
	d.registerServiceTools()
	d.registerStorageTools()
	d.registerClusterTools()
	d.registerNodeTools()
	d.registerConfigEtcdTools()
	return d
}

func (d *Dispatcher) register(name string, h handlerFunc) {
	d.handlers[name] = h
}

// Dispatch resolves one request to an outcome. Protocol methods win
// over tool names, and notifications are silently absorbed.
func (d *Dispatcher) Dispatch(ctx context.Context, method string, rawParams json.RawMessage) Outcome {
	params := ParseParams(rawParams)

	switch method {
	case "initialize":
		return d.initialize(params)
	case "ping":
		return Reply(map[string]any{})
	case "tools/list":
		return Reply(mcp.ListToolsResult{Tools: catalog.All()})
	case "tools/call":
		return d.callTool(ctx, params)
	}

	if strings.HasPrefix(method, "notifications/") {
		return Silence()
	}

	// Direct invocation by tool name. No schema validation here; the
	// handlers apply the historical loose parameter reads themselves.
	if h, ok := d.handlers[method]; ok {
		result, err := d.invoke(ctx, method, h, params)
		if err != nil {
			return Fail(err)
		}
		return Reply(result)
	}

	return Fail(&UnknownMethodError{Method: method})
}

func (d *Dispatcher) initialize(params Params) Outcome {
	if !params.Has("capabilities") || !params.Has("clientInfo") || !params.Has("protocolVersion") {
		return Fail(ErrMissingInitializeParams)
	}
	return Reply(mcp.InitializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities: mcp.ServerCapabilities{
			Tools: &mcp.ToolsCapability{ListChanged: true},
		},
		ServerInfo: mcp.ServerInfo{
			Name:    serverName,
			Title:   serverTitle,
			Version: serverVersion,
		},
	})
}

// invoke runs one tool handler with logging and audit recording around
// it.
func (d *Dispatcher) invoke(ctx context.Context, name string, h handlerFunc, params Params) (any, error) {
	id := uuid.NewString()
	start := time.Now()
	result, err := h(ctx, params)
	elapsed := time.Since(start)

	if err != nil {
		d.log.Warn("tool failed",
			zap.String("invocation_id", id),
			zap.String("tool", name),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
	} else {
		d.log.Info("tool completed",
			zap.String("invocation_id", id),
			zap.String("tool", name),
			zap.Duration("elapsed", elapsed))
	}

	inv := audit.Invocation{
		ID:        id,
		Tool:      name,
		ArgsHash:  audit.Digest(params),
		Status:    "ok",
		Duration:  elapsed,
		InvokedAt: start,
	}
	if err != nil {
		inv.Status = "error"
		inv.Error = err.Error()
	}
	if recErr := d.audit.Record(ctx, inv); recErr != nil {
		d.log.Warn("audit record failed", zap.String("invocation_id", id), zap.Error(recErr))
	}

	return result, err
}
