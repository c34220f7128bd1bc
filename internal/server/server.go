// Package server runs the MCP message loop: read one JSON-RPC line,
// dispatch it, write back at most one response line.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/golovatskygroup/talos-mcp/internal/tools"
	"github.com/golovatskygroup/talos-mcp/pkg/mcp"
)

// Server drives a dispatcher from a line-delimited JSON-RPC stream,
// stdin and stdout in production.
type Server struct {
	transport  *mcp.Transport
	dispatcher *tools.Dispatcher
	logger     *zap.Logger
}

// New creates a server reading requests from r and writing responses
// to w. A nil logger disables logging.
func New(r io.Reader, w io.Writer, d *tools.Dispatcher, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		transport:  mcp.NewTransport(r, w),
		dispatcher: d,
		logger:     logger,
	}
}

// Run processes requests until the input stream ends or ctx is
// cancelled; both are normal shutdown and return nil. Malformed lines
// are answered with a parse error and the loop keeps going, so one
// bad message never takes the session down.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("server started, reading requests")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("server stopping", zap.NamedError("reason", ctx.Err()))
			return nil
		default:
		}

		req, err := s.transport.ReadMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info("input stream closed, shutting down")
				return nil
			}
			var derr *mcp.DecodeError
			if errors.As(err, &derr) {
				s.logger.Warn("unparseable request line", zap.Error(derr.Err))
				s.write(mcp.NewErrorResponse(nil, mcp.ParseError, fmt.Sprintf("Parse error: %v", derr.Err)))
				continue
			}
			return fmt.Errorf("read request: %w", err)
		}

		s.logger.Debug("request received",
			zap.String("method", req.Method),
			zap.ByteString("id", req.ID))

		if resp := s.handle(ctx, req); resp != nil {
			s.write(resp)
		}
	}
}

// handle turns one request into a response, or nil when the request
// is a notification and must not be answered.
func (s *Server) handle(ctx context.Context, req *mcp.Request) *mcp.Response {
	if req.Method == "" {
		return mcp.NewErrorResponse(req.ID, mcp.InvalidRequest, "Invalid Request: missing method")
	}

	out := s.dispatcher.Dispatch(ctx, req.Method, req.Params)
	switch {
	case out.Silent():
		return nil
	case out.Failed():
		return mcp.NewErrorResponse(req.ID, mcp.InvalidRequest, out.Err().Error())
	default:
		return mcp.NewResponse(req.ID, out.Result())
	}
}

func (s *Server) write(resp *mcp.Response) {
	if err := s.transport.WriteResponse(resp); err != nil {
		s.logger.Error("write response", zap.Error(err))
	}
}
