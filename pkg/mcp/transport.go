package mcp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// DecodeError reports an input line that was not a parseable JSON-RPC
// message. The transport surfaces it instead of a request so the caller
// can answer with a parse error and keep reading.
type DecodeError struct {
	Line []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode request: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Transport frames JSON-RPC messages over a line-delimited stream,
// one message per line. Responses are flushed as soon as they are
// written so a client blocked on a reply never waits on a buffer.
type Transport struct {
	reader *bufio.Reader
	writer *bufio.Writer
	enc    *json.Encoder
	mu     sync.Mutex
}

// NewTransport creates a transport reading requests from r and writing
// responses to w.
func NewTransport(r io.Reader, w io.Writer) *Transport {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &Transport{
		reader: bufio.NewReader(r),
		writer: bw,
		enc:    enc,
	}
}

// ReadMessage reads the next JSON-RPC message. Blank lines are
// skipped. A line that is not valid JSON yields a *DecodeError; the
// stream stays usable afterwards. io.EOF means the peer closed its end.
func (t *Transport) ReadMessage() (*Request, error) {
	for {
		line, err := t.reader.ReadBytes('\n')
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			if err != nil {
				return nil, err
			}
			continue
		}

		var req Request
		if uerr := json.Unmarshal(trimmed, &req); uerr != nil {
			return nil, &DecodeError{Line: trimmed, Err: uerr}
		}
		return &req, nil
	}
}

// WriteResponse writes one response as a single line and flushes it.
// HTML escaping is disabled so tool output passes through verbatim.
func (t *Transport) WriteResponse(resp *Response) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.enc.Encode(resp); err != nil {
		return err
	}
	return t.writer.Flush()
}
