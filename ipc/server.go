package ipc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/iw2rmb/mailfill"
	"github.com/iw2rmb/mailfill/suggest"
)

// MaxInputLen bounds the input of a complete request (RFC 5321 path limit).
const MaxInputLen = 254

// Server answers suggestion requests read from r and writes responses to w.
type Server struct {
	index *suggest.Index
	dec   *msgpack.Decoder
	enc   *msgpack.Encoder
	log   *log.Logger
}

// NewServer creates a server over domains; nil or empty selects the defaults.
func NewServer(domains []string, r io.Reader, w io.Writer, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		index: suggest.NewIndex(suggest.Resolve(domains)),
		dec:   msgpack.NewDecoder(r),
		enc:   msgpack.NewEncoder(w),
		log:   logger,
	}
}

// decoded is one read from the request stream.
type decoded struct {
	req Request
	err error
}

// Serve processes requests until EOF, a stream error, or ctx is done.
// Cancelling ctx returns even while a read is blocked; the reading goroutine
// then exits with its next read.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Debug("starting server", "domains", s.index.Len())
	if err := s.send(StatusResponse{Status: "ready", Version: mailfill.Version()}); err != nil {
		return err
	}

	reqs := make(chan decoded)
	go s.read(ctx, reqs)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			s.log.Debug("server cancelled")
			return ctx.Err()
		case d := <-reqs:
			if d.err != nil {
				if errors.Is(d.err, io.EOF) {
					s.log.Debug("client disconnected")
					return nil
				}
				return fmt.Errorf("decode request: %w", d.err)
			}
			if err := s.handle(d.req); err != nil {
				return err
			}
		}
	}
}

// read decodes requests into reqs until a decode error or ctx is done.
func (s *Server) read(ctx context.Context, reqs chan<- decoded) {
	for {
		var d decoded
		d.err = s.dec.Decode(&d.req)
		select {
		case reqs <- d:
		case <-ctx.Done():
			return
		}
		if d.err != nil {
			return
		}
	}
}

func (s *Server) handle(req Request) error {
	switch req.Action {
	case "", ActionComplete:
		return s.handleComplete(req)
	case ActionSetDomains:
		s.index = suggest.NewIndex(suggest.Resolve(req.Domains))
		s.log.Debug("domains replaced", "id", req.ID, "count", s.index.Len())
		return s.sendDomains(req.ID)
	case ActionGetDomains:
		return s.sendDomains(req.ID)
	case ActionHealth:
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.log.Warn("unknown action", "id", req.ID, "action", req.Action)
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleComplete(req Request) error {
	if len(req.Input) > MaxInputLen {
		s.log.Debug("input too long", "id", req.ID, "len", len(req.Input))
		return s.sendError(req.ID, fmt.Sprintf("input exceeds maximum length of %d bytes", MaxInputLen), 400)
	}

	start := time.Now()
	var matches []suggest.Suggestion
	if local, ok := suggest.SplitLocalPart(req.Input); ok {
		matches = s.index.Match(local)
	}
	elapsed := time.Since(start)

	out := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		out = append(out, Suggestion{Domain: m.Domain, Completion: m.Completion})
	}
	return s.send(CompletionResponse{
		ID:          req.ID,
		Suggestions: out,
		Count:       len(out),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) sendDomains(id string) error {
	return s.send(DomainsResponse{ID: id, Status: "ok", Domains: s.index.Domains()})
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func (s *Server) send(v any) error {
	if err := s.enc.Encode(v); err != nil {
		s.log.Error("encoding response", "err", err)
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}
