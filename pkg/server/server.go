package server

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/affixspell/pkg/checker"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// envelope carries a dispatch tag alongside a nested msgpack-encoded
// payload, decoded only after Kind selects the concrete request type.
type envelope struct {
	Kind    string          `msgpack:"kind"`
	Payload msgpack.RawMessage `msgpack:"payload"`
}

// Server handles msgpack IPC for a Checker over stdin/stdout. Each frame
// is a 4-byte big-endian length prefix followed by that many bytes of
// msgpack-encoded envelope.
type Server struct {
	checker *checker.Checker
	reader  *bufio.Reader
	writer  io.Writer
}

// NewServer creates a server backed by checker, using stdin/stdout.
func NewServer(c *checker.Checker) *Server {
	return &Server{
		checker: c,
		reader:  bufio.NewReader(os.Stdin),
		writer:  os.Stdout,
	}
}

// Start reads frames until EOF, dispatching each to its handler.
func (s *Server) Start() error {
	log.Debug("starting spellcheck server")

	for {
		frame, err := s.readFrame()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("reading frame: %v", err)
			return err
		}

		var env envelope
		if err := msgpack.Unmarshal(frame, &env); err != nil {
			s.writeFrame(ErrorResponse{Error: fmt.Sprintf("invalid envelope: %v", err)})
			continue
		}
		s.dispatch(env)
	}
}

func (s *Server) dispatch(env envelope) {
	switch env.Kind {
	case "check":
		s.handleCheck(env.Payload)
	case "suggest":
		s.handleSuggest(env.Payload)
	case "mutate":
		s.handleMutate(env.Payload)
	case "stats":
		s.handleStats(env.Payload)
	default:
		s.writeFrame(ErrorResponse{Error: "unknown kind: " + env.Kind})
	}
}

func (s *Server) handleCheck(payload msgpack.RawMessage) {
	var req CheckRequest
	if err := msgpack.Unmarshal(payload, &req); err != nil {
		s.writeFrame(ErrorResponse{Error: "malformed check request"})
		return
	}
	result := s.checker.Spell(req.Text)
	s.writeFrame(CheckResponse{
		ID:        req.ID,
		Correct:   result.Correct,
		Forbidden: result.Forbidden,
		Warn:      result.Warn,
	})
}

func (s *Server) handleSuggest(payload msgpack.RawMessage) {
	var req SuggestRequest
	if err := msgpack.Unmarshal(payload, &req); err != nil {
		s.writeFrame(ErrorResponse{Error: "malformed suggest request"})
		return
	}
	start := time.Now()
	suggestions := s.checker.Suggest(req.Text)
	s.writeFrame(SuggestResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		TimeTakenMs: time.Since(start).Milliseconds(),
	})
}

func (s *Server) handleMutate(payload msgpack.RawMessage) {
	var req MutateRequest
	if err := msgpack.Unmarshal(payload, &req); err != nil {
		s.writeFrame(ErrorResponse{Error: "malformed mutate request"})
		return
	}

	switch req.Action {
	case "add":
		s.checker.Add(req.Word, req.Model)
	case "remove":
		s.checker.Remove(req.Word)
	case "dictionary":
		s.checker.Dictionary(req.Text)
	case "personal":
		s.checker.Personal(req.Text)
	default:
		s.writeFrame(MutateResponse{ID: req.ID, Status: "error", Error: "unknown action: " + req.Action})
		return
	}
	s.writeFrame(MutateResponse{ID: req.ID, Status: "ok"})
}

func (s *Server) handleStats(payload msgpack.RawMessage) {
	var req struct {
		ID string `msgpack:"id"`
	}
	_ = msgpack.Unmarshal(payload, &req)

	stats := s.checker.GetStats()
	s.writeFrame(StatsResponse{
		ID:       req.ID,
		Words:    stats.Words,
		Nodes:    stats.Nodes,
		AvgDepth: stats.AvgDepth,
	})
}

func (s *Server) readFrame() ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(s.reader, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.reader, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *Server) writeFrame(v interface{}) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		log.Errorf("marshaling response: %v", err)
		return
	}
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	if _, err := s.writer.Write(lenBuf[:]); err != nil {
		log.Errorf("writing frame length: %v", err)
		return
	}
	if _, err := s.writer.Write(data); err != nil {
		log.Errorf("writing frame payload: %v", err)
	}
}
