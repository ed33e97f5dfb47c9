package observer

import (
	"io"
	"sync"
	"time"

	"github.com/hupe1980/kmeansgo"
	"github.com/hupe1980/kmeansgo/codec"
)

// StreamOption configures a Stream.
type StreamOption func(*Stream)

// WithCodec sets the codec used to encode events.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) StreamOption {
	return func(s *Stream) {
		if c == nil {
			c = codec.Default
		}
		s.codec = c
	}
}

// WithMembers includes member points in every event. Off by default, since
// member lists can be large.
func WithMembers() StreamOption {
	return func(s *Stream) {
		s.members = true
	}
}

// Stream writes each notification as one line of JSON to an io.Writer.
//
// Observer methods cannot return errors, so the first write or encoding
// error is kept and later events are dropped; check Err after the run.
type Stream struct {
	mu      sync.Mutex
	w       io.Writer
	codec   codec.Codec
	members bool
	buf     []byte
	err     error
}

type appender interface {
	Append(dst []byte, v any) ([]byte, error)
}

var _ kmeansgo.Observer = (*Stream)(nil)

// NewStream creates a Stream writing to w.
func NewStream(w io.Writer, optFns ...StreamOption) *Stream {
	s := &Stream{w: w, codec: codec.Default}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

// OnIterationComplete implements kmeansgo.Observer.
func (s *Stream) OnIterationComplete(snapshot []kmeansgo.Cluster, iteration int, sse float64) {
	s.write(newEvent(EventIteration, snapshot, iteration, sse, 0, s.members))
}

// OnRunComplete implements kmeansgo.Observer.
func (s *Stream) OnRunComplete(final []kmeansgo.Cluster, sse float64, elapsed time.Duration, iterations int) {
	s.write(newEvent(EventComplete, final, iterations, sse, elapsed, s.members))
}

func (s *Stream) write(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return
	}

	var (
		b   []byte
		err error
	)
	if a, ok := s.codec.(appender); ok {
		b, err = a.Append(s.buf[:0], ev)
	} else {
		b, err = s.codec.Marshal(ev)
	}
	if err != nil {
		s.err = err
		return
	}
	b = append(b, '\n')
	s.buf = b
	if _, err := s.w.Write(b); err != nil {
		s.err = err
	}
}

// Err returns the first error encountered while writing.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
