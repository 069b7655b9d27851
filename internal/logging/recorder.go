// Package logging adapts structured logging to the app layer's Logger
// port while keeping a bounded tail of messages for the log pane.
package logging

import (
	"time"

	charmLog "github.com/charmbracelet/log"
)

// DefaultMaxMessages bounds the recorded tail when no capacity is
// given.
const DefaultMaxMessages = 100

// Entry is one recorded message with its arrival time.
type Entry struct {
	Time    time.Time
	Message string
}

// Recorder forwards every message to a structured sink and keeps the
// most recent entries for rendering.
type Recorder struct {
	sink        *charmLog.Logger
	entries     []Entry
	maxMessages int
	clock       func() time.Time
}

// Option adjusts a Recorder at construction time.
type Option func(*Recorder)

// WithMaxMessages bounds the recorded tail.
func WithMaxMessages(n int) Option {
	return func(r *Recorder) {
		if n > 0 {
			r.maxMessages = n
		}
	}
}

// WithClock substitutes the time source.
func WithClock(clock func() time.Time) Option {
	return func(r *Recorder) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// NewRecorder wraps sink. A nil sink records without forwarding, which
// tests rely on.
func NewRecorder(sink *charmLog.Logger, opts ...Option) *Recorder {
	r := &Recorder{
		sink:        sink,
		maxMessages: DefaultMaxMessages,
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Log records message and forwards it to the sink.
func (r *Recorder) Log(message string) {
	if len(r.entries) >= r.maxMessages {
		r.entries = r.entries[1:]
	}
	r.entries = append(r.entries, Entry{Time: r.clock(), Message: message})

	if r.sink != nil {
		r.sink.Info(message)
	}
}

// Entries returns the recorded tail, oldest first.
func (r *Recorder) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Latest returns the newest message, or ok=false when nothing has been
// logged yet.
func (r *Recorder) Latest() (Entry, bool) {
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}
