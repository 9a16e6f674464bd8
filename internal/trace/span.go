package trace

import (
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
	// openFiles counts file spans that have begun but not ended.
	openFiles atomic.Int64
)

func nextSeq() uint64 { return seqCounter.Add(1) }

// Span is an open begin/end pair. A span filtered out by the level is inert:
// End and WithExtra do nothing and ID is 0.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	file    string
	scope   Scope
	name    string
	started time.Time
	extra   map[string]string
}

func begin(t Tracer, scope Scope, name string, parent SpanContext) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{}
	}
	s := &Span{
		tracer:  t,
		id:      spanCounter.Add(1),
		parent:  parent.SpanID,
		file:    parent.File,
		scope:   scope,
		name:    name,
		started: time.Now(),
	}
	if scope == ScopeFile {
		openFiles.Add(1)
	}
	t.Emit(&Event{
		Time:     s.started,
		Kind:     KindSpanBegin,
		Scope:    scope,
		SpanID:   s.id,
		ParentID: s.parent,
		File:     s.file,
		Name:     name,
	})
	return s
}

// End emits the end event and returns the span's duration. Only the first
// call emits.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil {
		return 0
	}
	now := time.Now()
	t := s.tracer
	s.tracer = nil
	if s.scope == ScopeFile {
		openFiles.Add(-1)
	}
	t.Emit(&Event{
		Time:     now,
		Kind:     KindSpanEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		File:     s.file,
		Name:     s.name,
		Detail:   detail,
		Extra:    s.extra,
	})
	return now.Sub(s.started)
}

// WithExtra attaches a key/value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.tracer == nil {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}
