package trace

import (
	"context"
	"time"
)

type ctxKey struct{}

// FromContext returns the tracer carried by ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(ctxKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches t to ctx.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, t)
}

// SpanContext is the innermost open span and the file it belongs to.
type SpanContext struct {
	SpanID uint64
	File   string
}

type spanCtxKey struct{}

// CurrentSpan returns the span context carried by ctx; zero when none.
func CurrentSpan(ctx context.Context) SpanContext {
	if ctx == nil {
		return SpanContext{}
	}
	sc, _ := ctx.Value(spanCtxKey{}).(SpanContext)
	return sc
}

// StartSpan opens a span under the one carried by ctx. The returned context
// carries the new span; it is ctx itself when the scope is filtered out.
func StartSpan(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	parent := CurrentSpan(ctx)
	span := begin(FromContext(ctx), scope, name, parent)
	if span.ID() == 0 {
		return ctx, span
	}
	return context.WithValue(ctx, spanCtxKey{}, SpanContext{SpanID: span.id, File: parent.File}), span
}

// StartFile opens a ScopeFile span for path. Events started from the returned
// context carry path in Event.File, even when the file span itself is
// filtered out by the level.
func StartFile(ctx context.Context, path string) (context.Context, *Span) {
	parent := CurrentSpan(ctx)
	parent.File = path
	span := begin(FromContext(ctx), ScopeFile, "file", parent)
	if span.ID() != 0 {
		parent.SpanID = span.id
	}
	return context.WithValue(ctx, spanCtxKey{}, parent), span
}

// Point emits an instant event under the span carried by ctx.
func Point(ctx context.Context, scope Scope, name, detail string, extra map[string]string) {
	t := FromContext(ctx)
	if !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return
	}
	sc := CurrentSpan(ctx)
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: sc.SpanID,
		File:     sc.File,
		Name:     name,
		Detail:   detail,
		Extra:    extra,
	})
}
