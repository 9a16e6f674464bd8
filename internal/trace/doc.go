// Package trace is the logging layer of cslines.
//
// A tracer follows a run from the driver down to single line-break
// decisions: which files were formatted, how long each pass took and which
// rule forced a gap. It travels in context.Context; there is no global logger.
//
//	cslines fmt --trace=- --trace-level=detail src/
//	cslines fmt --trace=run.ndjson --trace-level=debug Program.cs
//
// Tracers:
//
//   - Nop discards everything and is what FromContext returns by default
//   - StreamTracer writes each event as it happens (text or NDJSON)
//   - RingTracer keeps the last N events and is dumped when a run fails
//   - MultiTracer fans out to a stream and a ring
//
// Scopes, coarse to fine: ScopeRun (one fmt or explain invocation), ScopeFile
// (one source file), ScopePass (lex, parse, sweep, apply) and ScopePair (one
// token pair). LevelPhase records runs and files, LevelDetail adds passes,
// LevelDebug adds pair decisions. LevelError records everything but only
// into a ring.
//
//	ctx, span := trace.StartFile(ctx, path)
//	defer span.End("")
//	_, sweep := trace.StartSpan(ctx, trace.ScopePass, "sweep")
//	trace.Point(ctx, trace.ScopePair, "force", rule, extra)
//
// Events below a file span carry its path, so interleaved output of parallel
// workers can be told apart.
package trace
