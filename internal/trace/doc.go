// Package trace records where larkfmt spends its time.
//
// Enable it from the command line:
//
//	larkfmt check --trace=- --trace-level=phase grammars/
//
// Tracers:
//
//   - Nop: the zero-cost default
//   - StreamTracer: writes each event as it happens (text or NDJSON)
//   - RingTracer: keeps the last events in memory and writes them only when
//     the run fails (--trace-level=error)
//
// Scopes, coarse to fine: ScopeDriver (one command), ScopeFile (one input),
// ScopeStage (reconstruct, build, align, emit, verify) and ScopeDetail
// (counters and other point events).
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file", 0)
//	defer span.End("")
package trace
