// Package trace records what the modwrap CLI does while wrapping bundles.
//
// Events are written as they happen to a stream (stderr or a file) in text or
// NDJSON form. The CLI enables it with flags:
//
//	modwrap wrap --trace=- --trace-level=debug dist/app.js
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelWarn: warnings only (e.g. guessed globals)
//   - LevelInfo: driver spans and per-target spans
//   - LevelDebug: everything, including cache lookups and render steps
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeTarget, "wrap:app.js", parentID)
//	defer span.End("")
package trace
