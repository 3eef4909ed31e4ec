// Package lens coordinates the mathematical lenses behind one uniform
// API: register implementations, dispatch analyses with caching, compare
// resonance scores, and pick the best decomposition.
//
// What
//
//   - Lens: the polymorphic interface every lens implements — a single
//     Analyze(ctx, Request) entry point. Lens-specific parameters travel
//     in Request as a tagged variant (one struct per lens type), not as
//     generic keyword maps.
//   - Manager: registry + dispatcher. AnalyzeWithLens times the call,
//     derives a resonance score from the regions' unity strengths, and
//     caches a Result per lens type; a repeat call without forceRecompute
//     returns the cached region list unchanged.
//   - CompareLenses / BestLens: rank cached analyses by mean unity
//     strength. A lens absent from CompareLenses' output has not been
//     analyzed yet — it never means "failed silently".
//   - Summary: a JSON-compatible digest of everything cached.
//
// Errors
//
//	Analyzing an unregistered lens type returns ErrLensNotRegistered
//	immediately (matches core.ErrConfiguration); lens failures (including
//	eigensolver non-convergence) propagate unmodified. The manager never
//	substitutes a default result.
//
// Concurrency
//
//	Registry and cache assume single-threaded access; concurrent callers
//	need external locking.
package lens
