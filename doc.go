// Package surflens discovers natural decompositions of a smooth surface
// into coherent regions, looking at the same geometry through independent
// mathematical "lenses" and letting callers compare what each one sees.
//
// 🔍 What is surflens?
//
//	A pure analysis engine that turns an exact-surface evaluator into
//	region decompositions:
//		• curvature  — per-face curvature field sampling & classification
//		• differential — curvature-coherent region growing, scoring, merging
//		• laplacian  — cotangent-weight discrete Laplace–Beltrami operator
//		• spectral   — sparse eigenproblem, nodal-domain extraction
//		• lens       — one polymorphic Lens API, caching, comparison
//		• region     — the shared parametric region/curve data model
//		• meshtest   — synthetic evaluators & icosphere fixtures for tests
//
// surflens never evaluates, renders, or persists the surface itself: the
// exact geometry stays behind the core.Evaluator capability interface, and
// the discovered regions are handed to the caller as plain data.
//
// Entry points:
//
//	ev := ...                          // your core.Evaluator
//	dl, _ := differential.New(ev)
//	sl, _ := spectral.New(ev)
//	mgr := lens.NewManager()
//	_ = mgr.Register(dl)
//	_ = mgr.Register(sl)
//	regions, err := mgr.AnalyzeWithLens(ctx, lens.Differential, lens.Request{}, false)
//
// See each package's doc.go for algorithms, complexity, and error contracts.
package surflens
