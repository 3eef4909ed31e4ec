// Package core defines the capability boundary between surflens and the
// external exact-surface evaluator, plus the small shared vocabulary every
// lens speaks: curvature samples, tessellation meshes, and adjacency.
//
// What
//
//   - Evaluator: the required capability interface (face count, pointwise
//     curvature, tessellation, true face adjacency). surflens never owns
//     the surface; it only queries it through this interface.
//   - CurvatureSample: one (κ₁, κ₂, K, H, |H|, RMS) measurement at a
//     parametric point.
//   - Mesh: a tessellation used for connectivity only — vertices, normals,
//     triangles, and each triangle's parent control face.
//   - BuildFaceAdjacency / Mesh.VertexAdjacency: the two graphs the lenses
//     walk. Face adjacency MUST come from shared-edge topology of the
//     control surface, never from index arithmetic.
//
// Errors
//
//   - ErrConfiguration: taxonomy root for misuse that must surface
//     immediately (nil evaluator, bad tessellation, ...). Package-level
//     sentinels across surflens wrap either this or ErrConvergence so
//     callers can match the class with errors.Is.
//   - ErrConvergence: taxonomy root for iterative solvers giving up within
//     their budget. Recoverable by the caller; never silently masked.
//
// Determinism
//
//	Adjacency lists are returned sorted by index, so every traversal in
//	the lens packages is fully reproducible.
package core
