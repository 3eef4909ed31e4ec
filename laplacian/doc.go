// Package laplacian builds the cotangent-weighted discrete
// Laplace–Beltrami operator and lumped mass matrix of a tessellated
// surface, the algebra backing the spectral lens.
//
// What
//
//   - Sparse: a minimal CSR symmetric sparse matrix (accumulate triplets,
//     compress, multiply, symmetric diagonal scaling). Flat storage, no
//     hidden allocation in MulVec.
//   - Builder: per tessellation level, assembles L (N×N, N = vertex
//     count) and the diagonal mass vector, caching both until ClearCache.
//   - Normalize: A^(−1/2) L A^(−1/2) with ε = 1e-10 under the square root
//     guarding isolated or degenerate vertices.
//   - Verify: reports symmetry error, max |L·𝟙| row sum, and sparsity.
//
// Construction (Meyer et al. 2003; Pinkall & Polthier 1993)
//
//	Per triangle edge, the cotangent of the opposite angle is
//	cot θ = (u·v)/|u×v| with u, v running from the opposite vertex to the
//	edge endpoints. Per undirected edge, weight = Σ adjacent-triangle
//	cotangents ÷ 2; off-diagonals L[i,j] = L[j,i] = weight and diagonals
//	L[i,i] = −Σ_j L[i,j], which forces L·𝟙 = 0. The mass vector lumps ⅓
//	of every incident triangle's area onto each vertex.
//
// Numerical degeneracy policy
//
//	Angles with |u×v| < 1e-10 contribute weight 0; every cotangent is
//	clamped to [−100, 100]. Degeneracies always yield a valid (if
//	approximate) operator — never an error.
//
// Guarantees (for any valid tessellated mesh)
//
//   - L is symmetric within 1e-6 and max|L·𝟙| < 1e-4.
//   - Normalization preserves both properties.
package laplacian
