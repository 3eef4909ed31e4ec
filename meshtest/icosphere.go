package meshtest

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tkarvinen/surflens/core"
)

// icosaTriangles is the canonical 20-face icosahedron over icosaVertices.
var icosaTriangles = [][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

func icosaVertices() []r3.Vec {
	phi := (1 + math.Sqrt(5)) / 2
	raw := []r3.Vec{
		{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
		{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
		{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
	}
	vs := make([]r3.Vec, len(raw))
	for i, v := range raw {
		vs[i] = r3.Scale(1/r3.Norm(v), v)
	}

	return vs
}

// Icosahedron returns the unit icosahedron with one parent face per
// triangle (triangle i parents itself).
func Icosahedron() *core.Mesh {
	vs := icosaVertices()
	tris := make([][3]int, len(icosaTriangles))
	parents := make([]int, len(icosaTriangles))
	normals := make([]r3.Vec, len(vs))
	for i, t := range icosaTriangles {
		tris[i] = t
		parents[i] = i
	}
	copy(normals, vs) // unit sphere: normal == position

	return &core.Mesh{Vertices: vs, Normals: normals, Triangles: tris, FaceParents: parents}
}

// Icosphere subdivides the icosahedron level times, projecting every new
// midpoint back onto the unit sphere. FaceParents track the original
// icosahedron face through all levels, so each of the 20 control faces
// owns 4^level triangles.
func Icosphere(level int) *core.Mesh {
	m := Icosahedron()
	for s := 0; s < level; s++ {
		m = subdivide(m)
	}

	return m
}

func subdivide(m *core.Mesh) *core.Mesh {
	vs := append([]r3.Vec(nil), m.Vertices...)
	mid := make(map[[2]int]int)
	midpoint := func(a, b int) int {
		key := [2]int{min(a, b), max(a, b)}
		if v, ok := mid[key]; ok {
			return v
		}
		p := r3.Add(vs[a], vs[b])
		p = r3.Scale(1/r3.Norm(p), p)
		vs = append(vs, p)
		mid[key] = len(vs) - 1

		return len(vs) - 1
	}

	tris := make([][3]int, 0, 4*len(m.Triangles))
	parents := make([]int, 0, 4*len(m.Triangles))
	for t, tri := range m.Triangles {
		a, b, c := tri[0], tri[1], tri[2]
		ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)
		for _, nt := range [][3]int{{a, ab, ca}, {b, bc, ab}, {c, ca, bc}, {ab, bc, ca}} {
			tris = append(tris, nt)
			parents = append(parents, m.FaceParents[t])
		}
	}

	normals := make([]r3.Vec, len(vs))
	copy(normals, vs)

	return &core.Mesh{Vertices: vs, Normals: normals, Triangles: tris, FaceParents: parents}
}

// icosaFaceAdjacency maps each icosahedron face to the three faces it
// shares an edge with, sorted ascending.
func icosaFaceAdjacency() [][]int {
	edgeFaces := make(map[[2]int][]int)
	for f, tri := range icosaTriangles {
		for e := 0; e < 3; e++ {
			a, b := tri[e], tri[(e+1)%3]
			key := [2]int{min(a, b), max(a, b)}
			edgeFaces[key] = append(edgeFaces[key], f)
		}
	}
	adj := make([][]int, len(icosaTriangles))
	for _, faces := range edgeFaces {
		if len(faces) != 2 {
			continue
		}
		adj[faces[0]] = append(adj[faces[0]], faces[1])
		adj[faces[1]] = append(adj[faces[1]], faces[0])
	}
	for _, nbrs := range adj {
		sortInts(nbrs)
	}

	return adj
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
