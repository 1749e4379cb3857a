package homology

import "github.com/A-Alaa/aleph/core"

// unionFind tracks disjoint sets of vertices with path compression.
// Merging is directional so that the caller controls which root survives.
type unionFind struct {
	parent map[core.Vertex]core.Vertex
}

func newUnionFind(vertices []core.Vertex) *unionFind {
	parent := make(map[core.Vertex]core.Vertex, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(v core.Vertex) core.Vertex {
	if u.parent[v] == v {
		return v
	}
	root := u.find(u.parent[v])
	u.parent[v] = root
	return root
}

// merge makes the set of a part of the set of b.
func (u *unionFind) merge(a, b core.Vertex) {
	if a != b {
		u.parent[u.find(a)] = u.find(b)
	}
}

func (u *unionFind) roots() []core.Vertex {
	var roots []core.Vertex
	for v := range u.parent {
		if u.find(v) == v {
			roots = append(roots, v)
		}
	}
	return roots
}
