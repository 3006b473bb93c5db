package parsley

import "sort"

// An edgeSet keeps directed (plural, singular) pairs, collapsing exact
// duplicates and dropping self references, in first-insertion order.
type edgeSet struct {
	seen  map[[2]int]bool
	edges [][2]int
}

func newEdgeSet() *edgeSet {
	return &edgeSet{seen: map[[2]int]bool{}}
}

func (s *edgeSet) add(i, j int) {
	if i == j {
		return
	}
	e := [2]int{i, j}
	if s.seen[e] {
		return
	}
	s.seen[e] = true
	s.edges = append(s.edges, e)
}

// A unionFind partitions word indices into equivalence classes. The
// arena grows on demand; indices never touched by a union stay in
// singleton classes and are not reported.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind() *unionFind {
	return &unionFind{}
}

func (u *unionFind) grow(n int) {
	for len(u.parent) < n {
		u.parent = append(u.parent, len(u.parent))
		u.rank = append(u.rank, 0)
	}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(i, j int) {
	if i == j {
		return
	}
	u.grow(max(i, j) + 1)
	ri, rj := u.find(i), u.find(j)
	if ri == rj {
		return
	}
	switch {
	case u.rank[ri] < u.rank[rj]:
		u.parent[ri] = rj
	case u.rank[ri] > u.rank[rj]:
		u.parent[rj] = ri
	default:
		u.parent[rj] = ri
		u.rank[ri]++
	}
}

// clusters returns every class of size at least two, members sorted
// ascending, classes ordered by their smallest member.
func (u *unionFind) clusters() [][]int {
	byRoot := map[int][]int{}
	for i := range u.parent {
		root := u.find(i)
		byRoot[root] = append(byRoot[root], i)
	}
	var rv [][]int
	for _, members := range byRoot {
		if len(members) < 2 {
			continue
		}
		sort.Ints(members)
		rv = append(rv, members)
	}
	sort.Slice(rv, func(a, b int) bool { return rv[a][0] < rv[b][0] })
	return rv
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
