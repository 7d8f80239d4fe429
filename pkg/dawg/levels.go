package dawg

// AssignLevels computes, for every live node, the length of the longest path
// from the root, using Kahn-style topological relaxation: seed a queue with
// all zero-in-degree nodes (normally just the root), then repeatedly pop a
// node and raise each child's level to at least the popped level plus one.
// Each node is dequeued exactly once, so the pass is linear in nodes plus
// edges.
//
// The single-pass guarantee holds because the graph is a DAG: neither Insert
// nor Minimize ever creates a back-edge. The sink participates in the same
// relaxation as every other node and ends up at the maximum over its
// incoming edges of source level plus one.
//
// Levels are meaningless, though not unsafe, on a graph that has not been
// minimized. They feed layout and visualization only.
func (d *DAWG) AssignLevels() {
	inDegree := make(map[*Node]int, len(d.nodes))
	for n := range d.nodes {
		n.Level = 0
		inDegree[n] = 0
	}
	for n := range d.nodes {
		for _, child := range n.Children {
			inDegree[child]++
		}
	}

	queue := make([]*Node, 0, len(d.nodes))
	for n, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range curr.Children {
			if level := curr.Level + 1; level > child.Level {
				child.Level = level
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}
}
