package dawg

// Report is the result of [DAWG.Validate].
type Report struct {
	// OK is true when no dead ends were found and the sink is reachable.
	OK bool `json:"ok"`

	// DeadEnds counts reachable non-sink nodes with no outgoing edges. Any
	// such node breaks a word path: a trie node only exists because a word
	// extended through it, and the terminator edge is always eventually
	// attached.
	DeadEnds int `json:"dead_ends"`

	// SinkReachable is true when at least one root-to-sink walk exists.
	SinkReachable bool `json:"sink_reachable"`
}

// Validate walks the live graph from the root and checks that no path was
// silently broken: every reachable non-sink node must have at least one
// outgoing edge, and the sink must be reachable. It never mutates the graph;
// the caller decides whether a failing report is fatal.
func (d *DAWG) Validate() Report {
	report := Report{}

	visited := map[*Node]struct{}{d.root: {}}
	queue := []*Node{d.root}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == d.sink {
			report.SinkReachable = true
			continue
		}
		if len(curr.Children) == 0 {
			report.DeadEnds++
			continue
		}
		for _, child := range curr.Children {
			if _, seen := visited[child]; !seen {
				visited[child] = struct{}{}
				queue = append(queue, child)
			}
		}
	}

	report.OK = report.DeadEnds == 0 && report.SinkReachable
	return report
}
