package dfs

// FindCycle searches the states reachable from start for a directed
// cycle using three-color marking. It returns the keys of the first cycle
// found, starting and ending at the state where it closes, or nil if the
// reachable graph is acyclic. Successor lists are treated as one-way
// edges, so an undirected graph (where every edge is mirrored) always
// reports a two-state cycle.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the color map and the current path.
func FindCycle[S State[S]](start S, opts ...Option) ([]string, error) {
	o := applyOptions(opts)
	state := make(map[string]int)
	var path []string

	var visit func(s S, key string) ([]string, error)
	visit = func(s S, key string) ([]string, error) {
		if err := cancelled(o.Ctx); err != nil {
			return nil, err
		}
		state[key] = Gray
		path = append(path, key)

		for _, next := range s.Successors() {
			nkey := next.Key()
			switch state[nkey] {
			case White:
				if cyc, err := visit(next, nkey); cyc != nil || err != nil {
					return cyc, err
				}
			case Gray:
				// Back edge: the cycle is the path suffix from nkey.
				for i := len(path) - 1; i >= 0; i-- {
					if path[i] == nkey {
						cyc := append([]string(nil), path[i:]...)
						return append(cyc, nkey), nil
					}
				}
			}
		}

		path = path[:len(path)-1]
		state[key] = Black
		return nil, nil
	}

	return visit(start, start.Key())
}
