package dag

import "sort"

// Sort computes the total order in which the graph's nodes can run so
// that every node appears strictly after all of its prerequisites. The
// result is deterministic: among nodes whose prerequisites are already
// satisfied, ascending identifier order wins.
//
// The algorithm eliminates nodes in passes until a fixed point. Each
// pass scans the still-remaining identifiers in ascending order and
// removes every node whose prerequisites are all absent from the
// remaining set, either emitted earlier or never declared as nodes.
// Removals take effect immediately, so a node freed earlier in a pass
// can unblock one scanned later in the same pass. A pass that removes
// nothing proves the remainder cyclic and yields a CyclicDependencyError
// carrying it.
func Sort(g *Graph) ([]string, error) {
	remaining := g.Snapshot()
	order := make([]string, 0, len(remaining))

	for len(remaining) > 0 {
		// The scan order of a pass is fixed up front; removals below
		// must not disturb it.
		pass := make([]string, 0, len(remaining))
		for id := range remaining {
			pass = append(pass, id)
		}
		sort.Strings(pass)

		removed := 0
		for _, id := range pass {
			if !satisfied(remaining, id) {
				continue
			}
			delete(remaining, id)
			order = append(order, id)
			removed++
		}

		if removed == 0 {
			return nil, &CyclicDependencyError{Remaining: remainder(remaining)}
		}
	}
	return order, nil
}

// satisfied reports whether every prerequisite of id is absent from the
// remaining set.
func satisfied(remaining map[string]map[string]struct{}, id string) bool {
	for p := range remaining[id] {
		if _, ok := remaining[p]; ok {
			return false
		}
	}
	return true
}

// remainder converts the stalled working set into the error payload,
// keeping only prerequisites that are themselves still unresolved and
// sorting them for stable comparison.
func remainder(remaining map[string]map[string]struct{}) map[string][]string {
	out := make(map[string][]string, len(remaining))
	for id, prereqs := range remaining {
		deps := make([]string, 0, len(prereqs))
		for p := range prereqs {
			if _, ok := remaining[p]; ok {
				deps = append(deps, p)
			}
		}
		sort.Strings(deps)
		out[id] = deps
	}
	return out
}
