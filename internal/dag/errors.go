package dag

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for programmatic checks via errors.Is.
var (
	// ErrInvalidGraph indicates structurally invalid construction input.
	ErrInvalidGraph = errors.New("invalid dependency graph")

	// ErrCyclicDependency indicates that no valid total order exists.
	ErrCyclicDependency = errors.New("cyclic dependencies detected")
)

// InvalidGraphError reports malformed construction input, such as an
// empty node identifier.
type InvalidGraphError struct {
	Reason string
}

func (e *InvalidGraphError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidGraph.Error(), e.Reason)
}

func (e *InvalidGraphError) Unwrap() error { return ErrInvalidGraph }

// CyclicDependencyError reports that ordering stalled before every node
// was emitted. Remaining maps each unresolved node to the prerequisites
// that were still unsatisfied at the point ordering became impossible;
// every listed prerequisite is itself a key of Remaining.
type CyclicDependencyError struct {
	Remaining map[string][]string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCyclicDependency.Error(), formatRemaining(e.Remaining))
}

func (e *CyclicDependencyError) Unwrap() error { return ErrCyclicDependency }

// formatRemaining renders the unresolved sub-mapping with sorted keys
// and sorted prerequisite lists so the message is identical across runs.
func formatRemaining(remaining map[string][]string) string {
	keys := make([]string, 0, len(remaining))
	for k := range remaining {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		deps := append([]string(nil), remaining[k]...)
		sort.Strings(deps)
		fmt.Fprintf(&sb, "%s -> [%s]", k, strings.Join(deps, ", "))
	}
	return sb.String()
}
