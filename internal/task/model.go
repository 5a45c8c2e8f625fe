package task

import "github.com/google/uuid"

// NoTarget is the neutral child-dialog target.
const NoTarget = -1

// ChildItem is a single timed sub-task.
type ChildItem struct {
	ID              string
	Code            string
	DurationSeconds int
}

// ParentItem is a named group of sub-tasks.
type ParentItem struct {
	ID       string
	Name     string
	Children []ChildItem
}

// TotalSeconds sums the durations of all children.
func (p ParentItem) TotalSeconds() int {
	total := 0
	for _, c := range p.Children {
		total += c.DurationSeconds
	}
	return total
}

// UIState holds the transient dialog flags.
type UIState struct {
	ParentDialogVisible bool
	ChildDialogVisible  bool
	TargetParent        int
}

// Snapshot is a read-only view of the store at a given version.
// Callers must not modify the Parents slice or any Children slice.
type Snapshot struct {
	Version uint64
	Parents []ParentItem
	UI      UIState
}

// Len returns the number of parents in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Parents)
}

// ChildCount returns the number of children across all parents.
func (s Snapshot) ChildCount() int {
	n := 0
	for _, p := range s.Parents {
		n += len(p.Children)
	}
	return n
}

// Helper to generate item ID
func generateID() string {
	return uuid.New().String()[:8]
}
