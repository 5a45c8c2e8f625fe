// Package task holds the in-memory task groups and their timed sub-tasks.
//
// The Store is single-threaded: every operation runs to completion on the
// caller's goroutine and returns the Snapshot the caller should render from.
// Mutations never touch memory reachable from an earlier Snapshot.
package task

import (
	"fmt"
	"slices"
)

// Op names a store mutation.
type Op string

const (
	OpAddParent          Op = "add_parent"
	OpAddChild           Op = "add_child"
	OpToggleParentDialog Op = "toggle_parent_dialog"
	OpToggleChildDialog  Op = "toggle_child_dialog"
)

// Change is delivered to subscribers after every successful mutation.
type Change struct {
	Op          Op
	ParentIndex int
	Snapshot    Snapshot
}

type subscriber struct {
	id int
	fn func(Change)
}

// Store owns the ordered parent collection and the dialog flags.
type Store struct {
	parents []ParentItem
	ui      UIState
	version uint64

	subs   []subscriber
	nextID int
}

// NewStore returns an empty store with no dialog open.
func NewStore() *Store {
	return &Store{
		ui: UIState{TargetParent: NoTarget},
	}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Version: s.version,
		Parents: s.parents,
		UI:      s.ui,
	}
}

// Len returns the number of parents.
func (s *Store) Len() int {
	return len(s.parents)
}

// Parent returns the parent at index i.
func (s *Store) Parent(i int) (ParentItem, error) {
	if err := s.checkIndex(i); err != nil {
		return ParentItem{}, err
	}
	return s.parents[i], nil
}

// AddParent appends a parent with no children. Names are not validated.
func (s *Store) AddParent(name string) Snapshot {
	p := ParentItem{
		ID:       generateID(),
		Name:     name,
		Children: []ChildItem{},
	}
	// Full slice expression forces a fresh backing array so earlier
	// snapshots never observe the appended element.
	s.parents = append(s.parents[:len(s.parents):len(s.parents)], p)
	return s.commit(OpAddParent, len(s.parents)-1)
}

// AddChild appends a child to the parent at parentIndex. The parent record
// is replaced by value with a new children slice.
func (s *Store) AddChild(parentIndex int, code string, durationSeconds int) (Snapshot, error) {
	if err := s.checkIndex(parentIndex); err != nil {
		return s.Snapshot(), err
	}
	if durationSeconds < 0 {
		return s.Snapshot(), fmt.Errorf("add child %q: %w (got %d)", code, ErrNegativeDuration, durationSeconds)
	}

	parent := s.parents[parentIndex]
	children := make([]ChildItem, len(parent.Children), len(parent.Children)+1)
	copy(children, parent.Children)
	children = append(children, ChildItem{
		ID:              generateID(),
		Code:            code,
		DurationSeconds: durationSeconds,
	})
	parent.Children = children

	parents := slices.Clone(s.parents)
	parents[parentIndex] = parent
	s.parents = parents

	return s.commit(OpAddChild, parentIndex), nil
}

// ToggleParentDialog flips the add-parent dialog flag.
func (s *Store) ToggleParentDialog() Snapshot {
	s.ui.ParentDialogVisible = !s.ui.ParentDialogVisible
	return s.commit(OpToggleParentDialog, NoTarget)
}

// ToggleChildDialog records parentIndex as the pending target and flips the
// add-child dialog flag. Pass NoTarget when closing.
func (s *Store) ToggleChildDialog(parentIndex int) Snapshot {
	s.ui.TargetParent = parentIndex
	s.ui.ChildDialogVisible = !s.ui.ChildDialogVisible
	return s.commit(OpToggleChildDialog, parentIndex)
}

// Subscribe registers fn to receive every subsequent change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

func (s *Store) checkIndex(i int) error {
	if i < 0 || i >= len(s.parents) {
		return fmt.Errorf("parent %d of %d: %w", i, len(s.parents), ErrIndexOutOfRange)
	}
	return nil
}

func (s *Store) commit(op Op, parentIndex int) Snapshot {
	s.version++
	snap := s.Snapshot()
	change := Change{Op: op, ParentIndex: parentIndex, Snapshot: snap}
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(change)
	}
	return snap
}
