package task

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddParent_PreservesCallOrder(t *testing.T) {
	s := NewStore()
	names := []string{"Work", "Home", "", "Work"}
	for _, n := range names {
		s.AddParent(n)
	}

	snap := s.Snapshot()
	require.Equal(t, len(names), snap.Len())
	for i, n := range names {
		assert.Equal(t, n, snap.Parents[i].Name)
		assert.Empty(t, snap.Parents[i].Children)
		assert.NotEmpty(t, snap.Parents[i].ID)
	}
}

func TestAddChild_AppendsAndKeepsPriorChildren(t *testing.T) {
	s := NewStore()
	s.AddParent("Work")
	s.AddParent("Home")

	_, err := s.AddChild(0, "first", 10)
	require.NoError(t, err)
	_, err = s.AddChild(0, "second", 20)
	require.NoError(t, err)
	snap, err := s.AddChild(0, "third", 30)
	require.NoError(t, err)

	children := snap.Parents[0].Children
	require.Len(t, children, 3)
	assert.Equal(t, "first", children[0].Code)
	assert.Equal(t, 10, children[0].DurationSeconds)
	assert.Equal(t, "second", children[1].Code)
	assert.Equal(t, "third", children[2].Code)
	assert.Equal(t, 30, children[2].DurationSeconds)
	assert.Empty(t, snap.Parents[1].Children)
	assert.Equal(t, 60, snap.Parents[0].TotalSeconds())
}

func TestAddChild_OutOfRange(t *testing.T) {
	s := NewStore()
	s.AddParent("Work")
	before := s.Snapshot()

	for _, idx := range []int{1, 5, -1, NoTarget} {
		_, err := s.AddChild(idx, "x", 1)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", idx)
	}

	after := s.Snapshot()
	assert.Equal(t, before.Version, after.Version)
	assert.Equal(t, 1, after.Len())
	assert.Empty(t, after.Parents[0].Children)
}

func TestAddChild_EmptyStore(t *testing.T) {
	s := NewStore()
	_, err := s.AddChild(0, "x", 1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 0, s.Len())
}

func TestAddChild_NegativeDuration(t *testing.T) {
	s := NewStore()
	s.AddParent("Work")
	_, err := s.AddChild(0, "x", -1)
	require.ErrorIs(t, err, ErrNegativeDuration)
	p, err := s.Parent(0)
	require.NoError(t, err)
	assert.Empty(t, p.Children)
}

func TestAddChild_EmptyCodeAccepted(t *testing.T) {
	s := NewStore()
	s.AddParent("")
	snap, err := s.AddChild(0, "", 0)
	require.NoError(t, err)
	assert.Equal(t, ChildItem{ID: snap.Parents[0].Children[0].ID, Code: "", DurationSeconds: 0}, snap.Parents[0].Children[0])
}

func TestSnapshot_UnaffectedByLaterMutations(t *testing.T) {
	s := NewStore()
	s.AddParent("Work")
	_, err := s.AddChild(0, "a", 1)
	require.NoError(t, err)
	old := s.Snapshot()

	s.AddParent("Home")
	_, err = s.AddChild(0, "b", 2)
	require.NoError(t, err)
	s.ToggleParentDialog()

	assert.Equal(t, 1, old.Len())
	require.Len(t, old.Parents[0].Children, 1)
	assert.Equal(t, "a", old.Parents[0].Children[0].Code)
	assert.False(t, old.UI.ParentDialogVisible)

	cur := s.Snapshot()
	assert.Equal(t, 2, cur.Len())
	assert.Len(t, cur.Parents[0].Children, 2)
	assert.Greater(t, cur.Version, old.Version)
}

func TestToggleParentDialog_Involution(t *testing.T) {
	s := NewStore()
	start := s.Snapshot().UI

	snap := s.ToggleParentDialog()
	assert.True(t, snap.UI.ParentDialogVisible)
	assert.False(t, snap.UI.ChildDialogVisible)

	snap = s.ToggleParentDialog()
	assert.Equal(t, start, snap.UI)
}

func TestToggleChildDialog_RecordsTarget(t *testing.T) {
	s := NewStore()
	s.AddParent("Work")
	s.AddParent("Home")

	snap := s.ToggleChildDialog(1)
	assert.True(t, snap.UI.ChildDialogVisible)
	assert.Equal(t, 1, snap.UI.TargetParent)
	assert.False(t, snap.UI.ParentDialogVisible)

	snap = s.ToggleChildDialog(NoTarget)
	assert.False(t, snap.UI.ChildDialogVisible)
	assert.Equal(t, NoTarget, snap.UI.TargetParent)
}

func TestScenario_WorkEmail(t *testing.T) {
	s := NewStore()
	s.AddParent("Work")
	snap, err := s.AddChild(0, "EmailABC", 3723)
	require.NoError(t, err)

	require.Len(t, snap.Parents[0].Children, 1)
	child := snap.Parents[0].Children[0]
	assert.Equal(t, "EmailABC", child.Code)
	assert.Equal(t, 3723, child.DurationSeconds)
	assert.Equal(t, 1, snap.ChildCount())
}

func TestSubscribe_NotifiesInOrderAndUnsubscribes(t *testing.T) {
	s := NewStore()

	var ops []Op
	unsubscribe := s.Subscribe(func(c Change) {
		ops = append(ops, c.Op)
	})
	var second []uint64
	s.Subscribe(func(c Change) {
		second = append(second, c.Snapshot.Version)
	})

	s.AddParent("Work")
	_, err := s.AddChild(0, "a", 1)
	require.NoError(t, err)
	_, err = s.AddChild(3, "a", 1)
	require.Error(t, err)
	s.ToggleChildDialog(0)

	unsubscribe()
	s.ToggleParentDialog()

	assert.Equal(t, []Op{OpAddParent, OpAddChild, OpToggleChildDialog}, ops)
	assert.Equal(t, []uint64{1, 2, 3, 4}, second)
}

func TestLogObserver_WritesChanges(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := NewStore()
	s.Subscribe(NewLogObserver(logger).Observe)
	s.AddParent("Work")
	_, err := s.AddChild(0, "EmailABC", 3723)
	require.NoError(t, err)
	s.ToggleChildDialog(0)

	out := buf.String()
	assert.Contains(t, out, "op=add_parent")
	assert.Contains(t, out, "name=Work")
	assert.Contains(t, out, "code=EmailABC")
	assert.Contains(t, out, "duration_s=3723")
	assert.Contains(t, out, "op=toggle_child_dialog")
}

func TestLogObserver_NilLoggerDiscards(t *testing.T) {
	s := NewStore()
	s.Subscribe(NewLogObserver(nil).Observe)
	assert.NotPanics(t, func() { s.AddParent("Work") })
}
