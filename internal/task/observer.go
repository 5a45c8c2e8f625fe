package task

import (
	"io"
	"log/slog"
)

// LogObserver writes one structured record per store change.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver returns an observer logging to logger. A nil logger
// discards everything.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &LogObserver{logger: logger}
}

// Observe is suitable for Store.Subscribe.
func (o *LogObserver) Observe(c Change) {
	attrs := []any{
		"op", string(c.Op),
		"version", c.Snapshot.Version,
		"parents", c.Snapshot.Len(),
	}

	switch c.Op {
	case OpAddParent:
		p := c.Snapshot.Parents[c.ParentIndex]
		attrs = append(attrs, "parent_index", c.ParentIndex, "parent_id", p.ID, "name", p.Name)
	case OpAddChild:
		p := c.Snapshot.Parents[c.ParentIndex]
		child := p.Children[len(p.Children)-1]
		attrs = append(attrs,
			"parent_index", c.ParentIndex,
			"child_id", child.ID,
			"code", child.Code,
			"duration_s", child.DurationSeconds,
		)
	case OpToggleParentDialog:
		attrs = append(attrs, "visible", c.Snapshot.UI.ParentDialogVisible)
	case OpToggleChildDialog:
		attrs = append(attrs, "visible", c.Snapshot.UI.ChildDialogVisible, "target", c.Snapshot.UI.TargetParent)
	}

	o.logger.Info("store_change", attrs...)
}
