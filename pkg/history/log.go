package history

// Log holds the undo and redo stacks for one document. Executing a new
// command through Do clears the redo stack; Undo and Redo move the
// inverse of what they ran onto the opposite stack, so the two stacks
// stay balanced no matter how operations interleave.
//
// Log is not safe for concurrent use.
type Log struct {
	undo []Command
	redo []Command
}

// NewLog returns an empty command log.
func NewLog() *Log {
	return &Log{}
}

// Do executes the command and records its inverse for undo. Any redoable
// commands are discarded.
func (l *Log) Do(c Command) {
	inverse := c.apply()
	l.undo = append(l.undo, inverse)
	l.redo = nil
}

// Undo reverts the most recent command. Returns false when there is
// nothing to undo.
func (l *Log) Undo() bool {
	if len(l.undo) == 0 {
		return false
	}
	c := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	l.redo = append(l.redo, c.apply())
	return true
}

// Redo reapplies the most recently undone command. Returns false when
// there is nothing to redo.
func (l *Log) Redo() bool {
	if len(l.redo) == 0 {
		return false
	}
	c := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.undo = append(l.undo, c.apply())
	return true
}

// CanUndo reports whether at least one command can be undone.
func (l *Log) CanUndo() bool {
	return len(l.undo) > 0
}

// CanRedo reports whether at least one command can be redone.
func (l *Log) CanRedo() bool {
	return len(l.redo) > 0
}

// Depth returns the number of undoable commands.
func (l *Log) Depth() int {
	return len(l.undo)
}

// Clear drops both stacks.
func (l *Log) Clear() {
	l.undo = nil
	l.redo = nil
}
