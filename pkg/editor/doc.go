// Package editor ties a version package, its undo log, and a modified
// flag together into a single editing session. Every model mutation goes
// through the Document API so its inverse lands on the undo stack;
// version lifecycle operations bypass the log on purpose and are not
// undoable. The modified flag moves one way: any edit, undo, or redo
// raises it, and only a successful save clears it.
package editor
