// Package history records reversible edits to a schema document as
// reified commands and replays them for unbounded linear undo/redo.
//
// Commands address their targets by object id and resolve them at
// execution time, never through captured pointers into the document
// tree, so interleaved undo and redo of unrelated edits cannot corrupt
// each other. A command whose target has gone missing executes as a
// silent no-op whose inverse is also a no-op, keeping the two stacks
// balanced under every interleaving.
package history
