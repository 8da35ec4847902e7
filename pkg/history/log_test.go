package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mompack/mompack/pkg/model"
)

func TestLogStartsEmpty(t *testing.T) {
	log := NewLog()
	assert.False(t, log.CanUndo())
	assert.False(t, log.CanRedo())
	assert.Zero(t, log.Depth())
	assert.False(t, log.Undo(), "undo on an empty log should report false")
	assert.False(t, log.Redo(), "redo on an empty log should report false")
}

func TestLogDoUndoRedo(t *testing.T) {
	d := newDoc()
	log := NewLog()

	log.Do(FieldSet(d.m, d.e.ID, FieldName, "Tome"))
	assert.Equal(t, "Tome", d.e.Name)
	assert.True(t, log.CanUndo())
	assert.False(t, log.CanRedo())
	assert.Equal(t, 1, log.Depth())

	require.True(t, log.Undo())
	assert.Equal(t, "Book", d.e.Name)
	assert.False(t, log.CanUndo())
	assert.True(t, log.CanRedo())

	require.True(t, log.Redo())
	assert.Equal(t, "Tome", d.e.Name)
	assert.True(t, log.CanUndo())
	assert.False(t, log.CanRedo())
}

func TestLogDoClearsRedo(t *testing.T) {
	d := newDoc()
	log := NewLog()

	log.Do(FieldSet(d.m, d.e.ID, FieldName, "Tome"))
	require.True(t, log.Undo())
	require.True(t, log.CanRedo())

	log.Do(FieldSet(d.m, d.e.ID, FieldClassName, "BookMO"))
	assert.False(t, log.CanRedo(), "a fresh command should discard the redo stack")
	assert.Equal(t, "Book", d.e.Name, "the discarded branch should stay undone")
	assert.Equal(t, "BookMO", d.e.ClassName)
}

func TestLogUndoAllRedoAllConverges(t *testing.T) {
	d := newDoc()
	pristine := d.m.Clone()
	log := NewLog()

	author := &model.Entity{ID: "ent-author", Name: "Author"}
	log.Do(Insert(d.m, d.m.ID, CollectionEntities, author, author.ID, 1))
	log.Do(FieldSet(d.m, d.a.ID, FieldIsOptional, false))
	log.Do(FieldSet(d.m, d.r.ID, FieldIsToMany, true))
	log.Do(Remove(d.m, d.e.ID, CollectionFetchedProperties, d.fp.ID))
	log.Do(FieldSet(d.m, d.m.ID, FieldName, "Shelf"))
	edited := d.m.Clone()

	for log.CanUndo() {
		require.True(t, log.Undo())
	}
	assert.Equal(t, pristine, d.m, "undoing everything should restore the initial document")

	for log.CanRedo() {
		require.True(t, log.Redo())
	}
	assert.Equal(t, edited, d.m, "redoing everything should restore the edited document")

	// A second full cycle lands on the same states.
	for log.CanUndo() {
		require.True(t, log.Undo())
	}
	assert.Equal(t, pristine, d.m)
	for log.CanRedo() {
		require.True(t, log.Redo())
	}
	assert.Equal(t, edited, d.m)
}

func TestLogAlternatingUndoRedoIsStable(t *testing.T) {
	d := newDoc()
	log := NewLog()
	log.Do(FieldSet(d.m, d.a.ID, FieldName, "heading"))

	for i := 0; i < 4; i++ {
		require.True(t, log.Undo())
		assert.Equal(t, "title", d.a.Name)
		require.True(t, log.Redo())
		assert.Equal(t, "heading", d.a.Name)
	}
	assert.Equal(t, 1, log.Depth(), "cycling should not grow the stacks")
}

func TestLogStacksStayBalancedThroughNoOps(t *testing.T) {
	d := newDoc()
	log := NewLog()

	log.Do(Remove(d.m, d.e.ID, CollectionAttributes, "no-such-id"))
	log.Do(FieldSet(d.m, "no-such-id", FieldName, "Ghost"))
	assert.Equal(t, 2, log.Depth())

	require.True(t, log.Undo())
	require.True(t, log.Undo())
	assert.False(t, log.CanUndo())
	require.True(t, log.Redo())
	require.True(t, log.Redo())
	assert.False(t, log.CanRedo())
	assert.Len(t, d.e.Attributes, 1, "no-ops should never touch the document")
}

func TestLogClear(t *testing.T) {
	d := newDoc()
	log := NewLog()
	log.Do(FieldSet(d.m, d.e.ID, FieldName, "Tome"))
	require.True(t, log.Undo())
	log.Do(FieldSet(d.m, d.e.ID, FieldName, "Volume"))
	require.True(t, log.Undo())

	log.Clear()
	assert.False(t, log.CanUndo())
	assert.False(t, log.CanRedo())
	assert.Zero(t, log.Depth())
	assert.Equal(t, "Book", d.e.Name, "clear drops the stacks without touching the document")
}
