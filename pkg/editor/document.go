package editor

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mompack/mompack/pkg/history"
	"github.com/mompack/mompack/pkg/model"
	"github.com/mompack/mompack/pkg/pack"
)

// ErrNoPath is returned by Save on a document that has never been saved
// or opened from disk.
var ErrNoPath = errors.New("document has no save location")

// Document is one editing session over a version package. It is not safe
// for concurrent use; callers serialize access.
type Document struct {
	pack     *pack.Package
	log      *history.Log
	path     string // Package directory on disk; "" until saved or opened.
	modified bool
}

// New returns an in-memory document holding a fresh single-version
// package. The document has no save location until SaveAs.
func New(name string) *Document {
	return &Document{
		pack: pack.New(name),
		log:  history.NewLog(),
	}
}

// Open loads the package directory at dir into a new document. A nil
// logger suppresses the load-time warnings.
func Open(dir string, logger *zap.SugaredLogger) (*Document, error) {
	p, err := pack.Load(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	return &Document{
		pack: p,
		log:  history.NewLog(),
		path: dir,
	}, nil
}

// Name returns the package name.
func (d *Document) Name() string {
	return d.pack.Name()
}

// Path returns the package directory this document saves to, or "" for a
// document that has never touched disk.
func (d *Document) Path() string {
	return d.path
}

// Modified reports whether the document has unsaved changes. Undo never
// lowers the flag, even when it lands back on the saved state.
func (d *Document) Modified() bool {
	return d.modified
}

// Save writes the package back to the directory it was opened from or
// last saved to. Returns ErrNoPath for an unsaved document. A successful
// save clears the modified flag but keeps the undo log intact.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	return d.SaveAs(d.path)
}

// SaveAs writes the package to dir and makes dir the document's save
// location.
func (d *Document) SaveAs(dir string) error {
	if err := d.pack.Save(dir); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	d.path = dir
	d.modified = false
	return nil
}

// Model returns the current version's model.
func (d *Document) Model() *model.Model {
	return d.pack.CurrentModel()
}

// Version returns the named version's model and whether it exists.
func (d *Document) Version(name string) (*model.Model, bool) {
	return d.pack.Version(name)
}

// VersionNames returns all version names in lexicographic order.
func (d *Document) VersionNames() []string {
	return d.pack.VersionNames()
}

// CurrentVersion returns the current version's name.
func (d *Document) CurrentVersion() string {
	return d.pack.CurrentVersion()
}

// CreateVersion adds a version cloned from basedOn (current when "") and
// makes it current. Not undoable.
func (d *Document) CreateVersion(name, basedOn string) (*model.Model, error) {
	m, err := d.pack.CreateVersion(name, basedOn)
	if err != nil {
		return nil, err
	}
	d.modified = true
	return m, nil
}

// RenameVersion renames a version. Not undoable.
func (d *Document) RenameVersion(old, new string) error {
	if err := d.pack.RenameVersion(old, new); err != nil {
		return err
	}
	d.modified = true
	return nil
}

// DeleteVersion removes a version. Not undoable.
func (d *Document) DeleteVersion(name string) error {
	if err := d.pack.DeleteVersion(name); err != nil {
		return err
	}
	d.modified = true
	return nil
}

// SwitchTo makes the named version current and reports whether it exists.
// Switching to an unknown version is a no-op and leaves the modified flag
// alone.
func (d *Document) SwitchTo(name string) bool {
	if name == d.pack.CurrentVersion() {
		return d.pack.SwitchTo(name)
	}
	if !d.pack.SwitchTo(name) {
		return false
	}
	d.modified = true
	return true
}

// Undo reverts the most recent logged edit. Reports false when the log
// is empty. Undo counts as a change: the modified flag goes up, never
// down.
func (d *Document) Undo() bool {
	if !d.log.Undo() {
		return false
	}
	d.modified = true
	return true
}

// Redo reapplies the most recently undone edit. Reports false when there
// is nothing to redo.
func (d *Document) Redo() bool {
	if !d.log.Redo() {
		return false
	}
	d.modified = true
	return true
}

// CanUndo reports whether Undo would do anything.
func (d *Document) CanUndo() bool {
	return d.log.CanUndo()
}

// CanRedo reports whether Redo would do anything.
func (d *Document) CanRedo() bool {
	return d.log.CanRedo()
}

// do routes one command through the log and raises the modified flag.
func (d *Document) do(c history.Command) {
	d.log.Do(c)
	d.modified = true
}
