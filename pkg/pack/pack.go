package pack

import (
	"sort"

	"go.uber.org/zap"

	"github.com/mompack/mompack/pkg/model"
)

// Package directory layout names. The two extensions are exported for
// callers that derive package names from paths.
const (
	PackageExt = ".xcdatamodeld"
	VersionExt = ".xcdatamodel"

	contentsFile = "contents"
	sidecarFile  = ".xccurrentversion"
)

// Package holds every version of a schema document plus the name of the
// current one. The package always retains at least one version, and the
// current pointer always names an existing version.
//
// Package is not safe for concurrent use; callers serialize access.
type Package struct {
	name     string
	versions map[string]*model.Model
	current  string
	log      *zap.SugaredLogger
}

// New creates a fresh package with a single empty version named after the
// package itself.
func New(name string) *Package {
	p := &Package{
		name:     name,
		versions: map[string]*model.Model{name: model.New(name)},
		log:      zap.NewNop().Sugar(),
	}
	p.setCurrent(name)
	return p
}

// Name returns the package name, without the .xcdatamodeld suffix.
func (p *Package) Name() string {
	return p.name
}

// VersionNames returns all version names in lexicographic order.
func (p *Package) VersionNames() []string {
	names := make([]string, 0, len(p.versions))
	for name := range p.versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CurrentVersion returns the name of the current version.
func (p *Package) CurrentVersion() string {
	return p.current
}

// CurrentModel returns the Model of the current version.
func (p *Package) CurrentModel() *model.Model {
	return p.versions[p.current]
}

// Version returns the Model stored under the given version name.
func (p *Package) Version(name string) (*model.Model, bool) {
	m, ok := p.versions[name]
	return m, ok
}

// SwitchTo makes the named version current and reports whether it did.
// An unknown name is a no-op, not an error.
func (p *Package) SwitchTo(name string) bool {
	if _, ok := p.versions[name]; !ok {
		return false
	}
	p.setCurrent(name)
	return true
}

// CreateVersion deep-copies a source version under a new name, inserts
// it, and switches to it. The source is the current version unless
// basedOn names another one. Returns ErrVersionExists if name is already
// taken and ErrVersionNotFound if basedOn is unknown.
//
// The copy keeps the source's object ids: ids are never compared across
// versions, so fresh ones would buy nothing.
func (p *Package) CreateVersion(name, basedOn string) (*model.Model, error) {
	if _, ok := p.versions[name]; ok {
		return nil, ErrVersionExists
	}
	source := p.versions[p.current]
	if basedOn != "" {
		src, ok := p.versions[basedOn]
		if !ok {
			return nil, ErrVersionNotFound
		}
		source = src
	}

	clone := source.Clone()
	clone.Name = name
	p.versions[name] = clone
	p.setCurrent(name)
	return clone, nil
}

// RenameVersion moves a version to a new name, updating the Model's own
// name and the current pointer when needed. Returns ErrVersionNotFound if
// old is unknown and ErrVersionExists if new is already taken.
func (p *Package) RenameVersion(old, new string) error {
	m, ok := p.versions[old]
	if !ok {
		return ErrVersionNotFound
	}
	if _, ok := p.versions[new]; ok {
		return ErrVersionExists
	}

	delete(p.versions, old)
	m.Name = new
	p.versions[new] = m
	if p.current == old {
		p.current = new
	}
	return nil
}

// DeleteVersion removes a version. Returns ErrVersionNotFound if name is
// unknown and ErrLastVersion if it is the only one left. When the current
// version is deleted, the lexicographically first remaining version
// becomes current.
func (p *Package) DeleteVersion(name string) error {
	if _, ok := p.versions[name]; !ok {
		return ErrVersionNotFound
	}
	if len(p.versions) == 1 {
		return ErrLastVersion
	}

	delete(p.versions, name)
	if p.current == name {
		p.setCurrent(p.VersionNames()[0])
	}
	return nil
}

// setCurrent moves the current pointer and keeps each Model's IsCurrent
// flag in sync with it.
func (p *Package) setCurrent(name string) {
	p.current = name
	for n, m := range p.versions {
		m.IsCurrent = n == name
	}
}
