package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/mompack/mompack/pkg/codec"
	"github.com/mompack/mompack/pkg/model"
)

// Load reads a .xcdatamodeld package directory. A version that fails to
// decode is logged and skipped; only an unreadable package directory
// fails the load. A package with zero decodable versions comes back with
// a single synthesized empty version named after the package.
//
// The current version comes from the .xccurrentversion marker. A missing
// marker, an unreadable one, or one naming an unknown version falls back
// to the lexicographically first version.
//
// A nil logger disables logging.
func Load(dir string, logger *zap.SugaredLogger) (*Package, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading package %s: %w", dir, err)
	}

	name := strings.TrimSuffix(filepath.Base(dir), PackageExt)
	p := &Package{
		name:     name,
		versions: make(map[string]*model.Model),
		log:      logger,
	}

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), VersionExt) {
			continue
		}
		versionName := strings.TrimSuffix(entry.Name(), VersionExt)
		contentsPath := filepath.Join(dir, entry.Name(), contentsFile)

		data, err := os.ReadFile(contentsPath)
		if err != nil {
			logger.Warnw("skipping unreadable version", "package", name, "version", versionName, "error", err)
			continue
		}
		m, err := codec.Decode(data)
		if err != nil {
			logger.Warnw("skipping undecodable version", "package", name, "version", versionName, "error", err)
			continue
		}
		// The directory name wins over whatever the document claims.
		m.Name = versionName
		p.versions[versionName] = m
	}

	if len(p.versions) == 0 {
		logger.Warnw("package has no decodable versions, starting empty", "package", name)
		p.versions[name] = model.New(name)
	}

	p.setCurrent(p.loadCurrentName(dir))
	return p, nil
}

// loadCurrentName resolves the current version name from the sidecar,
// falling back to the lexicographically first version.
func (p *Package) loadCurrentName(dir string) string {
	fallback := p.VersionNames()[0]

	data, err := os.ReadFile(filepath.Join(dir, sidecarFile))
	if err != nil {
		if !os.IsNotExist(err) {
			p.log.Warnw("unreadable current version marker", "package", p.name, "error", err)
		}
		return fallback
	}
	current, err := decodeSidecar(data)
	if err != nil {
		p.log.Warnw("unparseable current version marker", "package", p.name, "error", err)
		return fallback
	}
	if _, ok := p.versions[current]; !ok {
		p.log.Warnw("current version marker names unknown version",
			"package", p.name, "version", current, "fallback", fallback)
		return fallback
	}
	return current
}
