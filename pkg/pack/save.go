package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mompack/mompack/pkg/codec"
)

// Save writes the whole package to dir, replacing whatever was there.
// The write is all-or-nothing: every version is encoded in memory first,
// so an encode failure reports the offending version and leaves the disk
// untouched, and the encoded package is staged in a sibling directory and
// swapped into place so a crash mid-write never leaves a half-written
// package at dir.
func (p *Package) Save(dir string) error {
	encoded := make(map[string][]byte, len(p.versions))
	for _, name := range p.VersionNames() {
		data, err := codec.Encode(p.versions[name])
		if err != nil {
			return fmt.Errorf("encoding version %q: %w", name, err)
		}
		encoded[name] = data
	}
	sidecar, err := encodeSidecar(p.current)
	if err != nil {
		return err
	}

	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("creating package parent directory: %w", err)
	}
	stage, err := os.MkdirTemp(parent, ".xcdatamodeld-*.tmp")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	// MkdirTemp creates 0700; the final package should be world-readable.
	if err := os.Chmod(stage, 0755); err != nil {
		os.RemoveAll(stage)
		return fmt.Errorf("creating staging directory: %w", err)
	}

	for name, data := range encoded {
		versionDir := filepath.Join(stage, name+VersionExt)
		if err := os.MkdirAll(versionDir, 0755); err != nil {
			os.RemoveAll(stage)
			return fmt.Errorf("staging version %q: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(versionDir, contentsFile), data, 0644); err != nil {
			os.RemoveAll(stage)
			return fmt.Errorf("staging version %q: %w", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(stage, sidecarFile), sidecar, 0644); err != nil {
		os.RemoveAll(stage)
		return fmt.Errorf("staging current version marker: %w", err)
	}

	return swapInPlace(stage, dir)
}

// swapInPlace moves the staged package to its final path. An existing
// package is parked next to the target until the swap lands, then
// discarded; on failure it is restored.
func swapInPlace(stage, dir string) error {
	old := stage + ".old"
	hadOld := false
	if _, err := os.Stat(dir); err == nil {
		if err := os.Rename(dir, old); err != nil {
			os.RemoveAll(stage)
			return fmt.Errorf("parking previous package: %w", err)
		}
		hadOld = true
	}
	if err := os.Rename(stage, dir); err != nil {
		if hadOld {
			// Best effort: put the previous package back.
			_ = os.Rename(old, dir)
		}
		os.RemoveAll(stage)
		return fmt.Errorf("committing package: %w", err)
	}
	if hadOld {
		os.RemoveAll(old)
	}
	return nil
}
