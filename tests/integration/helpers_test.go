// Shared helpers for the library-level lifecycle tests.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mompack/mompack/pkg/editor"
)

// mustOpen loads a package directory into a document or fails the test.
func mustOpen(t *testing.T, dir string) *editor.Document {
	t.Helper()
	doc, err := editor.Open(dir, nil)
	if err != nil {
		t.Fatalf("Open(%s): %v", dir, err)
	}
	return doc
}

// mustSaveAs writes the document to dir or fails the test.
func mustSaveAs(t *testing.T, doc *editor.Document, dir string) {
	t.Helper()
	if err := doc.SaveAs(dir); err != nil {
		t.Fatalf("SaveAs(%s): %v", dir, err)
	}
}

// mustSave writes the document back to its own path or fails the test.
func mustSave(t *testing.T, doc *editor.Document) {
	t.Helper()
	if err := doc.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

// mustCreateVersion adds a version or fails the test.
func mustCreateVersion(t *testing.T, doc *editor.Document, name, basedOn string) {
	t.Helper()
	if _, err := doc.CreateVersion(name, basedOn); err != nil {
		t.Fatalf("CreateVersion(%q): %v", name, err)
	}
}

// writeRawVersion plants a version directory with the given contents
// bytes inside a package directory.
func writeRawVersion(t *testing.T, pkgDir, versionName, contents string) {
	t.Helper()
	versionDir := filepath.Join(pkgDir, versionName+".xcdatamodel")
	if err := os.MkdirAll(versionDir, 0o755); err != nil {
		t.Fatalf("creating version dir %s: %v", versionDir, err)
	}
	if err := os.WriteFile(filepath.Join(versionDir, "contents"), []byte(contents), 0o644); err != nil {
		t.Fatalf("writing contents for %s: %v", versionName, err)
	}
}

// writeRawSidecar plants a handwritten .xccurrentversion plist naming
// the given version.
func writeRawSidecar(t *testing.T, pkgDir, versionName string) {
	t.Helper()
	payload := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>_XCCurrentVersionName</key>
	<string>` + versionName + `.xcdatamodel</string>
</dict>
</plist>
`
	if err := os.WriteFile(filepath.Join(pkgDir, ".xccurrentversion"), []byte(payload), 0o644); err != nil {
		t.Fatalf("writing sidecar: %v", err)
	}
}

// removeSidecar deletes the .xccurrentversion marker from a package
// directory.
func removeSidecar(t *testing.T, pkgDir string) {
	t.Helper()
	if err := os.Remove(filepath.Join(pkgDir, ".xccurrentversion")); err != nil {
		t.Fatalf("removing sidecar: %v", err)
	}
}
