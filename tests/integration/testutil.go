// Package integration provides end-to-end tests for mompack: the CLI
// binary driven through exec, and the library packages driven through
// their public API.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// mompackBin is the path to the built mompack binary.
	mompackBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with its output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetMompackBin sets the path to the mompack binary (called from TestMain).
func SetMompackBin(path string) {
	mompackBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment: its own config directory
// and a package path registered as default_package, so commands resolve
// the package the way a configured user would.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	PkgDir    string
}

// NewTestEnv creates a new isolated test environment. The package at
// PkgDir does not exist yet; tests create it with `mompack init`.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build mompack: %v", buildErr)
	}
	if mompackBin == "" {
		t.Fatal("mompack binary not built (mompackBin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	pkgDir := filepath.Join(tempDir, "Library.xcdatamodeld")

	env := &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
		PkgDir:    pkgDir,
	}
	env.WriteConfig("default_package: " + pkgDir + "\n")
	return env
}

// WriteConfig replaces the environment's config.yaml with the given
// content.
func (e *TestEnv) WriteConfig(content string) {
	e.t.Helper()
	if err := os.MkdirAll(e.ConfigDir, 0o755); err != nil {
		e.t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.ConfigDir, "config.yaml"), []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
}

// CmdResult holds the result of a mompack command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunMompack executes the mompack CLI with the given arguments.
func (e *TestEnv) RunMompack(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir}, args...)
	cmd := exec.Command(mompackBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run mompack: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunMompack executes the mompack CLI and fails the test if it
// returns non-zero.
func (e *TestEnv) MustRunMompack(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunMompack(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("mompack %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}
