// Init command creates a fresh package on disk.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mompack/mompack/pkg/editor"
	"github.com/mompack/mompack/pkg/pack"
)

var initCmd = &cobra.Command{
	Use:   "init <package-dir>",
	Short: "Create a new model package",
	Long: `Init creates a new single-version model package at the given directory.
The package name is the directory base name without its extension.

Refuses to overwrite an existing path.

Example:
  mompack init Library.xcdatamodeld
  mompack init /tmp/Scratch.xcdatamodeld`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := args[0]

	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("%s already exists", dir)
	} else if !os.IsNotExist(err) {
		return sysErrf("stat %s: %w", dir, err)
	}

	doc := editor.New(packageName(dir))
	if err := doc.SaveAs(dir); err != nil {
		return sysErrf("create %s: %w", dir, err)
	}

	fmt.Println("Created package", dir)
	fmt.Println("  version:", doc.CurrentVersion())
	return nil
}

// packageName derives a package name from the target directory: base name
// with the conventional extension stripped.
func packageName(dir string) string {
	return strings.TrimSuffix(filepath.Base(dir), pack.PackageExt)
}
