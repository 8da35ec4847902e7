// Dump command prints a version's contents document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mompack/mompack/pkg/codec"
)

var dumpVersion string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print a version's contents XML",
	Long: `Dump encodes a version to its on-disk contents document and writes it to
stdout.

Example:
  mompack dump
  mompack dump --version Model_v2 > contents.xml`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpVersion, "version", "", "version to dump (default: current)")
}

func runDump(cmd *cobra.Command, args []string) error {
	doc, err := openDocument()
	if err != nil {
		return err
	}
	m, err := resolveModel(doc, dumpVersion)
	if err != nil {
		return err
	}

	data, err := codec.Encode(m)
	if err != nil {
		return fmt.Errorf("encode %s: %w", m.Name, err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
