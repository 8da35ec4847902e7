// Check command prints the validation report for a version.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkVersion string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report model problems",
	Long: `Check validates a version and prints its findings: duplicate names,
empty names, dangling name references, and index groups naming unknown
attributes. Findings are informational; the package stays editable and
saveable regardless.

Exits 0 whether or not findings exist.

Example:
  mompack check
  mompack check --version Model_v2 --json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkVersion, "version", "", "version to check (default: current)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	doc, err := openDocument()
	if err != nil {
		return err
	}
	m, err := resolveModel(doc, checkVersion)
	if err != nil {
		return err
	}

	findings := m.Validate()

	if flagJSON {
		type row struct {
			Kind    string `json:"kind"`
			Path    string `json:"path"`
			Message string `json:"message"`
		}
		rows := make([]row, 0, len(findings))
		for _, f := range findings {
			rows = append(rows, row{Kind: f.Kind, Path: f.Path, Message: f.Message})
		}
		return printJSON(rows)
	}

	if len(findings) == 0 {
		fmt.Println("No problems found")
		return nil
	}
	for _, f := range findings {
		fmt.Printf("%s  %s: %s\n", f.Kind, f.Path, f.Message)
	}
	fmt.Printf("%d problem(s) found\n", len(findings))
	return nil
}
