// Search command fuzzy-matches names across a version.
package main

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/mompack/mompack/pkg/model"
)

var searchVersion string

// searchHit is one matched name with its location in the model.
type searchHit struct {
	Kind     string `json:"kind"`
	Path     string `json:"path"`
	Name     string `json:"name"`
	Distance int    `json:"distance"`
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search names in a version",
	Long: `Search fuzzy-matches the query against every entity, attribute,
relationship, fetched property, and configuration name in a version and
prints the hits ranked by edit distance.

Example:
  mompack search person
  mompack search addr --version Model_v2 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchVersion, "version", "", "version to search (default: current)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	doc, err := openDocument()
	if err != nil {
		return err
	}
	m, err := resolveModel(doc, searchVersion)
	if err != nil {
		return err
	}

	hits := searchModel(m, query)

	if flagJSON {
		return printJSON(hits)
	}

	if len(hits) == 0 {
		fmt.Println("No matches")
		return nil
	}
	for _, hit := range hits {
		fmt.Printf("%-16s %s\n", hit.Kind, hit.Path)
	}
	return nil
}

// searchModel collects every name in the model, fuzzy-ranks it against
// the query, and returns the hits ordered by distance.
func searchModel(m *model.Model, query string) []searchHit {
	var candidates []searchHit
	var names []string
	add := func(kind, path, name string) {
		candidates = append(candidates, searchHit{Kind: kind, Path: path, Name: name})
		names = append(names, name)
	}

	for _, e := range m.Entities {
		add("entity", e.Name, e.Name)
		for _, a := range e.Attributes {
			add("attribute", e.Name+"/"+a.Name, a.Name)
		}
		for _, r := range e.Relationships {
			add("relationship", e.Name+"/"+r.Name, r.Name)
		}
		for _, fp := range e.FetchedProperties {
			add("fetched property", e.Name+"/"+fp.Name, fp.Name)
		}
	}
	for _, c := range m.Configurations {
		add("configuration", c.Name, c.Name)
	}

	ranks := fuzzy.RankFindFold(query, names)
	sort.Sort(ranks)

	hits := make([]searchHit, 0, len(ranks))
	for _, r := range ranks {
		hit := candidates[r.OriginalIndex]
		hit.Distance = r.Distance
		hits = append(hits, hit)
	}
	return hits
}
