package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteMermaid writes the decompositions as a Mermaid graph, one
// subgraph per normal form with a node per relation.
func WriteMermaid(w io.Writer, a *Analysis) error {
	if a.Result == nil {
		return fmt.Errorf("no decomposition result to render")
	}

	fmt.Fprintln(w, "graph TD")

	writeSubgraph(w, mermaidID(a.Schema.Name)+"_3nf", a.Result.ThreeNF)
	fmt.Fprintln(w)
	writeSubgraph(w, mermaidID(a.Schema.Name)+"_bcnf", a.Result.BCNF)

	return nil
}

func writeSubgraph(w io.Writer, name string, rels [][]string) {
	fmt.Fprintf(w, "    subgraph %s\n", name)
	for i, rel := range rels {
		fmt.Fprintf(w, "        %s_%d[\"%s\"]\n", name, i+1, strings.Join(rel, ", "))
	}
	fmt.Fprintln(w, "    end")
}

// mermaidID converts a relation name to a Mermaid-safe node ID.
func mermaidID(name string) string {
	id := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
	if id == "" {
		id = "R"
	}
	return id
}
