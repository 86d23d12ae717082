// Package report renders dependency analyses and decomposition results
// for human consumption.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/renjen/cse132a-hw3/internal/decompose"
	"github.com/renjen/cse132a-hw3/internal/fd"
	"github.com/renjen/cse132a-hw3/internal/input"
	"github.com/renjen/cse132a-hw3/internal/schema"
)

// Analysis summarizes the dependency structure of one schema.
type Analysis struct {
	Schema *schema.Schema
	Cover  []schema.FD
	Key    schema.AttrSet

	// Result holds the decompositions when requested; nil means the
	// renderer reports dependency structure only.
	Result *input.Result
}

// Analyze computes the reduced cover and one minimal key of s.
func Analyze(s *schema.Schema) *Analysis {
	cover := fd.ReduceCover(s.FDs)
	return &Analysis{
		Schema: s,
		Cover:  cover,
		Key:    fd.FindKey(s.Attributes, cover),
	}
}

// Decompose runs both decompositions of s and returns an analysis
// carrying their result.
func Decompose(s *schema.Schema) *Analysis {
	a := Analyze(s)
	a.Result = &input.Result{
		ThreeNF: decompose.ThreeNF(s.Attributes, s.FDs),
		BCNF:    decompose.BCNF(s.Attributes, s.FDs),
	}
	return a
}

// WriteText writes a text summary of the analysis to w.
func WriteText(w io.Writer, a *Analysis) error {
	s := a.Schema

	fmt.Fprintf(w, "Relation: %s\n", s.Name)
	fmt.Fprintf(w, "Attributes (%d): %s\n", len(s.Attributes), strings.Join(s.Attributes.Sorted(), ", "))

	fmt.Fprintf(w, "Functional dependencies: %d\n", len(s.FDs))
	for _, f := range s.FDs {
		fmt.Fprintf(w, "  %s\n", FormatFD(f))
	}

	fmt.Fprintf(w, "Reduced cover: %d\n", len(a.Cover))
	for _, f := range a.Cover {
		fmt.Fprintf(w, "  %s\n", FormatFD(f))
	}

	fmt.Fprintf(w, "Minimal key: %s\n", formatSet(a.Key))

	violations := bcnfViolations(s)
	if len(violations) > 0 {
		fmt.Fprintf(w, "FDs violating BCNF: %d\n", len(violations))
		for _, f := range violations {
			closure := fd.Closure(f.Left, s.FDs)
			fmt.Fprintf(w, "  %s (left closure %s)\n", FormatFD(f), formatSet(closure))
		}
	} else {
		fmt.Fprintln(w, "FDs violating BCNF: none")
	}

	if a.Result == nil {
		return nil
	}

	fmt.Fprintln(w)
	writeRelations(w, "3NF decomposition", a.Result.ThreeNF)
	writeRelations(w, "BCNF decomposition", a.Result.BCNF)
	return nil
}

// bcnfViolations returns the FDs whose left side is not a superkey of
// the full relation, in input order.
func bcnfViolations(s *schema.Schema) []schema.FD {
	var out []schema.FD
	for _, f := range s.FDs {
		if !s.Attributes.SubsetOf(fd.Closure(f.Left, s.FDs)) {
			out = append(out, f)
		}
	}
	return out
}

func writeRelations(w io.Writer, title string, rels [][]string) {
	fmt.Fprintf(w, "%s: %d relations\n", title, len(rels))
	for i, rel := range rels {
		fmt.Fprintf(w, "  %d. {%s}\n", i+1, strings.Join(rel, ", "))
	}
}

// FormatFD renders an FD as "A, B -> C".
func FormatFD(f schema.FD) string {
	return strings.Join(f.Left.Sorted(), ", ") + " -> " + f.Right
}

func formatSet(s schema.AttrSet) string {
	return "{" + strings.Join(s.Sorted(), ", ") + "}"
}
