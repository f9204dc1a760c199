package docgen

import (
	"fmt"
	"strings"

	"doccov/internal/domain"
)

// Skeleton styles. godoc targets Go sources; the docstring styles are
// for outlines fed in from other languages.
const (
	StyleGodoc  = "godoc"
	StyleGoogle = "google"
	StyleNumpy  = "numpy"
	StyleRest   = "rest"
)

// Skeleton returns a baseline documentation draft for a flagged unit,
// to be filled in by hand or replaced by an LLM draft.
func Skeleton(u domain.Unit, style string) string {
	name := shortName(u.QualifiedName)

	switch strings.ToLower(style) {
	case StyleGoogle:
		return fmt.Sprintf("\"\"\"\n%s %s.\n\nArgs:\n    TODO: Describe parameters.\n\nReturns:\n    TODO: Describe return value.\n\"\"\"\n", name, u.Kind)
	case StyleNumpy:
		return fmt.Sprintf("\"\"\"\n%s %s.\n\nParameters\n----------\nTODO\n    Describe parameters.\n\nReturns\n-------\nTODO\n    Describe return value.\n\"\"\"\n", name, u.Kind)
	case StyleRest:
		return fmt.Sprintf("\"\"\"\n%s %s.\n\n:param TODO: Describe parameters\n:return: Describe return value\n\"\"\"\n", name, u.Kind)
	default:
		return godocSkeleton(u, name)
	}
}

func godocSkeleton(u domain.Unit, name string) string {
	switch u.Kind {
	case domain.KindModule:
		return fmt.Sprintf("// Package %s provides ...\n", name)
	case domain.KindClass:
		return fmt.Sprintf("// %s is a ...\n", name)
	default:
		return fmt.Sprintf("// %s ...\n", name)
	}
}

// shortName returns the last segment of a dotted qualified name.
func shortName(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
