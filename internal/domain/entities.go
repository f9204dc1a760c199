package domain

import (
	"strings"
	"time"
)

// Kind discriminates the variants of a documentable unit.
type Kind string

const (
	KindModule   Kind = "module"
	KindClass    Kind = "class"
	KindFunction Kind = "function"
	KindMethod   Kind = "method"
)

// Valid reports whether k is one of the known unit kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindModule, KindClass, KindFunction, KindMethod:
		return true
	}
	return false
}

// Unit is one documentable entity extracted from a source file.
// Units are created once per parse and never mutated afterwards.
type Unit struct {
	QualifiedName string `json:"qualified_name" yaml:"qualified_name"`
	Kind          Kind   `json:"kind" yaml:"kind"`
	Parent        string `json:"parent,omitempty" yaml:"parent,omitempty"`
	StartLine     int    `json:"start_line" yaml:"start_line"`
	EndLine       int    `json:"end_line" yaml:"end_line"`
	Doc           string `json:"doc,omitempty" yaml:"doc,omitempty"`
	Signature     string `json:"signature,omitempty" yaml:"signature,omitempty"`
}

// Documented reports whether the unit carries a non-empty docstring.
// A docstring that trims to nothing counts as absent.
func (u Unit) Documented() bool {
	return strings.TrimSpace(u.Doc) != ""
}

// LOC returns the source line span of the unit.
func (u Unit) LOC() int {
	if u.EndLine < u.StartLine {
		return 0
	}
	return u.EndLine - u.StartLine + 1
}

// Report is the coverage result for one outline.
// Flagged preserves source appearance order.
type Report struct {
	Total        int     `json:"total" yaml:"total"`
	Documented   int     `json:"documented" yaml:"documented"`
	Undocumented int     `json:"undocumented" yaml:"undocumented"`
	Ratio        float64 `json:"ratio" yaml:"ratio"`
	Flagged      []Unit  `json:"flagged,omitempty" yaml:"flagged,omitempty"`
}

// Percent returns the coverage ratio as a percentage.
func (r Report) Percent() float64 {
	return r.Ratio * 100
}

// FileReport pairs one analyzed file with its coverage report.
type FileReport struct {
	Path   string `json:"path" yaml:"path"`
	Report Report `json:"report" yaml:"report"`
}

// ProjectReport aggregates file reports for one scan root.
type ProjectReport struct {
	Root        string       `json:"root" yaml:"root"`
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
	Files       []FileReport `json:"files" yaml:"files"`
	Totals      Report       `json:"totals" yaml:"totals"`
}
