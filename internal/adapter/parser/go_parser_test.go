package parser

import (
	"testing"

	"doccov/internal/domain"
)

const sampleSource = `// Package sample demonstrates outline extraction.
package sample

// Buffer holds bytes.
type Buffer struct {
	data []byte
}

// Len reports the buffer length.
func (b *Buffer) Len() int {
	return len(b.data)
}

func (b *Buffer) reset() {
	b.data = nil
}

// Grow is a documented free function.
func Grow(b *Buffer, n int) {
}

func helper() {}

type reader interface {
	Read(p []byte) (int, error)
}
`

func parseSample(t *testing.T) []domain.Unit {
	t.Helper()
	units, err := NewGoParser().Parse("sample.go", sampleSource)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return units
}

func findUnit(t *testing.T, units []domain.Unit, name string) domain.Unit {
	t.Helper()
	for _, u := range units {
		if u.QualifiedName == name {
			return u
		}
	}
	t.Fatalf("unit %s not found in outline", name)
	return domain.Unit{}
}

func TestParseModuleUnit(t *testing.T) {
	units := parseSample(t)

	if len(units) == 0 {
		t.Fatal("empty outline")
	}
	mod := units[0]
	if mod.Kind != domain.KindModule {
		t.Errorf("expected first unit to be the module, got %s", mod.Kind)
	}
	if mod.QualifiedName != "sample" {
		t.Errorf("expected module named sample, got %s", mod.QualifiedName)
	}
	if !mod.Documented() {
		t.Error("expected module doc comment to be captured")
	}
	if mod.Parent != "" {
		t.Errorf("module must be the root, got parent %s", mod.Parent)
	}
}

func TestParseQualifiedNamesAndParents(t *testing.T) {
	units := parseSample(t)

	buffer := findUnit(t, units, "sample.Buffer")
	if buffer.Kind != domain.KindClass || buffer.Parent != "sample" {
		t.Errorf("unexpected type unit: %+v", buffer)
	}

	lenMethod := findUnit(t, units, "sample.Buffer.Len")
	if lenMethod.Kind != domain.KindMethod {
		t.Errorf("expected method kind, got %s", lenMethod.Kind)
	}
	if lenMethod.Parent != "sample.Buffer" {
		t.Errorf("expected method parented under its receiver type, got %s", lenMethod.Parent)
	}

	grow := findUnit(t, units, "sample.Grow")
	if grow.Kind != domain.KindFunction || grow.Parent != "sample" {
		t.Errorf("unexpected function unit: %+v", grow)
	}
}

func TestParseDocAndSignature(t *testing.T) {
	units := parseSample(t)

	lenMethod := findUnit(t, units, "sample.Buffer.Len")
	if !lenMethod.Documented() {
		t.Error("expected Len to be documented")
	}
	if lenMethod.Signature != "func (b *Buffer) Len() int" {
		t.Errorf("unexpected signature: %q", lenMethod.Signature)
	}

	reset := findUnit(t, units, "sample.Buffer.reset")
	if reset.Documented() {
		t.Error("expected reset to be undocumented")
	}

	helper := findUnit(t, units, "sample.helper")
	if helper.Documented() {
		t.Error("expected helper to be undocumented")
	}

	reader := findUnit(t, units, "sample.reader")
	if reader.Signature != "type reader interface" {
		t.Errorf("unexpected type signature: %q", reader.Signature)
	}
}

func TestParseSourceOrder(t *testing.T) {
	units := parseSample(t)

	want := []string{
		"sample",
		"sample.Buffer",
		"sample.Buffer.Len",
		"sample.Buffer.reset",
		"sample.Grow",
		"sample.helper",
		"sample.reader",
	}
	if len(units) != len(want) {
		t.Fatalf("expected %d units, got %d", len(want), len(units))
	}
	for i, name := range want {
		if units[i].QualifiedName != name {
			t.Errorf("units[%d]: expected %s, got %s", i, name, units[i].QualifiedName)
		}
	}
}

func TestParseMethodWithExternalReceiver(t *testing.T) {
	src := `package ext

func (w Wrapper) Do() {}
`
	units, err := NewGoParser().Parse("ext.go", src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	method := findUnit(t, units, "ext.Wrapper.Do")
	// The receiver type is declared elsewhere, so the method falls back
	// to the module as its parent to keep the outline self-contained.
	if method.Parent != "ext" {
		t.Errorf("expected module parent fallback, got %s", method.Parent)
	}
}

func TestParseRepeatedInitFunctions(t *testing.T) {
	src := `package sample

func init() {}

// init wires the second stage.
func init() {}

func _() {}

func _() {}
`
	units, err := NewGoParser().Parse("sample.go", src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	want := []string{
		"sample",
		"sample.init",
		"sample.init.1",
		"sample._",
		"sample._.1",
	}
	if len(units) != len(want) {
		t.Fatalf("expected %d units, got %d", len(want), len(units))
	}
	seen := make(map[string]bool)
	for i, name := range want {
		if units[i].QualifiedName != name {
			t.Errorf("units[%d]: expected %s, got %s", i, name, units[i].QualifiedName)
		}
		if seen[units[i].QualifiedName] {
			t.Errorf("duplicate qualified name %s", units[i].QualifiedName)
		}
		seen[units[i].QualifiedName] = true
	}

	second := findUnit(t, units, "sample.init.1")
	if !second.Documented() {
		t.Error("expected doc comment to survive disambiguation")
	}
	if second.Parent != "sample" {
		t.Errorf("expected module parent, got %s", second.Parent)
	}
}

func TestParseInvalidSource(t *testing.T) {
	if _, err := NewGoParser().Parse("bad.go", "package {{{"); err == nil {
		t.Fatal("expected parse error")
	}
}
