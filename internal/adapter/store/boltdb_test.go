package store

import (
	"path/filepath"
	"testing"
	"time"

	"doccov/internal/domain"
	"doccov/internal/port"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	st, err := NewBoltStore(filepath.Join(t.TempDir(), "scan.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestFileRoundtrip(t *testing.T) {
	st := newTestStore(t)

	meta := port.FileMeta{Path: "pkg/a.go", ModTime: 1700000000, Hash: "abcd"}
	if err := st.PutFile(meta); err != nil {
		t.Fatal(err)
	}

	got, found, err := st.GetFile("pkg/a.go")
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected file to be found")
	}
	if got != meta {
		t.Errorf("expected %+v, got %+v", meta, got)
	}

	_, found, err = st.GetFile("missing.go")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("expected missing file to not be found")
	}
}

func TestAnalysisRoundtrip(t *testing.T) {
	st := newTestStore(t)

	outline := []domain.Unit{
		{QualifiedName: "m", Kind: domain.KindModule, StartLine: 1, EndLine: 10},
		{QualifiedName: "m.f", Kind: domain.KindFunction, Parent: "m", StartLine: 3, EndLine: 5},
	}
	report := domain.Report{
		Total: 2, Undocumented: 2, Ratio: 0,
		Flagged: outline,
	}

	if err := st.PutAnalysis("pkg/a.go", outline, report); err != nil {
		t.Fatal(err)
	}

	gotOutline, gotReport, err := st.GetAnalysis("pkg/a.go")
	if err != nil {
		t.Fatal(err)
	}
	if len(gotOutline) != 2 || gotOutline[1].QualifiedName != "m.f" {
		t.Errorf("unexpected outline: %+v", gotOutline)
	}
	if gotReport.Total != 2 || len(gotReport.Flagged) != 2 {
		t.Errorf("unexpected report: %+v", gotReport)
	}

	if _, _, err := st.GetAnalysis("missing.go"); err == nil {
		t.Error("expected error for missing analysis")
	}
}

func TestDeleteFile(t *testing.T) {
	st := newTestStore(t)

	if err := st.PutFile(port.FileMeta{Path: "a.go", ModTime: 1}); err != nil {
		t.Fatal(err)
	}
	if err := st.PutAnalysis("a.go", nil, domain.Report{Ratio: 1.0}); err != nil {
		t.Fatal(err)
	}

	if err := st.DeleteFile("a.go"); err != nil {
		t.Fatal(err)
	}

	_, found, err := st.GetFile("a.go")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("expected file meta deleted")
	}
	if _, _, err := st.GetAnalysis("a.go"); err == nil {
		t.Error("expected analysis deleted")
	}
}

func TestListFiles(t *testing.T) {
	st := newTestStore(t)

	for _, path := range []string{"b.go", "a.go"} {
		if err := st.PutFile(port.FileMeta{Path: path, ModTime: 1}); err != nil {
			t.Fatal(err)
		}
	}

	files, err := st.ListFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
}

func TestClear(t *testing.T) {
	st := newTestStore(t)

	if err := st.PutFile(port.FileMeta{Path: "a.go", ModTime: 1}); err != nil {
		t.Fatal(err)
	}
	if err := st.Clear(); err != nil {
		t.Fatal(err)
	}

	files, err := st.ListFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty store after clear, got %d files", len(files))
	}
}

func TestNeedsRebuild(t *testing.T) {
	st := newTestStore(t)

	// Fresh store gets stamped with the current version.
	rebuild, err := st.NeedsRebuild()
	if err != nil {
		t.Fatal(err)
	}
	if rebuild {
		t.Error("fresh store must not need a rebuild")
	}

	rebuild, err = st.NeedsRebuild()
	if err != nil {
		t.Fatal(err)
	}
	if rebuild {
		t.Error("stamped store must not need a rebuild")
	}
}

func TestLastScan(t *testing.T) {
	st := newTestStore(t)

	_, found, err := st.LastScan()
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("expected no last scan on fresh store")
	}

	now := time.Now()
	if err := st.SetLastScan(now); err != nil {
		t.Fatal(err)
	}

	got, found, err := st.LastScan()
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected last scan to be recorded")
	}
	if got.Unix() != now.Unix() {
		t.Errorf("expected %d, got %d", now.Unix(), got.Unix())
	}
}
