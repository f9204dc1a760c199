package cache

import (
	"testing"
	"time"

	"doccov/internal/domain"
)

func sampleAnalysis() ([]domain.Unit, domain.Report) {
	outline := []domain.Unit{
		{QualifiedName: "m", Kind: domain.KindModule, Doc: "Package m."},
	}
	return outline, domain.Report{Total: 1, Documented: 1, Ratio: 1.0}
}

func TestCacheHit(t *testing.T) {
	c := NewReportCache(4, time.Minute)
	outline, report := sampleAnalysis()

	c.Put("hash1", outline, report)

	gotOutline, gotReport, ok := c.Get("hash1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(gotOutline) != 1 || gotOutline[0].QualifiedName != "m" {
		t.Errorf("unexpected outline: %+v", gotOutline)
	}
	if gotReport.Total != 1 || gotReport.Ratio != 1.0 {
		t.Errorf("unexpected report: %+v", gotReport)
	}
}

func TestCacheMiss(t *testing.T) {
	c := NewReportCache(4, time.Minute)
	if _, _, ok := c.Get("absent"); ok {
		t.Error("expected cache miss")
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := NewReportCache(4, time.Minute)
	outline, report := sampleAnalysis()

	c.Put("hash1", outline, report)
	c.Invalidate()

	if _, _, ok := c.Get("hash1"); ok {
		t.Error("expected miss after invalidation")
	}
	if c.Size() != 0 {
		t.Errorf("expected empty cache, got size %d", c.Size())
	}
}

func TestCacheEviction(t *testing.T) {
	c := NewReportCache(2, time.Minute)
	outline, report := sampleAnalysis()

	c.Put("h1", outline, report)
	c.Put("h2", outline, report)
	c.Put("h3", outline, report)

	if c.Size() != 2 {
		t.Errorf("expected size capped at 2, got %d", c.Size())
	}
	if _, _, ok := c.Get("h1"); ok {
		t.Error("expected oldest entry evicted")
	}
	if _, _, ok := c.Get("h3"); !ok {
		t.Error("expected newest entry retained")
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c := NewReportCache(4, time.Millisecond)
	outline, report := sampleAnalysis()

	c.Put("h1", outline, report)
	time.Sleep(5 * time.Millisecond)

	if _, _, ok := c.Get("h1"); ok {
		t.Error("expected expired entry to miss")
	}
}
