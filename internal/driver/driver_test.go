package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"texlog/internal/diag"
	"texlog/internal/driver"
	"texlog/internal/rules"
)

const sampleLog = "(a.tex\n" +
	"! Undefined control sequence.\n" +
	"l.12 \\foo\n" +
	")\n"

func writeLog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestCheckFile(t *testing.T) {
	path := writeLog(t, "sample.log", sampleLog)
	res, err := driver.CheckFile(path, driver.Options{Rules: rules.Default()})
	if err != nil {
		t.Fatalf("CheckFile() error: %v", err)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", res.Bag.Len())
	}
	d := res.Bag.Items()[0]
	if d.File != "a.tex" || d.Loc != diag.AtLine(12) {
		t.Errorf("diagnostic = %+v", d)
	}
	if res.FromCache {
		t.Error("first check should not come from cache")
	}
}

func TestCheckFileMissing(t *testing.T) {
	if _, err := driver.CheckFile(filepath.Join(t.TempDir(), "gone.log"), driver.Options{}); err == nil {
		t.Fatal("CheckFile() should fail on a missing path")
	}
}

func TestCheckAllKeepsOrder(t *testing.T) {
	paths := []string{
		writeLog(t, "one.log", sampleLog),
		writeLog(t, "two.log", "nothing to see here\n"),
		writeLog(t, "three.log", sampleLog),
	}
	results, err := driver.CheckAll(context.Background(), paths, 2, driver.Options{Rules: rules.Default()}, nil)
	if err != nil {
		t.Fatalf("CheckAll() error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, res := range results {
		if res == nil || res.Path != paths[i] {
			t.Errorf("result %d out of order: %+v", i, res)
		}
	}
	if results[1].Bag.Len() != 0 {
		t.Errorf("clean log produced %d diagnostics", results[1].Bag.Len())
	}
}

func TestCheckFileEmptyLog(t *testing.T) {
	path := writeLog(t, "empty.log", "")
	res, err := driver.CheckFile(path, driver.Options{Rules: rules.Default()})
	if err != nil {
		t.Fatalf("CheckFile() error: %v", err)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", res.Bag.Len())
	}
	d := res.Bag.Items()[0]
	if d.Code != diag.IOEmptyLog || d.Severity != diag.SevWarning {
		t.Errorf("diagnostic = %+v, want an empty-log warning", d)
	}
}

func TestCheckAllReadFailure(t *testing.T) {
	good := writeLog(t, "good.log", sampleLog)
	gone := filepath.Join(t.TempDir(), "gone.log")
	results, err := driver.CheckAll(context.Background(), []string{gone, good}, 2, driver.Options{Rules: rules.Default()}, nil)
	if err != nil {
		t.Fatalf("CheckAll() error: %v", err)
	}
	if len(results) != 2 || results[0] == nil || results[1] == nil {
		t.Fatalf("results = %+v, want two non-nil entries", results)
	}
	if results[0].Bag.Len() != 1 || results[0].Bag.Items()[0].Code != diag.IOCannotRead {
		t.Errorf("unreadable path produced %+v, want a cannot-read error", results[0].Bag.Items())
	}
	if results[1].Bag.Len() != 1 {
		t.Errorf("good log produced %d diagnostics, want 1", results[1].Bag.Len())
	}
}

func TestCheckAllEvents(t *testing.T) {
	paths := []string{writeLog(t, "one.log", sampleLog)}
	events := make(chan driver.Event, 8)
	if _, err := driver.CheckAll(context.Background(), paths, 1, driver.Options{Rules: rules.Default()}, events); err != nil {
		t.Fatalf("CheckAll() error: %v", err)
	}

	var stages []driver.Stage
	for ev := range events {
		stages = append(stages, ev.Stage)
	}
	if len(stages) != 2 || stages[0] != driver.StageScanning || stages[1] != driver.StageDone {
		t.Errorf("stages = %v, want [scanning done]", stages)
	}
}

func TestCheckFileUsesCache(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt() error: %v", err)
	}
	path := writeLog(t, "sample.log", sampleLog)
	opts := driver.Options{Rules: rules.Default(), Cache: cache}

	first, err := driver.CheckFile(path, opts)
	if err != nil {
		t.Fatalf("first CheckFile() error: %v", err)
	}
	second, err := driver.CheckFile(path, opts)
	if err != nil {
		t.Fatalf("second CheckFile() error: %v", err)
	}
	if !second.FromCache {
		t.Error("second check of an unchanged log should hit the cache")
	}
	if first.Bag.Len() != second.Bag.Len() {
		t.Errorf("cache changed the result: %d vs %d", first.Bag.Len(), second.Bag.Len())
	}
	got := second.Bag.Items()[0]
	want := first.Bag.Items()[0]
	if got.Message != want.Message || got.File != want.File || got.Loc != want.Loc || got.Code != want.Code {
		t.Errorf("cached diagnostic differs: got %+v, want %+v", got, want)
	}
}

func TestCacheInvalidatedByRuleSet(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt() error: %v", err)
	}
	path := writeLog(t, "sample.log", sampleLog)

	if _, err := driver.CheckFile(path, driver.Options{Rules: rules.Default(), Cache: cache}); err != nil {
		t.Fatal(err)
	}
	// A different rule set must not see the cached result.
	res, err := driver.CheckFile(path, driver.Options{Rules: nil, Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if res.FromCache {
		t.Error("changing the rule set should invalidate the cache")
	}
	if res.Bag.Len() != 0 {
		t.Errorf("empty rule set produced %d diagnostics", res.Bag.Len())
	}
}

func TestCacheClear(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	path := writeLog(t, "sample.log", sampleLog)
	opts := driver.Options{Rules: rules.Default(), Cache: cache}
	if _, err := driver.CheckFile(path, opts); err != nil {
		t.Fatal(err)
	}
	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	res, err := driver.CheckFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.FromCache {
		t.Error("cleared cache should miss")
	}
}
