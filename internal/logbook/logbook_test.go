package logbook

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestTailReturnsRecentLinesAndTotal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drafter.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	lines, total := book.Tail(3)
	if total != 5 {
		t.Fatalf("total lines = %d, want 5", total)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestMirrorCopiesWarningsOnly(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "logs", "drafter.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	var buf bytes.Buffer
	book.Mirror(&buf)
	book.Info("loaded 12 players")
	book.Warn("line 3: expected 3 fields, got 2")
	book.Error("draft failed")
	out := buf.String()
	if strings.Contains(out, "loaded 12 players") {
		t.Fatalf("info entries must not be mirrored: %q", out)
	}
	if !strings.Contains(out, "warn: line 3") || !strings.Contains(out, "error: draft failed") {
		t.Fatalf("unexpected mirror output %q", out)
	}
	lines, total := book.Tail(10)
	if total != 3 || len(lines) != 3 {
		t.Fatalf("expected all three entries in file, got %d", total)
	}
	if !strings.Contains(lines[1], "WARN") {
		t.Fatalf("expected level in line, got %q", lines[1])
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Info("ignored")
	if lines, total := book.Tail(3); lines != nil || total != 0 {
		t.Fatalf("nil logbook should have no lines")
	}
	if book.Path() != "" {
		t.Fatalf("nil logbook should have empty path")
	}
}
