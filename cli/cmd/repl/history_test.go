package repl

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHistory_WriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)

	entries := []HistoryEntry{
		{Line: "1+2", Mode: modeEval},
		{Line: "help", Mode: modeCtrl},
		{Line: `\frac{1}{2}`, Mode: modeEval},
	}

	for _, e := range entries {
		if _, err := h.WriteWithMode(e.Line, e.Mode); err != nil {
			t.Fatalf("WriteWithMode(%q) error: %v", e.Line, err)
		}
	}

	// A fresh instance must reconstruct entries and modes from the file.
	loaded := NewHistory(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.Len() != len(entries) {
		t.Fatalf("Len() = %d, want %d", loaded.Len(), len(entries))
	}

	for i, want := range entries {
		got, err := loaded.GetEntry(i)
		if err != nil {
			t.Fatalf("GetEntry(%d) error: %v", i, err)
		}

		if got != want {
			t.Errorf("GetEntry(%d) = %+v, want %+v", i, got, want)
		}
	}
}

func TestHistory_DuplicateMovesToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)

	for _, line := range []string{"a+b", "x^2", "a+b"} {
		if _, err := h.WriteWithMode(line, modeEval); err != nil {
			t.Fatalf("WriteWithMode(%q) error: %v", line, err)
		}
	}

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 after deduplication", h.Len())
	}

	last, err := h.GetEntry(h.Len() - 1)
	if err != nil {
		t.Fatal(err)
	}

	if last.Line != "a+b" {
		t.Errorf("last entry = %q, want %q", last.Line, "a+b")
	}
}

func TestHistory_ConsecutiveDuplicateSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)

	_, _ = h.WriteWithMode("1!", modeEval)
	_, _ = h.WriteWithMode("1!", modeEval)

	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHistory_SameLineDifferentModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)

	_, _ = h.WriteWithMode("clear", modeEval)
	_, _ = h.WriteWithMode("clear", modeCtrl)

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
}

func TestHistory_LoadMissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "nonexistent"))

	if err := h.Load(); err != nil {
		t.Errorf("Load() on missing file = %v, want nil", err)
	}
}

func TestHistory_LegacyLinesDefaultToEval(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	if err := os.WriteFile(path, []byte("x+y\nC:quit\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	first, _ := h.GetEntry(0)
	if first.Mode != modeEval || first.Line != "x+y" {
		t.Errorf("GetEntry(0) = %+v, want eval mode %q", first, "x+y")
	}

	second, _ := h.GetEntry(1)
	if second.Mode != modeCtrl || second.Line != "quit" {
		t.Errorf("GetEntry(1) = %+v, want ctrl mode %q", second, "quit")
	}
}

func TestHistory_GetEntryOutOfBounds(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	if _, err := h.GetEntry(0); err != ErrOutOfBounds {
		t.Errorf("GetEntry(0) error = %v, want %v", err, ErrOutOfBounds)
	}
}
