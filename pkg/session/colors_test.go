package session

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/cardgraph/pkg/persist"
	"github.com/matzehuels/cardgraph/pkg/storage"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSetListColorDebounced(t *testing.T) {
	s := New(testBoard(), Options{Debounce: 30 * time.Millisecond})
	defer s.Close()

	s.SetListColor("Todo", "#111111")
	s.SetListColor("Todo", "#222222")
	s.SetListColor("Todo", "#333333")
	if s.ListColor("Todo") != DefaultListColor {
		t.Fatal("color committed before the quiet window")
	}
	if !s.PendingColors() {
		t.Fatal("PendingColors() = false during the window")
	}

	waitFor(t, func() bool { return !s.PendingColors() })
	if got := s.ListColor("Todo"); got != "#333333" {
		t.Errorf("ListColor() = %q, want last pushed color", got)
	}
}

func TestSetListColorPerList(t *testing.T) {
	s := New(testBoard(), Options{Debounce: time.Hour})
	defer s.Close()

	s.SetListColor("Todo", "#aa0000")
	s.SetListColor("Done", "#00aa00")
	if n := s.FlushColors(); n != 2 {
		t.Fatalf("FlushColors() = %d, want 2", n)
	}
	if s.ListColor("Todo") != "#aa0000" || s.ListColor("Done") != "#00aa00" {
		t.Errorf("colors = %v", s.ListColors())
	}
	if n := s.FlushColors(); n != 0 {
		t.Errorf("second FlushColors() = %d, want 0", n)
	}
}

func TestSetListColorUnchangedNotCommitted(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	s := New(testBoard(), Options{Storage: st, AutoSave: true, Debounce: time.Hour})
	defer s.Close()
	s.ToggleList(ctx, "Todo")
	_ = st.Delete(ctx, storage.DefaultKey)

	s.SetListColor("Todo", "#123456")
	s.SetListColor("Todo", DefaultListColor)
	s.FlushColors()

	if _, ok := s.ListColors()["Todo"]; ok {
		t.Error("color equal to the current one was committed")
	}
	if _, ok, _ := st.Get(ctx, storage.DefaultKey); ok {
		t.Error("unchanged color triggered a save")
	}
}

func TestColorCommitAutoSaves(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	s := New(testBoard(), Options{Storage: st, AutoSave: true, Debounce: time.Hour})
	defer s.Close()
	s.ToggleList(ctx, "Done")

	s.SetListColor("Done", "#abcdef")
	s.FlushColors()

	cfg, ok, err := persist.Load(ctx, st, storage.DefaultKey)
	if err != nil || !ok {
		t.Fatalf("Load = (%v, %v)", ok, err)
	}
	if cfg.ListColors["Done"] != "#abcdef" {
		t.Errorf("stored colors = %v", cfg.ListColors)
	}
}

func TestCloseDropsPendingColors(t *testing.T) {
	s := New(testBoard(), Options{Debounce: 10 * time.Millisecond})
	s.SetListColor("Todo", "#999999")
	s.Close()
	s.SetListColor("Todo", "#888888")
	time.Sleep(40 * time.Millisecond)

	if s.ListColor("Todo") != DefaultListColor {
		t.Error("color committed after Close")
	}
}

func TestColorCommitAfterRestoreDropped(t *testing.T) {
	ctx := context.Background()
	s := New(testBoard(), Options{Debounce: time.Hour})
	defer s.Close()

	s.SetListColor("Todo", "#111111")
	before := s.epoch

	cfg := `{"dependencies":{},"selectedLists":["Todo"],"listColors":{"Todo":"#abcdef"}}`
	if err := s.Import(ctx, cfg); err != nil {
		t.Fatalf("Import: %v", err)
	}

	// A timer that fired just before the import delivers its value late.
	s.commitColor(before, "Todo", "#111111")
	if got := s.ListColor("Todo"); got != "#abcdef" {
		t.Errorf("ListColor() = %q, want restored %q", got, "#abcdef")
	}

	s.SetListColor("Todo", "#222222")
	s.FlushColors()
	if got := s.ListColor("Todo"); got != "#222222" {
		t.Errorf("ListColor() = %q, want %q after restore", got, "#222222")
	}
}
