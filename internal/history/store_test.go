package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RecordAndRecent(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	older := &Run{
		SourcePath:  "a.bf",
		Mode:        "run",
		Steps:       100,
		OutputBytes: 5,
		Duration:    25 * time.Millisecond,
		StartedAt:   time.Now().Add(-time.Hour),
	}
	newer := &Run{
		SourcePath: "b.bf",
		Mode:       "debug",
		Steps:      7,
		StartedAt:  time.Now(),
		Error:      "[R002] 1:1: pointer underflow",
	}

	if err := store.Record(ctx, older); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record(ctx, newer); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if older.ID == "" || newer.ID == "" {
		t.Error("Record left an empty id")
	}

	runs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("run count: got %d, want 2", len(runs))
	}
	if runs[0].SourcePath != "b.bf" || runs[1].SourcePath != "a.bf" {
		t.Errorf("order: got %s, %s; want b.bf, a.bf", runs[0].SourcePath, runs[1].SourcePath)
	}
	if runs[1].Steps != 100 || runs[1].OutputBytes != 5 {
		t.Errorf("fields: got %+v", runs[1])
	}
	if runs[1].Duration != 25*time.Millisecond {
		t.Errorf("duration: got %v, want 25ms", runs[1].Duration)
	}
	if runs[0].Error == "" {
		t.Error("error field lost")
	}
}

func TestStore_RecentLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		run := &Run{
			SourcePath: "x.bf",
			Mode:       "run",
			StartedAt:  time.Now().Add(time.Duration(i) * time.Second),
		}
		if err := store.Record(ctx, run); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	runs, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("run count: got %d, want 3", len(runs))
	}
}

func TestStore_Prune(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	old := &Run{SourcePath: "old.bf", Mode: "run", StartedAt: time.Now().Add(-48 * time.Hour)}
	fresh := &Run{SourcePath: "new.bf", Mode: "run", StartedAt: time.Now()}
	if err := store.Record(ctx, old); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(ctx, fresh); err != nil {
		t.Fatal(err)
	}

	n, err := store.Prune(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned: got %d, want 1", n)
	}

	runs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 1 || runs[0].SourcePath != "new.bf" {
		t.Errorf("remaining runs: got %+v", runs)
	}
}
