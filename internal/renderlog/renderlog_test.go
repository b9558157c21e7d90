package renderlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for i, pageID := range []string{"index", "nb_tutorials/index", "about"} {
		err := s.Record(ctx, Event{
			RenderID: "r-1",
			PageID:   pageID,
			Outcome:  "success",
			Duration: time.Duration(i+1) * time.Millisecond,
			Warnings: i,
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	events, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	// Newest first.
	if events[0].PageID != "about" || events[2].PageID != "index" {
		t.Errorf("unexpected order: %v", events)
	}
	if events[0].Warnings != 2 {
		t.Errorf("expected 2 warnings on newest event, got %d", events[0].Warnings)
	}
	if events[0].Duration != 3*time.Millisecond {
		t.Errorf("duration round-trip failed: %v", events[0].Duration)
	}
}

func TestRecentLimit(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	for range 5 {
		if err := s.Record(ctx, Event{RenderID: "r", PageID: "index", Outcome: "success"}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	events, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected limit of 2, got %d", len(events))
	}
}

func TestOutcomeCounts(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	for _, outcome := range []string{"success", "success", "failed"} {
		if err := s.Record(ctx, Event{RenderID: "r", PageID: "index", Outcome: outcome}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	counts, err := s.OutcomeCounts(ctx)
	if err != nil {
		t.Fatalf("OutcomeCounts: %v", err)
	}
	if counts["success"] != 2 || counts["failed"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestPersistentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renders.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ctx := context.Background()
	if err := s.Record(ctx, Event{RenderID: "r", PageID: "index", Outcome: "success"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s2.Close() }()
	events, err := s2.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("expected persisted event, got %d", len(events))
	}
}
