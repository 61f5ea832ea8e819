package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	records := []SessionRecord{
		{GameID: "blockfall", Seed: 1, Lines: 4, Pieces: 30, Ticks: 6000, EndReason: EndToppedOut},
		{GameID: "blockfall", Seed: 2, Lines: 0, Pieces: 3, Ticks: 500, EndReason: EndQuit},
		{GameID: "blockfall", Seed: 3, Lines: 9, Pieces: 51, Ticks: 12000, EndReason: EndToppedOut},
		{GameID: "other", Seed: 4, Lines: 1, Pieces: 7, Ticks: 900, EndReason: EndQuit},
	}
	for _, r := range records {
		if _, err := store.SaveSession(r); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.RecentSessions("blockfall", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(got))
	}

	// Newest first
	if got[0].Seed != 3 || got[1].Seed != 2 || got[2].Seed != 1 {
		t.Errorf("Sessions not newest-first: %+v", got)
	}
	if got[0].Lines != 9 || got[0].Pieces != 51 || got[0].Ticks != 12000 {
		t.Errorf("Round trip lost counters: %+v", got[0])
	}
	if got[1].EndReason != EndQuit {
		t.Errorf("EndReason = %q, expected %q", got[1].EndReason, EndQuit)
	}
	if got[0].CreatedAt.IsZero() || time.Since(got[0].CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt = %v, expected about now", got[0].CreatedAt)
	}
}

func TestStoreRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession(SessionRecord{GameID: "blockfall", Lines: i, EndReason: EndQuit})
	}

	got, err := store.RecentSessions("blockfall", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 sessions with limit, got %d", len(got))
	}
}

func TestStoreBestSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionRecord{GameID: "blockfall", Seed: 1, Lines: 5, Pieces: 40})
	store.SaveSession(SessionRecord{GameID: "blockfall", Seed: 2, Lines: 8, Pieces: 60})
	store.SaveSession(SessionRecord{GameID: "blockfall", Seed: 3, Lines: 8, Pieces: 45})

	got, err := store.BestSessions("blockfall", 10)
	if err != nil {
		t.Fatalf("BestSessions() failed: %v", err)
	}
	if len(got) != 3 || got[0].Seed != 3 || got[1].Seed != 2 || got[2].Seed != 1 {
		t.Errorf("Sessions not in expected order: %+v", got)
	}
	// Empty reason defaults to quit
	if got[0].EndReason != EndQuit {
		t.Errorf("EndReason = %q, expected %q", got[0].EndReason, EndQuit)
	}
}

func TestStoreSaveSessionRequiresGameID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSession(SessionRecord{Lines: 1}); err == nil {
		t.Error("SaveSession() without a game id should fail")
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionRecord{GameID: "blockfall", Lines: 1})
	store.SaveSession(SessionRecord{GameID: "blockfall", Lines: 2})
	store.SaveSession(SessionRecord{GameID: "other", Lines: 3})

	if err := store.ClearSessions("blockfall"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	got, _ := store.RecentSessions("blockfall", 10)
	if len(got) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(got))
	}

	other, _ := store.RecentSessions("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game sessions should not be affected by clearing blockfall")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("blockfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveSession(SessionRecord{GameID: "blockfall", Lines: 2, Pieces: 20})
	store.SaveSession(SessionRecord{GameID: "blockfall", Lines: 6, Pieces: 40})

	stats, err := store.GetGameStats("blockfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.MostLines != 6 || stats.TotalLines != 8 || stats.TotalPieces != 60 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgLines != 4 {
		t.Errorf("AvgLines = %v, expected 4", stats.AvgLines)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
