package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

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

func TestSaveAndRetrieveSessions(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	entries := []SessionEntry{
		{StartedAt: base, DurationSecs: 60, Generations: 100, PeakPopulation: 42, CellsPainted: 12, Rows: 39, Cols: 39},
		{StartedAt: base.Add(time.Hour), DurationSecs: 30, Generations: 20, PeakPopulation: 9, CellsPainted: 5, Rows: 15, Cols: 20},
		{StartedAt: base.Add(2 * time.Hour), DurationSecs: 300, Generations: 900, PeakPopulation: 77, CellsPainted: 40, Rows: 40, Cols: 40},
	}

	for _, e := range entries {
		if _, err := store.SaveSession(e); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(got))
	}

	// Newest first
	if got[0].Generations != 900 {
		t.Errorf("Expected newest session first (900 generations), got %d", got[0].Generations)
	}
	if got[2].Generations != 100 {
		t.Errorf("Expected oldest session last (100 generations), got %d", got[2].Generations)
	}

	if got[0].Rows != 40 || got[0].Cols != 40 {
		t.Errorf("Grid size not preserved: got %dx%d", got[0].Rows, got[0].Cols)
	}
}

func TestRecentSessionsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		e := SessionEntry{StartedAt: base.Add(time.Duration(i) * time.Minute), Rows: 15, Cols: 20}
		if _, err := store.SaveSession(e); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected 2 sessions, got %d", len(got))
	}
}

func TestGetTotals(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty log
	totals, err := store.GetTotals()
	if err != nil {
		t.Fatalf("GetTotals() failed: %v", err)
	}
	if totals.Sessions != 0 || totals.Generations != 0 {
		t.Errorf("Empty log totals = %+v", totals)
	}

	now := time.Now()
	store.SaveSession(SessionEntry{StartedAt: now, Generations: 100, PeakPopulation: 42, CellsPainted: 10, Rows: 15, Cols: 20})
	store.SaveSession(SessionEntry{StartedAt: now, Generations: 50, PeakPopulation: 99, CellsPainted: 3, Rows: 15, Cols: 20})

	totals, err = store.GetTotals()
	if err != nil {
		t.Fatalf("GetTotals() failed: %v", err)
	}
	if totals.Sessions != 2 {
		t.Errorf("Sessions = %d, expected 2", totals.Sessions)
	}
	if totals.Generations != 150 {
		t.Errorf("Generations = %d, expected 150", totals.Generations)
	}
	if totals.PeakPopulation != 99 {
		t.Errorf("PeakPopulation = %d, expected 99", totals.PeakPopulation)
	}
	if totals.CellsPainted != 13 {
		t.Errorf("CellsPainted = %d, expected 13", totals.CellsPainted)
	}
}

func TestClearSessions(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveSession(SessionEntry{StartedAt: time.Now(), Rows: 15, Cols: 20})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	got, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty log after clear, got %d sessions", len(got))
	}
}
