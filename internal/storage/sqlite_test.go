package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/quantum-shift/internal/state"
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

func mustSave(t *testing.T, store *Store, player string, score int) Run {
	t.Helper()
	r, err := store.SaveRun(Run{Player: player, Score: score})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return r
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

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, "ada", 400)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 400 {
		t.Errorf("Expected high score 400 after reopen, got %d", high)
	}
}

func TestSaveRunAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	stats := state.Stats{PuzzlesSolved: 3, WrongAnswers: 1, RealityShifts: 2, TimeReversals: 1, GravityFlips: 4}
	saved, err := store.SaveRun(NewRun("ada", 300, stats, 95*time.Second))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	if saved.ID == 0 {
		t.Error("Expected a row ID")
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", saved.RunID, err)
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}

	if got.Player != "ada" || got.Score != 300 || got.Duration != 95 {
		t.Errorf("Unexpected run: %+v", got)
	}
	if got.PuzzlesSolved != 3 || got.WrongAnswers != 1 || got.RealityShifts != 2 ||
		got.TimeReversals != 1 || got.GravityFlips != 4 {
		t.Errorf("Counters not stored: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
}

func TestSaveRunKeepsGivenRunID(t *testing.T) {
	store := openTestStore(t)

	id := uuid.NewString()
	saved, err := store.SaveRun(Run{RunID: id, Player: "bob", Score: 100})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.RunID != id {
		t.Errorf("Expected RunID %s, got %s", id, saved.RunID)
	}

	// Duplicate run IDs are rejected.
	if _, err := store.SaveRun(Run{RunID: id, Player: "bob", Score: 200}); err == nil {
		t.Error("Expected error saving duplicate run ID")
	}
}

func TestRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("does-not-exist")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for missing run, got %+v", got)
	}
}

func TestTopRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "ada", 100)
	mustSave(t, store, "bob", 50)
	mustSave(t, store, "ada", 200)
	mustSave(t, store, "cy", 500)

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(runs))
	}

	want := []int{500, 200, 100, 50}
	for i, w := range want {
		if runs[i].Score != w {
			t.Errorf("runs[%d].Score = %d, want %d", i, runs[i].Score, w)
		}
	}
}

func TestTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "test", (i+1)*100)
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 500, 400, 300 (top 3)
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	// Non-positive limits fall back to 10
	runs, err = store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs with default limit, got %d", len(runs))
	}
}

func TestRunsByPlayer(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "ada", 100)
	mustSave(t, store, "bob", 900)
	mustSave(t, store, "ada", 300)

	runs, err := store.RunsByPlayer("ada", 10)
	if err != nil {
		t.Fatalf("RunsByPlayer() failed: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for ada, got %d", len(runs))
	}
	// Most recent first
	if runs[0].Score != 300 || runs[1].Score != 100 {
		t.Errorf("Unexpected order: %v", runs)
	}

	none, err := store.RunsByPlayer("nobody", 10)
	if err != nil {
		t.Fatalf("RunsByPlayer() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no runs, got %d", len(none))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}

	mustSave(t, store, "ada", 100)
	mustSave(t, store, "bob", 300)
	mustSave(t, store, "ada", 200)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Runs != 0 || sum.HighScore != 0 || !sum.LastPlayed.IsZero() {
		t.Errorf("Expected empty summary, got %+v", sum)
	}

	store.SaveRun(Run{Player: "ada", Score: 100, PuzzlesSolved: 1})
	store.SaveRun(Run{Player: "bob", Score: 300, PuzzlesSolved: 3})

	sum, err = store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", sum.Runs)
	}
	if sum.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", sum.HighScore)
	}
	if sum.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", sum.AvgScore)
	}
	if sum.PuzzlesSolved != 4 {
		t.Errorf("Expected 4 puzzles solved, got %d", sum.PuzzlesSolved)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "ada", 100)
	mustSave(t, store, "bob", 200)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
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

func TestStoreExpandHomePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := Open("~/.quantum/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".quantum", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
