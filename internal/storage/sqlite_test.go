package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{SongID: 1, Score: 42}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore(1)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 42 {
		t.Errorf("BestScore() = %d after reopen, expected 42", best)
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{SongID: 1, Score: 100, DurationMs: 8000, PeakSpeed: 1.08},
		{SongID: 1, Score: 50, DurationMs: 4000, PeakSpeed: 1.04},
		{SongID: 1, Score: 200, DurationMs: 16000, PeakSpeed: 1.16},
		{SongID: 2, Score: 500, DurationMs: 40000, PeakSpeed: 1.4},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(1, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	expected := []int{200, 100, 50}
	for i, r := range top {
		if r.Score != expected[i] {
			t.Errorf("Run %d: expected score %d, got %d", i, expected[i], r.Score)
		}
		if r.SongID != 1 {
			t.Errorf("Run %d: expected song 1, got %d", i, r.SongID)
		}
	}
	if top[0].DurationMs != 16000 || top[0].PeakSpeed != 1.16 {
		t.Errorf("best run = %+v, expected duration 16000 and peak 1.16", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun(Run{SongID: 1, Score: i * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(1, 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(top))
	}
	if top[0].Score != 190 {
		t.Errorf("Expected best score 190, got %d", top[0].Score)
	}

	// Non-positive limit falls back to the default
	top, err = store.TopRuns(1, 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != DefaultLimit {
		t.Errorf("Expected %d runs, got %d", DefaultLimit, len(top))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, song := range []int{1, 2, 3} {
		if _, err := store.SaveRun(Run{SongID: song, Score: song}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].SongID != 3 || recent[1].SongID != 2 {
		t.Errorf("RecentRuns() = %+v, expected songs 3 then 2", recent)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore(1)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty song, got %d", best)
	}

	for _, score := range []int{10, 30, 20} {
		store.SaveRun(Run{SongID: 1, Score: score})
	}

	best, err = store.BestScore(1)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 30 {
		t.Errorf("Expected best score 30, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats(7)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{SongID: 7, Score: 10, DurationMs: 1000, PeakSpeed: 1.01})
	store.SaveRun(Run{SongID: 7, Score: 30, DurationMs: 3000, PeakSpeed: 1.03})
	store.SaveRun(Run{SongID: 8, Score: 99, DurationMs: 9000, PeakSpeed: 1.09})

	stats, err := store.Stats(7)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.BestScore != 30 {
		t.Errorf("BestScore = %d, expected 30", stats.BestScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, expected 20", stats.AvgScore)
	}
	if stats.TotalMs != 4000 {
		t.Errorf("TotalMs = %d, expected 4000", stats.TotalMs)
	}
	if stats.PeakSpeed != 1.03 {
		t.Errorf("PeakSpeed = %f, expected 1.03", stats.PeakSpeed)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreSongs(t *testing.T) {
	store := openTestStore(t)

	songs, err := store.Songs()
	if err != nil {
		t.Fatalf("Songs() failed: %v", err)
	}
	if len(songs) != 0 {
		t.Errorf("Songs() = %v on empty store", songs)
	}

	for _, id := range []int{4, 1, 4, 2} {
		store.SaveRun(Run{SongID: id, Score: 1})
	}

	songs, err = store.Songs()
	if err != nil {
		t.Fatalf("Songs() failed: %v", err)
	}
	want := []int{1, 2, 4}
	if len(songs) != len(want) {
		t.Fatalf("Songs() = %v, expected %v", songs, want)
	}
	for i := range want {
		if songs[i] != want[i] {
			t.Errorf("Songs()[%d] = %d, expected %d", i, songs[i], want[i])
		}
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{SongID: 1, Score: 100})
	store.SaveRun(Run{SongID: 2, Score: 200})

	if err := store.ClearRuns(1); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(1, 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	// Other songs are untouched
	runs, _ = store.TopRuns(2, 10)
	if len(runs) != 1 {
		t.Errorf("Expected 1 run for song 2, got %d", len(runs))
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
