package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTemp(t *testing.T) *Store {
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.spriteloop/sessions.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".spriteloop", "sessions.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTemp(t)
	base := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		sess := NewSession(base.Add(time.Duration(i) * time.Minute))
		sess.Duration = time.Duration(i+1) * time.Second
		sess.Frames = uint64(60 * (i + 1))
		sess.Distance = float64(i) * 12.5
		sess.Renderer = "opengl"
		sess.ExitReason = "escape"
		if _, err := store.Save(sess); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
	}

	sessions, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}

	newest := sessions[0]
	if !newest.StartedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("Expected newest first, got %v", newest.StartedAt)
	}
	if newest.Duration != 3*time.Second || newest.Frames != 180 || newest.Distance != 25 {
		t.Errorf("Unexpected session fields: %+v", newest)
	}
	if newest.Renderer != "opengl" || newest.ExitReason != "escape" {
		t.Errorf("Unexpected session labels: %+v", newest)
	}
	if _, err := uuid.Parse(newest.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", newest.ID, err)
	}
}

func TestStoreSaveFillsID(t *testing.T) {
	store := openTemp(t)

	id, err := store.Save(Session{StartedAt: time.Now()})
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if id == "" {
		t.Error("Expected a generated ID")
	}

	if _, err := store.Save(Session{ID: id, StartedAt: time.Now()}); err == nil {
		t.Error("Expected duplicate ID to fail")
	}
}

func TestStoreCountAndClear(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 4; i++ {
		if _, err := store.Save(NewSession(time.Now())); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
	}

	n, err := store.Count()
	if err != nil || n != 4 {
		t.Errorf("Count() = %d, %v, expected 4", n, err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	sessions, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Expected no sessions after Clear, got %d", len(sessions))
	}
}

func TestStoreRecentDefaultLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 12; i++ {
		if _, err := store.Save(NewSession(time.Unix(int64(i), 0))); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
	}

	sessions, err := store.Recent(0)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(sessions) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(sessions))
	}
}
