// Tests for the SQLite record store.
package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/platboard/pkg/types"
)

func testConfig(dir string) types.Config {
	return types.Config{Backend: types.BackendSQLite, DataDir: dir}
}

func TestStoreAttach(t *testing.T) {
	tmpDir := t.TempDir()

	s := NewStore()
	if err := s.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer s.Detach()

	if _, err := os.Stat(filepath.Join(tmpDir, DBFileName)); os.IsNotExist(err) {
		t.Errorf("%s not created", DBFileName)
	}

	if err := s.Attach(testConfig(tmpDir)); err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}
}

func TestStoreAttachInvalidConfig(t *testing.T) {
	s := NewStore()
	if err := s.Attach(types.Config{}); err != types.ErrBackendEmpty {
		t.Errorf("expected ErrBackendEmpty, got %v", err)
	}
	if err := s.Attach(types.Config{Backend: "redis"}); err != types.ErrBackendUnknown {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
}

func TestStoreDetach(t *testing.T) {
	s := NewStore()
	s.Attach(testConfig(t.TempDir()))

	if err := s.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}
	if err := s.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	var out []string
	if err := s.Get("anything", &out); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached from Get, got %v", err)
	}
	if err := s.Set("anything", out); err != types.ErrStoreDetached {
		t.Errorf("expected ErrStoreDetached from Set, got %v", err)
	}
}

func TestStoreGetSet(t *testing.T) {
	s := NewStore()
	if err := s.Attach(testConfig(t.TempDir())); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer s.Detach()

	surveys := []types.Survey{
		{SurveyID: "s-1", Stage: types.StageReceived, ApplicantName: "Alice"},
		{SurveyID: "s-2", Stage: types.StageInitialReview, ApplicantName: "Bob"},
	}
	if err := s.Set(types.KeySurveys, surveys); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got []types.Survey
	if err := s.Get(types.KeySurveys, &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got) != 2 || got[0].SurveyID != "s-1" || got[1].ApplicantName != "Bob" {
		t.Errorf("roundtrip mismatch: %+v", got)
	}

	// A second Set replaces the whole document.
	if err := s.Set(types.KeySurveys, surveys[:1]); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got = nil
	s.Get(types.KeySurveys, &got)
	if len(got) != 1 {
		t.Errorf("expected 1 survey after replace, got %d", len(got))
	}
}

func TestStoreGetAbsentKeyKeepsDefault(t *testing.T) {
	s := NewStore()
	s.Attach(testConfig(t.TempDir()))
	defer s.Detach()

	out := []types.ActivityEntry{{Title: "default"}}
	if err := s.Get("missing", &out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(out) != 1 || out[0].Title != "default" {
		t.Errorf("default was not preserved: %+v", out)
	}
}

func TestStoreGetCorruptValueKeepsDefault(t *testing.T) {
	tmpDir := t.TempDir()
	s := NewStore()
	s.Attach(testConfig(tmpDir))
	defer s.Detach()

	// Write garbage directly under the key.
	db, err := sql.Open("sqlite", filepath.Join(tmpDir, DBFileName))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec("INSERT INTO records (key, value) VALUES (?, ?)", "broken", "{not json"); err != nil {
		t.Fatalf("insert garbage: %v", err)
	}

	out := map[string]string{"kept": "yes"}
	if err := s.Get("broken", &out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if out["kept"] != "yes" {
		t.Errorf("default was not preserved: %+v", out)
	}
}

func TestStorePersistsAcrossAttachCycles(t *testing.T) {
	tmpDir := t.TempDir()

	s := NewStore()
	s.Attach(testConfig(tmpDir))
	if err := s.Set("greeting", "hello"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	s2 := NewStore()
	if err := s2.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("re-Attach failed: %v", err)
	}
	defer s2.Detach()

	var got string
	if err := s2.Get("greeting", &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected value to survive detach, got %q", got)
	}
}
