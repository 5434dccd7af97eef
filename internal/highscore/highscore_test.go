package highscore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "highscore.txt"), nil)

	if err := store.Save(42); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if got := store.Load(); got != 42 {
		t.Errorf("Load() = %d, expected 42", got)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "42" {
		t.Errorf("file content = %q, expected decimal ASCII \"42\"", data)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.txt"), nil)
	if got := store.Load(); got != 0 {
		t.Errorf("Load() on missing file = %d, expected 0", got)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"text", "abc"},
		{"empty", ""},
		{"float", "12.5"},
		{"negative", "-4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if got := NewFileStore(path, nil).Load(); got != 0 {
				t.Errorf("Load() = %d, expected 0", got)
			}
		})
	}
}

func TestFileStoreTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("17\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := NewFileStore(path, nil).Load(); got != 17 {
		t.Errorf("Load() = %d, expected 17", got)
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "dir", "hs.txt"), nil)
	if err := store.Save(100); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(3); err != nil {
		t.Fatal(err)
	}
	if got := store.Load(); got != 3 {
		t.Errorf("Save should overwrite unconditionally, Load() = %d", got)
	}
}

type memStore struct {
	value int
	saves int
	err   error
}

func (m *memStore) Load() int { return m.value }

func (m *memStore) Save(score int) error {
	m.saves++
	if m.err != nil {
		return m.err
	}
	m.value = score
	return nil
}

func TestTrackerSubmit(t *testing.T) {
	mem := &memStore{value: 10}
	tr := NewTracker(mem)

	if tr.Best() != 10 {
		t.Fatalf("Best() = %d, expected loaded 10", tr.Best())
	}

	record, err := tr.Submit(10)
	if err != nil || record {
		t.Errorf("equal score should not be a record (record=%v, err=%v)", record, err)
	}
	if mem.saves != 0 {
		t.Errorf("non-record should not save, saves = %d", mem.saves)
	}

	record, err = tr.Submit(25)
	if err != nil || !record {
		t.Errorf("higher score should be a record (record=%v, err=%v)", record, err)
	}
	if mem.value != 25 || tr.Best() != 25 {
		t.Errorf("record not persisted: store=%d best=%d", mem.value, tr.Best())
	}
}

func TestTrackerSubmitSaveFailure(t *testing.T) {
	mem := &memStore{err: errors.New("disk full")}
	tr := NewTracker(mem)

	record, err := tr.Submit(5)
	if !record || err == nil {
		t.Errorf("expected record with save error, got record=%v err=%v", record, err)
	}
	if tr.Best() != 5 {
		t.Errorf("in-memory record should update even when saving fails, got %d", tr.Best())
	}
}
