package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "words.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "words.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreImportAndWords(t *testing.T) {
	store := openTestStore(t)

	words := []string{"cane", "gatto", "topo", "città"}
	n, err := store.ImportList("it", "words.it.txt", words)
	if err != nil {
		t.Fatalf("ImportList() failed: %v", err)
	}
	if n != len(words) {
		t.Errorf("ImportList() = %d, expected %d", n, len(words))
	}

	got, err := store.Words("it")
	if err != nil {
		t.Fatalf("Words() failed: %v", err)
	}
	if strings.Join(got, ",") != strings.Join(words, ",") {
		t.Errorf("Words() = %v, expected %v in import order", got, words)
	}
}

func TestStoreImportReplaces(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.ImportList("en", "a.txt", []string{"dog", "cat", "mouse"}); err != nil {
		t.Fatalf("ImportList() failed: %v", err)
	}
	if _, err := store.ImportList("en", "b.txt", []string{"apple"}); err != nil {
		t.Fatalf("ImportList() second time failed: %v", err)
	}

	got, err := store.Words("en")
	if err != nil {
		t.Fatalf("Words() failed: %v", err)
	}
	if len(got) != 1 || got[0] != "apple" {
		t.Errorf("Words() = %v, expected [apple]", got)
	}

	lists, err := store.Lists()
	if err != nil {
		t.Fatalf("Lists() failed: %v", err)
	}
	if len(lists) != 1 {
		t.Fatalf("Lists() returned %d lists, expected 1", len(lists))
	}
	if lists[0].Source != "b.txt" {
		t.Errorf("Source = %q, expected b.txt", lists[0].Source)
	}
}

func TestStoreImportEmptyName(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.ImportList("", "x.txt", []string{"a"}); err == nil {
		t.Error("ImportList() with empty name should fail")
	}
}

func TestStoreListsKeepsListsApart(t *testing.T) {
	store := openTestStore(t)

	store.ImportList("it", "words.it.txt", []string{"cane", "gatto"})
	store.ImportList("en", "words.en.txt", []string{"dog", "cat", "mouse"})

	lists, err := store.Lists()
	if err != nil {
		t.Fatalf("Lists() failed: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("Lists() returned %d lists, expected 2", len(lists))
	}

	// Sorted by name
	if lists[0].Name != "en" || lists[0].Count != 3 {
		t.Errorf("lists[0] = %+v, expected en with 3 words", lists[0])
	}
	if lists[1].Name != "it" || lists[1].Count != 2 {
		t.Errorf("lists[1] = %+v, expected it with 2 words", lists[1])
	}
	if lists[0].ImportedAt.IsZero() {
		t.Error("ImportedAt was not set")
	}
}

func TestStoreWordsMissingList(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Words("nope")
	if !errors.Is(err, ErrListNotFound) {
		t.Errorf("Words() error = %v, expected ErrListNotFound", err)
	}
}

func TestStoreDeleteList(t *testing.T) {
	store := openTestStore(t)

	store.ImportList("it", "words.it.txt", []string{"cane", "gatto"})
	if err := store.DeleteList("it"); err != nil {
		t.Fatalf("DeleteList() failed: %v", err)
	}

	if _, err := store.Words("it"); !errors.Is(err, ErrListNotFound) {
		t.Errorf("Words() after delete error = %v, expected ErrListNotFound", err)
	}
	if err := store.DeleteList("it"); !errors.Is(err, ErrListNotFound) {
		t.Errorf("second DeleteList() error = %v, expected ErrListNotFound", err)
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "words.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.ImportList("it", "words.it.txt", []string{"cane"})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.Words("it")
	if err != nil || len(got) != 1 {
		t.Errorf("Words() after reopen = %v, %v", got, err)
	}
}
