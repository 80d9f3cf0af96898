package filelock

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestForTarget(t *testing.T) {
	lock := ForTarget(filepath.Join("out", "answer.md"))

	if lock.Path() != filepath.Join("out", "answer.md.lock") {
		t.Errorf("Path() = %q, want answer.md.lock", lock.Path())
	}
}

func TestLockUnlock(t *testing.T) {
	lock := NewFileLock(filepath.Join(t.TempDir(), "test.lock"))

	if err := lock.Lock(); err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatalf("Failed to release lock: %v", err)
	}
}

func TestAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "answer.txt")

	if err := AtomicWrite(path, []byte("first")); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}
	if err := AtomicWrite(path, []byte("second")); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestAtomicWriteFailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "child"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	// Renaming a file over a non-empty directory fails
	if err := AtomicWrite(target, []byte("data")); err == nil {
		t.Fatal("AtomicWrite() over a directory should fail")
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".repoqa-") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}

func TestLockAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answer.md")

	if err := LockAndWrite(path, []byte("# answer")); err != nil {
		t.Fatalf("LockAndWrite() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# answer" {
		t.Errorf("content = %q", data)
	}
	if _, err := os.Stat(path + ".lock"); err != nil {
		t.Errorf("expected lock file next to target: %v", err)
	}
}

func TestLockedWriterConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "repoqa.log")

	w, err := OpenLockedWriter(path)
	if err != nil {
		t.Fatalf("OpenLockedWriter() error = %v", err)
	}

	const writers = 8
	const lines = 25
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < lines; j++ {
				if _, err := w.Write([]byte("{\"msg\":\"answer\"}\n")); err != nil {
					t.Errorf("Write() error = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if err := w.Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(got) != writers*lines {
		t.Fatalf("got %d lines, want %d", len(got), writers*lines)
	}
	for i, line := range got {
		if line != `{"msg":"answer"}` {
			t.Fatalf("line %d corrupted: %q", i, line)
		}
	}
}

func TestLockedWriterAppendsToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repoqa.log")
	if err := os.WriteFile(path, []byte("old\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := OpenLockedWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte("new\n"))
	w.Close()

	data, _ := os.ReadFile(path)
	if string(data) != "old\nnew\n" {
		t.Errorf("content = %q, want appended", data)
	}
}
