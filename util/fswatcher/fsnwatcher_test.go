package fswatcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func mustNew(t *testing.T) Watcher {
	t.Helper()
	w, err := NewFsnWatcher()
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func mustAdd(t *testing.T, w Watcher, name string) {
	t.Helper()
	if err := w.Add(name); err != nil {
		t.Fatal(err)
	}
}

func mustWriteFile(t *testing.T, name string) {
	t.Helper()
	if err := os.WriteFile(name, []byte("a\nb\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readEvent(t *testing.T, w Watcher, fn func(*Event) bool) {
	t.Helper()
	tick := time.NewTicker(3 * time.Second)
	defer tick.Stop()
	for {
		select {
		case <-tick.C:
			t.Fatal("event timeout")
		case ev := <-w.Events():
			if err, ok := ev.(error); ok {
				t.Fatal(err)
			}
			if fn(ev.(*Event)) {
				return
			}
			// unrelated event (ex: attrib on create), keep waiting
		}
	}
}

//----------

func TestFsnWatcherModify(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "f1.txt")
	mustWriteFile(t, file)

	w := mustNew(t)
	defer w.Close()
	mustAdd(t, w, file)

	mustWriteFile(t, file)
	readEvent(t, w, func(ev *Event) bool {
		return ev.Name == file && ev.Op.HasAny(Modify)
	})
}

func TestFsnWatcherCreateInDir(t *testing.T) {
	tmpDir := t.TempDir()

	w := mustNew(t)
	defer w.Close()
	mustAdd(t, w, tmpDir)

	file := filepath.Join(tmpDir, "f2.txt")
	mustWriteFile(t, file)
	readEvent(t, w, func(ev *Event) bool {
		return ev.Op.HasAny(Create) && ev.JoinNames() == file
	})
}

func TestFsnWatcherOpMask(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "f3.txt")
	mustWriteFile(t, file)

	w := mustNew(t)
	defer w.Close()
	*w.OpMask() = Remove
	mustAdd(t, w, file)

	mustWriteFile(t, file) // masked out
	if err := os.Remove(file); err != nil {
		t.Fatal(err)
	}
	readEvent(t, w, func(ev *Event) bool {
		return ev.Op.HasAny(Remove)
	})
}
