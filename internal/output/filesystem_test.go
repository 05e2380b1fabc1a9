package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDir(t *testing.T) {
	t.Run("creates a missing directory", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "out")
		if _, err := NewDir(root); err != nil {
			t.Fatalf("NewDir() error = %v", err)
		}
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			t.Errorf("output directory not created: %v", err)
		}
	})

	t.Run("accepts an existing directory", func(t *testing.T) {
		if _, err := NewDir(t.TempDir()); err != nil {
			t.Fatalf("NewDir() error = %v", err)
		}
	})

	t.Run("does not create nested directories", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "a", "b")
		if _, err := NewDir(root); err == nil {
			t.Fatal("expected an error for a missing parent directory")
		}
	})
}

func TestDir_Write(t *testing.T) {
	d, err := NewDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewDir() error = %v", err)
	}
	dest := filepath.Join(d.Root(), "1.html")

	wrote, err := d.Write("1.html", []byte("first"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !wrote {
		t.Error("first write should report wrote = true")
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("stat after write: %v", err)
	}
	firstMtime := info.ModTime()

	t.Run("identical content is a no-op", func(t *testing.T) {
		wrote, err := d.Write("1.html", []byte("first"))
		if err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if wrote {
			t.Error("rewriting identical content should report wrote = false")
		}

		info, err := os.Stat(dest)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if !info.ModTime().Equal(firstMtime) {
			t.Error("no-op write must leave the modification time untouched")
		}
	})

	t.Run("changed content replaces the file", func(t *testing.T) {
		wrote, err := d.Write("1.html", []byte("second"))
		if err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if !wrote {
			t.Error("changed content should report wrote = true")
		}

		got, err := os.ReadFile(dest)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "second" {
			t.Errorf("content = %q, want %q", got, "second")
		}
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		entries, err := os.ReadDir(d.Root())
		if err != nil {
			t.Fatalf("reading output dir: %v", err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".tmp-") {
				t.Errorf("leftover temp file: %s", e.Name())
			}
		}
	})
}

func TestMemory_Write(t *testing.T) {
	m := NewMemory()

	wrote, err := m.Write("a.html", []byte("x"))
	if err != nil || !wrote {
		t.Fatalf("Write() = %v, %v, want true, nil", wrote, err)
	}
	wrote, err = m.Write("a.html", []byte("x"))
	if err != nil || wrote {
		t.Fatalf("identical Write() = %v, %v, want false, nil", wrote, err)
	}
	wrote, err = m.Write("a.html", []byte("y"))
	if err != nil || !wrote {
		t.Fatalf("changed Write() = %v, %v, want true, nil", wrote, err)
	}

	if m.Writes != 2 || m.Skips != 1 {
		t.Errorf("Writes = %d, Skips = %d, want 2, 1", m.Writes, m.Skips)
	}
}
