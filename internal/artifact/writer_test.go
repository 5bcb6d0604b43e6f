package artifact

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFiles_WritesAllBlocks(t *testing.T) {
	root := t.TempDir()
	blocks := []Block{
		{Path: "src/main.py", Content: "print('hello')"},
		{Path: "src/utils/helpers.py", Content: "def helper(): pass"},
		{Path: "README.md", Content: "# Project"},
	}

	written := WriteFiles(root, blocks)
	if len(written) != 3 {
		t.Fatalf("expected 3 written paths, got %d: %v", len(written), written)
	}

	for i, p := range written {
		if !filepath.IsAbs(p) {
			t.Errorf("path %d should be absolute, got %q", i, p)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("reading %s: %v", p, err)
		}
		if string(data) != blocks[i].Content {
			t.Errorf("%s: expected %q, got %q", p, blocks[i].Content, data)
		}
	}
}

func TestWriteFiles_OverwritesExisting(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "main.py")
	if err := os.WriteFile(target, []byte("old"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	written := WriteFiles(root, []Block{{Path: "main.py", Content: "new"}})
	if len(written) != 1 {
		t.Fatalf("expected 1 written path, got %v", written)
	}

	data, err := os.ReadFile(target)
	if err != nil || string(data) != "new" {
		t.Errorf("expected overwrite with %q, got %q, err=%v", "new", data, err)
	}
}

func TestWriteFiles_ContinuesPastFailure(t *testing.T) {
	root := t.TempDir()
	// A directory at the target path makes the first write fail.
	if err := os.MkdirAll(filepath.Join(root, "blocked.py"), 0o755); err != nil {
		t.Fatalf("seeding blocker: %v", err)
	}

	blocks := []Block{
		{Path: "blocked.py", Content: "never lands"},
		{Path: "ok.py", Content: "lands"},
	}

	written := WriteFiles(root, blocks)
	if len(written) != 1 {
		t.Fatalf("expected 1 written path, got %v", written)
	}
	if filepath.Base(written[0]) != "ok.py" {
		t.Errorf("expected ok.py to be written, got %q", written[0])
	}
}

func TestWriteFiles_NoBlocks(t *testing.T) {
	written := WriteFiles(t.TempDir(), nil)
	if len(written) != 0 {
		t.Errorf("expected no written paths, got %v", written)
	}
}
