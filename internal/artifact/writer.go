package artifact

import (
	"log"
	"os"
	"path/filepath"
)

// WriteFiles writes each block under root, creating parent directories as
// needed, and returns the absolute paths written in block order. A failed
// write is logged and skipped; the remaining blocks are still attempted,
// so the returned slice may be shorter than the input.
func WriteFiles(root string, blocks []Block) []string {
	base, err := filepath.Abs(root)
	if err != nil {
		base = root
	}

	written := make([]string, 0, len(blocks))
	for _, b := range blocks {
		target := filepath.Join(base, filepath.FromSlash(b.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			log.Printf("WARNING: creating parent of %s: %v", b.Path, err)
			continue
		}
		if err := os.WriteFile(target, []byte(b.Content), 0o644); err != nil {
			log.Printf("WARNING: writing %s: %v", b.Path, err)
			continue
		}
		written = append(written, target)
	}
	return written
}
