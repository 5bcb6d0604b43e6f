package artifact

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// ScaffoldResult reports what Scaffold did, all paths relative to the root.
type ScaffoldResult struct {
	Dirs      []string // directories ensured (created or already present)
	Files     []string // files ensured (created empty or already present)
	Conflicts []string // one warning per item skipped over a type mismatch
}

// Scaffold materializes structure items under root, creating the root
// itself first. It is idempotent: existing directories and files of the
// expected type are left untouched and still counted as ensured.
//
// A type mismatch on disk (directory where a file is declared, or the
// reverse) skips the item and records one conflict; nothing is ever
// deleted or overwritten. Other per-item filesystem errors are logged
// and skipped so the remaining items still get created.
func Scaffold(root string, items []Item) (ScaffoldResult, error) {
	var res ScaffoldResult

	if err := os.MkdirAll(root, 0o755); err != nil {
		return res, fmt.Errorf("creating project root %s: %w", root, err)
	}

	for _, it := range items {
		target := filepath.Join(root, filepath.FromSlash(it.Path))
		info, statErr := os.Stat(target)

		if it.IsDir {
			if statErr == nil && !info.IsDir() {
				res.Conflicts = append(res.Conflicts, fmt.Sprintf("%s: declared as a directory but a file already exists", it.Path))
				continue
			}
			if err := os.MkdirAll(target, 0o755); err != nil {
				log.Printf("WARNING: creating directory %s: %v", it.Path, err)
				continue
			}
			res.Dirs = append(res.Dirs, it.Path)
			continue
		}

		if statErr == nil {
			if info.IsDir() {
				res.Conflicts = append(res.Conflicts, fmt.Sprintf("%s: declared as a file but a directory already exists", it.Path))
				continue
			}
			res.Files = append(res.Files, it.Path)
			continue
		}
		if !os.IsNotExist(statErr) {
			log.Printf("WARNING: checking %s: %v", it.Path, statErr)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			log.Printf("WARNING: creating parent of %s: %v", it.Path, err)
			continue
		}
		f, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err != nil {
			log.Printf("WARNING: creating file %s: %v", it.Path, err)
			continue
		}
		f.Close()
		res.Files = append(res.Files, it.Path)
	}

	return res, nil
}
