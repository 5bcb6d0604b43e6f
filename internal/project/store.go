package project

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Subdirectories of every project.
const (
	DocsDirName  = "docs"
	SrcDirName   = "src"
	TestsDirName = "tests"
)

// Well-known documents under docs/.
const (
	IdeaFile        = "idea.md"
	PlanFile        = "impl.md"
	IntegrationFile = "integ.md"
	ReviewFile      = "review.md"
)

// SourceFile is one project file read back for prompting, with a POSIX
// path relative to the project directory (e.g. "src/main.py").
type SourceFile struct {
	Path    string
	Content string
}

// Info is a summary row for one project, as shown by listings.
type Info struct {
	Slug     string    `json:"slug"`
	Docs     int       `json:"docs"`     // files under docs/
	Sources  int       `json:"sources"`  // files under src/ and tests/
	Modified time.Time `json:"modified"` // newest file change anywhere in the project
}

// Store reads and writes projects under a base directory.
type Store struct {
	BaseDir string
}

// NewStore returns a store rooted at baseDir. The directory is created
// lazily on the first Ensure.
func NewStore(baseDir string) *Store {
	return &Store{BaseDir: baseDir}
}

// --- Paths ---

// Dir returns the project directory for a slug.
func (s *Store) Dir(slug string) string {
	return filepath.Join(s.BaseDir, slug)
}

// DocsDir returns the docs directory for a slug.
func (s *Store) DocsDir(slug string) string {
	return filepath.Join(s.BaseDir, slug, DocsDirName)
}

// SrcDir returns the source directory for a slug.
func (s *Store) SrcDir(slug string) string {
	return filepath.Join(s.BaseDir, slug, SrcDirName)
}

// TestsDir returns the tests directory for a slug.
func (s *Store) TestsDir(slug string) string {
	return filepath.Join(s.BaseDir, slug, TestsDirName)
}

// DocPath returns the path of a named document under docs/.
func (s *Store) DocPath(slug, name string) string {
	return filepath.Join(s.DocsDir(slug), name)
}

// --- Lifecycle ---

// Ensure creates the project directory with its docs/, src/ and tests/
// subdirectories and returns the project directory. Existing directories
// are left untouched.
func (s *Store) Ensure(slug string) (string, error) {
	dir := s.Dir(slug)
	for _, sub := range []string{DocsDirName, SrcDirName, TestsDirName} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return "", fmt.Errorf("creating project %s: %w", slug, err)
		}
	}
	return dir, nil
}

// Exists reports whether a project directory is present.
func (s *Store) Exists(slug string) bool {
	info, err := os.Stat(s.Dir(slug))
	return err == nil && info.IsDir()
}

// List returns a summary of every project, sorted by slug. A missing base
// directory yields an empty list.
func (s *Store) List() ([]Info, error) {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var infos []Info
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info := Info{Slug: e.Name()}
		root := s.Dir(e.Name())
		filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			rel, rerr := filepath.Rel(root, p)
			if rerr != nil {
				return nil
			}
			rel = filepath.ToSlash(rel)
			switch {
			case strings.HasPrefix(rel, DocsDirName+"/"):
				info.Docs++
			case strings.HasPrefix(rel, SrcDirName+"/"), strings.HasPrefix(rel, TestsDirName+"/"):
				info.Sources++
			}
			if fi, ferr := d.Info(); ferr == nil && fi.ModTime().After(info.Modified) {
				info.Modified = fi.ModTime()
			}
			return nil
		})
		infos = append(infos, info)
	}
	return infos, nil
}

// --- Documents ---

// HasDoc reports whether a named document exists under docs/.
func (s *Store) HasDoc(slug, name string) bool {
	info, err := os.Stat(s.DocPath(slug, name))
	return err == nil && !info.IsDir()
}

// ReadDoc reads a named document from docs/.
func (s *Store) ReadDoc(slug, name string) (string, error) {
	data, err := os.ReadFile(s.DocPath(slug, name))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

// ListDocs returns the names of the documents under docs/, sorted. A
// missing docs directory yields an empty list.
func (s *Store) ListDocs(slug string) ([]string, error) {
	entries, err := os.ReadDir(s.DocsDir(slug))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// WriteDoc writes a named document under docs/, creating the directory
// when needed, and returns the written path.
func (s *Store) WriteDoc(slug, name, content string) (string, error) {
	path := s.DocPath(slug, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating docs directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}

// ReadPlans collects the implementation plan documents into one prompt
// context string. The integration plan comes first when present, then
// impl.md, then any impl_*.md shards in name order. Each document is
// wrapped in begin/end markers naming its file. Returns an error when no
// plan document exists at all.
func (s *Store) ReadPlans(slug string) (string, error) {
	docsDir := s.DocsDir(slug)

	var names []string
	for _, name := range []string{IntegrationFile, PlanFile} {
		if s.HasDoc(slug, name) {
			names = append(names, name)
		}
	}
	shards, _ := filepath.Glob(filepath.Join(docsDir, "impl_*.md"))
	sort.Strings(shards)
	for _, p := range shards {
		names = append(names, filepath.Base(p))
	}

	if len(names) == 0 {
		return "", fmt.Errorf("no implementation plan found in %s", docsDir)
	}

	sections := make([]string, 0, len(names))
	for _, name := range names {
		content, err := s.ReadDoc(slug, name)
		if err != nil {
			return "", err
		}
		sections = append(sections, fmt.Sprintf("# --- Content from: %s ---\n\n%s\n\n# --- End of: %s ---",
			name, strings.TrimSpace(content), name))
	}
	return strings.Join(sections, "\n\n"), nil
}

// --- Sources ---

// HasSources reports whether any regular file exists under src/.
func (s *Store) HasSources(slug string) bool {
	found := false
	filepath.WalkDir(s.SrcDir(slug), func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		found = true
		return fs.SkipAll
	})
	return found
}

// ReadSources reads every file under src/ and tests/, sorted by path.
// Unreadable files are logged and skipped so one bad file does not hide
// the rest of the project.
func (s *Store) ReadSources(slug string) ([]SourceFile, error) {
	root := s.Dir(slug)

	var files []SourceFile
	for _, sub := range []string{SrcDirName, TestsDirName} {
		filepath.WalkDir(filepath.Join(root, sub), func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			data, rerr := os.ReadFile(p)
			if rerr != nil {
				log.Printf("WARNING: reading %s: %v", p, rerr)
				return nil
			}
			rel, rerr := filepath.Rel(root, p)
			if rerr != nil {
				return nil
			}
			files = append(files, SourceFile{Path: filepath.ToSlash(rel), Content: string(data)})
			return nil
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// --- Review ---

// HasReview reports whether docs/review.md exists.
func (s *Store) HasReview(slug string) bool {
	return s.HasDoc(slug, ReviewFile)
}

// ReadReview reads docs/review.md.
func (s *Store) ReadReview(slug string) (string, error) {
	return s.ReadDoc(slug, ReviewFile)
}
