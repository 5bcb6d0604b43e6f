package artifact

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ChangeStats summarizes how much of a file's content changed between two
// revisions, in runes.
type ChangeStats struct {
	Added   int
	Removed int
}

// DiffStats compares two revisions of a file and returns the amount of
// inserted and deleted text after semantic cleanup.
func DiffStats(before, after string) ChangeStats {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var stats ChangeStats
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			stats.Added += utf8.RuneCountInString(d.Text)
		case diffmatchpatch.DiffDelete:
			stats.Removed += utf8.RuneCountInString(d.Text)
		}
	}
	return stats
}
