package artifact

import "testing"

func TestDiffStats(t *testing.T) {
	tests := []struct {
		name        string
		before      string
		after       string
		wantAdded   int
		wantRemoved int
	}{
		{"identical", "same text", "same text", 0, 0},
		{"pure addition", "", "abc", 3, 0},
		{"pure removal", "abc", "", 0, 3},
		{"append", "line one\n", "line one\nline two\n", 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffStats(tt.before, tt.after)
			if got.Added != tt.wantAdded || got.Removed != tt.wantRemoved {
				t.Errorf("DiffStats() = %+v, want added=%d removed=%d", got, tt.wantAdded, tt.wantRemoved)
			}
		})
	}
}

func TestDiffStats_Rewrite(t *testing.T) {
	got := DiffStats("def old_name():\n    return 1\n", "def new_name():\n    return 2\n")
	if got.Added == 0 || got.Removed == 0 {
		t.Errorf("a rewrite should report both additions and removals, got %+v", got)
	}
}
