package project

import (
	"strings"
	"testing"
)

func TestFormatSources(t *testing.T) {
	got := FormatSources([]SourceFile{
		{Path: "src/main.py", Content: "print('hi')\n"},
		{Path: "src/Makefile", Content: "all:"},
	})

	if !strings.Contains(got, "```python filename=src/main.py\nprint('hi')\n```") {
		t.Errorf("python block malformed:\n%s", got)
	}
	if !strings.Contains(got, "```makefile filename=src/Makefile\nall:\n```") {
		t.Errorf("makefile block malformed:\n%s", got)
	}
}

func TestFormatSources_Empty(t *testing.T) {
	if got := FormatSources(nil); got != "" {
		t.Errorf("FormatSources(nil) = %q, want empty", got)
	}
}
