package mcptools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/maai-dev/maai/internal/history"
	"github.com/maai-dev/maai/internal/project"
)

// --- Test helpers ---

func newStore(t *testing.T) *project.Store {
	t.Helper()
	return project.NewStore(t.TempDir())
}

func newRunLog(t *testing.T) *history.Store {
	t.Helper()
	s, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("opening history: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// makeReq builds a mcp.CallToolRequest with the given arguments.
func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text content from a tool result.
func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func mustNotError(t *testing.T, r *mcp.CallToolResult, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected Go error: %v", err)
	}
	if r.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(r))
	}
}

func mustBeToolError(t *testing.T, r *mcp.CallToolResult, err error, wantSubstr string) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected Go error: %v", err)
	}
	if !r.IsError {
		t.Fatalf("expected tool error containing %q, got success: %s", wantSubstr, resultText(r))
	}
	if !strings.Contains(resultText(r), wantSubstr) {
		t.Errorf("tool error = %q, want substring %q", resultText(r), wantSubstr)
	}
}

func writeSource(t *testing.T, store *project.Store, slug, rel, content string) {
	t.Helper()
	path := filepath.Join(store.Dir(slug), filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

// --- ScaffoldTool ---

func TestScaffoldTool_Definition(t *testing.T) {
	def := NewScaffoldTool(newStore(t), nil).Definition()

	if def.Name != "maai_scaffold_project" {
		t.Errorf("tool name = %q", def.Name)
	}
	for _, p := range []string{"project", "structure"} {
		if _, ok := def.InputSchema.Properties[p]; !ok {
			t.Errorf("missing %q parameter", p)
		}
	}
	if len(def.InputSchema.Required) != 2 {
		t.Errorf("required = %v, want project and structure", def.InputSchema.Required)
	}
}

func TestScaffoldTool_CreatesTree(t *testing.T) {
	store := newStore(t)
	runs := newRunLog(t)
	tool := NewScaffoldTool(store, runs)

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"project":   "Garden App",
		"structure": "src/\n    main.py\ntests/\n    test_main.py\n",
	}))
	mustNotError(t, result, err)

	for _, rel := range []string{"src/main.py", "tests/test_main.py"} {
		if _, err := os.Stat(filepath.Join(store.Dir("garden-app"), filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing scaffolded entry %s: %v", rel, err)
		}
	}
	text := resultText(result)
	if !strings.Contains(text, "garden-app") || !strings.Contains(text, "**Files:** 2") {
		t.Errorf("unexpected response:\n%s", text)
	}

	recorded, err := runs.List("garden-app", 0)
	if err != nil {
		t.Fatalf("listing runs: %v", err)
	}
	if len(recorded) != 1 || recorded[0].Command != "scaffold" || recorded[0].Files != 2 {
		t.Errorf("recorded runs = %+v, want one scaffold run with 2 files", recorded)
	}
}

func TestScaffoldTool_MissingProject(t *testing.T) {
	tool := NewScaffoldTool(newStore(t), nil)

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"structure": "src/\n",
	}))
	mustBeToolError(t, result, err, "'project' is required")
}

func TestScaffoldTool_UnusableStructure(t *testing.T) {
	tool := NewScaffoldTool(newStore(t), nil)

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"project":   "app",
		"structure": "├──\n└──\n",
	}))
	mustBeToolError(t, result, err, "no usable entries")
}

// --- WriteFilesTool ---

func TestWriteFilesTool_WritesBlocks(t *testing.T) {
	store := newStore(t)
	runs := newRunLog(t)
	tool := NewWriteFilesTool(store, runs)

	content := "```python filename=src/main.py\nprint('hi')\n```\n\n" +
		"```text filename=README.md\nhello\n```\n"
	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"project": "app",
		"content": content,
	}))
	mustNotError(t, result, err)

	data, err := os.ReadFile(filepath.Join(store.Dir("app"), "src", "main.py"))
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(data) != "print('hi')" {
		t.Errorf("content = %q", data)
	}
	if !strings.Contains(resultText(result), "Wrote 2 file(s)") {
		t.Errorf("unexpected response:\n%s", resultText(result))
	}

	recorded, err := runs.List("app", 0)
	if err != nil {
		t.Fatalf("listing runs: %v", err)
	}
	if len(recorded) != 1 || recorded[0].Command != "write_files" {
		t.Errorf("recorded runs = %+v, want one write_files run", recorded)
	}
}

func TestWriteFilesTool_NoBlocks(t *testing.T) {
	tool := NewWriteFilesTool(newStore(t), nil)

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"project": "app",
		"content": "no fences here",
	}))
	mustBeToolError(t, result, err, "no file blocks")
}

func TestWriteFilesTool_UnsafePathReported(t *testing.T) {
	store := newStore(t)
	tool := NewWriteFilesTool(store, nil)

	content := "```python filename=src/ok.py\nfine = True\n```\n" +
		"```python filename=../evil.py\nbad = True\n```\n"
	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"project": "app",
		"content": content,
	}))
	mustNotError(t, result, err)

	if _, err := os.Stat(filepath.Join(store.Dir("app"), "src", "ok.py")); err != nil {
		t.Errorf("safe file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.BaseDir, "evil.py")); err == nil {
		t.Error("unsafe path escaped the project directory")
	}
	if !strings.Contains(resultText(result), "Warnings") {
		t.Errorf("response is missing the warning section:\n%s", resultText(result))
	}
}

// --- ReadContextTool ---

func TestReadContextTool_ReturnsPlansAndSources(t *testing.T) {
	store := newStore(t)
	if _, err := store.WriteDoc("app", project.PlanFile, "## The plan"); err != nil {
		t.Fatalf("WriteDoc failed: %v", err)
	}
	writeSource(t, store, "app", "src/main.py", "x = 1\n")
	tool := NewReadContextTool(store)

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"project": "app",
	}))
	mustNotError(t, result, err)

	text := resultText(result)
	if !strings.Contains(text, "## The plan") {
		t.Errorf("response is missing the plan:\n%s", text)
	}
	if !strings.Contains(text, "```python filename=src/main.py") {
		t.Errorf("response is missing the sources:\n%s", text)
	}
}

func TestReadContextTool_SourcesOnly(t *testing.T) {
	store := newStore(t)
	if _, err := store.WriteDoc("app", project.PlanFile, "## The plan"); err != nil {
		t.Fatalf("WriteDoc failed: %v", err)
	}
	tool := NewReadContextTool(store)

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"project": "app",
		"include": "sources",
	}))
	mustNotError(t, result, err)

	text := resultText(result)
	if strings.Contains(text, "## Plans") {
		t.Errorf("plans should be excluded:\n%s", text)
	}
	if !strings.Contains(text, "(no source files)") {
		t.Errorf("expected the empty-sources placeholder:\n%s", text)
	}
}

func TestReadContextTool_MissingProject(t *testing.T) {
	tool := NewReadContextTool(newStore(t))

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"project": "ghost",
	}))
	mustBeToolError(t, result, err, "not found")
}

// --- ListProjectsTool ---

func TestListProjectsTool_Empty(t *testing.T) {
	tool := NewListProjectsTool(newStore(t))

	result, err := tool.Handle(context.Background(), makeReq(nil))
	mustNotError(t, result, err)
	if !strings.Contains(resultText(result), "No projects yet") {
		t.Errorf("unexpected response:\n%s", resultText(result))
	}
}

func TestListProjectsTool_Table(t *testing.T) {
	store := newStore(t)
	if _, err := store.WriteDoc("alpha", project.IdeaFile, "idea"); err != nil {
		t.Fatalf("WriteDoc failed: %v", err)
	}
	writeSource(t, store, "beta", "src/main.py", "x = 1\n")
	tool := NewListProjectsTool(store)

	result, err := tool.Handle(context.Background(), makeReq(nil))
	mustNotError(t, result, err)

	text := resultText(result)
	if !strings.Contains(text, "| alpha | 1 | 0 |") || !strings.Contains(text, "| beta | 0 | 1 |") {
		t.Errorf("unexpected table:\n%s", text)
	}
}

// --- Resource ---

func TestResourceHandler_Projects(t *testing.T) {
	store := newStore(t)
	if _, err := store.WriteDoc("alpha", project.IdeaFile, "idea"); err != nil {
		t.Fatalf("WriteDoc failed: %v", err)
	}
	h := NewResourceHandler(store)

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "maai://projects"
	contents, err := h.HandleProjects(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleProjects failed: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("unexpected contents type %T", contents[0])
	}

	var infos []project.Info
	if err := json.Unmarshal([]byte(text.Text), &infos); err != nil {
		t.Fatalf("resource is not valid JSON: %v", err)
	}
	if len(infos) != 1 || infos[0].Slug != "alpha" || infos[0].Docs != 1 {
		t.Errorf("infos = %+v", infos)
	}
}

// --- Prompts ---

func TestCreatePrompt_IncludesProjectName(t *testing.T) {
	p := NewCreatePrompt()

	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{"project_name": "notes-app"}
	result, err := p.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if len(result.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(result.Messages))
	}
	tc, ok := result.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Messages[0].Content)
	}
	if !strings.Contains(tc.Text, "notes-app") || !strings.Contains(tc.Text, "maai_scaffold_project") {
		t.Errorf("prompt text unexpected:\n%s", tc.Text)
	}
}

func TestFixPrompt_DefaultsProjectName(t *testing.T) {
	p := NewFixPrompt()

	result, err := p.Handle(context.Background(), mcp.GetPromptRequest{})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	tc, ok := result.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Messages[0].Content)
	}
	if !strings.Contains(tc.Text, "my-project") || !strings.Contains(tc.Text, "maai_read_context") {
		t.Errorf("prompt text unexpected:\n%s", tc.Text)
	}
}
