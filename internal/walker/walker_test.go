package walker

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

// testdataDir returns the absolute path to the testdata/sample_docs directory.
func testdataDir(t *testing.T) string {
	t.Helper()
	// Navigate from internal/walker to project root.
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	walkerDir := filepath.Dir(filename)
	root := filepath.Join(walkerDir, "..", "..", "testdata", "sample_docs")
	abs, err := filepath.Abs(root)
	if err != nil {
		t.Fatalf("resolve testdata path: %v", err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		t.Fatalf("testdata dir does not exist: %s", abs)
	}
	return abs
}

func relPaths(files []FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

func TestWalk_BasicTraversal(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(WalkerConfig{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{
		"drafts/topology.md",
		"guide/_partial.md",
		"guide/calculus.md",
		"guide/linear-algebra.md",
		"img/diagram.gif",
		"index.md",
	}
	if got := relPaths(files); !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalk_FileInfoFields(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(WalkerConfig{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		if !filepath.IsAbs(f.Path) {
			t.Errorf("FileInfo.Path %q is not absolute", f.Path)
		}
		if f.Size <= 0 {
			t.Errorf("FileInfo.Size for %s is %d, expected > 0", f.RelPath, f.Size)
		}
		wantKind := Asset
		if filepath.Ext(f.RelPath) == ".md" {
			wantKind = Page
		}
		if f.Kind != wantKind {
			t.Errorf("FileInfo.Kind for %s = %v, want %v", f.RelPath, f.Kind, wantKind)
		}
	}
}

func TestWalk_ExcludeFilter(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(WalkerConfig{
		RootDir: dir,
		Exclude: []string{"**/_*.md", "**/drafts/**"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{"guide/calculus.md", "guide/linear-algebra.md", "img/diagram.gif", "index.md"}
	if got := relPaths(files); !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalk_Gitignore(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(WalkerConfig{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		switch f.RelPath {
		case "scratch/notes.md":
			t.Error("gitignored directory scratch/ was walked")
		case "guide/cache.tmp":
			t.Error("gitignored *.tmp file was returned")
		case ".gitignore":
			t.Error("hidden file was returned")
		}
	}
}

func TestWalk_SkipsLargeAssets(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(WalkerConfig{RootDir: dir, MaxFileSize: 3})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	var pages int
	for _, f := range files {
		if f.Kind == Asset {
			t.Errorf("asset %s larger than limit was returned", f.RelPath)
		}
		pages++
	}
	if pages != 5 {
		t.Errorf("expected pages to ignore the size limit, got %d", pages)
	}
}

func TestWalk_DefaultExcludeDirs(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []string{"index.md", "node_modules/pkg/readme.md", "_site/index.md", ".cache/page.md"} {
		full := filepath.Join(dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("# Page\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := Walk(WalkerConfig{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); !reflect.DeepEqual(got, []string{"index.md"}) {
		t.Errorf("Walk() = %v, want only index.md", got)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	_, err := Walk(WalkerConfig{RootDir: filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestMatchesExclude_Empty(t *testing.T) {
	if MatchesExclude("index.md", nil) {
		t.Error("empty patterns should exclude nothing")
	}
}

func TestMatchesExclude_Pattern(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"guide/_partial.md", "**/_*.md", true},
		{"_index.md", "**/_*.md", true},
		{"guide/calculus.md", "**/_*.md", false},
		{"drafts/a/b.md", "**/drafts/**", true},
		{"notes.tmp", "*.tmp", true},
		{"guide/notes.tmp", "*.tmp", true},
	}
	for _, tt := range tests {
		if got := MatchesExclude(tt.path, []string{tt.pattern}); got != tt.want {
			t.Errorf("MatchesExclude(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}

func TestIsMarkdown(t *testing.T) {
	for name, want := range map[string]bool{
		"index.md":       true,
		"README.MD":      true,
		"notes.markdown": true,
		"diagram.gif":    false,
		"md":             false,
	} {
		if got := IsMarkdown(name); got != want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", name, got, want)
		}
	}
}
