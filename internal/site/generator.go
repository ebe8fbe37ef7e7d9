package site

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/docsearch/internal/basepath"
	"github.com/ziadkadry99/docsearch/internal/progress"
	"github.com/ziadkadry99/docsearch/internal/search"
	"github.com/ziadkadry99/docsearch/internal/searchindex"
	"github.com/ziadkadry99/docsearch/internal/walker"
)

// ErrNoDocs is returned when the docs directory holds no markdown pages.
var ErrNoDocs = errors.New("no markdown files found")

// SiteGenerator converts markdown documentation into a static HTML site
// with a search index.
type SiteGenerator struct {
	DocsDir    string
	OutputDir  string
	SiteName   string
	BasePath   string
	IndexFile  string
	MaxResults int
	Exclude    []string
	Reporter   progress.Reporter
	Logger     *slog.Logger

	// BuildID is set by Generate and appended to asset URLs.
	BuildID string
}

// NewSiteGenerator creates a SiteGenerator with the given directories.
func NewSiteGenerator(docsDir, outputDir, siteName string) *SiteGenerator {
	return &SiteGenerator{
		DocsDir:    docsDir,
		OutputDir:  outputDir,
		SiteName:   siteName,
		IndexFile:  basepath.DefaultIndexFile,
		MaxResults: search.DefaultLimit,
		Reporter:   progress.Nop{},
		Logger:     slog.Default(),
	}
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title      string
	SiteName   string
	Content    template.HTML
	TreeHTML   template.HTML
	TOC        []TOCEntry
	RelRoot    string
	BasePath   string
	IndexFile  string
	MaxResults int
	BuildID    string
}

// Generate builds the full static site. Returns the number of pages generated.
func (g *SiteGenerator) Generate() (int, error) {
	mdPaths, assets, err := g.collect()
	if err != nil {
		return 0, fmt.Errorf("walking docs dir: %w", err)
	}
	if len(mdPaths) == 0 {
		return 0, fmt.Errorf("%w in %s", ErrNoDocs, g.DocsDir)
	}

	md := newMarkdown()
	pages := make(map[string]*page, len(mdPaths))
	titles := make(map[string]string, len(mdPaths))
	entries := make([]searchindex.Entry, 0, len(mdPaths))
	for _, relPath := range mdPaths {
		src, err := os.ReadFile(filepath.Join(g.DocsDir, filepath.FromSlash(relPath)))
		if err != nil {
			return 0, err
		}
		p, err := parsePage(md, src)
		if err != nil {
			return 0, fmt.Errorf("parsing %s: %w", relPath, err)
		}
		pages[relPath] = p
		titles[relPath] = p.Title
		entries = append(entries, searchEntry(relPath, p))
	}

	tree := BuildTree(mdPaths, titles)

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}
	indexPath := filepath.Join(g.OutputDir, filepath.FromSlash(g.indexFile()))
	if err := os.MkdirAll(filepath.Dir(indexPath), 0o755); err != nil {
		return 0, err
	}
	if err := searchindex.Write(entries, indexPath); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	g.BuildID = uuid.NewString()
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	reporter := g.reporter()
	reporter.Start(len(mdPaths))
	for i, relPath := range mdPaths {
		reporter.Update(i+1, relPath)
		if err := g.renderPage(tmpl, tree, relPath, pages[relPath]); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", relPath, err)
		}
	}
	reporter.Finish()

	for _, relPath := range assets {
		if err := copyFile(filepath.Join(g.DocsDir, filepath.FromSlash(relPath)), filepath.Join(g.OutputDir, filepath.FromSlash(relPath))); err != nil {
			g.logger().Warn("skipping asset", "path", relPath, "error", err)
		}
	}

	g.logger().Info("site generated", "pages", len(mdPaths), "index", indexPath, "build_id", g.BuildID)
	return len(mdPaths), nil
}

// collect walks DocsDir and splits non-excluded files into markdown pages
// and static assets, both as slash-separated relative paths.
func (g *SiteGenerator) collect() (mdPaths, assets []string, err error) {
	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: g.DocsDir,
		Exclude: g.Exclude,
	})
	if err != nil {
		return nil, nil, err
	}
	for _, f := range files {
		if f.Kind == walker.Page {
			mdPaths = append(mdPaths, f.RelPath)
		} else {
			assets = append(assets, f.RelPath)
		}
	}
	return mdPaths, assets, nil
}

// renderPage writes a single parsed markdown page as HTML.
func (g *SiteGenerator) renderPage(tmpl *template.Template, tree *FileTree, relPath string, p *page) error {
	htmlRelPath := mdPathToHTML(relPath)
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(htmlRelPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	relRoot := strings.Repeat("../", strings.Count(htmlRelPath, "/"))

	title := p.Title
	if title == "" {
		title = cleanDisplayName(filepath.Base(relPath))
	}

	data := pageData{
		Title:      title,
		SiteName:   g.SiteName,
		Content:    template.HTML(rewriteMDLinks(p.HTML)),
		TreeHTML:   template.HTML(tree.ToHTML(relPath, relRoot)),
		TOC:        p.TOC,
		RelRoot:    relRoot,
		BasePath:   basepath.Clean(g.BasePath),
		IndexFile:  g.indexFile(),
		MaxResults: search.ClampLimit(g.MaxResults),
		BuildID:    g.BuildID,
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

func (g *SiteGenerator) indexFile() string {
	name := strings.TrimLeft(g.IndexFile, "/")
	if name == "" {
		return basepath.DefaultIndexFile
	}
	return name
}

func (g *SiteGenerator) reporter() progress.Reporter {
	if g.Reporter == nil {
		return progress.Nop{}
	}
	return g.Reporter
}

func (g *SiteGenerator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// rewriteMDLinks changes .md links in rendered HTML to .html links.
func rewriteMDLinks(content string) string {
	content = strings.ReplaceAll(content, `.md"`, `.html"`)
	return strings.ReplaceAll(content, `.md#`, `.html#`)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
