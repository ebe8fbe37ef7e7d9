package site

import (
	"fmt"
	"html/template"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ziadkadry99/docsearch/internal/walker"
)

// FileTree represents a node in the sidebar navigation tree.
type FileTree struct {
	Name     string
	Title    string // Display name from the page's H1, or formatted from the name.
	Path     string // For files: relative markdown path. For dirs: directory path.
	IsDir    bool
	Children []*FileTree
}

// BuildTree constructs a FileTree from a list of relative markdown paths.
// titleMap is an optional map of relative path -> display title.
func BuildTree(paths []string, titleMap map[string]string) *FileTree {
	root := &FileTree{Name: "docs", IsDir: true}

	for _, p := range paths {
		p = filepath.ToSlash(p)
		parts := strings.Split(p, "/")
		current := root
		for i, part := range parts {
			isLast := i == len(parts)-1
			var next *FileTree
			for _, child := range current.Children {
				if child.Name == part {
					next = child
					break
				}
			}
			if next == nil {
				next = &FileTree{Name: part, IsDir: !isLast}
				if isLast {
					next.Path = p
					next.Title = titleMap[p]
				} else {
					next.Path = strings.Join(parts[:i+1], "/")
					next.Title = formatDirName(part)
				}
				current.Children = append(current.Children, next)
			}
			current = next
		}
	}

	sortTree(root)
	return root
}

// sortTree recursively sorts children: directories first, then files, by name.
func sortTree(node *FileTree) {
	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		if child.IsDir {
			sortTree(child)
		}
	}
}

// ToHTML renders the tree as nested lists for the sidebar. Directories on
// the path to activePath start expanded; the rest are collapsed.
// relRoot is the relative prefix back to the site root (e.g. "../").
func (t *FileTree) ToHTML(activePath, relRoot string) string {
	ancestors := activeAncestors(activePath)

	var b strings.Builder
	homeActive := ""
	if activePath == "index.md" {
		homeActive = ` class="active"`
	}
	fmt.Fprintf(&b, `<ul><li class="file home-link"><a href="%sindex.html"%s>Home</a></li></ul>`+"\n", relRoot, homeActive)

	renderChildren(&b, t, activePath, relRoot, ancestors)
	return b.String()
}

// activeAncestors returns the directory paths above activePath.
// For "guide/setup/install.md" it returns {"guide", "guide/setup"}.
func activeAncestors(activePath string) map[string]bool {
	ancestors := make(map[string]bool)
	parts := strings.Split(filepath.ToSlash(activePath), "/")
	for i := 1; i < len(parts); i++ {
		ancestors[strings.Join(parts[:i], "/")] = true
	}
	return ancestors
}

func renderChildren(b *strings.Builder, node *FileTree, activePath, relRoot string, ancestors map[string]bool) {
	if len(node.Children) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, child := range node.Children {
		if child.IsDir {
			state := "collapsed"
			if ancestors[child.Path] {
				state = "expanded"
			}
			label := child.Title
			if label == "" {
				label = child.Name
			}
			fmt.Fprintf(b, `<li class="dir %s"><button type="button" class="dir-toggle" aria-expanded="%t">%s</button>`+"\n",
				state, state == "expanded", template.HTMLEscapeString(label))
			renderChildren(b, child, activePath, relRoot, ancestors)
			b.WriteString("</li>\n")
			continue
		}
		if child.Path == "index.md" {
			continue
		}
		label := child.Title
		if label == "" {
			label = cleanDisplayName(child.Name)
		}
		active := ""
		if child.Path == activePath {
			active = ` class="active" aria-current="page"`
		}
		fmt.Fprintf(b, `<li class="file"><a href="%s%s"%s>%s</a></li>`+"\n",
			relRoot, mdPathToHTML(child.Path), active, template.HTMLEscapeString(label))
	}
	b.WriteString("</ul>\n")
}

// mdPathToHTML converts a markdown path to its HTML equivalent.
func mdPathToHTML(p string) string {
	if walker.IsMarkdown(p) {
		return strings.TrimSuffix(p, filepath.Ext(p)) + ".html"
	}
	return p
}

// cleanDisplayName strips the markdown extension.
func cleanDisplayName(name string) string {
	if walker.IsMarkdown(name) {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

// formatDirName title-cases a directory slug: "linear-algebra" -> "Linear Algebra".
func formatDirName(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
