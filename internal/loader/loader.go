// Package loader reads a directory tree of markdown files and turns
// each file into an article. Formatting noise (code blocks, emphasis,
// link URLs) is stripped, but heading lines and [[Title]] references
// are kept: headings feed chunk section metadata and references feed
// the knowledge graph.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
)

// Loader walks a root directory for markdown articles.
type Loader struct {
	root string
}

// New creates a loader rooted at dir.
func New(dir string) *Loader {
	return &Loader{root: dir}
}

// Load reads every markdown file under the root directory and returns
// the resulting articles ordered by slug. The first subdirectory below
// the root becomes the article category.
func (l *Loader) Load(ctx context.Context) ([]domain.Article, error) {
	var articles []domain.Article

	err := filepath.WalkDir(l.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() || !isMarkdown(entry.Name()) {
			return nil
		}

		article, err := l.loadFile(path, entry)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		articles = append(articles, *article)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].Slug < articles[j].Slug
	})
	return articles, nil
}

func (l *Loader) loadFile(path string, entry fs.DirEntry) (*domain.Article, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
	content := cleanMarkdown(string(raw))

	updatedAt := time.Now()
	if info, err := entry.Info(); err == nil {
		updatedAt = info.ModTime()
	}

	return &domain.Article{
		ID:        uuid.New().String(),
		Slug:      domain.Slugify(base),
		Title:     extractTitle(string(raw), base),
		Content:   content,
		Category:  l.category(path),
		CreatedAt: time.Now(),
		UpdatedAt: updatedAt,
	}, nil
}

// category returns the first subdirectory below the root, or empty for
// files that sit directly in the root.
func (l *Loader) category(path string) string {
	rel, err := filepath.Rel(l.root, path)
	if err != nil {
		return ""
	}
	dir := filepath.Dir(rel)
	if dir == "." {
		return ""
	}
	parts := strings.Split(dir, string(filepath.Separator))
	return parts[0]
}

func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// extractTitle takes the first H1 heading, falling back to the
// filename with separators turned into spaces.
func extractTitle(content, base string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}

	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return base
}

var (
	codeBlockRe    = regexp.MustCompile("(?s)```[^`]*```")
	inlineCodeRe   = regexp.MustCompile("`[^`]+`")
	imageRe        = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	linkRe         = regexp.MustCompile(`\[([^\]\[]+)\]\([^)]+\)`)
	blockquoteRe   = regexp.MustCompile(`(?m)^>\s*`)
	listMarkerRe   = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	numberedRe     = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
)

// cleanMarkdown removes formatting that would pollute chunk content.
// Heading markers and [[Title]] references survive on purpose.
func cleanMarkdown(content string) string {
	content = codeBlockRe.ReplaceAllString(content, "")
	content = inlineCodeRe.ReplaceAllString(content, "")
	content = imageRe.ReplaceAllString(content, "")
	content = linkRe.ReplaceAllString(content, "$1")
	content = blockquoteRe.ReplaceAllString(content, "")
	content = listMarkerRe.ReplaceAllString(content, "")
	content = numberedRe.ReplaceAllString(content, "")

	content = strings.ReplaceAll(content, "**", "")
	content = strings.ReplaceAll(content, "__", "")

	content = multiNewlineRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
