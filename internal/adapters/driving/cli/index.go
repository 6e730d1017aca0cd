package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/wikidex/wikidex-cli/internal/analysis"
	"github.com/wikidex/wikidex-cli/internal/core/domain"
	"github.com/wikidex/wikidex-cli/internal/loader"
	"github.com/wikidex/wikidex-cli/internal/logger"
)

var indexWatch bool

// reindexInterval bounds how often watch mode rebuilds the index while
// a burst of file events is arriving.
const reindexInterval = 2 * time.Second

var indexCmd = &cobra.Command{
	Use:   "index [dir]",
	Short: "Index a directory of markdown articles",
	Long: `Loads every markdown file under the directory, extracts keywords,
stores the articles and caches their chunks. With --watch the command
keeps running and re-indexes when files change.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().BoolVarP(&indexWatch, "watch", "w", false, "re-index when files change")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if articleStore == nil || chunkCache == nil || chunkPipeline == nil {
		return errors.New("storage not configured")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("reading directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	ctx := context.Background()
	if err := indexDirectory(ctx, cmd, dir); err != nil {
		return err
	}

	if !indexWatch {
		return nil
	}
	return watchDirectory(cmd, dir)
}

// indexDirectory loads the tree and upserts every article. Articles
// already stored under the same slug keep their ID and creation time
// so re-indexing is idempotent.
func indexDirectory(ctx context.Context, cmd *cobra.Command, dir string) error {
	articles, err := loader.New(dir).Load(ctx)
	if err != nil {
		return fmt.Errorf("loading articles: %w", err)
	}

	logger.Section("Indexing")
	indexed := 0
	for i := range articles {
		article := &articles[i]

		if existing, err := articleStore.GetBySlug(ctx, article.Slug); err == nil {
			article.ID = existing.ID
			article.CreatedAt = existing.CreatedAt
		} else if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("checking existing article: %w", err)
		}

		article.Keywords = analyzerService.Keywords(article.Content, analysis.DefaultMaxKeywords)

		if err := articleStore.Save(ctx, article); err != nil {
			return fmt.Errorf("saving %s: %w", article.Slug, err)
		}

		chunks, err := chunkPipeline.Process(ctx, article)
		if err != nil {
			return fmt.Errorf("chunking %s: %w", article.Slug, err)
		}
		if err := chunkCache.Put(ctx, article.ID, chunks); err != nil {
			logger.Warn("caching chunks for %s: %v", article.Slug, err)
		}

		logger.Debug("indexed %s (%d chunks)", article.Slug, len(chunks))
		indexed++
	}

	cmd.Printf("Indexed %d articles from %s\n", indexed, dir)
	return nil
}

// watchDirectory blocks, re-indexing on markdown changes until
// interrupted. Event bursts are coalesced through a rate limiter.
func watchDirectory(cmd *cobra.Command, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchTree(watcher, dir); err != nil {
		return fmt.Errorf("watching directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := rate.NewLimiter(rate.Every(reindexInterval), 1)
	cmd.Printf("Watching %s for changes (ctrl-c to stop)\n", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			logger.Debug("change detected: %s %s", event.Op, event.Name)

			// New subdirectories need their own watch before the
			// rebuild so later events are not missed.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addWatchTree(watcher, event.Name); err != nil {
						logger.Warn("watching %s: %v", event.Name, err)
					}
				}
			}

			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			drainEvents(watcher)

			if err := indexDirectory(ctx, cmd, dir); err != nil {
				logger.Warn("re-index failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-ctx.Done():
			cmd.Println("Stopping watch.")
			return nil
		}
	}
}

func addWatchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// relevantEvent reports whether an event should trigger a re-index:
// any change to a markdown file, or a create/remove of a directory.
func relevantEvent(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	if ext == ".md" || ext == ".markdown" {
		return true
	}
	info, err := os.Stat(event.Name)
	return err == nil && info.IsDir()
}

// drainEvents discards whatever is queued so one rebuild covers the
// whole burst.
func drainEvents(watcher *fsnotify.Watcher) {
	for {
		select {
		case <-watcher.Events:
		default:
			return
		}
	}
}
