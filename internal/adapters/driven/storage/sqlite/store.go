package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/wikidex/wikidex-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/wikidex/wikidex-cli/internal/core/domain"
	"github.com/wikidex/wikidex-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides the article
// store and chunk index interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.wikidex/data/wikidex.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".wikidex", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "wikidex.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ArticleStore returns an ArticleStore interface backed by this store.
func (s *Store) ArticleStore() driven.ArticleStore {
	return &articleStore{store: s}
}

// ChunkIndex returns a ChunkIndex interface backed by this store.
func (s *Store) ChunkIndex() driven.ChunkIndex {
	return &chunkIndex{store: s}
}

func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Article Store ====================

// articleStore implements driven.ArticleStore.
type articleStore struct {
	store *Store
}

var _ driven.ArticleStore = (*articleStore)(nil)

// Save stores or updates an article.
func (s *articleStore) Save(ctx context.Context, article *domain.Article) error {
	if article == nil || article.ID == "" {
		return domain.ErrInvalidInput
	}

	keywordsJSON, err := json.Marshal(article.Keywords)
	if err != nil {
		return fmt.Errorf("marshalling keywords: %w", err)
	}

	now := time.Now().UTC()
	createdAt := article.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO articles (id, slug, title, content, category, keywords, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			slug = excluded.slug,
			title = excluded.title,
			content = excluded.content,
			category = excluded.category,
			keywords = excluded.keywords,
			updated_at = excluded.updated_at
	`, article.ID, article.Slug, article.Title, article.Content,
		article.Category, string(keywordsJSON), createdAt, now)
	if err != nil {
		return fmt.Errorf("saving article: %w", err)
	}
	return nil
}

// Get retrieves an article by ID.
func (s *articleStore) Get(ctx context.Context, id string) (*domain.Article, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, slug, title, content, category, keywords, created_at, updated_at
		FROM articles WHERE id = ?
	`, id)
	return scanArticle(row)
}

// GetBySlug retrieves an article by slug.
func (s *articleStore) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, slug, title, content, category, keywords, created_at, updated_at
		FROM articles WHERE slug = ?
	`, slug)
	return scanArticle(row)
}

// List returns all articles, ordered by title.
func (s *articleStore) List(ctx context.Context) ([]domain.Article, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, slug, title, content, category, keywords, created_at, updated_at
		FROM articles ORDER BY title, id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		article, err := scanArticleRow(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
	}
	return articles, rows.Err()
}

// Delete removes an article and, via the foreign key, its chunks.
func (s *articleStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting article: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row *sql.Row) (*domain.Article, error) {
	article, err := scanArticleRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return article, err
}

func scanArticleRow(row rowScanner) (*domain.Article, error) {
	var a domain.Article
	var keywordsJSON string
	if err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Content, &a.Category,
		&keywordsJSON, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(keywordsJSON), &a.Keywords); err != nil {
		return nil, fmt.Errorf("unmarshalling keywords: %w", err)
	}
	return &a, nil
}

// ==================== Chunk Index ====================

// chunkIndex implements driven.ChunkIndex.
type chunkIndex struct {
	store *Store
}

var _ driven.ChunkIndex = (*chunkIndex)(nil)

// Put replaces the cached chunks for an article atomically.
func (c *chunkIndex) Put(ctx context.Context, articleID string, chunks []domain.Chunk) error {
	if articleID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM chunks WHERE article_id = ?", articleID); err != nil {
		return fmt.Errorf("clearing chunks: %w", err)
	}

	for _, chunk := range chunks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO chunks (article_id, chunk_index, id, content, title, section, token_count, start_char, end_char)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, articleID, chunk.Index, chunk.ID, chunk.Content, chunk.Metadata.Title,
			chunk.Metadata.Section, chunk.Metadata.TokenCount,
			chunk.Metadata.StartChar, chunk.Metadata.EndChar)
		if err != nil {
			return fmt.Errorf("inserting chunk %d: %w", chunk.Index, err)
		}
	}

	return tx.Commit()
}

// Get returns the cached chunks for an article ordered by chunk index.
func (c *chunkIndex) Get(ctx context.Context, articleID string) ([]domain.Chunk, error) {
	rows, err := c.store.db.QueryContext(ctx, `
		SELECT article_id, chunk_index, id, content, title, section, token_count, start_char, end_char
		FROM chunks WHERE article_id = ? ORDER BY chunk_index
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var chunks []domain.Chunk
	for rows.Next() {
		var ch domain.Chunk
		if err := rows.Scan(&ch.ArticleID, &ch.Index, &ch.ID, &ch.Content,
			&ch.Metadata.Title, &ch.Metadata.Section, &ch.Metadata.TokenCount,
			&ch.Metadata.StartChar, &ch.Metadata.EndChar); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}
		chunks = append(chunks, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(chunks) == 0 {
		return nil, domain.ErrNotFound
	}
	return chunks, nil
}

// Invalidate drops the cached chunks for an article.
func (c *chunkIndex) Invalidate(ctx context.Context, articleID string) error {
	_, err := c.store.db.ExecContext(ctx, "DELETE FROM chunks WHERE article_id = ?", articleID)
	if err != nil {
		return fmt.Errorf("invalidating chunks: %w", err)
	}
	return nil
}
