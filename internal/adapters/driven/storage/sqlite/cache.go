package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/courtside-labs/courtside-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
)

// Ensure Cache implements the interface.
var _ driven.DatasetCache = (*Cache)(nil)

// Cache is the SQLite-backed dataset cache.
type Cache struct {
	db   *sql.DB
	path string
}

// NewCache creates a new SQLite cache at the specified data directory.
// If dataDir is empty, defaults to ~/.courtside/data.
func NewCache(dataDir string) (*Cache, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".courtside", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "corpus.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	c := &Cache{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := c.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return c, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.path
}

// Load returns the cached corpus for the reference.
// Returns domain.ErrCacheMiss unless a complete fetch is recorded.
func (c *Cache) Load(ctx context.Context, ref domain.DatasetRef) ([]domain.Document, error) {
	if _, err := c.Info(ctx, ref); err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT id, title, content, url, source, split, fetched_at
		FROM documents
		WHERE dataset = ? AND sport = ?
		ORDER BY position
	`, ref.Name, ref.Sport)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document //nolint:prealloc // size unknown from query
	for rows.Next() {
		var doc domain.Document
		var fetchedAt sql.NullTime
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Content, &doc.URL, &doc.Source, &doc.Split, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		if fetchedAt.Valid {
			doc.FetchedAt = fetchedAt.Time
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return docs, nil
}

// Store replaces the cached corpus for the reference and records the
// fetch as complete. The write is transactional, so a crashed store
// leaves the previous corpus intact.
func (c *Cache) Store(ctx context.Context, ref domain.DatasetRef, docs []domain.Document) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM documents WHERE dataset = ? AND sport = ?",
		ref.Name, ref.Sport); err != nil {
		return fmt.Errorf("clearing documents: %w", err)
	}

	now := time.Now().UTC()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (dataset, sport, id, position, title, content, url, source, split, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for position, doc := range docs {
		fetchedAt := doc.FetchedAt
		if fetchedAt.IsZero() {
			fetchedAt = now
		}
		if _, err := stmt.ExecContext(ctx, ref.Name, ref.Sport, doc.ID, position,
			doc.Title, doc.Content, doc.URL, doc.Source, doc.Split, fetchedAt.UTC()); err != nil {
			return fmt.Errorf("inserting document %q: %w", doc.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO fetches (dataset, sport, fetched_at, documents)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(dataset, sport) DO UPDATE SET
			fetched_at = excluded.fetched_at,
			documents = excluded.documents
	`, ref.Name, ref.Sport, now, len(docs)); err != nil {
		return fmt.Errorf("recording fetch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing corpus: %w", err)
	}
	return nil
}

// Info returns when the cached corpus was fetched and its size.
// Returns domain.ErrCacheMiss when nothing is cached.
func (c *Cache) Info(ctx context.Context, ref domain.DatasetRef) (driven.CacheInfo, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT fetched_at, documents FROM fetches WHERE dataset = ? AND sport = ?
	`, ref.Name, ref.Sport)

	var info driven.CacheInfo
	var fetchedAt sql.NullTime
	if err := row.Scan(&fetchedAt, &info.Documents); err != nil {
		if err == sql.ErrNoRows {
			return driven.CacheInfo{}, domain.ErrCacheMiss
		}
		return driven.CacheInfo{}, fmt.Errorf("scanning fetch record: %w", err)
	}
	if fetchedAt.Valid {
		info.FetchedAt = fetchedAt.Time
	}

	return info, nil
}

// Invalidate removes the cached corpus for the reference.
func (c *Cache) Invalidate(ctx context.Context, ref domain.DatasetRef) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM documents WHERE dataset = ? AND sport = ?",
		ref.Name, ref.Sport); err != nil {
		return fmt.Errorf("deleting documents: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM fetches WHERE dataset = ? AND sport = ?",
		ref.Name, ref.Sport); err != nil {
		return fmt.Errorf("deleting fetch record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing invalidation: %w", err)
	}
	return nil
}

// migrate runs all pending migrations.
func (c *Cache) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := c.db.Exec(`
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
	row := c.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
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
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := c.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := c.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
