// Package sqlite provides the SQLite-backed dataset cache.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. The cache persists the deduplicated
// corpus between runs so repeat invocations skip the dataset download:
//
//   - fetches: one row per dataset reference, recording a complete fetch
//   - documents: the deduplicated passages in corpus order
//
// A corpus is only served from cache when its fetch record exists, so a
// crashed download is fetched again rather than half-loaded.
//
// # Schema
//
// The database schema is managed through versioned migrations embedded from
// the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.courtside/data/corpus.db
//
// # Thread Safety
//
// All operations are thread-safe. The cache uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
