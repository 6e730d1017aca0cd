// Package sqlite provides SQLite-backed implementations of the
// storage ports: the article store and the chunk index. A single
// database file holds both, with chunks keyed by (article_id,
// chunk_index) so cached chunk sets can be replaced atomically.
package sqlite
