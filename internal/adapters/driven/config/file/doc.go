// Package file implements the configuration store port on top of a
// TOML file in the wikidex config directory. Nested tables are
// flattened into dot-notation keys, so [chunking] chunk_size is read
// as "chunking.chunk_size".
package file
