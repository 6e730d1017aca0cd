// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ArticleStore: Article persistence. The core computes everything
//     per-request from the corpus this store supplies.
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ChunkIndex: Caches computed chunks keyed by article and chunk
//     index. Without it, chunks are recomputed on every request.
//   - TextAnalyzer: Keyword/entity extraction. A frequency/regex
//     implementation is always available as the default; a real NLP
//     backend can be substituted without changing call sites.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or analysis package
package driven
