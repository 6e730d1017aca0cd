// Package domain defines the core business entities for wikidex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Article: A wiki article supplied by the storage layer
//   - Chunk: A bounded span of article text, the atomic retrieval unit
//   - KnowledgeGraph: Articles connected by references and similarity
//   - AtomicAnswer: A 40-60 word citation-sized answer block
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
