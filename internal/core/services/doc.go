// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO or external state. Every
// computation is derived per-request from the article corpus the
// store supplies; nothing is cached between calls unless the caller
// provides a ChunkIndex.
package services
