package postprocessors

import (
	"fmt"

	"github.com/wikidex/wikidex-cli/internal/core/domain"
	"github.com/wikidex/wikidex-cli/internal/core/ports/driven"
	"github.com/wikidex/wikidex-cli/internal/postprocessors/chunker"
)

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register("chunker", buildChunker)
}

// buildChunker creates a chunker processor from generic config.
// Supported config keys:
//   - chunk_size (int): Characters per chunk (default: 1024)
//   - overlap (int): Overlapping characters between chunks (default: 128)
//
// An overlap that reaches the chunk size is rejected: a user config
// asking for zero net progress is a mistake worth surfacing rather
// than silently clamping.
func buildChunker(cfg map[string]any) (driven.PostProcessor, error) {
	var opts []chunker.Option

	if cfg != nil {
		size := getIntFromConfig(cfg, "chunk_size")
		overlap := getIntFromConfig(cfg, "overlap")

		effectiveSize := size
		if effectiveSize <= 0 {
			effectiveSize = chunker.DefaultChunkSize
		}
		if overlap >= effectiveSize {
			return nil, fmt.Errorf("%w: overlap %d >= chunk size %d",
				domain.ErrInvalidChunking, overlap, effectiveSize)
		}

		if size > 0 {
			opts = append(opts, chunker.WithChunkSize(size))
		}
		if overlap >= 0 {
			opts = append(opts, chunker.WithOverlap(overlap))
		}
	}

	return chunker.New(opts...), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
