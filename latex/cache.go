package latex

import (
	"bytes"
	"context"
	"encoding/gob"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// cache stores parsed trees keyed by combined source and config hash.
// Trees are immutable once built, so cached values are shared safely
// across callers.
var cache sync.Map

// entry tracks the one-time parse of a source. Keys are hashes, so each
// entry also records the exact source and config it was stored under;
// lookups compare both before trusting a hit.
type entry struct {
	source string
	cfgKey string
	expr   Expr
	err    error
	once   sync.Once
}

// configKey encodes the parse-relevant config fields using gob. Two configs
// that produce the same tree for the same source encode equal.
func configKey(cfg config) string {
	var buf bytes.Buffer

	enc := gob.NewEncoder(&buf)

	_ = enc.Encode(cfg.maxDepth)
	_ = enc.Encode(cfg.maxInput)
	_ = enc.Encode(cfg.partial)

	return buf.String()
}

// ParseReader parses an expression from an io.Reader.
// The parsed tree is cached by content hash for efficiency.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (Expr, error) {
	// Wrap reader with async read-ahead for concurrent I/O.
	// This allows data to be pre-fetched while we process previous chunks.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	cfg := makeConfig(opts...)

	cfg.logger.TraceContext(ctx, "read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true))

	return ParseCached(ctx, string(data), opts...)
}

// ParseCached parses an expression from a string, memoizing the result.
// Repeated parses of the same source with the same options return the same
// tree without re-running the grammar.
func ParseCached(
	ctx context.Context,
	source string,
	opts ...Option,
) (Expr, error) {
	cfg := makeConfig(opts...)

	// Combine source hash with config hash for the cache key.
	cfgKey := configKey(cfg)
	sourceHash := xxh3.Hash([]byte(source))
	cfgHash := xxh3.Hash([]byte(cfgKey))
	key := strconv.FormatUint(sourceHash^cfgHash, 36)

	value, hit := cache.LoadOrStore(key, &entry{source: source, cfgKey: cfgKey})

	cached, ok := value.(*entry)
	if !ok || cached.source != source || cached.cfgKey != cfgKey {
		// A different source or config hashed to the same key. Parse without
		// memoizing rather than hand back the colliding tree.
		return ParseString(ctx, source, opts...)
	}

	cfg.logger.TraceContext(ctx, "cache lookup",
		slog.String("source_hash", strconv.FormatUint(sourceHash, 16)),
		slog.String("config_hash", strconv.FormatUint(cfgHash, 16)),
		slog.Bool("cache_hit", hit))

	cached.once.Do(func() {
		cached.expr, cached.err = ParseString(ctx, source, opts...)
	})

	return cached.expr, cached.err
}

// ClearCache removes all cached trees.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	cache.Clear()
}
