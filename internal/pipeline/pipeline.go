package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ppiankov/nameparser/internal/cache"
	"github.com/ppiankov/nameparser/internal/model"
	"github.com/ppiankov/nameparser/internal/parse"
	"github.com/ppiankov/nameparser/internal/worker"
)

// Pipeline orchestrates parsing: cache lookup, parse, cache store, and
// fan-out of several names over the worker pool
type Pipeline struct {
	cache  cache.Cache // nil when caching is disabled
	batch  *worker.BatchProcessor
	logger *zap.Logger
	config *model.Config
}

// NewPipeline creates a new pipeline with the given configuration. A nil
// logger is replaced by a no-op logger.
func NewPipeline(cfg *model.Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Pipeline{
		logger: logger,
		config: cfg,
	}
	if cfg.Cache.Enabled {
		p.cache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}
	p.batch = worker.NewBatchProcessor(p, cfg.Concurrency.Workers)

	return p
}

// Parse parses one name, serving repeated inputs from the cache
func (p *Pipeline) Parse(input string) model.ParsedName {
	var key string
	if p.cache != nil {
		key = cache.CacheKey(input)
		if name, found := p.cache.Get(key); found {
			p.logger.Debug("cache hit", zap.String("input", input))
			return name
		}
	}

	name := parse.Parse(input)
	p.logger.Debug("parsed name",
		zap.String("input", input),
		zap.String("fore_name", name.ForeName.String()),
		zap.String("sur_name", name.SurName.String()),
		zap.Int("aliases", len(name.Aliases)),
		zap.Strings("flags", name.Flags()))

	if p.cache != nil {
		p.cache.Set(key, name, 0)
	}
	return name
}

// ParseAll parses every input and returns the records in input order
func (p *Pipeline) ParseAll(ctx context.Context, inputs []string) ([]model.ParsedName, error) {
	p.logger.Debug("parsing batch",
		zap.Int("names", len(inputs)),
		zap.Int("workers", p.config.Concurrency.Workers))

	results, err := p.batch.ProcessNames(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("parse names: %w", err)
	}

	names := make([]model.ParsedName, len(results))
	for i, res := range results {
		names[i] = res.Name
	}
	return names, nil
}

// CacheLen returns the number of cached records, or 0 when caching is off
func (p *Pipeline) CacheLen() int {
	if p.cache == nil {
		return 0
	}
	return p.cache.Len()
}
