package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/keyedit/pkg/cache"
	"github.com/matzehuels/keyedit/pkg/layout"
	"github.com/matzehuels/keyedit/pkg/observability"
)

// Runner executes exports with caching. It holds no per-export state, so
// one Runner may serve concurrent requests (the preview server does).
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	Hooks  observability.CacheHooks
}

// NewRunner creates a runner. A nil keyer uses the DefaultKeyer and a nil
// cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		Hooks:  observability.NoopCacheHooks{},
	}
}

// Execute loads the layout at path and renders it.
func (r *Runner) Execute(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	loadStart := time.Now()
	l, err := layout.ReadFile(path)
	if err != nil {
		return nil, err
	}
	result := &Result{}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.KeyCount = l.KeyCount()

	r.Logger.Info("loaded layout",
		"name", l.Name,
		"keys", result.Stats.KeyCount,
		"extensions", len(l.Extensions),
		"duration", result.Stats.LoadTime)

	renderStart := time.Now()
	artifacts, hit, err := r.Render(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheHit = hit
	result.Stats.RenderTime = time.Since(renderStart)
	result.DocHash, _ = DocHash(l)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Render draws l in every requested format. The bool result reports
// whether all artifacts came from the cache.
func (r *Runner) Render(ctx context.Context, l *layout.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}

	docHash, err := DocHash(l)
	if err != nil {
		return nil, false, err
	}

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format)))
			if err != nil || !hit {
				r.Hooks.OnCacheMiss(ctx, format)
				break
			}
			r.Hooks.OnCacheHit(ctx, format)
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := RenderFormats(l, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		r.Hooks.OnCacheSet(ctx, format, len(data))
	}
	return rendered, false, nil
}

// DocHash hashes the canonical XML form of l, so that formatting changes
// in the source file do not defeat the cache.
func DocHash(l *layout.Layout) (string, error) {
	var buf bytes.Buffer
	if err := layout.Write(&buf, l); err != nil {
		return "", err
	}
	return cache.Hash(buf.Bytes()), nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
