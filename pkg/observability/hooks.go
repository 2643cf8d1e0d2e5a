// Package observability provides hooks for logging and metrics.
//
// This package enables optional instrumentation without tying the editor
// core to a specific backend. Hooks are plain interfaces with no-op
// defaults; callers hand an implementation to the component that emits the
// events (the scene, the export pipeline) when they construct it.
//
// # Architecture
//
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Provide a charmbracelet/log backed implementation for the CLI
//
// # Usage
//
//	hooks := observability.NewLogHooks(logger)
//	s := scene.New(scene.WithHooks(hooks))
//	runner := pipeline.NewRunner(c, logger)
//	runner.Hooks = hooks
package observability

import (
	"context"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Scene Hooks
// =============================================================================

// SceneHooks receives events from interactive scene editing.
type SceneHooks interface {
	// OnSelect records a change of the selection size.
	OnSelect(count int)

	// OnDragStart records the start of a group drag.
	OnDragStart(anchor string, count int)

	// OnSnap records a snap correction applied as a preview.
	OnSnap(dx, dy float64, sourceX, sourceY string)

	// OnCommit records the end of a drag.
	OnCommit(count int)

	// OnDelete records removal of objects.
	OnDelete(count int)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSceneHooks is a no-op implementation of SceneHooks.
type NoopSceneHooks struct{}

func (NoopSceneHooks) OnSelect(int)                            {}
func (NoopSceneHooks) OnDragStart(string, int)                 {}
func (NoopSceneHooks) OnSnap(float64, float64, string, string) {}
func (NoopSceneHooks) OnCommit(int)                            {}
func (NoopSceneHooks) OnDelete(int)                            {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Logger Implementation
// =============================================================================

// LogHooks writes every event to a charmbracelet logger at debug level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log through l, or log.Default() if l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{Logger: l}
}

func (h *LogHooks) OnSelect(count int) {
	h.Logger.Debug("selection changed", "count", count)
}

func (h *LogHooks) OnDragStart(anchor string, count int) {
	h.Logger.Debug("drag started", "anchor", anchor, "count", count)
}

func (h *LogHooks) OnSnap(dx, dy float64, sourceX, sourceY string) {
	h.Logger.Debug("snap", "dx", dx, "dy", dy, "x", sourceX, "y", sourceY)
}

func (h *LogHooks) OnCommit(count int) {
	h.Logger.Debug("drag committed", "count", count)
}

func (h *LogHooks) OnDelete(count int) {
	h.Logger.Debug("objects deleted", "count", count)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ SceneHooks = NoopSceneHooks{}
	_ CacheHooks = NoopCacheHooks{}
	_ SceneHooks = (*LogHooks)(nil)
	_ CacheHooks = (*LogHooks)(nil)
)
