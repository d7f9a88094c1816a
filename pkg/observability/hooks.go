// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about graph generation and file output.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the generator packages
// never import a metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGenerateHooks(&myGenerateHooks{})
//	    observability.SetWriteHooks(&myWriteHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Generate().OnGenerateStart(ctx, "grid", name)
//	// ... build the graph ...
//	observability.Generate().OnGenerateComplete(ctx, "grid", name, edges, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Generate Hooks
// =============================================================================

// GenerateHooks receives events from the graph generators.
type GenerateHooks interface {
	// OnGenerateStart fires before a graph of the given kind is built.
	OnGenerateStart(ctx context.Context, kind, name string)

	// OnGenerateComplete fires after generation, successful or not.
	OnGenerateComplete(ctx context.Context, kind, name string, edges int, duration time.Duration, err error)
}

// =============================================================================
// Write Hooks
// =============================================================================

// WriteHooks receives events from edge-list file output.
type WriteHooks interface {
	// OnWriteComplete fires after a file was written or failed to be.
	OnWriteComplete(ctx context.Context, path string, bytes int64, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGenerateHooks is a no-op implementation of GenerateHooks.
type NoopGenerateHooks struct{}

func (NoopGenerateHooks) OnGenerateStart(context.Context, string, string) {}
func (NoopGenerateHooks) OnGenerateComplete(context.Context, string, string, int, time.Duration, error) {
}

// NoopWriteHooks is a no-op implementation of WriteHooks.
type NoopWriteHooks struct{}

func (NoopWriteHooks) OnWriteComplete(context.Context, string, int64, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generateHooks GenerateHooks = NoopGenerateHooks{}
	writeHooks    WriteHooks    = NoopWriteHooks{}
	hooksMu       sync.RWMutex
)

// SetGenerateHooks registers custom generate hooks.
// This should be called once at application startup before any generation.
func SetGenerateHooks(h GenerateHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generateHooks = h
	}
}

// SetWriteHooks registers custom write hooks.
func SetWriteHooks(h WriteHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		writeHooks = h
	}
}

// Generate returns the registered generate hooks.
func Generate() GenerateHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generateHooks
}

// Write returns the registered write hooks.
func Write() WriteHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return writeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generateHooks = NoopGenerateHooks{}
	writeHooks = NoopWriteHooks{}
}
