package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/vk/flowgrid/internal/ctxlog"
	"github.com/vk/flowgrid/internal/flow"
	"github.com/vk/flowgrid/internal/registry"
	"github.com/vk/flowgrid/internal/varpool"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	flow     *flow.Flow
	pool     *varpool.Pool

	mu      sync.Mutex
	results map[string]*registry.Result
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry. A
// failure to load or validate the flow is a fatal startup error and panics;
// the entrypoint recovers it into a clean exit.
func NewApp(outW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	f, err := flow.NewLoader().Load(ctx, appConfig.FlowPath)
	if err != nil {
		panic(fmt.Errorf("failed to load flow: %w", err))
	}
	logger.Debug("Flow loaded.", "variables", len(f.Variables), "nodes", len(f.Nodes))

	pool, err := flow.BuildPool(ctx, f)
	if err != nil {
		panic(fmt.Errorf("failed to build variable pool: %w", err))
	}

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("Node runners registered.", "types", reg.Types())

	if err := reg.Validate(f); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: reg,
		flow:     f,
		pool:     pool,
		results:  make(map[string]*registry.Result),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Pool returns the application's variable pool. This is primarily for testing.
func (a *App) Pool() *varpool.Pool {
	return a.pool
}

// Results returns a copy of the per-node results recorded so far, keyed by
// node ID.
func (a *App) Results() map[string]*registry.Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]*registry.Result, len(a.results))
	for k, v := range a.results {
		out[k] = v
	}
	return out
}

func (a *App) recordResult(id string, result *registry.Result) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.results[id] = result
}
