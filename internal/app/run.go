package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vk/flowgrid/internal/ctxlog"
	"github.com/vk/flowgrid/internal/flow"
	"github.com/vk/flowgrid/internal/registry"
)

// Run evaluates every node in the loaded flow. Soft node failures are
// recorded in the results and the summary; only hard faults make Run itself
// return an error.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.flow.Nodes) == 0 {
		a.logger.Warn("No nodes found in flow, evaluation not required.")
		return nil
	}

	workers := a.config.WorkerCount
	if workers < 1 {
		workers = 1
	}
	a.logger.Info("🚀 Starting node evaluation.", "nodes", len(a.flow.Nodes), "workers", workers)

	jobs := make(chan *flow.Node)
	var (
		wg      sync.WaitGroup
		errMu   sync.Mutex
		hardErr []error
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for n := range jobs {
				if err := a.evaluateNode(ctx, n, workerID); err != nil {
					errMu.Lock()
					hardErr = append(hardErr, fmt.Errorf("node %s: %w", n.ID(), err))
					errMu.Unlock()
				}
			}
		}(i)
	}

	for _, n := range a.flow.Nodes {
		jobs <- n
	}
	close(jobs)
	wg.Wait()

	a.writeSummary()
	a.logger.Info("🏁 Evaluation finished.")

	if len(hardErr) > 0 {
		return fmt.Errorf("evaluation failed: %w", errors.Join(hardErr...))
	}
	return nil
}

// evaluateNode runs a single node and records its result. The returned error
// is a hard fault; soft failures land in the recorded result.
func (a *App) evaluateNode(ctx context.Context, n *flow.Node, workerID int) error {
	logger := ctxlog.FromContext(ctx).With("worker", workerID, "node", n.ID())
	if n.Title != "" {
		logger = logger.With("title", n.Title)
	}
	if n.Description != "" {
		logger = logger.With("description", n.Description)
	}
	logger.Info("▶️ Evaluating node.")

	runner, ok := a.registry.Runner(n.Type)
	if !ok {
		// Unreachable after startup validation.
		return fmt.Errorf("unknown node type %q", n.Type)
	}

	result, err := runner.Run(ctx, n, a.pool)
	if err != nil {
		logger.Error("Node evaluation faulted.", "error", err)
		return err
	}

	a.recordResult(n.ID(), result)
	if result.Status == registry.StatusFailed {
		logger.Warn("Node failed.", "error", result.Error)
	} else {
		logger.Info("✅ Node succeeded.")
	}
	return nil
}

// writeSummary prints one line per node plus totals to the app's output.
func (a *App) writeSummary() {
	results := a.Results()

	var failed int
	for _, n := range a.flow.Nodes {
		result, ok := results[n.ID()]
		if !ok {
			fmt.Fprintf(a.outW, "%s: faulted\n", n.ID())
			failed++
			continue
		}
		if result.Status == registry.StatusFailed {
			fmt.Fprintf(a.outW, "%s: failed (%s)\n", n.ID(), result.Error)
			failed++
			continue
		}
		fmt.Fprintf(a.outW, "%s: succeeded\n", n.ID())
	}
	fmt.Fprintf(a.outW, "%d node(s) evaluated, %d failed\n", len(a.flow.Nodes), failed)
}
