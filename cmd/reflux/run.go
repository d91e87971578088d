package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mkling/reflux/config"
	"github.com/mkling/reflux/internal/replay"
)

// rewriteSettle coalesces the editor write/rename bursts fsnotify reports
// into a single re-run.
const rewriteSettle = 100 * time.Millisecond

// newLogger creates a JSON logger for CLI use.
func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// logLevel maps a scenario log_level value to a slog level.
// Unknown values were already rejected by config validation.
func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// runCmd executes a scenario file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario file",
	Long: `Run a reflux scenario file.

The command will:
  - Load the scenario from the specified YAML file
  - Build a store with the scenario's reducer
  - Dispatch every action in order, logging each transition
  - Print the final state to stdout

With --watch, the command keeps running and re-executes the scenario
whenever the file changes, until interrupted (Ctrl+C) or SIGTERM.

Example:
  reflux run -c counter.yaml
  reflux run -c counter.yaml --watch`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("config", "c", "", "path to scenario file (required)")
	runCmd.Flags().BoolP("watch", "w", false, "re-run when the scenario file changes")
	_ = runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	scenarioFile, _ := cmd.Flags().GetString("config")
	watch, _ := cmd.Flags().GetBool("watch")

	// set up context with signal handling - cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !watch {
		return runOnce(ctx, scenarioFile)
	}
	return runWatch(ctx, scenarioFile)
}

// runOnce loads and executes the scenario a single time.
func runOnce(ctx context.Context, path string) error {
	sc, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	logger := newLogger(logLevel(sc.LogLevel))
	logger.Info("scenario loaded",
		"scenario", sc.Name,
		"reducer", sc.Reducer,
		"dispatches", sc.TotalDispatches(),
	)

	report, err := replay.Run(ctx, sc, logger)
	if err != nil {
		return fmt.Errorf("scenario failed: %w", err)
	}

	fmt.Printf("# %s (%d dispatches)\n%s", report.Name, report.Dispatched, report.FinalState)
	return nil
}

// runWatch executes the scenario, then re-executes it on every change to
// the file until the context is cancelled.
func runWatch(ctx context.Context, path string) error {
	logger := newLogger(slog.LevelInfo)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	// initial run; a broken scenario is reported but keeps the watch alive
	// so the user can fix the file and save again
	if err := runOnce(ctx, path); err != nil {
		logger.Warn("scenario run failed", "error", err.Error())
	}
	logger.Info("watching for changes", "file", path)

	var settle *time.Timer
	rerun := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// editors emit bursts of writes; settle before re-running
			if settle != nil {
				settle.Stop()
			}
			settle = time.AfterFunc(rewriteSettle, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err.Error())

		case <-rerun:
			// some editors replace the file, dropping the watch; re-add
			_ = watcher.Add(path)
			if err := runOnce(ctx, path); err != nil {
				logger.Warn("scenario run failed", "error", err.Error())
			}
		}
	}
}
