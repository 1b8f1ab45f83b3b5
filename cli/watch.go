package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/whylang/ast"
	"github.com/robinvdvleuten/whylang/loader"
)

// debounceDelay absorbs the several events editors emit for a single save.
const debounceDelay = 100 * time.Millisecond

type WatchCmd struct {
	File string `help:"Input file to watch." arg:"" type:"existingfile"`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	path, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	watcher, err := newFileWatcher(path)
	if err != nil {
		return err
	}

	check := func() {
		checkCtx, reportTelemetry := startTelemetry(ctx, globals, fmt.Sprintf("check %s", filepath.Base(path)))
		defer reportTelemetry()

		result, err := loader.New().Load(checkCtx, path)
		switch {
		case err != nil && result == nil:
			printError(ctx.Stderr, err.Error())
		case err != nil:
			_ = reportError(ctx, result.Document, err, "parse error")
		default:
			value, err := ast.Evaluate(result.Expression)
			if err != nil {
				printError(ctx.Stderr, err.Error())
				return
			}
			printSuccess(ctx.Stdout, fmt.Sprintf("%s = %s", result.Expression, value))
		}
	}

	check()
	printInfof(ctx.Stdout, "Watching %s for changes (press Ctrl+C to stop)", pathStyle.Render(path))

	runWatcher(runCtx, watcher, path, check)
	return nil
}

// newFileWatcher creates a watcher already observing path.
func newFileWatcher(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return watcher, nil
}

// runWatcher calls onChange after path changes, with debouncing, until ctx
// is done. onChange runs on the calling goroutine, so checks never overlap
// and none starts after cancellation. It closes watcher before returning.
func runWatcher(ctx context.Context, watcher *fsnotify.Watcher, path string, onChange func()) {
	debounce := time.NewTimer(debounceDelay)
	debounce.Stop()

	// pending is nil while no change is waiting for the debounce delay.
	var pending <-chan time.Time

	defer func() {
		debounce.Stop()
		_ = watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// Remove and Rename are how many editors save atomically.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			debounce.Reset(debounceDelay)
			pending = debounce.C

		case <-pending:
			pending = nil
			if ctx.Err() != nil {
				return
			}

			// Re-add in case the file was replaced rather than written.
			if err := watcher.Add(path); err != nil {
				log.Printf("Warning: failed to watch %s: %v", path, err)
			}
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}
