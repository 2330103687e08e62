package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/graft/pkg/ports"
)

// Watch runs fn once, then re-runs it whenever the loader reports a document
// change, until ctx is cancelled or an interrupt arrives.
func Watch(ctx context.Context, w ports.Watchable, fn func()) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := w.Watch(ctx)
	if err != nil {
		return err
	}

	fn()
	printSystemMessage("Waiting for changes...")

	for {
		select {
		case <-ctx.Done():
			printSystemMessage("Watcher stopped.")
			return nil
		case id, ok := <-events:
			if !ok {
				return nil
			}
			printSystemMessage("Change detected in '%s'.", id)
			// Delay slightly so the file system settles before re-reading.
			time.Sleep(100 * time.Millisecond)
			fn()
			printSystemMessage("Waiting for changes...")
		}
	}
}
