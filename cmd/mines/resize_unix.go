//go:build unix

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vancomm/minesweeper/internal/app"
)

// watchResize turns SIGWINCH into Resize commands until ctx is done.
func watchResize(ctx context.Context, out chan<- app.Command) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	defer signal.Stop(sig)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sig:
			v, ok := terminalViewport()
			if !ok {
				continue
			}
			select {
			case out <- app.Resize{Viewport: v}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
