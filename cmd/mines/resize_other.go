//go:build !unix

package main

import (
	"context"

	"github.com/vancomm/minesweeper/internal/app"
)

func watchResize(ctx context.Context, _ chan<- app.Command) error {
	<-ctx.Done()
	return nil
}
