package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vancomm/minesweeper/internal/input"
)

// terminalViewport measures stdout in character cells.
func terminalViewport() (input.Viewport, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return input.Viewport{}, false
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return input.Viewport{}, false
	}
	return input.Viewport{Width: w, Height: h}, true
}
