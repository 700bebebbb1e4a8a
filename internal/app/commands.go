package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/input"
	"github.com/vancomm/minesweeper/internal/mines"
)

// Command is anything the loop can be asked to do.
type Command interface {
	command()
}

type (
	// Pointer is a raw press in viewport coordinates.
	Pointer struct{ input.Event }
	// Open and Flag address a cell by board coordinates, whatever the
	// viewport.
	Open struct{ X, Y int }
	Flag struct{ X, Y int }
	// Restart starts a new session. Params holds preset, width, height,
	// mine_count and seed keys; missing keys keep the current values.
	Restart struct{ Params map[string][]string }
	Resize  struct{ Viewport input.Viewport }
	Redraw  struct{}
	Quit    struct{}
	// Invalid carries a line that could not be parsed.
	Invalid struct {
		Line string
		Err  error
	}
)

func (Pointer) command() {}
func (Open) command()    {}
func (Flag) command()    {}
func (Restart) command() {}
func (Resize) command()  {}
func (Redraw) command()  {}
func (Quit) command()    {}
func (Invalid) command() {}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("invalid number of arguments")
)

// Maps known commands to number of arguments, -1 for any
var commandNargs = map[string]int{
	"g":      0,
	"o":      2,
	"f":      2,
	"click":  3,
	"n":      -1,
	"resize": 2,
	"q":      0,
}

func parseXY(args []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(args[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func parseButtons(s string) (input.Button, error) {
	var b input.Button
	for _, ch := range s {
		switch ch {
		case 'l':
			b |= input.Primary
		case 'm':
			b |= input.Middle
		case 'r':
			b |= input.Secondary
		default:
			return 0, fmt.Errorf("unknown button %q", ch)
		}
	}
	return b, nil
}

// parseRestart accepts a bare preset name, a W:H:M triple or key=value
// pairs.
func parseRestart(args []string) (Restart, error) {
	params := make(map[string][]string)
	for _, arg := range args {
		if strings.Contains(arg, ":") {
			p, err := mines.ParseSeed(arg)
			if err != nil {
				return Restart{}, err
			}
			params["width"] = []string{strconv.Itoa(p.Width)}
			params["height"] = []string{strconv.Itoa(p.Height)}
			params["mine_count"] = []string{strconv.Itoa(p.MineCount)}
			continue
		}
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			key, value = "preset", arg
		}
		if key == "" || value == "" {
			return Restart{}, fmt.Errorf("malformed setting %q", arg)
		}
		params[key] = append(params[key], value)
	}
	return Restart{Params: params}, nil
}

// ParseCommand reads one line of the text protocol:
//
//	g                           redraw
//	o x y                       reveal cell
//	f x y                       toggle flag on cell
//	click px py l|r|m|lr        pointer press
//	n [preset|W:H:M|key=value...] new game
//	resize w h                  viewport change
//	q                           quit
//
// click positions are in viewport units, the same units as resize. They are
// mapped onto the board by splitting the viewport evenly into tiles and do
// not follow the glyphs drawn by the text renderer.
func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil, ErrUnknownCommand
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	args := parts[1:]
	if nargs >= 0 && nargs != len(args) {
		return nil, fmt.Errorf("%w for %q: got %d, want %d", ErrArguments, parts[0], len(args), nargs)
	}

	switch parts[0] {
	case "g":
		return Redraw{}, nil
	case "o":
		x, y, err := parseXY(args)
		if err != nil {
			return nil, err
		}
		return Open{x, y}, nil
	case "f":
		x, y, err := parseXY(args)
		if err != nil {
			return nil, err
		}
		return Flag{x, y}, nil
	case "click":
		x, y, err := parseXY(args)
		if err != nil {
			return nil, err
		}
		b, err := parseButtons(args[2])
		if err != nil {
			return nil, err
		}
		return Pointer{input.Event{X: x, Y: y, Buttons: b}}, nil
	case "n":
		return parseRestart(args)
	case "resize":
		w, h, err := parseXY(args)
		if err != nil {
			return nil, err
		}
		if w <= 0 || h <= 0 {
			return nil, errors.New("viewport must not be empty")
		}
		return Resize{input.Viewport{Width: w, Height: h}}, nil
	case "q":
		return Quit{}, nil
	}
	return nil, ErrUnknownCommand
}

// ReadCommands parses r line by line into out. Blank lines are skipped and
// unparsable ones are sent as Invalid. Quit is sent once r is exhausted.
func ReadCommands(ctx context.Context, r io.Reader, out chan<- Command) error {
	send := func(c Command) error {
		select {
		case out <- c:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c, err := ParseCommand(line)
		if err != nil {
			c = Invalid{Line: line, Err: err}
		}
		if err := send(c); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("unable to read commands: %w", err)
	}
	return send(Quit{})
}
