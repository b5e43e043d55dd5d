// Package uci contains a driver for using the engine under the UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
// See: https://en.wikipedia.org/wiki/Universal_Chess_Interface
package uci

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/seekerror/logw"
	"github.com/tm-ahad/sigma0/pkg/board"
	"github.com/tm-ahad/sigma0/pkg/engine"
)

const ProtocolName = "uci"

// Driver implements a UCI driver for an Engine. It is activated once "uci" is received on
// stdin and runs until "quit".
type Driver struct {
	e *engine.Engine

	out chan<- string

	mu           sync.Mutex
	cancel       context.CancelFunc
	lastPosition string

	quit   chan struct{}
	closed sync.Once
}

// NewDriver starts a UCI driver reading commands from in and writing replies to the returned
// channel. Commands are processed one line at a time, in order.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		e:    e,
		out:  out,
		quit: make(chan struct{}),
	}
	go d.process(ctx, in)
	return d, out
}

// Close stops the driver, halting any in-flight search.
func (d *Driver) Close() {
	d.closed.Do(func() { close(d.quit) })
}

func (d *Driver) Closed() <-chan struct{} {
	return d.quit
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "UCI protocol initialized")

	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())

	// Fixed option set: no UCI_* options, no OwnBook toggle -- book/tablebase/move-database
	// use is governed entirely by position phase, not by GUI preference.
	d.out <- "option name Hash type spin default 64 min 1 max 2048"
	d.out <- "option name Threads type spin default 1 min 1 max 16"
	d.out <- "option name Move Overhead type spin default 2000 min 0 max 10000"
	d.out <- "uciok"

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}
			if !d.dispatch(ctx, line) {
				return
			}

		case <-d.quit:
			d.haltIfActive()
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

// dispatch handles a single input line. It returns false if the driver should shut down.
func (d *Driver) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "isready":
		d.out <- "readyok"

	case "debug", "register", "ponderhit":
		// Accepted, no-op.

	case "setoption":
		d.setOption(args)

	case "getoption":
		d.getOption(args)

	case "ucinewgame":
		d.haltIfActive()
		d.lastPosition = ""

	case "position":
		d.position(ctx, line, args)

	case "go":
		d.goSearch(ctx)

	case "stop":
		d.haltIfActive()

	case "quit":
		return false

	default:
		logw.Warningf(ctx, "Unknown command '%v': %v", cmd, args)
	}
	return true
}

// setOption parses "name <id...> value <x...>", where <id> may itself contain spaces (e.g.
// "Move Overhead"), per the UCI spec's "name can include spaces" rule. A value that does not
// parse as an integer or lies outside the option's bounds is ignored.
func (d *Driver) setOption(args []string) {
	nameIdx := indexOf(args, "name")
	valueIdx := indexOf(args, "value")
	if nameIdx < 0 || valueIdx < 0 || valueIdx <= nameIdx {
		return
	}

	name := strings.Join(args[nameIdx+1:valueIdx], " ")
	value := strings.Join(args[valueIdx+1:], " ")
	n, err := strconv.Atoi(value)
	if err != nil {
		return
	}
	for _, spec := range optionSpecs {
		if spec.name == name && (n < spec.min || n > spec.max) {
			return
		}
	}

	switch name {
	case "Hash":
		d.e.SetHash(uint(n))
	case "Threads":
		d.e.SetThreads(uint(n))
	case "Move Overhead":
		d.e.SetMoveOverhead(uint(n))
	}
}

// optionSpec describes one entry of the fixed UCI option set, for answering "getoption"
// queries and bounding "setoption" values; the startup advertisement in process lists the
// same values. Unknown option names are ignored, per §6.
type optionSpec struct {
	name               string
	def, min, max      int
	current            func(engine.Options) uint
}

var optionSpecs = []optionSpec{
	{name: "Hash", def: 64, min: 1, max: 2048, current: func(o engine.Options) uint { return o.HashMB }},
	{name: "Threads", def: 1, min: 1, max: 16, current: func(o engine.Options) uint { return o.Threads }},
	{name: "Move Overhead", def: 2000, min: 0, max: 10000, current: func(o engine.Options) uint { return o.MoveOverheadMS }},
}

// getOption prints the current, default and bound values for a named option, or nothing if
// the name is not one of the fixed set.
func (d *Driver) getOption(args []string) {
	nameIdx := indexOf(args, "name")
	if nameIdx < 0 {
		return
	}
	name := strings.Join(args[nameIdx+1:], " ")

	for _, spec := range optionSpecs {
		if spec.name != name {
			continue
		}
		d.out <- fmt.Sprintf("option name %v value %v default %v min %v max %v",
			spec.name, spec.current(d.e.Options()), spec.def, spec.min, spec.max)
		return
	}
}

func indexOf(args []string, s string) int {
	for i, a := range args {
		if a == s {
			return i
		}
	}
	return -1
}

func (d *Driver) position(ctx context.Context, line string, args []string) {
	d.haltIfActive()

	if d.lastPosition != "" && strings.HasPrefix(line, d.lastPosition) {
		rest := strings.TrimSpace(strings.TrimPrefix(line, d.lastPosition))
		for _, arg := range strings.Fields(rest) {
			if arg == "moves" {
				continue
			}
			if err := d.e.Move(ctx, arg); err != nil {
				logw.Errorf(ctx, "Invalid position move '%v': %v: %v", arg, line, err)
				return
			}
		}
		d.lastPosition = line
		return
	}

	position := board.InitialFEN
	if len(args) >= 7 && args[0] == "fen" {
		position = strings.Join(args[1:7], " ")
	}
	if err := d.e.Reset(ctx, position); err != nil {
		logw.Errorf(ctx, "Invalid position: %v", line)
		return
	}

	move := false
	for _, arg := range args {
		if arg == "moves" {
			move = true
			continue
		}
		if !move {
			continue
		}
		if err := d.e.Move(ctx, arg); err != nil {
			logw.Errorf(ctx, "Invalid position move '%v': %v: %v", arg, line, err)
			return
		}
	}
	d.lastPosition = line
}

// goSearch runs BestMove in the background so "stop" can cancel it without blocking command
// processing. Time-control tokens (wtime/btime/...) are accepted but ignored: search depth is
// chosen from position phase rather than a clock budget, by design -- see Engine.BestMove.
func (d *Driver) goSearch(ctx context.Context) {
	d.mu.Lock()
	searchCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.mu.Unlock()

	go func() {
		move, _, err := d.e.BestMove(searchCtx)
		if err != nil {
			logw.Errorf(ctx, "Search failed: %v", err)
			d.out <- "bestmove 0000"
			return
		}
		d.out <- fmt.Sprintf("bestmove %v", move)
	}()
}

func (d *Driver) haltIfActive() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
