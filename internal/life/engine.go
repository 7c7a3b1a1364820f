package life

import (
	"context"
	"fmt"
	"time"
)

// Renderer consumes a batch of cell updates and flushes its sink once per
// batch. The engine is the renderer's only caller during a run, so writes
// are never interleaved.
type Renderer interface {
	Apply(updates []CellUpdate) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(updates []CellUpdate) error

func (f RendererFunc) Apply(updates []CellUpdate) error { return f(updates) }

// Discard is a renderer that drops every update, for headless runs.
var Discard Renderer = RendererFunc(func([]CellUpdate) error { return nil })

// GenerationSummary describes one generation's diff.
type GenerationSummary struct {
	Generation int
	Population int
	Births     int
	Deaths     int
	Changed    int
}

// Observer sees each generation summary after the diff has been rendered.
type Observer interface {
	OnGeneration(s GenerationSummary)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(s GenerationSummary)

func (f ObserverFunc) OnGeneration(s GenerationSummary) { f(s) }

const pausedIdle = 5 * time.Millisecond

// Engine owns the grid and the play/pause flag. It is the sole mutator of
// grid state: the input side only sends commands over the channel. The
// engine starts paused.
type Engine struct {
	grid       *Grid
	renderer   Renderer
	commands   <-chan Command
	observers  []Observer
	interval   time.Duration
	running    bool
	generation int
	population int
}

func NewEngine(grid *Grid, r Renderer, commands <-chan Command) *Engine {
	return &Engine{
		grid:       grid,
		renderer:   r,
		commands:   commands,
		population: grid.Population(),
	}
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// SetInterval sets a minimum duration per generation while running. Zero
// means unthrottled. Commands are still drained while the engine waits out
// the interval.
func (e *Engine) SetInterval(d time.Duration) { e.interval = d }

func (e *Engine) Running() bool   { return e.running }
func (e *Engine) Generation() int { return e.generation }
func (e *Engine) Population() int { return e.population }

// Run executes the main loop until a Quit command arrives, the command
// channel closes, or the context is cancelled. Each iteration steps the
// grid when running, then drains all pending commands without blocking; a
// generation step always runs to completion once started.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var deadline time.Time
		if e.running {
			if e.interval > 0 {
				deadline = time.Now().Add(e.interval)
			}
			if err := e.step(); err != nil {
				return err
			}
		}

		quit, err := e.drain()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		if !e.running {
			time.Sleep(pausedIdle)
		} else if e.interval > 0 {
			if quit, err := e.idleUntil(deadline); err != nil || quit {
				return err
			}
		}
	}
}

// RunGenerations advances the grid a fixed number of generations without
// consulting the command channel, for headless runs.
func (e *Engine) RunGenerations(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := e.step(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) step() error {
	ups := e.grid.Step()
	e.generation++

	births, deaths := 0, 0
	for _, u := range ups {
		if u.State == Alive {
			births++
		} else {
			deaths++
		}
	}
	e.population += births - deaths

	if err := e.renderer.Apply(ups); err != nil {
		return fmt.Errorf("render generation %d: %w", e.generation, err)
	}

	s := GenerationSummary{
		Generation: e.generation,
		Population: e.population,
		Births:     births,
		Deaths:     deaths,
		Changed:    len(ups),
	}
	for _, o := range e.observers {
		o.OnGeneration(s)
	}
	return nil
}

// drain applies every pending command without blocking. Quit wins
// immediately: anything queued behind it is discarded.
func (e *Engine) drain() (quit bool, err error) {
	for {
		select {
		case cmd, ok := <-e.commands:
			if !ok {
				return true, nil
			}
			switch cmd.Kind {
			case Quit:
				return true, nil
			case TogglePlayback:
				e.running = !e.running
			case ToggleCell:
				up := e.grid.Toggle(cmd.X, cmd.Y)
				if up.State == Alive {
					e.population++
				} else {
					e.population--
				}
				if err := e.renderer.Apply([]CellUpdate{up}); err != nil {
					return false, fmt.Errorf("render toggle at (%d, %d): %w", cmd.X, cmd.Y, err)
				}
			}
		default:
			return false, nil
		}
	}
}

// idleUntil waits out the remainder of the frame interval while keeping
// the command channel drained, so toggles land and Quit stays responsive
// between throttled generations.
func (e *Engine) idleUntil(deadline time.Time) (quit bool, err error) {
	for time.Now().Before(deadline) {
		quit, err = e.drain()
		if quit || err != nil {
			return quit, err
		}
		if !e.running {
			return false, nil
		}
		time.Sleep(time.Millisecond)
	}
	return false, nil
}
