package app

import (
	"fmt"
	"time"

	"github.com/museun/mars/geom"
	"github.com/museun/mars/surface"
	"github.com/museun/mars/terminal"
)

// Action is an Application's verdict after handling an event.
type Action uint8

const (
	Continue Action = iota
	Quit
)

// ShouldRender tells the loop whether the last update changed anything
// worth drawing.
type ShouldRender uint8

const (
	RenderYes ShouldRender = iota
	RenderNo
)

// Update carries frame timing into Application.Update. DT is the seconds
// between the previous two frames; AbsoluteDT is the wall time the previous
// full iteration took, including work the loop did outside the app.
type Update struct {
	LastFrame  time.Time
	Current    time.Time
	DT         float64
	AbsoluteDT float64
}

// Application is the contract the runtime loop drives. Embed Base to pick
// up no-op defaults for the hooks you don't need.
type Application interface {
	// Start runs once before the first frame, with the renderer ready for
	// default-color setup.
	Start(size geom.Size, renderer *surface.Renderer)

	// Stop runs once on the way out, after the final frame.
	Stop()

	// ShouldQuit is polled every iteration.
	ShouldQuit() bool

	// Update advances app state; returning RenderNo skips the frame when
	// nothing else forced one.
	Update(update Update) ShouldRender

	// HandleEvent receives every decoded terminal event.
	HandleEvent(ev terminal.Event) Action

	// Render draws the frame into the compositor.
	Render(renderer *surface.Renderer)
}

// Base provides default no-op implementations for everything except Render.
type Base struct{}

func (Base) Start(geom.Size, *surface.Renderer)         {}
func (Base) Stop()                                      {}
func (Base) ShouldQuit() bool                           { return false }
func (Base) Update(Update) ShouldRender                 { return RenderYes }
func (Base) HandleEvent(terminal.Event) Action          { return Continue }

// Run drives the application against the real terminal until it quits. The
// loop paces itself to cfg.FPS, compensating for oversleep so the rate
// stays honest under load.
func Run(cfg Config, application Application) error {
	if cfg.FPS < 1.0 {
		return fmt.Errorf("fps must be at least 1.0, have %v", cfg.FPS)
	}

	term := terminal.New(cfg.colorMode())
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	if cfg.Title != "" {
		if err := term.SetTitle(cfg.Title); err != nil {
			return err
		}
	}
	if cfg.Mouse {
		if err := term.SetMouseMode(terminal.MouseClick | terminal.MouseDrag); err != nil {
			return err
		}
	}

	renderer := surface.NewRenderer(term.Size())
	rast := surface.NewAnsiRasterizer()

	application.Start(term.Size(), renderer)
	defer application.Stop()

	// first frame: paint the whole area in the default colors so the
	// alternate screen never shows through
	fg, bg := renderer.DefaultColors()
	renderer.Fill(geom.Pt(0, 0), renderer.Size(), surface.EmptyPixel().WithFg(fg).WithBg(bg), surface.BlendReplace)
	if err := renderer.Render(rast); err != nil {
		return err
	}
	if err := rast.ClearScreen(bg, renderer.Size()); err != nil {
		return err
	}
	if err := term.Flush(rast); err != nil {
		return err
	}

	target := time.Duration(float64(time.Second) / cfg.FPS)

	last := time.Now()
	now := last
	var lag time.Duration
	absoluteDT := 1.0

	for !application.ShouldQuit() {
		update := Update{
			LastFrame:  last,
			Current:    now,
			DT:         now.Sub(last).Seconds(),
			AbsoluteDT: absoluteDT,
		}

		redraw := false
		for {
			ev, ok := term.TryPollEvent()
			if !ok {
				break
			}

			switch ev.Type {
			case terminal.EventClosed:
				return nil
			case terminal.EventError:
				return ev.Err
			case terminal.EventResize:
				renderer.Resize(ev.Size, surface.ResizeDiscard)
				redraw = true
			}

			if application.HandleEvent(ev) == Quit {
				return nil
			}
		}

		if application.Update(update) == RenderYes {
			redraw = true
		}

		if redraw {
			application.Render(renderer)
			if err := renderer.Render(rast); err != nil {
				return err
			}
			if err := term.Flush(rast); err != nil {
				return err
			}
		}

		current := time.Now()
		absoluteDT = current.Sub(now).Seconds()

		remaining := target - current.Sub(now) - lag
		if remaining > 0 {
			time.Sleep(remaining)
		} else {
			remaining = 0
		}

		next := time.Now()
		lag = next.Sub(current) - remaining
		if lag < 0 {
			lag = 0
		}
		last, now = now, next
	}

	return nil
}

// Debug runs one synthetic 80x24 frame through the trace rasterizer and
// returns the readable command stream. Handy for tests and for inspecting
// what an application actually draws.
func Debug(application Application) string {
	size := geom.Sz(80, 24)
	renderer := surface.NewRenderer(size)
	trace := surface.NewTraceRasterizer()

	application.Start(size, renderer)
	application.Render(renderer)
	_ = renderer.Render(trace)
	application.Stop()

	return trace.String()
}
