package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ricochet/constant"
	"github.com/lixenwraith/ricochet/core"
	"github.com/lixenwraith/ricochet/physics"
	"github.com/lixenwraith/ricochet/vmath"
)

// ErrQuit is returned by Run when the user asks to exit
var ErrQuit = errors.New("viewer quit")

const trailLength = 8

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleTrail  = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	stylePaused = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed)
)

// Source is the read side of a running simulation
type Source interface {
	Body() physics.Body
	Walls() []physics.Wall
	Ticks() uint64
	Hits() int64
}

// Controls is the scheduler side the viewer can steer
type Controls interface {
	TogglePause() bool
	IsPaused() bool
	Step()
}

// Viewer draws walls and the body after every tick and handles keys
type Viewer struct {
	screen   tcell.Screen
	source   Source
	controls Controls
	logger   *log.Logger
	title    string

	buf   *RenderBuffer
	walls []physics.Wall
	min   vmath.Vec2
	max   vmath.Vec2
	trail []vmath.Vec2
}

// NewViewer prepares a viewer on an initialized screen; walls are read once
func NewViewer(screen tcell.Screen, source Source, controls Controls, logger *log.Logger, title string) *Viewer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	v := &Viewer{
		screen:   screen,
		source:   source,
		controls: controls,
		logger:   logger,
		title:    title,
		buf:      NewRenderBuffer(screen.Size()),
		walls:    source.Walls(),
		trail:    make([]vmath.Vec2, 0, trailLength),
	}
	v.computeBounds()
	return v
}

// computeBounds sizes the world rectangle to the walls and the starting body
func (v *Viewer) computeBounds() {
	b := v.source.Body()
	v.min = vmath.V2(b.Position.X-b.Radius, b.Position.Y-b.Radius)
	v.max = vmath.V2(b.Position.X+b.Radius, b.Position.Y+b.Radius)
	for _, w := range v.walls {
		for _, p := range []vmath.Vec2{w.Start, w.End} {
			v.min.X = math.Min(v.min.X, p.X)
			v.min.Y = math.Min(v.min.Y, p.Y)
			v.max.X = math.Max(v.max.X, p.X)
			v.max.Y = math.Max(v.max.Y, p.Y)
		}
	}
}

// Run redraws on every update signal until ctx is cancelled or the user quits
func (v *Viewer) Run(ctx context.Context, updates <-chan struct{}) error {
	events := make(chan tcell.Event, 16)
	core.Go(func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	// Status line refresh while paused
	ticker := time.NewTicker(constant.FrameUpdateInterval * 8)
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if err := v.handleEvent(ev); err != nil {
				return err
			}
			v.draw()
		case <-updates:
			v.draw()
		case <-ticker.C:
			if v.controls != nil && v.controls.IsPaused() {
				v.draw()
			}
		}
	}
}

type keyAction int

const (
	actionNone keyAction = iota
	actionQuit
	actionPause
	actionStep
)

// actionForKey maps a key press to a viewer action
func actionForKey(key tcell.Key, r rune) keyAction {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch r {
		case 'q':
			return actionQuit
		case 'p':
			return actionPause
		case 'n', ' ':
			return actionStep
		}
	}
	return actionNone
}

// handleEvent applies a key or resize; ErrQuit ends the loop
func (v *Viewer) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.apply(actionForKey(ev.Key(), ev.Rune()))

	case *tcell.EventResize:
		v.screen.Sync()
		v.buf.Resize(v.screen.Size())
	}
	return nil
}

func (v *Viewer) apply(a keyAction) error {
	switch a {
	case actionQuit:
		return ErrQuit
	case actionPause:
		if v.controls != nil {
			paused := v.controls.TogglePause()
			v.logger.Debug("pause toggled", "paused", paused)
		}
	case actionStep:
		if v.controls != nil && v.controls.IsPaused() {
			v.controls.Step()
		}
	}
	return nil
}

// draw composes one frame from the current body snapshot
func (v *Viewer) draw() {
	width, height := v.screen.Size()
	if w, h := v.buf.Size(); w != width || h != height {
		v.buf.Resize(width, height)
	}
	v.buf.Clear()
	if width < 2 || height < 2 {
		v.buf.Flush(v.screen)
		return
	}

	vp := NewViewport(v.min, v.max, 0, 0, width, height-1)
	body := v.source.Body()

	for _, w := range v.walls {
		x0, y0 := vp.ToCell(w.Start)
		x1, y1 := vp.ToCell(w.End)
		v.buf.Line(x0, y0, x1, y1, '#', styleWall)
	}

	v.pushTrail(body.Position)
	for _, p := range v.trail[:len(v.trail)-1] {
		x, y := vp.ToCell(p)
		v.buf.Set(x, y, '.', styleTrail)
	}

	v.drawBody(vp, body)
	v.drawStatus(width, height-1, body)
	v.buf.Flush(v.screen)
}

// drawBody fills the ellipse covering the body's circle in cell space
func (v *Viewer) drawBody(vp Viewport, body physics.Body) {
	cx, cy := vp.ToCell(body.Position)
	rx := body.Radius * vp.Scale()
	ry := rx / cellAspect
	if rx < 1 || ry < 1 {
		v.buf.Set(cx, cy, 'o', styleBody)
		return
	}

	ix, iy := int(math.Ceil(rx)), int(math.Ceil(ry))
	for dy := -iy; dy <= iy; dy++ {
		for dx := -ix; dx <= ix; dx++ {
			nx := float64(dx) / rx
			ny := float64(dy) / ry
			if nx*nx+ny*ny <= 1 {
				v.buf.Set(cx+dx, cy+dy, '@', styleBody)
			}
		}
	}
}

func (v *Viewer) drawStatus(width, row int, body physics.Body) {
	style := styleStatus
	state := ""
	if v.controls != nil && v.controls.IsPaused() {
		style = stylePaused
		state = " PAUSED"
	}
	for x := 0; x < width; x++ {
		v.buf.Set(x, row, ' ', style)
	}
	status := fmt.Sprintf(" %s%s | tick %d | hits %d | pos (%.2f, %.2f) | vel (%.2f, %.2f) | p:pause n:step q:quit",
		v.title, state, v.source.Ticks(), v.source.Hits(),
		body.Position.X, body.Position.Y, body.Velocity.X, body.Velocity.Y)
	v.buf.Text(0, row, status, style)
}

func (v *Viewer) pushTrail(p vmath.Vec2) {
	if n := len(v.trail); n > 0 && v.trail[n-1] == p {
		return
	}
	if len(v.trail) == trailLength {
		copy(v.trail, v.trail[1:])
		v.trail = v.trail[:trailLength-1]
	}
	v.trail = append(v.trail, p)
}
