// Package term hosts a life controller in a terminal. Each cell is drawn as
// two terminal columns so the grid looks roughly square.
package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"lifepad/internal/app"
	"lifepad/internal/ui"
	"lifepad/pkg/life"

	"github.com/gdamore/tcell/v2"
)

// cellWidth is the number of terminal columns per grid cell.
const cellWidth = 2

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

type redrawEvent struct{ tcell.EventTime }

func newRedrawEvent() *redrawEvent {
	ev := &redrawEvent{}
	ev.SetEventNow()
	return ev
}

// Host drives a controller from a tcell screen. Advances run on a ticker
// goroutine while input is handled on the caller's goroutine, so the
// controller is always accessed through life.Locked.
type Host struct {
	screen  tcell.Screen
	engine  *life.Locked
	ticker  *time.Ticker
	buttons tcell.ButtonMask
}

// New wraps ctrl for use on screen. The screen must already be initialised.
func New(screen tcell.Screen, ctrl *life.Controller) *Host {
	h := &Host{
		screen: screen,
		engine: life.NewLocked(ctrl),
		ticker: time.NewTicker(ctrl.Interval()),
	}
	h.engine.Attach(h)
	return h
}

// Arm restarts the advance ticker at interval.
func (h *Host) Arm(interval time.Duration) {
	h.ticker.Reset(interval)
}

// Run draws the grid and processes events until the user quits or ctx is
// cancelled.
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer h.ticker.Stop()

	h.screen.EnableMouse()
	go h.tick(ctx)
	go func() {
		<-ctx.Done()
		h.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	h.Draw()
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok && ctx.Err() != nil {
			return ctx.Err()
		}
		if h.HandleEvent(ev) {
			return nil
		}
		h.Draw()
	}
}

func (h *Host) tick(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-h.ticker.C:
			// Advance re-checks the running state, so a tick racing a pause
			// is dropped here.
			if h.engine.Advance() {
				if err := h.screen.PostEvent(newRedrawEvent()); err != nil {
					log.Printf("redraw dropped: %v", err)
				}
			}
		}
	}
}

// HandleEvent applies one input event and reports whether the host should
// quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return true
		}
		app.Apply(h.engine, keyAction(ev))
	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		if pressed != 0 && h.buttons&tcell.Button1 == 0 {
			x, y := ev.Position()
			h.clickCell(x, y)
		}
		h.buttons = ev.Buttons()
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

func keyAction(ev *tcell.EventKey) ui.Action {
	if ev.Key() != tcell.KeyRune {
		return ui.ActionNone
	}
	switch ev.Rune() {
	case ' ':
		return ui.ActionToggleRunning
	case 'n':
		return ui.ActionStep
	case 'r':
		return ui.ActionRandomize
	case 'c':
		return ui.ActionClear
	case '-':
		return ui.ActionSlower
	case '+', '=':
		return ui.ActionFaster
	}
	return ui.ActionNone
}

func (h *Host) clickCell(x, y int) {
	r, c := y, x/cellWidth
	if !h.engine.Size().Contains(r, c) {
		return
	}
	if err := h.engine.ToggleCell(r, c); err != nil {
		log.Printf("ignoring click: %v", err)
	}
}

// Draw renders the current generation and a status line below it.
func (h *Host) Draw() {
	snap := h.engine.Snapshot()
	size := snap.Size()
	h.screen.Clear()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			style := deadStyle
			if snap.Alive(r, c) {
				style = aliveStyle
			}
			for i := 0; i < cellWidth; i++ {
				h.screen.SetContent(c*cellWidth+i, r, ' ', nil, style)
			}
		}
	}
	h.drawStatus(size.Rows, snap)
	h.screen.Show()
}

func (h *Host) drawStatus(y int, snap life.Snapshot) {
	label := ui.Button{Action: ui.ActionToggleRunning}.Label(h.engine.Running())
	status := fmt.Sprintf("[%s] gen %d  pop %d  %dms   space n r c +/- q",
		label, snap.Generation(), snap.Population(), h.engine.Interval().Milliseconds())
	for i, ch := range status {
		h.screen.SetContent(i, y, ch, nil, statusStyle)
	}
}
