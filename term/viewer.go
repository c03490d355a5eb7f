// Package term runs a match inside a tview dashboard.
package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"go.creack.net/pong/pong"
	"go.creack.net/pong/sound"
)

// maxStep caps the frame delta, in seconds.
const maxStep = 0.1

var eventColors = map[pong.EventType]tcell.Color{
	pong.EventPaddleHit:  tcell.ColorDimGray,
	pong.EventWallHit:    tcell.ColorDimGray,
	pong.EventScore:      tcell.ColorYellow,
	pong.EventTransition: tcell.ColorGreen,
	pong.EventMode:       tcell.ColorAqua,
	pong.EventDifficulty: tcell.ColorAqua,
}

// Bell rings the terminal bell when a point is scored.
type Bell struct {
	screen tcell.Screen
}

func (b Bell) Play(c pong.Cue) {
	if c == pong.CueScore {
		_ = b.screen.Beep()
	}
}

// Viewer owns the tview application and steps the match on a ticker.
type Viewer struct {
	app    *tview.Application
	screen tcell.Screen

	root      *tview.Flex
	fieldView *tview.Box
	stateView *tview.TextView
	logsView  *tview.TextView

	match *pong.Match
	keys  *Keyboard
	cues  pong.CuePlayer
	tick  time.Duration

	lastFrame time.Time
	fps       float64

	ctx    context.Context
	cancel context.CancelFunc
}

// NewViewer builds the dashboard. Cues go to the terminal bell unless mute is set.
func NewViewer(ctx context.Context, m *pong.Match, tick time.Duration, mute bool) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	app := tview.NewApplication().SetScreen(screen)

	newTextView := func(title string) *tview.TextView {
		tv := tview.NewTextView().SetDynamicColors(true)
		tv.SetTitle(title).SetBorder(true)
		return tv
	}

	fieldView := tview.NewBox()
	fieldView.SetTitle("Pong").SetBorder(true)

	stateView := newTextView("Settings")

	logsView := newTextView("Logs")
	logsView.SetMaxLines(200)
	logsView.ScrollToEnd()

	rightPane := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(stateView, 0, 1, false).
		AddItem(logsView, 0, 2, false)

	root := tview.NewFlex().
		AddItem(fieldView, 0, 3, true).
		AddItem(rightPane, 0, 1, false)

	ctx, cancel := context.WithCancel(ctx)

	v := &Viewer{
		app:    app,
		screen: screen,

		root:      root,
		fieldView: fieldView,
		stateView: stateView,
		logsView:  logsView,

		match: m,
		keys:  NewKeyboard(m.Bindings(), HoldWindow),
		tick:  tick,

		ctx:    ctx,
		cancel: cancel,
	}
	v.cues = Bell{screen: screen}
	if mute {
		v.cues = sound.Silent{}
	}

	fieldView.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		drawField(screen, v.match, x+1, y+1, width-2, height-2)
		return x + 1, y + 1, width - 2, height - 2
	})
	return v, nil
}

func (v *Viewer) Stop() {
	v.app.Stop()
	v.cancel()
}

// Run blocks until the match is quit or the context is done.
func (v *Viewer) Run() error {
	v.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			v.Stop()
			return nil
		}
		if k := KeyFromEvent(event); k != pong.KeyUnknown {
			v.keys.Press(k)
			return nil
		}
		return event
	})

	v.lastFrame = time.Now()
	go v.loop()

	if err := v.app.SetRoot(v.root, true).Run(); err != nil {
		v.cancel()
		return fmt.Errorf("failed to run terminal app: %w", err)
	}
	v.cancel()
	return nil
}

func (v *Viewer) loop() {
	ticker := time.NewTicker(v.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			v.app.QueueUpdateDraw(v.step)
		case <-v.ctx.Done():
			v.app.Stop()
			return
		}
	}
}

// step runs on the application goroutine, same as the input capture.
func (v *Viewer) step() {
	now := time.Now()
	dt := now.Sub(v.lastFrame).Seconds()
	v.lastFrame = now
	if dt > 0 {
		v.fps = 0.9*v.fps + 0.1/dt
	}
	dt = min(dt, maxStep)

	events, err := v.match.Update(dt, v.keys)
	v.keys.EndFrame()
	pong.PlayCues(v.cues, events)
	v.logEvents(events)
	if errors.Is(err, pong.Termination) {
		v.Stop()
		return
	}
	v.drawState()
}

func (v *Viewer) logEvents(events []pong.Event) {
	for _, e := range events {
		colorCode := "[" + eventColors[e.Type].String() + ":::]"
		fmt.Fprintf(v.logsView, "%s%s %s[:::]\n", colorCode, time.Now().Format(time.TimeOnly), e)
	}
}

func (v *Viewer) drawState() {
	m := v.match
	p1, p2 := m.Score()

	v.stateView.Clear()
	fmt.Fprintf(v.stateView, "Match: %s\n", m.ID())
	fmt.Fprintf(v.stateView, "State: %s\n", m.State())
	fmt.Fprintf(v.stateView, "Mode: %s\n", m.Mode())
	fmt.Fprintf(v.stateView, "Difficulty: %s\n", m.Difficulty())
	fmt.Fprintf(v.stateView, "Serving: %d\n", m.Serving())
	fmt.Fprintf(v.stateView, "Score: %d - %d\n", p1, p2)
	fmt.Fprintf(v.stateView, "FPS: %.0f\n", v.fps)
}
