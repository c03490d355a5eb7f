// Package pong implements the headless two-paddle game: the match state
// machine, the per-frame physics pipeline and the paddle AI.
//
// Rendering, audio and key polling are left to the caller. A frame loop
// calls Match.Update once per frame with the elapsed time and a Keyboard,
// then consumes the returned events (sound cues, transitions) and draws
// the match from its accessors.
package pong

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Termination is returned by Update when the player asked to quit.
var Termination = errors.New("termination")

// Match owns the whole game state of a session.
type Match struct {
	cfg      Config
	bindings Bindings
	rng      *rand.Rand

	id uuid.UUID

	state      State
	mode       Mode
	difficulty Difficulty

	serving  int
	winner   int
	launched bool
	scores   [2]int

	p1, p2 *Paddle
	ball   *Ball

	events []Event
}

// NewMatch creates a match in the Start state.
func NewMatch(cfg Config, bindings Bindings) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	m := &Match{
		cfg:        cfg,
		bindings:   bindings,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		id:         uuid.New(),
		state:      StateStart,
		mode:       cfg.Mode,
		difficulty: cfg.Difficulty,
		serving:    1,
		p1:         NewPaddle(10, 30, cfg.PaddleWidth, cfg.PaddleHeight, cfg.Height),
		p2:         NewPaddle(cfg.Width-10, cfg.Height-30, cfg.PaddleWidth, cfg.PaddleHeight, cfg.Height),
		ball:       NewBall(cfg.Width, cfg.Height, cfg.BallSize),
	}
	return m, nil
}

// Update runs one frame: discrete input first, then the tick pipeline.
// It returns the events produced during the frame, and Termination when
// the quit key was pressed.
func (m *Match) Update(dt float64, kb Keyboard) ([]Event, error) {
	m.events = nil
	if kb.JustPressed(m.bindings.Quit) {
		return m.events, Termination
	}
	m.handleInput(kb)
	m.tick(dt, kb)
	return m.events, nil
}

func (m *Match) handleInput(kb Keyboard) {
	b := m.bindings
	if kb.JustPressed(b.Cancel) {
		m.Cancel()
		return
	}
	if m.state == StateStart {
		for i, k := range b.Modes {
			if kb.JustPressed(k) {
				m.SetMode(Mode(i))
			}
		}
		if kb.JustPressed(b.Difficulty) {
			m.ToggleDifficulty()
		}
	}
	if kb.JustPressed(b.Confirm) {
		m.Confirm()
	}
}

// Confirm advances Start and Serve, and restarts a finished match.
func (m *Match) Confirm() {
	switch m.state {
	case StateStart:
		m.enterServe()
	case StateServe:
		// Not armed yet when confirm lands on the first frame after a point.
		m.armServe()
		m.setState(StatePlay)
	case StatePlay:
	case StateDone:
		m.scores = [2]int{}
		m.ball.Reset()
		m.serving = opponent(m.winner)
		m.winner = 0
		m.id = uuid.New()
		m.enterServe()
	}
}

// Cancel goes back to Start, clearing the scores. Mode and difficulty are kept.
func (m *Match) Cancel() {
	m.scores = [2]int{}
	m.ball.Reset()
	m.serving = 1
	m.winner = 0
	m.launched = false
	if m.state != StateStart {
		m.id = uuid.New()
		m.setState(StateStart)
	}
}

// SetMode changes the mode. Only honored in Start.
func (m *Match) SetMode(mode Mode) bool {
	if m.state != StateStart || !mode.Valid() {
		return false
	}
	m.mode = mode
	m.emit(Event{Type: EventMode, Mode: mode})
	return true
}

// ToggleDifficulty cycles the AI tier. Only honored in Start.
func (m *Match) ToggleDifficulty() bool {
	if m.state != StateStart {
		return false
	}
	m.difficulty = m.difficulty.Next()
	m.emit(Event{Type: EventDifficulty, Difficulty: m.difficulty})
	return true
}

func (m *Match) enterServe() {
	m.launched = false
	m.setState(StateServe)
}

func (m *Match) setState(s State) {
	from := m.state
	m.state = s
	m.emit(Event{Type: EventTransition, From: from, To: s})
}

func (m *Match) emit(e Event) {
	m.events = append(m.events, e)
}

// Banner returns the headline and prompt shown for the current state.
func (m *Match) Banner() (title, prompt string) {
	key := m.bindings.Confirm.String()
	if key != "" {
		key = strings.ToUpper(key[:1]) + key[1:]
	}
	switch m.state {
	case StateStart:
		return "Welcome to Pong!", "Press " + key + " to begin!"
	case StateServe:
		return fmt.Sprintf("Player %d's serve!", m.serving), "Press " + key + " to serve!"
	case StateDone:
		return fmt.Sprintf("Player %d wins!", m.winner), "Press " + key + " to restart!"
	default:
		return "", ""
	}
}

func (m *Match) ID() uuid.UUID             { return m.id }
func (m *Match) Config() Config            { return m.cfg }
func (m *Match) Bindings() Bindings        { return m.bindings }
func (m *Match) State() State              { return m.state }
func (m *Match) Mode() Mode                { return m.mode }
func (m *Match) Difficulty() Difficulty    { return m.difficulty }
func (m *Match) Serving() int              { return m.serving }
func (m *Match) Ball() *Ball               { return m.ball }
func (m *Match) Paddles() (p1, p2 *Paddle) { return m.p1, m.p2 }

// Winner returns the winning side in Done, 0 otherwise.
func (m *Match) Winner() int { return m.winner }

// Score returns both sides' points.
func (m *Match) Score() (p1, p2 int) { return m.scores[0], m.scores[1] }

func opponent(player int) int {
	if player == 1 {
		return 2
	}
	return 1
}
