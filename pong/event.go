package pong

import "fmt"

// Cue is the name of a one-shot sound.
type Cue string

const (
	CuePaddleHit Cue = "paddle_hit"
	CueScore     Cue = "score"
	CueWallHit   Cue = "wall_hit"
)

// Cues lists every cue the match can emit.
var Cues = []Cue{CuePaddleHit, CueScore, CueWallHit}

// CuePlayer plays cues without blocking.
type CuePlayer interface {
	Play(Cue)
}

type EventType int

const (
	_ EventType = iota
	EventPaddleHit
	EventWallHit
	EventScore
	EventTransition
	EventMode
	EventDifficulty
)

func (et EventType) String() string {
	switch et {
	case EventPaddleHit:
		return "Paddle Hit"
	case EventWallHit:
		return "Wall Hit"
	case EventScore:
		return "Score"
	case EventTransition:
		return "Transition"
	case EventMode:
		return "Mode"
	case EventDifficulty:
		return "Difficulty"
	default:
		return "Unknown"
	}
}

// Event is an effect produced by a match tick, for the output layer to consume.
type Event struct {
	Type EventType

	// Player is the side involved (hitting paddle, scorer), 0 when irrelevant.
	Player int

	From, To State

	Mode       Mode
	Difficulty Difficulty
}

// Cue returns the sound for the event, if any.
func (e Event) Cue() (Cue, bool) {
	switch e.Type {
	case EventPaddleHit:
		return CuePaddleHit, true
	case EventWallHit:
		return CueWallHit, true
	case EventScore:
		return CueScore, true
	default:
		return "", false
	}
}

func (e Event) String() string {
	switch e.Type {
	case EventPaddleHit:
		return fmt.Sprintf("player %d hit the ball", e.Player)
	case EventWallHit:
		return "ball hit the wall"
	case EventScore:
		return fmt.Sprintf("player %d scored", e.Player)
	case EventTransition:
		return fmt.Sprintf("%s -> %s", e.From, e.To)
	case EventMode:
		return fmt.Sprintf("mode set to %s", e.Mode)
	case EventDifficulty:
		return fmt.Sprintf("difficulty set to %s", e.Difficulty)
	default:
		return e.Type.String()
	}
}

// PlayCues forwards the cue of each event to p.
func PlayCues(p CuePlayer, events []Event) {
	for _, e := range events {
		if c, ok := e.Cue(); ok {
			p.Play(c)
		}
	}
}
