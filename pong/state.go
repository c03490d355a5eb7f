package pong

// State is the active phase of a match.
type State int

const (
	StateStart State = iota
	StateServe
	StatePlay
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateServe:
		return "Serve"
	case StatePlay:
		return "Play"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Mode selects which paddles are driven by a human.
type Mode int

const (
	ModeAIvsAI Mode = iota
	ModePlayerVsAI
	ModePlayerVsPlayer
)

func (m Mode) String() string {
	switch m {
	case ModeAIvsAI:
		return "AI vs AI"
	case ModePlayerVsAI:
		return "Player vs AI"
	case ModePlayerVsPlayer:
		return "Player vs Player"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool { return m >= ModeAIvsAI && m <= ModePlayerVsPlayer }

// Human reports whether the given side (1 or 2) is controlled from the keyboard.
func (m Mode) Human(player int) bool {
	switch m {
	case ModePlayerVsAI:
		return player == 1
	case ModePlayerVsPlayer:
		return true
	default:
		return false
	}
}

// Difficulty is the AI tier, 0 (slowest) to 3 (full paddle speed).
type Difficulty int

// DifficultyLevels is the number of AI tiers.
const DifficultyLevels = 4

var difficultyDivisors = [DifficultyLevels]float64{1.8, 1.5, 1.2, 1}

// Next returns the following tier, wrapping after the last one.
func (d Difficulty) Next() Difficulty {
	return (d + 1) % DifficultyLevels
}

// Divisor is the factor the base paddle speed is divided by at this tier.
func (d Difficulty) Divisor() float64 {
	if !d.Valid() {
		return difficultyDivisors[0]
	}
	return difficultyDivisors[d]
}

func (d Difficulty) Valid() bool { return d >= 0 && d < DifficultyLevels }

func (d Difficulty) String() string {
	switch d {
	case 0:
		return "Easy"
	case 1:
		return "Normal"
	case 2:
		return "Hard"
	case 3:
		return "Expert"
	default:
		return "Unknown"
	}
}
