package pong

import (
	"errors"
	"fmt"
)

// Ball and paddle tuning. The clearance offsets are asymmetric on purpose,
// they match the playfield the game was tuned on.
const (
	BounceSpeedup        = 1.03
	LeftPaddleClearance  = 5
	RightPaddleClearance = 4

	ServeMinDX = 140
	ServeMaxDX = 200
	ServeMaxDY = 50

	BounceMinDY = 10
	BounceMaxDY = 150

	// AIEngageRatio is the fraction of the playfield width under which the AI reacts.
	AIEngageRatio = 2.0 / 3.0
)

// Config holds the playfield geometry and the initial match settings.
type Config struct {
	Width, Height float64

	PaddleWidth  float64
	PaddleHeight float64
	PaddleSpeed  float64
	BallSize     float64

	WinningScore int

	Mode       Mode
	Difficulty Difficulty

	// Seed for the match random source, 0 seeds from the clock.
	Seed uint64
}

// DefaultConfig returns the 432x243 virtual playfield settings.
func DefaultConfig() Config {
	return Config{
		Width:        432,
		Height:       243,
		PaddleWidth:  5,
		PaddleHeight: 20,
		PaddleSpeed:  200,
		BallSize:     4,
		WinningScore: 10,
		Mode:         ModePlayerVsAI,
		Difficulty:   1,
	}
}

var errInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: playfield %gx%g", errInvalidConfig, c.Width, c.Height)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle %gx%g", errInvalidConfig, c.PaddleWidth, c.PaddleHeight)
	case c.PaddleHeight > c.Height:
		return fmt.Errorf("%w: paddle height %g exceeds playfield height %g", errInvalidConfig, c.PaddleHeight, c.Height)
	case c.PaddleSpeed <= 0:
		return fmt.Errorf("%w: paddle speed %g", errInvalidConfig, c.PaddleSpeed)
	case c.BallSize <= 0 || c.BallSize > c.Height:
		return fmt.Errorf("%w: ball size %g", errInvalidConfig, c.BallSize)
	case c.WinningScore <= 0:
		return fmt.Errorf("%w: winning score %d", errInvalidConfig, c.WinningScore)
	case !c.Mode.Valid():
		return fmt.Errorf("%w: mode %d", errInvalidConfig, c.Mode)
	case !c.Difficulty.Valid():
		return fmt.Errorf("%w: difficulty %d", errInvalidConfig, c.Difficulty)
	}
	return nil
}
