// Package cli provides the functions to parse the command line flags and the optional config file.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"go.creack.net/pong/assets"
	"go.creack.net/pong/pong"
)

// Options is the resolved configuration of a session.
type Options struct {
	Game     pong.Config
	Bindings pong.Bindings

	Scale      int
	Fullscreen bool

	Mute   bool
	Volume float64

	// Tick is the frame period of the terminal front end.
	Tick time.Duration
}

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Game:     pong.DefaultConfig(),
		Bindings: pong.DefaultBindings(),
		Scale:    3,
		Volume:   0.5,
		Tick:     time.Second / 60,
	}
}

// fileConfig is the TOML layout. Pointers tell unset values apart.
type fileConfig struct {
	Mode         *int     `toml:"mode"`
	Difficulty   *int     `toml:"difficulty"`
	WinningScore *int     `toml:"winning_score"`
	PaddleSpeed  *float64 `toml:"paddle_speed"`
	Seed         *uint64  `toml:"seed"`

	Window struct {
		Scale      *int  `toml:"scale"`
		Fullscreen *bool `toml:"fullscreen"`
	} `toml:"window"`

	Audio struct {
		Mute   *bool    `toml:"mute"`
		Volume *float64 `toml:"volume"`
	} `toml:"audio"`

	Terminal struct {
		Tick *string `toml:"tick"`
	} `toml:"terminal"`

	Keys map[string]string `toml:"keys"`
}

// LoadFile applies the TOML file at path on top of opts.
func LoadFile(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return Decode(data, path, opts)
}

// Decode applies the TOML document data on top of opts. path only names the source in errors.
func Decode(data []byte, path string, opts *Options) error {
	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return fmt.Errorf("decode %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%q: unknown setting %q", path, undecoded[0].String())
	}

	if fc.Mode != nil {
		opts.Game.Mode = pong.Mode(*fc.Mode)
	}
	if fc.Difficulty != nil {
		opts.Game.Difficulty = pong.Difficulty(*fc.Difficulty)
	}
	if fc.WinningScore != nil {
		opts.Game.WinningScore = *fc.WinningScore
	}
	if fc.PaddleSpeed != nil {
		opts.Game.PaddleSpeed = *fc.PaddleSpeed
	}
	if fc.Seed != nil {
		opts.Game.Seed = *fc.Seed
	}
	if fc.Window.Scale != nil {
		opts.Scale = *fc.Window.Scale
	}
	if fc.Window.Fullscreen != nil {
		opts.Fullscreen = *fc.Window.Fullscreen
	}
	if fc.Audio.Mute != nil {
		opts.Mute = *fc.Audio.Mute
	}
	if fc.Audio.Volume != nil {
		opts.Volume = *fc.Audio.Volume
	}
	if fc.Terminal.Tick != nil {
		d, err := time.ParseDuration(*fc.Terminal.Tick)
		if err != nil {
			return fmt.Errorf("%q: terminal tick: %w", path, err)
		}
		opts.Tick = d
	}
	for action, name := range fc.Keys {
		if err := bind(&opts.Bindings, action, name); err != nil {
			return fmt.Errorf("%q: %w", path, err)
		}
	}
	return nil
}

func bind(b *pong.Bindings, action, name string) error {
	k, err := pong.ParseKey(name)
	if err != nil {
		return fmt.Errorf("key for %q: %w", action, err)
	}
	targets := map[string]*pong.Key{
		"confirm":    &b.Confirm,
		"cancel":     &b.Cancel,
		"quit":       &b.Quit,
		"mode0":      &b.Modes[0],
		"mode1":      &b.Modes[1],
		"mode2":      &b.Modes[2],
		"difficulty": &b.Difficulty,
		"p1_up":      &b.P1Up,
		"p1_down":    &b.P1Down,
		"p2_up":      &b.P2Up,
		"p2_down":    &b.P2Down,
	}
	dst, ok := targets[action]
	if !ok {
		return fmt.Errorf("unknown action %q", action)
	}
	*dst = k
	return nil
}

var errInvalidOption = errors.New("invalid option")

// Validate checks the front end settings and the game config.
func (o Options) Validate() error {
	if o.Scale < 1 {
		return fmt.Errorf("%w: scale %d", errInvalidOption, o.Scale)
	}
	if o.Volume < 0 || o.Volume > 1 {
		return fmt.Errorf("%w: volume %g not in [0, 1]", errInvalidOption, o.Volume)
	}
	if o.Tick <= 0 {
		return fmt.Errorf("%w: tick %s", errInvalidOption, o.Tick)
	}
	if err := o.Bindings.Validate(); err != nil {
		return err
	}
	return o.Game.Validate()
}

// ParseConfig resolves the options from the defaults, the config file
// given with -config, and the command line flags, in that order.
// flag.ErrHelp is returned as is when -h is passed, and after
// -example-config wrote the example config file to output.
func ParseConfig(name string, args []string, output io.Writer) (Options, error) {
	opts := DefaultOptions()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	var (
		configPath   = fs.String("config", "", "path to a TOML config file")
		example      = fs.Bool("example-config", false, "print an example config file and exit")
		mode         = fs.Int("mode", int(opts.Game.Mode), "game mode: 0 AI vs AI, 1 player vs AI, 2 player vs player")
		difficulty   = fs.Int("difficulty", int(opts.Game.Difficulty), "AI difficulty, 0 to 3")
		winningScore = fs.Int("winning-score", opts.Game.WinningScore, "points needed to win")
		seed         = fs.Uint64("seed", 0, "random seed, 0 for a random one")
		scale        = fs.Int("scale", opts.Scale, "window scale factor")
		fullscreen   = fs.Bool("fullscreen", opts.Fullscreen, "start in fullscreen")
		mute         = fs.Bool("mute", opts.Mute, "disable sound")
		volume       = fs.Float64("volume", opts.Volume, "sound volume, 0 to 1")
		tick         = fs.Duration("tick", opts.Tick, "terminal frame period")
	)
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if *example {
		if _, err := output.Write(assets.ExampleConfig); err != nil {
			return Options{}, fmt.Errorf("write example config: %w", err)
		}
		return Options{}, flag.ErrHelp
	}

	if *configPath != "" {
		if err := LoadFile(*configPath, &opts); err != nil {
			return Options{}, fmt.Errorf("load config: %w", err)
		}
	}

	// Only the flags given explicitly override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			opts.Game.Mode = pong.Mode(*mode)
		case "difficulty":
			opts.Game.Difficulty = pong.Difficulty(*difficulty)
		case "winning-score":
			opts.Game.WinningScore = *winningScore
		case "seed":
			opts.Game.Seed = *seed
		case "scale":
			opts.Scale = *scale
		case "fullscreen":
			opts.Fullscreen = *fullscreen
		case "mute":
			opts.Mute = *mute
		case "volume":
			opts.Volume = *volume
		case "tick":
			opts.Tick = *tick
		}
	})

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
