package assets

import (
	_ "embed"
)

// ExampleConfig is a commented config file listing every setting.
//
//go:embed pong.toml
var ExampleConfig []byte
