package config

import (
	"errors"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the identification run parameters read from an optional
// TOML file and overridable by CLI flags.
type Config struct {
	NumDegree int     `toml:"num_degree"`
	DenDegree int     `toml:"den_degree"`
	MaxIter   int     `toml:"max_iter"`
	Tolerance float64 `toml:"tolerance"`
	FMin      float64 `toml:"fmin"`
	FMax      float64 `toml:"fmax"`
}

// Default returns the library's built-in parameter set, the Go rendition
// of the reference implementation's ZITERINIT/GITERINIT constants.
func Default() Config {
	return Config{
		NumDegree: 0,
		DenDegree: 1,
		MaxIter:   1000,
		Tolerance: 1e-11,
		FMin:      0,
		FMax:      math.Inf(1),
	}
}

// Load reads a TOML file into a Config seeded with Default()'s values, so a
// file that sets only a handful of fields leaves the rest at their
// defaults. A missing file is not an error: Load returns Default()
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}
