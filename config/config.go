// Package config loads maze settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/pathfinder"
)

// ErrInvalidValue indicates an environment variable that cannot be parsed
// or is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvRows      = "MAZE_ROWS"
	EnvCols      = "MAZE_COLS"
	EnvSeed      = "MAZE_SEED"
	EnvGenerator = "MAZE_GENERATOR"
	EnvSolver    = "MAZE_SOLVER"
	EnvLevel     = "MAZE_LEVEL"
	EnvColor     = "MAZE_COLOR"
)

// Keys lists every variable Load reads.
var Keys = []string{EnvRows, EnvCols, EnvSeed, EnvGenerator, EnvSolver, EnvLevel, EnvColor}

// Config holds the maze settings.
type Config struct {
	Rows      int                  // Grid rows when Level is 0
	Cols      int                  // Grid columns when Level is 0
	Seed      int64                // Random seed, used when HasSeed is set
	HasSeed   bool                 // Whether Seed was given
	Generator generator.Algorithm  // Carving strategy
	Solver    pathfinder.Algorithm // Search strategy
	Level     int                  // 1..generator.MaxLevel, 0 to use Rows/Cols
	Color     bool                 // Colourise terminal output
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Rows:      10,
		Cols:      20,
		Generator: generator.DepthFirstSearch,
		Solver:    pathfinder.BreadthFirstSearch,
		Color:     true,
	}
}

// Load reads the given .env files (".env" when none are named), then the
// MAZE_* variables on top of Default. Missing files are ignored; variables
// already present in the environment win over file entries.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the MAZE_* variables on top of Default.
func FromEnv() (Config, error) {
	c := Default()
	var err error

	if c.Rows, err = getEnvAsInt(EnvRows, c.Rows); err != nil {
		return Config{}, err
	}
	if c.Cols, err = getEnvAsInt(EnvCols, c.Cols); err != nil {
		return Config{}, err
	}
	if c.Level, err = getEnvAsInt(EnvLevel, c.Level); err != nil {
		return Config{}, err
	}
	if c.Color, err = getEnvAsBool(EnvColor, c.Color); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, EnvSeed, v, perr)
		}
		c.Seed, c.HasSeed = seed, true
	}
	if c.Generator, err = generator.ParseAlgorithm(getEnvWithDefault(EnvGenerator, c.Generator.String())); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, EnvGenerator, err)
	}
	if c.Solver, err = pathfinder.ParseAlgorithm(getEnvWithDefault(EnvSolver, c.Solver.String())); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, EnvSolver, err)
	}

	return c, c.Validate()
}

// Validate checks dimensions and level range.
func (c Config) Validate() error {
	if c.Level != 0 {
		if _, _, err := generator.LevelSize(c.Level); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return nil
	}
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: dimensions %d×%d", ErrInvalidValue, c.Rows, c.Cols)
	}
	return nil
}

// Dimensions returns the grid size: the level's size when Level is set,
// otherwise Rows × Cols.
func (c Config) Dimensions() (rows, cols int, err error) {
	if err := c.Validate(); err != nil {
		return 0, 0, err
	}
	if c.Level != 0 {
		return generator.LevelSize(c.Level)
	}
	return c.Rows, c.Cols, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer variable or returns defaultValue if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}

// getEnvAsBool retrieves a boolean variable or returns defaultValue if not set.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}
