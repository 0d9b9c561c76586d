package game

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Defaults for a comfortable single-screen maze.
const (
	defaultMazeWidth  = 21
	defaultMazeHeight = 21
	defaultCellPixels = 28
)

// Config is the shell configuration, read once at startup from the
// environment (optionally a .env file in the working directory).
type Config struct {
	MazeWidth  int
	MazeHeight int
	CellPixels int // on-screen size of one grid cell
	Seed       int64
	HasSeed    bool // false = fresh layout every launch
}

// LoadConfig reads MAZEWALK_* environment variables, falling back to
// defaults on anything missing or unparseable. The maze core rejects even
// dimensions outright, so even values are normalized down by one here
// instead of crashing the shell.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	cfg := Config{
		MazeWidth:  envInt("MAZEWALK_WIDTH", defaultMazeWidth),
		MazeHeight: envInt("MAZEWALK_HEIGHT", defaultMazeHeight),
		CellPixels: envInt("MAZEWALK_CELL_PIXELS", defaultCellPixels),
	}
	cfg.MazeWidth = normalizeDimension("MAZEWALK_WIDTH", cfg.MazeWidth, defaultMazeWidth)
	cfg.MazeHeight = normalizeDimension("MAZEWALK_HEIGHT", cfg.MazeHeight, defaultMazeHeight)
	if cfg.CellPixels < 4 {
		log.Warnf("MAZEWALK_CELL_PIXELS=%d too small, using %d", cfg.CellPixels, defaultCellPixels)
		cfg.CellPixels = defaultCellPixels
	}

	if raw, ok := os.LookupEnv("MAZEWALK_SEED"); ok {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warnf("MAZEWALK_SEED=%q is not an integer, ignoring", raw)
		} else {
			cfg.Seed = seed
			cfg.HasSeed = true
		}
	}
	return cfg
}

// envInt reads an integer environment variable with a fallback.
func envInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Warnf("%s=%q is not an integer, using %d", key, raw, fallback)
		return fallback
	}
	return v
}

// normalizeDimension coerces a maze dimension into the odd >=3 range the
// generator demands.
func normalizeDimension(key string, v, fallback int) int {
	if v < 3 {
		log.Warnf("%s=%d below minimum, using %d", key, v, fallback)
		return fallback
	}
	if v%2 == 0 {
		log.Warnf("%s=%d is even, using %d (maze dimensions must be odd)", key, v, v-1)
		return v - 1
	}
	return v
}
