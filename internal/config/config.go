// Package config provides YAML-based game configuration loading for
// Blockfall: board size, gravity period and the piece color table.
package config

import (
	"errors"
	"fmt"
	"sort"

	bf "github.com/vovakirdan/tui-blockfall/internal/games/blockfall/core"
)

// Board size limits. Every template spans three columns around the pivot
// and two rows, so smaller boards cannot spawn all shapes. The upper
// bounds keep the grid within what any terminal can show.
const (
	MinRows    = 4
	MinColumns = 4
	MaxRows    = 200
	MaxColumns = 100
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid blockfall config")

// BlockfallConfig contains all configuration for Blockfall.
type BlockfallConfig struct {
	Board   BlockfallBoard    `yaml:"board"`
	Gravity BlockfallGravity  `yaml:"gravity"`
	Colors  map[string]string `yaml:"colors"` // Shape letter -> color name
}

// BlockfallBoard defines the playfield size in cells.
type BlockfallBoard struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// BlockfallGravity defines how often the active piece falls one row.
type BlockfallGravity struct {
	PeriodMS int `yaml:"period_ms"`
}

// Validate checks sizes, the gravity period and every color entry.
func (c BlockfallConfig) Validate() error {
	if c.Board.Rows < MinRows {
		return fmt.Errorf("%w: board.rows %d < %d", ErrInvalid, c.Board.Rows, MinRows)
	}
	if c.Board.Rows > MaxRows {
		return fmt.Errorf("%w: board.rows %d > %d", ErrInvalid, c.Board.Rows, MaxRows)
	}
	if c.Board.Columns < MinColumns {
		return fmt.Errorf("%w: board.columns %d < %d", ErrInvalid, c.Board.Columns, MinColumns)
	}
	if c.Board.Columns > MaxColumns {
		return fmt.Errorf("%w: board.columns %d > %d", ErrInvalid, c.Board.Columns, MaxColumns)
	}
	if c.Gravity.PeriodMS <= 0 {
		return fmt.Errorf("%w: gravity.period_ms must be positive, got %d", ErrInvalid, c.Gravity.PeriodMS)
	}
	if _, err := c.ShapeColors(); err != nil {
		return err
	}
	return nil
}

// ShapeColors parses the color table. Shapes missing from the table keep
// their classic color.
func (c BlockfallConfig) ShapeColors() (map[bf.Shape]bf.Color, error) {
	// Sorted so the first reported error is stable.
	keys := make([]string, 0, len(c.Colors))
	for k := range c.Colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[bf.Shape]bf.Color, len(keys))
	for _, k := range keys {
		shape, ok := bf.ParseShape(k)
		if !ok {
			return nil, fmt.Errorf("%w: unknown shape %q in colors", ErrInvalid, k)
		}
		color, ok := bf.ParseColor(c.Colors[k])
		if !ok {
			return nil, fmt.Errorf("%w: unknown color %q for shape %s", ErrInvalid, c.Colors[k], k)
		}
		out[shape] = color
	}
	return out, nil
}

// Catalog builds the piece catalog with the configured colors.
func (c BlockfallConfig) Catalog() (bf.Catalog, error) {
	colors, err := c.ShapeColors()
	if err != nil {
		return bf.Catalog{}, err
	}
	return bf.NewCatalog(colors), nil
}

// GravityTicks converts the gravity period into simulation ticks at the
// given tick rate, rounding to the nearest tick. The result is at least 1.
func (c BlockfallConfig) GravityTicks(tickRate int) int {
	if tickRate <= 0 || c.Gravity.PeriodMS <= 0 {
		return 1
	}
	ticks := (c.Gravity.PeriodMS*tickRate + 500) / 1000
	return max(ticks, 1)
}

// fillDefaults replaces zero values with the defaults so partial files work.
func (c *BlockfallConfig) fillDefaults() {
	def := DefaultBlockfallConfig()
	if c.Board.Rows == 0 {
		c.Board.Rows = def.Board.Rows
	}
	if c.Board.Columns == 0 {
		c.Board.Columns = def.Board.Columns
	}
	if c.Gravity.PeriodMS == 0 {
		c.Gravity.PeriodMS = def.Gravity.PeriodMS
	}
	if c.Colors == nil {
		c.Colors = make(map[string]string, len(def.Colors))
	}
	for k, v := range def.Colors {
		if _, ok := c.Colors[k]; !ok {
			c.Colors[k] = v
		}
	}
}
