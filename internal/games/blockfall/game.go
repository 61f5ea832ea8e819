// Package blockfall adapts the board and piece state machine in
// blockfall/core to the platform's registry.Game contract: it turns input
// frames into intents, runs gravity on a tick counter and paints the board.
package blockfall

import (
	"math/rand"

	"github.com/vovakirdan/tui-blockfall/internal/config"
	"github.com/vovakirdan/tui-blockfall/internal/core"
	bf "github.com/vovakirdan/tui-blockfall/internal/games/blockfall/core"
	"github.com/vovakirdan/tui-blockfall/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "blockfall"

// configPath stores the custom config path set via CLI
var configPath string

// configOverride, when set, is used instead of loading from disk.
var configOverride *config.BlockfallConfig

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetConfig installs an already loaded configuration. It takes priority
// over SetConfigPath. Passing nil goes back to loading from disk.
func SetConfig(cfg *config.BlockfallConfig) {
	configOverride = cfg
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game implements Blockfall on top of a core.Session.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.BlockfallConfig
	session *bf.Session

	ticks         uint64 // Unpaused ticks since Reset
	gravityEvery  int    // Ticks between gravity steps
	gravityTicker int    // Ticks since the last descent
	paused        bool

	layout   layout
	tooSmall bool

	// Render bookkeeping for incremental repaint.
	painted            *core.Screen
	paintedW, paintedH int
	paintedOverlay     overlay
	needFull           bool
}

// New creates a new Blockfall game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blockfall"
}

// loadConfig resolves the configuration for a new session.
func loadConfig() config.BlockfallConfig {
	if configOverride != nil {
		return *configOverride
	}
	cfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		return config.DefaultBlockfallConfig()
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	cfg := loadConfig()
	catalog, err := cfg.Catalog()
	if err != nil {
		cfg = config.DefaultBlockfallConfig()
		catalog = bf.ClassicCatalog()
	}
	g.cfg = cfg

	g.session = bf.NewSession(cfg.Board.Rows, cfg.Board.Columns, catalog, rand.New(rand.NewSource(runtime.Seed)))
	g.ticks = 0
	g.gravityEvery = cfg.GravityTicks(runtime.TickRate)
	g.gravityTicker = 0
	g.paused = false

	g.computeLayout()
	g.needFull = true
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.computeLayout()
	g.needFull = true
}

// intentFor maps a platform action to a core intent.
func intentFor(a core.Action) (bf.Intent, bool) {
	switch a {
	case core.ActionLeft:
		return bf.IntentMoveLeft, true
	case core.ActionRight:
		return bf.IntentMoveRight, true
	case core.ActionRotate:
		return bf.IntentRotate, true
	case core.ActionSoftDrop:
		return bf.IntentSoftDrop, true
	default:
		return 0, false
	}
}

// Step advances the simulation by one tick. Queued actions are applied in
// arrival order, then gravity is considered.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult

	if g.session.IsGameOver() {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		res.State = g.State()
		return res
	}

	// Frozen until the window is big enough to show the board.
	if g.tooSmall {
		res.State = g.State()
		return res
	}

	dropped := false
	for _, a := range in.Actions {
		if g.session.IsGameOver() {
			break
		}
		if a == core.ActionPause {
			g.paused = !g.paused
			continue
		}
		if g.paused {
			continue
		}
		intent, ok := intentFor(a)
		if !ok {
			continue
		}
		g.record(g.session.ApplyIntent(intent), &res)
		if intent == bf.IntentSoftDrop {
			dropped = true
		}
	}

	if !g.paused && !g.session.IsGameOver() {
		g.ticks++
		// A soft drop restarts the gravity period from this tick.
		if dropped {
			g.gravityTicker = 0
		} else {
			g.gravityTicker++
		}
		if g.gravityTicker >= g.gravityEvery {
			g.gravityTicker = 0
			g.record(g.session.ApplyIntent(bf.IntentGravityTick), &res)
		}
	}

	res.State = g.State()
	return res
}

// record folds an intent outcome into the step result.
func (g *Game) record(out bf.Outcome, res *core.StepResult) {
	if out.Result == bf.BlockedLocked {
		res.Locked++
		res.Cleared += len(out.Cleared)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.Stats()
	return core.GameState{
		Lines:    st.LinesCleared,
		Pieces:   st.PiecesLocked,
		Ticks:    g.ticks,
		GameOver: g.session.IsGameOver(),
		Paused:   g.paused,
	}
}
