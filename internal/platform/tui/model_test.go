package tui

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vovakirdan/tui-blockfall/internal/core"
	"github.com/vovakirdan/tui-blockfall/internal/storage"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets    []core.RuntimeConfig
	frames    [][]core.Action
	resized   []int
	state     core.GameState
	overAfter uint64 // Tops out after this many ticks, 0 = never
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, slices.Clone(in.Actions))
	if !g.state.GameOver {
		g.state.Ticks++
		g.state.Pieces++
		g.state.GameOver = g.overAfter > 0 && g.state.Ticks >= g.overAfter
	}
	return core.StepResult{State: g.state, Locked: 1}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Resize(w, h int) { g.resized = []int{w, h} }

func testModel(t *testing.T, g *fakeGame, store *storage.Store) Model {
	t.Helper()
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42}, nil)
	m.Init()
	return m
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelQueuesKeysInOrder(t *testing.T) {
	g := &fakeGame{}
	m := testModel(t, g, nil)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(m, runeKey('d'))
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(m, TickMsg{})
	m, _ = send(m, TickMsg{})

	expected := [][]core.Action{
		{core.ActionLeft, core.ActionRight, core.ActionRotate},
		{},
	}
	if diff := cmp.Diff(expected, g.frames, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("frames mismatch (-expected +got):\n%s", diff)
	}
}

func TestModelScreenLeavesRoomForHelp(t *testing.T) {
	g := &fakeGame{}
	m := testModel(t, g, nil)

	if got := g.resets[0].ScreenH; got != 25-helpHeight {
		t.Errorf("game ScreenH = %d, expected %d", got, 25-helpHeight)
	}
	if !strings.Contains(m.View(), "rotate") {
		t.Error("View() should include key help")
	}
}

func TestModelSavesSessionOnTopOut(t *testing.T) {
	store := testStore(t)
	g := &fakeGame{overAfter: 3}
	m := testModel(t, g, store)

	for i := 0; i < 6; i++ {
		m, _ = send(m, TickMsg{})
	}

	sessions, err := store.RecentSessions("fake", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 saved session, got %d", len(sessions))
	}
	s := sessions[0]
	if s.EndReason != storage.EndToppedOut || s.Ticks != 3 || s.Pieces != 3 || s.Seed != 42 {
		t.Errorf("saved session = %+v", s)
	}

	// Quitting after top-out must not record the game twice.
	_, cmd := send(m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	sessions, _ = store.RecentSessions("fake", 10)
	if len(sessions) != 1 {
		t.Errorf("expected 1 session after quit, got %d", len(sessions))
	}
}

func TestModelSavesSessionOnQuit(t *testing.T) {
	store := testStore(t)
	g := &fakeGame{}
	m := testModel(t, g, store)

	m, _ = send(m, TickMsg{})
	m, _ = send(m, TickMsg{})
	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}

	sessions, err := store.RecentSessions("fake", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].EndReason != storage.EndQuit || sessions[0].Ticks != 2 {
		t.Errorf("sessions = %+v, expected one quit after 2 ticks", sessions)
	}
}

func TestModelQuitBeforeFirstTickSavesNothing(t *testing.T) {
	store := testStore(t)
	m := testModel(t, &fakeGame{}, store)

	send(m, runeKey('q'))

	sessions, _ := store.RecentSessions("fake", 10)
	if len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
}

func TestModelRestartAfterTopOut(t *testing.T) {
	store := testStore(t)
	g := &fakeGame{overAfter: 2}
	m := testModel(t, g, store)

	m, _ = send(m, TickMsg{})
	m, _ = send(m, TickMsg{})
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}

	m, _ = send(m, runeKey('r'))
	m, _ = send(m, TickMsg{})
	if len(g.resets) != 2 {
		t.Fatalf("Reset called %d times, expected 2", len(g.resets))
	}
	if g.resets[1].Seed != 42 {
		t.Errorf("restart seed = %d, expected the fixed seed 42", g.resets[1].Seed)
	}

	m, _ = send(m, TickMsg{})
	send(m, TickMsg{})
	sessions, _ := store.RecentSessions("fake", 10)
	if len(sessions) != 2 {
		t.Errorf("expected a session per game, got %d", len(sessions))
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := testModel(t, g, nil)

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if diff := cmp.Diff([]int{100, 40 - helpHeight}, g.resized); diff != "" {
		t.Errorf("Resize args mismatch (-expected +got):\n%s", diff)
	}
	if len(g.resets) != 1 {
		t.Errorf("Reset called %d times, resize should keep the game", len(g.resets))
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 40-helpHeight)
	}
}
