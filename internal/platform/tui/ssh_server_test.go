package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

// startStubSession opens the menu and starts the stub game.
func startStubSession(t *testing.T) (SessionModel, func() int) {
	t.Helper()
	scores, _, store := newTestScores(t)
	m := NewSessionModel(scores, testConfig(), "alice", log.New(io.Discard))

	// The stub sorts before every other registered game.
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected the game", m.screen)
	}
	return m, func() int { return countScores(t, store) }
}

func TestSessionDisconnectRecordsGame(t *testing.T) {
	m, saved := startStubSession(t)
	for range 3 {
		m = updateSession(t, m, TickMsg{})
	}
	if saved() != 0 {
		t.Fatal("game recorded before the session ended")
	}

	m.recorder.finish()
	if n := saved(); n != 1 {
		t.Fatalf("saved %d results after disconnect, expected 1", n)
	}

	m.recorder.finish()
	if n := saved(); n != 1 {
		t.Errorf("saved %d results after a second finish, expected 1", n)
	}
}

func TestSessionQuitIsNotRecordedTwice(t *testing.T) {
	m, saved := startStubSession(t)
	for range 3 {
		m = updateSession(t, m, TickMsg{})
	}

	m = updateSession(t, m, runeKey("q"))
	if !m.quitting {
		t.Fatal("q should end the session")
	}
	m.recorder.finish()
	if n := saved(); n != 1 {
		t.Errorf("saved %d results, expected 1", n)
	}
}

func TestSessionBackToMenuStopsTracking(t *testing.T) {
	m, saved := startStubSession(t)
	for range 2 {
		m = updateSession(t, m, TickMsg{})
	}
	m = updateSession(t, m, runeKey("p"))
	m = updateSession(t, m, TickMsg{})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected the menu", m.screen)
	}

	m.recorder.finish()
	if n := saved(); n != 1 {
		t.Errorf("saved %d results, expected 1", n)
	}
}
