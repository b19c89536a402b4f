package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tiniprime/RugRun/internal/storage"
)

const longWallet = "AwPS9jNY6PRPcX6W3Z1djxyTsdrpkpCeDbsC93cZ8KHM"

func newBoard(t *testing.T) *storage.Leaderboard {
	t.Helper()
	lb := storage.NewLeaderboard(storage.NewMemory())
	lb.AppendScore(longWallet, 120)
	lb.AppendScore("guest", 40)
	return lb
}

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sb, cmd
}

func TestScoreboardRows(t *testing.T) {
	m := NewScoreboardModel(newBoard(t), "guest", 100, 30)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "AwPS9...Z8KHM" || rows[0][2] != "120" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1][1] != "guest *" {
		t.Errorf("own identity should be marked, got %q", rows[1][1])
	}
	if m.stats.HighScore != 120 || m.stats.Entries != 2 {
		t.Errorf("stats = %+v", m.stats)
	}
}

func TestScoreboardRefresh(t *testing.T) {
	board := newBoard(t)
	m := NewScoreboardModel(board, "guest", 100, 30)

	board.AppendScore("late", 500)

	m, cmd := updateScoreboard(t, m, refreshMsg{loop: m.loop + 100})
	if cmd != nil || len(m.scores) != 2 {
		t.Error("a tick from another scoreboard should be ignored")
	}

	m, cmd = updateScoreboard(t, m, refreshMsg{loop: m.loop})
	if cmd == nil {
		t.Error("refresh should schedule the next one")
	}
	if len(m.scores) != 3 || m.scores[0].Identity != "late" {
		t.Errorf("scores after refresh = %+v", m.scores)
	}
}

func TestScoreboardResetNeedsConfirm(t *testing.T) {
	board := newBoard(t)
	m := NewScoreboardModel(board, "guest", 100, 30)

	m, _ = updateScoreboard(t, m, runeKey("x"))
	if !m.confirming {
		t.Fatal("x should ask for confirmation")
	}
	if !strings.Contains(m.View(), "(y/n)") {
		t.Error("confirmation prompt should be shown")
	}

	m, _ = updateScoreboard(t, m, runeKey("n"))
	if m.confirming || len(board.TopScores(10)) != 2 {
		t.Error("n should cancel without resetting")
	}

	m, _ = updateScoreboard(t, m, runeKey("x"))
	m, _ = updateScoreboard(t, m, runeKey("y"))
	if len(board.TopScores(10)) != 0 {
		t.Error("y should reset the leaderboard")
	}
	if len(m.scores) != 0 || !strings.Contains(m.View(), "No runs yet") {
		t.Error("view should show the empty board after reset")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)

	back, _ := updateScoreboard(t, m, runeKey("b"))
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("b should go back")
	}

	quit, _ := updateScoreboard(t, m, runeKey("q"))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}
