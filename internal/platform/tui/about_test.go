package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tiniprime/RugRun/internal/config"
	"github.com/tiniprime/RugRun/internal/core"
	"github.com/tiniprime/RugRun/internal/storage"
)

func updateAbout(t *testing.T, m AboutModel, msg tea.Msg) AboutModel {
	t.Helper()
	next, _ := m.Update(msg)
	a, ok := next.(AboutModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return a
}

func TestAboutTextHasEveryPage(t *testing.T) {
	info := NewAboutInfo(config.Default(config.VariantRugRun), nil)
	text := AboutText(info, 80)

	for _, want := range []string{
		"How claiming works",
		"Sign your score proof after game over.",
		"Post your signed proof + wallet address",
		"Disclaimer:",
		"Are rewards guaranteed?",
		"No. Rewards are distributed",
		"Can scores be faked?",
		"https://x.com/i/communities/2021322872828878918",
		"https://t.me/RugRun",
		"https://solscan.io/token/" + info.Mint,
		"https://dexscreener.com/solana/" + info.Mint,
		"RugRun is a community project",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("about text missing %q", want)
		}
	}
}

func TestAboutTextSingleSection(t *testing.T) {
	info := NewAboutInfo(config.Default(config.VariantRugRun), nil)
	text := AboutText(info, 80, AboutLinks)

	if strings.Contains(text, "How claiming works") || strings.Contains(text, "Can scores be faked?") {
		t.Error("links page should not include rewards or FAQ")
	}
	if !strings.Contains(text, "$RUG mint:") {
		t.Errorf("links page should show the mint, got:\n%s", text)
	}
}

func TestAboutInfoUsesStoredMint(t *testing.T) {
	board := storage.NewLeaderboard(storage.NewMemory())
	board.SetTokenMint("Mint1111111111111111111111111111111111111")

	info := NewAboutInfo(config.Default(config.VariantGetRichQuick), board)
	if info.Mint != "Mint1111111111111111111111111111111111111" {
		t.Errorf("mint = %q, expected the stored override", info.Mint)
	}
	if info.Ticker != "GRQ" || info.Title != "GetRichQuick" {
		t.Errorf("info = %+v, expected GetRichQuick branding", info)
	}
	if text := AboutText(info, 80, AboutFAQ); !strings.Contains(text, "GetRichQuick is a community game") {
		t.Error("FAQ answers should name the variant")
	}
}

func TestParseAboutSection(t *testing.T) {
	tests := []struct {
		in   string
		want AboutSection
		ok   bool
	}{
		{"rewards", AboutRewards, true},
		{"FAQ", AboutFAQ, true},
		{"links", AboutLinks, true},
		{"help", AboutRewards, false},
	}
	for _, tc := range tests {
		got, ok := ParseAboutSection(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseAboutSection(%q) = %v, %v; expected %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAboutModelFAQOpensOneAnswer(t *testing.T) {
	info := NewAboutInfo(config.Default(config.VariantRugRun), nil)
	m := NewAboutModel(info, AboutRewards, 100, 40)

	m = updateAbout(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Section() != AboutFAQ {
		t.Fatalf("tab should move to the FAQ, got %v", m.Section())
	}
	view := m.View()
	if !strings.Contains(view, "Is this financial advice?") {
		t.Error("FAQ should list the questions")
	}
	if strings.Contains(view, "built for fun") {
		t.Error("answers should start closed")
	}

	m = updateAbout(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "built for fun") {
		t.Error("enter should open the first answer")
	}

	m = updateAbout(t, m, runeKey("j"))
	m = updateAbout(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	view = m.View()
	if strings.Contains(view, "built for fun") {
		t.Error("opening another answer should close the first")
	}
	if !strings.Contains(view, "No. Rewards are distributed") {
		t.Error("second answer should be open")
	}

	m = updateAbout(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if strings.Contains(m.View(), "No. Rewards are distributed") {
		t.Error("enter on an open answer should close it")
	}
}

func TestAboutModelNavigation(t *testing.T) {
	info := NewAboutInfo(config.Default(config.VariantRugRun), nil)
	m := NewAboutModel(info, AboutRewards, 100, 40)

	m = updateAbout(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Section() != AboutLinks {
		t.Errorf("shift+tab from the first page should wrap to links, got %v", m.Section())
	}
	if !strings.Contains(m.View(), "https://t.me/RugRun") {
		t.Error("links page should show the Telegram link")
	}

	back := updateAbout(t, m, runeKey("b"))
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("b should go back without quitting")
	}

	quit := updateAbout(t, m, runeKey("q"))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuOpensAbout(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Identity: core.GuestIdentity}
	m := NewMenuModel(nil, cfg)

	if !strings.Contains(m.View(), "How to claim rewards / FAQ") {
		t.Fatal("menu should list the rewards and FAQ entry")
	}

	// The entry is last
	for range m.items {
		next, _ := m.Update(runeKey("j"))
		m = next.(MenuModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if !m.WantsAbout() || m.Selected() != nil || m.WantsScoreboard() {
		t.Error("selecting the last entry should open the FAQ pages")
	}

	direct, _ := NewMenuModel(nil, cfg).Update(runeKey("?"))
	if !direct.(MenuModel).WantsAbout() {
		t.Error("? should open the FAQ pages")
	}
}
