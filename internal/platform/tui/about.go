package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tiniprime/RugRun/internal/config"
	"github.com/tiniprime/RugRun/internal/storage"
	"github.com/tiniprime/RugRun/internal/wallet"
)

// AboutSection is one page of the about screen.
type AboutSection int

const (
	AboutRewards AboutSection = iota
	AboutFAQ
	AboutLinks
)

var aboutSectionNames = []string{"Rewards", "FAQ", "Links"}

// String returns the tab title of the section.
func (s AboutSection) String() string {
	if int(s) < 0 || int(s) >= len(aboutSectionNames) {
		return "Unknown"
	}
	return aboutSectionNames[s]
}

// ParseAboutSection maps "rewards", "faq" or "links" to a section.
func ParseAboutSection(s string) (AboutSection, bool) {
	for i, name := range aboutSectionNames {
		if strings.EqualFold(s, name) {
			return AboutSection(i), true
		}
	}
	return AboutRewards, false
}

// AboutInfo is the variant data the informational pages need.
type AboutInfo struct {
	Title  string
	Ticker string
	Mint   string
	Links  config.LinksConfig
}

// NewAboutInfo builds the about data of a variant. The mint stored on the
// device wins over the variant default when board is non-nil.
func NewAboutInfo(cfg config.RunnerConfig, board *storage.Leaderboard) AboutInfo {
	mint := cfg.Wallet.DefaultMint
	if board != nil {
		mint = board.TokenMint(mint)
	}
	return AboutInfo{
		Title:  cfg.Variant.Title,
		Ticker: cfg.Variant.Ticker,
		Mint:   mint,
		Links:  cfg.Links,
	}
}

type faqEntry struct {
	question string
	answer   string
}

func (a AboutInfo) faqs() []faqEntry {
	return []faqEntry{
		{
			"Is this financial advice?",
			fmt.Sprintf("No. %s is a community game built for fun. Nothing here constitutes financial advice. Always do your own research (DYOR).", a.Title),
		},
		{
			"Are rewards guaranteed?",
			"No. Rewards are distributed at the team's discretion during community events. There are no guaranteed earnings, payouts, or returns of any kind.",
		},
		{
			"Why is there no backend?",
			fmt.Sprintf("%s is an early-stage demo. Scores are stored locally on your device. A backend with anti-cheat and verified leaderboards may come in a future version.", a.Title),
		},
		{
			"How do I verify the token address?",
			fmt.Sprintf("Always verify the contract address from official sources. Check it on Solscan (%s) and cross-reference with our official X account and Telegram channel.", wallet.SolscanTokenURL(a.Mint)),
		},
		{
			"What wallets are supported?",
			"Phantom, Solflare and Backpack. Any wallet compatible with the Solana wallet standard should work.",
		},
		{
			"Can scores be faked?",
			"Yes. Scores are kept on the player's device, so they can technically be manipulated. The signed proof adds a layer of accountability, but it is not tamper-proof. This is a known limitation of the demo.",
		},
	}
}

func (a AboutInfo) claimSteps() []string {
	return []string{
		"Play a game and get a high score.",
		"Connect your Solana wallet (Phantom, Solflare, or Backpack).",
		"Sign your score proof after game over.",
		"Copy the signed proof JSON (press C on the game over screen).",
		"Post your signed proof + wallet address in our X community or the Discord #rewards channel.",
		"The team reviews and distributes rewards at their discretion.",
	}
}

var (
	aboutHeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	aboutCursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	aboutDimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	aboutWarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	aboutTabStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Padding(0, 1)
	aboutTabDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
)

// faqAllOpen expands every answer and hides the cursor.
const faqAllOpen = -2

// wrap word-wraps text to width and indents every line.
func wrap(text string, width int, indent string) []string {
	w := width - len(indent)
	if w < 20 {
		w = 20
	}
	lines := strings.Split(ansi.Wordwrap(text, w, ""), "\n")
	for i, l := range lines {
		lines[i] = indent + l
	}
	return lines
}

func (a AboutInfo) rewardsLines(width int) []string {
	var lines []string
	lines = append(lines, aboutHeadingStyle.Render("Rewards"), "")
	lines = append(lines, wrap("Earn points by playing. Occasional community prize drops may happen. No guaranteed earnings: this is a fun community game, not a financial product.", width, "")...)
	lines = append(lines, "")
	lines = append(lines, aboutHeadingStyle.Render("Play  >  Sign  >  Claim"), "")
	lines = append(lines, aboutHeadingStyle.Render("How claiming works (manual)"))
	for i, step := range a.claimSteps() {
		wrapped := wrap(step, width, "     ")
		wrapped[0] = fmt.Sprintf("  %d. %s", i+1, strings.TrimLeft(wrapped[0], " "))
		lines = append(lines, wrapped...)
	}
	lines = append(lines, "")
	for _, l := range wrap("Disclaimer: Rewards are not guaranteed. Distribution is at the team's discretion. This is a community game, not a financial product. Do not spend more than you can afford.", width, "") {
		lines = append(lines, aboutWarnStyle.Render(l))
	}
	return lines
}

// faqLines renders the questions with the answer at open expanded. It also
// returns the line the cursor question starts on.
func (a AboutInfo) faqLines(width, cursor, open int) ([]string, int) {
	lines := []string{aboutHeadingStyle.Render("FAQ"), ""}
	cursorLine := 0
	for i, f := range a.faqs() {
		marker := "  "
		question := f.question
		if i == cursor {
			cursorLine = len(lines)
			marker = "> "
			question = aboutCursorStyle.Render(question)
		}
		lines = append(lines, marker+question)
		if open == faqAllOpen || open == i {
			for _, l := range wrap(f.answer, width, "    ") {
				lines = append(lines, aboutDimStyle.Render(l))
			}
			lines = append(lines, "")
		}
	}
	return lines, cursorLine
}

func (a AboutInfo) linksLines(width int) []string {
	lines := []string{aboutHeadingStyle.Render("Links"), ""}
	row := func(label, url string) {
		if url != "" {
			lines = append(lines, fmt.Sprintf("  %-13s %s", label+":", url))
		}
	}
	row("X community", a.Links.Community)
	row("X", a.Links.X)
	row("Telegram", a.Links.Telegram)
	row("Solscan", wallet.SolscanTokenURL(a.Mint))
	row("Dexscreener", wallet.DexscreenerURL(a.Mint))
	row("$"+a.Ticker+" mint", a.Mint)
	lines = append(lines, "")
	footer := fmt.Sprintf("%s is a community project built to raise awareness about rugpulls on Solana. Nothing here constitutes financial advice. Always DYOR. Stay safe out there.", a.Title)
	for _, l := range wrap(footer, width, "") {
		lines = append(lines, aboutDimStyle.Render(l))
	}
	return lines
}

// AboutText renders every section one after another with all answers
// expanded, for printing outside the TUI.
func AboutText(info AboutInfo, width int, sections ...AboutSection) string {
	if len(sections) == 0 {
		sections = []AboutSection{AboutRewards, AboutFAQ, AboutLinks}
	}
	var parts []string
	for _, s := range sections {
		var lines []string
		switch s {
		case AboutFAQ:
			lines, _ = info.faqLines(width, -1, faqAllOpen)
		case AboutLinks:
			lines = info.linksLines(width)
		default:
			lines = info.rewardsLines(width)
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// AboutKeyMap defines the key bindings for the about screen.
type AboutKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k AboutKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Up, k.Down, k.Toggle, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k AboutKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Up, k.Down, k.Toggle},
		{k.Back, k.Quit},
	}
}

// DefaultAboutKeyMap returns default key bindings.
func DefaultAboutKeyMap() AboutKeyMap {
	return AboutKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "previous page"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open answer"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// AboutModel shows how to claim rewards, the FAQ and the community links.
// FAQ answers open one at a time.
type AboutModel struct {
	info      AboutInfo
	section   AboutSection
	cursor    int
	open      int // FAQ answer shown, -1 for none
	viewport  viewport.Model
	help      help.Model
	keys      AboutKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewAboutModel creates an about screen opened on section.
func NewAboutModel(info AboutInfo, section AboutSection, width, height int) AboutModel {
	m := AboutModel{
		info:    info,
		section: section,
		open:    -1,
		help:    help.New(),
		keys:    DefaultAboutKeyMap(),
	}
	m.viewport = viewport.New(0, 0)
	m.resize(width, height)
	return m
}

func (m *AboutModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-4, 1) // tabs, blank, help
	m.refresh()
}

// refresh rebuilds the page content and keeps the FAQ cursor in view.
func (m *AboutModel) refresh() {
	width := min(m.width-2, 76)
	var lines []string
	cursorLine := -1
	switch m.section {
	case AboutFAQ:
		lines, cursorLine = m.info.faqLines(width, m.cursor, m.open)
	case AboutLinks:
		lines = m.info.linksLines(width)
	default:
		lines = m.info.rewardsLines(width)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	if cursorLine >= 0 {
		if cursorLine < m.viewport.YOffset {
			m.viewport.SetYOffset(cursorLine)
		} else if cursorLine >= m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
		}
	}
}

func (m *AboutModel) switchTo(s AboutSection) {
	n := AboutSection(len(aboutSectionNames))
	m.section = (s + n) % n
	m.cursor = 0
	m.open = -1
	m.viewport.GotoTop()
	m.refresh()
}

// Init initializes the about screen.
func (m AboutModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the about screen.
func (m AboutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchTo(m.section + 1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchTo(m.section - 1)
			return m, nil
		}

		if m.section == AboutFAQ {
			count := len(m.info.faqs())
			switch {
			case key.Matches(msg, m.keys.Up):
				if m.cursor > 0 {
					m.cursor--
				}
			case key.Matches(msg, m.keys.Down):
				if m.cursor < count-1 {
					m.cursor++
				}
			case key.Matches(msg, m.keys.Toggle):
				if m.open == m.cursor {
					m.open = -1
				} else {
					m.open = m.cursor
				}
			default:
				return m, nil
			}
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the about screen.
func (m AboutModel) View() string {
	if m.quitting {
		return ""
	}

	tabs := make([]string, len(aboutSectionNames))
	for i, name := range aboutSectionNames {
		if AboutSection(i) == m.section {
			tabs[i] = aboutTabStyle.Render(name)
		} else {
			tabs[i] = aboutTabDimStyle.Render(name)
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Section returns the page being shown.
func (m AboutModel) Section() AboutSection {
	return m.section
}

// IsQuitting returns true if user requested to quit.
func (m AboutModel) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack returns true if user wants to go back to menu.
func (m AboutModel) IsGoingBack() bool {
	return m.goingBack
}

// RunAbout runs the about screen and reports whether the user went back.
func RunAbout(info AboutInfo, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewAboutModel(info, AboutRewards, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(AboutModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
