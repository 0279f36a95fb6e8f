// Package tui renders the table and relays player intents. All table facts
// it shows are derived from the latest snapshot; nothing is computed
// authoritatively here.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lllllan02/holdem/internal/betting"
	"github.com/lllllan02/holdem/internal/client"
	"github.com/lllllan02/holdem/internal/deck"
	"github.com/lllllan02/holdem/internal/protocol"
	"github.com/lllllan02/holdem/internal/state"
)

// bannerTimeout is how long an advisory message stays up before it clears
// itself. Manual dismissal is always available.
const bannerTimeout = 3 * time.Second

// StateMsg carries a fresh table snapshot into the update loop
type StateMsg struct {
	Game *protocol.GameState
}

// ServerErrorMsg carries a server-reported fault into the update loop
type ServerErrorMsg struct {
	Text string
}

type bannerClearMsg struct {
	seq int
}

// Model is the Bubble Tea model for the table view
type Model struct {
	store  *state.Store
	conn   *client.Client
	logger *log.Logger

	raiseInput textinput.Model
	showRaise  bool

	banner    string
	bannerSeq int

	width    int
	height   int
	quitting bool
}

// NewModel creates the table view bound to a snapshot store and channel
// client
func NewModel(store *state.Store, conn *client.Client, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "amount"
	ti.CharLimit = 10
	ti.Width = 12
	ti.Prompt = "raise to: "
	ti.PromptStyle = ActionsStyle

	return &Model{
		store:      store,
		conn:       conn,
		logger:     logger.WithPrefix("tui"),
		raiseInput: ti,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// advise raises the transient banner and schedules its auto-clear
func (m *Model) advise(text string) tea.Cmd {
	m.banner = text
	m.bannerSeq++
	seq := m.bannerSeq
	return tea.Tick(bannerTimeout, func(time.Time) tea.Msg {
		return bannerClearMsg{seq: seq}
	})
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case StateMsg:
		m.store.Replace(msg.Game)
		// Local raise draft does not survive the table going back to
		// waiting.
		if msg.Game != nil && msg.Game.GameStatus == protocol.StatusWaiting {
			m.closeRaise()
		}
		return m, nil

	case ServerErrorMsg:
		return m, m.advise(msg.Text)

	case bannerClearMsg:
		if msg.seq == m.bannerSeq {
			m.banner = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.showRaise {
		var cmd tea.Cmd
		m.raiseInput, cmd = m.raiseInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showRaise {
		return m.handleRaiseKey(msg)
	}

	view := m.store.View()

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "x":
		m.banner = ""
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7":
		if view.MySeat() == protocol.NoSeat {
			seat, _ := strconv.Atoi(msg.String())
			m.conn.SitDown(seat - 1)
		}
		return m, nil

	case "l":
		if seat := view.MySeat(); seat != protocol.NoSeat {
			m.conn.LeaveSeat(seat)
		}
		return m, nil

	case "r":
		if view.MySeat() != protocol.NoSeat && !view.MyReady() {
			m.conn.Ready()
		}
		return m, nil

	case "u":
		if view.MyReady() {
			m.conn.Unready()
		}
		return m, nil

	case "g":
		if view.MySeat() != protocol.NoSeat {
			m.conn.StartGame()
		}
		return m, nil

	case "e":
		if view.MySeat() != protocol.NoSeat {
			m.conn.EndGame()
		}
		return m, nil

	case "f":
		if view.IsMyTurn() {
			m.conn.Fold()
		}
		return m, nil

	case "c":
		if view.IsMyTurn() {
			if view.CanCheck() {
				m.conn.Check()
			} else {
				m.conn.Call()
			}
		}
		return m, nil

	case "b":
		if view.IsMyTurn() {
			m.openRaise(view)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleRaiseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.store.View()

	switch msg.String() {
	case "esc":
		m.closeRaise()
		return m, nil

	case "enter":
		result := betting.ValidateRaiseInput(view, m.raiseInput.Value())
		if !result.OK {
			m.raiseInput.SetValue(strconv.Itoa(result.Draft))
			return m, m.advise(result.Advice)
		}
		m.conn.Raise(result.Amount)
		m.closeRaise()
		return m, nil

	case "m", "h", "p", "o", "t", "a":
		shortcuts := betting.Shortcuts(view)
		idx := strings.Index("mhpota", msg.String())
		if idx >= 0 && idx < len(shortcuts) {
			m.raiseInput.SetValue(strconv.Itoa(shortcuts[idx].Amount))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.raiseInput, cmd = m.raiseInput.Update(msg)
	return m, cmd
}

func (m *Model) openRaise(view state.View) {
	m.raiseInput.SetValue(strconv.Itoa(view.MinRaise()))
	m.raiseInput.Focus()
	m.showRaise = true
}

func (m *Model) closeRaise() {
	m.showRaise = false
	m.raiseInput.Blur()
	m.raiseInput.SetValue("")
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	view := m.store.View()
	if view.Game == nil {
		return InfoStyle.Render("waiting for table state...")
	}

	var b strings.Builder

	b.WriteString(m.renderHeader(view))
	b.WriteString("\n\n")
	b.WriteString(m.renderSeats(view))
	b.WriteString("\n")
	b.WriteString(m.renderBoard(view))
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter(view))

	return b.String()
}

func (m *Model) renderHeader(view state.View) string {
	g := view.Game

	parts := []string{fmt.Sprintf(" holdem — %s ", g.GameStatus)}
	if g.GamePhase != "" {
		parts = append(parts, g.GamePhase)
	}
	header := HeaderStyle.Render(strings.Join(parts, " "))

	info := fmt.Sprintf("pot %d", g.Pot)
	if g.CurrentBet > 0 {
		info += fmt.Sprintf(" · bet %d", g.CurrentBet)
	}
	info += fmt.Sprintf(" · blinds %d/%d", g.SmallBlind, g.BigBlind)
	if g.CountdownTimer > 0 {
		info += fmt.Sprintf(" · starting in %ds", g.CountdownTimer)
	}
	if g.Spectators > 0 {
		info += fmt.Sprintf(" · %d watching", g.Spectators)
	}
	if text := view.ReadyStatusText(); text != "" {
		info += " · " + text
	}

	return header + "\n" + TableInfoStyle.Render(info)
}

func (m *Model) renderSeats(view state.View) string {
	g := view.Game
	roles := view.Roles()
	mySeat := view.MySeat()

	var b strings.Builder
	for i := range g.Players {
		seat := &g.Players[i]
		if seat.IsEmpty() {
			b.WriteString(InfoStyle.Render(fmt.Sprintf("  seat %d: (empty)", i+1)))
			b.WriteString("\n")
			continue
		}

		marker := "  "
		if g.CurrentPlayer == i {
			marker = TurnStyle.Render("▶ ")
		}

		line := fmt.Sprintf("seat %d: %-12s %6d chips", i+1, seat.Name, seat.Chips)

		var tags []string
		if roles.Dealer == i {
			tags = append(tags, "D")
		}
		if roles.SmallBlind == i {
			tags = append(tags, "SB")
		}
		if roles.BigBlind == i {
			tags = append(tags, "BB")
		}
		if len(tags) > 0 {
			line += " [" + strings.Join(tags, " ") + "]"
		}

		if seat.CurrentBet > 0 {
			line += fmt.Sprintf("  bet %d", seat.CurrentBet)
		}
		if seat.Status == protocol.SeatFolded {
			line += "  folded"
		}
		if seat.Status == protocol.SeatAllIn {
			line += "  all-in"
		}
		if seat.IsReady && g.GameStatus == protocol.StatusWaiting {
			line += "  ✓ ready"
		}
		if i == mySeat {
			line += "  (you)"
		}

		b.WriteString(marker + SeatStyle.Render(line))

		if len(seat.HoleCards) > 0 {
			if view.CardsVisible(i) {
				b.WriteString("  " + renderCards(seat.HoleCards))
				if seat.HandRank != nil {
					b.WriteString("  " + WinStyle.Render(seat.HandRank.Name()))
				}
			} else {
				b.WriteString("  " + HiddenCardStyle.Render("🂠 🂠"))
			}
		}
		if seat.WinAmount > 0 {
			b.WriteString("  " + WinStyle.Render(fmt.Sprintf("+%d", seat.WinAmount)))
		}

		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderBoard(view state.View) string {
	cards := view.Game.CommunityCards
	if len(cards) == 0 {
		return InfoStyle.Render("  board: —")
	}
	return "  board: " + renderCards(cards)
}

func (m *Model) renderFooter(view state.View) string {
	var lines []string

	if m.banner != "" {
		lines = append(lines, BannerStyle.Render("⚠ "+m.banner+"  (x to dismiss)"))
	}

	if m.showRaise {
		minRaise := view.MinRaise()
		help := fmt.Sprintf("min %d · chips %d · pot %d", minRaise, view.MyChips(), view.Game.Pot)

		var presets []string
		for i, sc := range betting.Shortcuts(view) {
			presets = append(presets, fmt.Sprintf("[%c] %s %d", "mhpota"[i], sc.Label, sc.Amount))
		}

		lines = append(lines,
			m.raiseInput.View(),
			InfoStyle.Render(help),
			InfoStyle.Render(strings.Join(presets, "  ")),
			InfoStyle.Render("enter confirm · esc cancel"),
		)
		return strings.Join(lines, "\n")
	}

	var keys []string
	switch {
	case view.MySeat() == protocol.NoSeat:
		keys = append(keys, "1-7 sit")
	case view.IsMyTurn():
		keys = append(keys, "f fold")
		if view.CanCheck() {
			keys = append(keys, "c check")
		} else {
			keys = append(keys, fmt.Sprintf("c call %d", view.CallAmount()))
		}
		keys = append(keys, "b raise")
	default:
		if view.MyReady() {
			keys = append(keys, "u unready")
		} else {
			keys = append(keys, "r ready")
		}
		keys = append(keys, "l leave", "g start", "e end")
	}
	keys = append(keys, "q quit")

	lines = append(lines, ActionsStyle.Render(strings.Join(keys, " · ")))
	return strings.Join(lines, "\n")
}

// renderCards formats cards with suit coloring
func renderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = RedCardStyle.Render(c.String())
		} else {
			parts[i] = BlackCardStyle.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}

// Attach subscribes the running program to the channel client so inbound
// messages become Bubble Tea messages. Returns an unsubscribe for both
// registrations.
func Attach(p *tea.Program, conn *client.Client) func() {
	offState := conn.OnState(func(g *protocol.GameState) {
		p.Send(StateMsg{Game: g})
	})
	offError := conn.OnError(func(text string) {
		p.Send(ServerErrorMsg{Text: text})
	})
	return func() {
		offState()
		offError()
	}
}
