package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusDeck focus = iota
	focusMenu
	focusShare
)

// Model represents the TUI application state. The Session is the single
// source of truth; every panel is derived from it on render.
type Model struct {
	session     *Session
	cursor      int // selected operation on the wire
	focus       focus
	menuItem    int
	shareEditor textarea.Model
	statusMsg   string // transient status message (e.g. save confirmation)
	width       int
	height      int
}

func initialModel() Model {
	ta := textarea.New()
	ta.Placeholder = "e.g. HXZT"
	ta.SetWidth(30)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	return Model{
		session:     NewSession(),
		shareEditor: ta,
		focus:       focusDeck,
	}
}

// clampCursor keeps the wire cursor on an existing operation after
// mutations shrink the sequence.
func (m *Model) clampCursor() {
	n := len(m.session.Ops())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.shareEditor.SetWidth(max(msg.Width/3-6, 16))

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusDeck:
			switch key {
			case "q":
				return m, tea.Quit
			case "a":
				m.focus = focusMenu
				m.menuItem = 0
			case "tab":
				m.focus = focusShare
				m.shareEditor.SetValue(EncodeSequence(m.session.Ops()))
				m.shareEditor.Focus()
			case "left", "h":
				if m.cursor > 0 {
					m.cursor--
				}
			case "right", "l":
				if m.cursor < len(m.session.Ops())-1 {
					m.cursor++
				}
			case "backspace", "delete":
				ops := m.session.Ops()
				if m.cursor < len(ops) {
					m.session.Remove(ops[m.cursor].ID)
					m.clampCursor()
				}
			case "u":
				if !m.session.Undo() {
					m.statusMsg = "Nothing to undo"
				}
				m.clampCursor()
			case "r":
				if !m.session.Redo() {
					m.statusMsg = "Nothing to redo"
				}
				m.clampCursor()
			case "ctrl+r":
				m.session.Reset()
				m.cursor = 0
			case "ctrl+s":
				if err := SaveExport(m.session, exportFile); err != nil {
					m.statusMsg = fmt.Sprintf("Save error: %v", err)
				} else {
					m.statusMsg = "Saved " + exportFile
				}
			}

		case focusMenu:
			switch key {
			case "esc":
				m.focus = focusDeck
			case "up", "k":
				if m.menuItem > 0 {
					m.menuItem--
				}
			case "down", "j":
				if m.menuItem < len(gatePicker)-1 {
					m.menuItem++
				}
			case "enter":
				m.session.Append(gatePicker[m.menuItem].gate)
				m.cursor = len(m.session.Ops()) - 1
				m.focus = focusDeck
			}

		case focusShare:
			switch key {
			case "tab", "esc":
				m.focus = focusDeck
				m.shareEditor.Blur()
			case "enter":
				code := m.shareEditor.Value()
				m.session.Reset()
				n := DecodeSequence(m.session, code)
				m.statusMsg = fmt.Sprintf("Imported %d gate(s)", n)
				m.cursor = max(len(m.session.Ops())-1, 0)
				m.focus = focusDeck
				m.shareEditor.Blur()
			default:
				var cmd tea.Cmd
				m.shareEditor, cmd = m.shareEditor.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// ──────────────────────────── View ────────────────────────────

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	stateWidth := m.width / 3
	deckWidth := m.width - stateWidth - 4
	controlsHeight := 4
	panelHeight := max(m.height-controlsHeight-2, 8)

	deckPanel := m.renderDeckPanel(deckWidth, panelHeight)
	statePanel := m.renderStatePanel(stateWidth, panelHeight)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsHeight-2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, deckPanel, statePanel)
	frame := lipgloss.JoinVertical(lipgloss.Left, topRow, controlsPanel)

	// Render menu overlay when in menu mode
	if m.focus == focusMenu {
		frame = overlayAt(frame, m.renderMenu(), 2, 2)
	}

	return frame
}

// overlayAt splices the overlay's lines into the base starting at (x, y),
// keeping whatever lies to the right of the overlay visible.
func overlayAt(base, overlay string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		w := ansi.StringWidth(line)
		left := ansi.Truncate(baseLines[row], x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		right := ansi.TruncateLeft(baseLines[row], x+w, "")
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}
