package main

import (
	"fmt"
	"math"
	"strings"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width. Measures and slices
// by runes, so multibyte symbols like S† survive intact.
func padCenter(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	total := width - len(r)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// probBar renders a probability as a filled bar of probBarW cells.
func probBar(p float64) string {
	filled := int(math.Round(p * probBarW))
	if filled > probBarW {
		filled = probBarW
	}
	return probBarStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", probBarW-filled))
}

// checkBadge renders a pass/fail validation badge.
func checkBadge(label string, ok bool) string {
	if ok {
		return okStyle.Render("✓ " + label)
	}
	return badStyle.Render("✗ " + label)
}

// ──────────────────────────── Deck panel ────────────────────────────

// renderWire renders the single-qubit wire with one box per applied gate,
// highlighting the gate under the cursor.
func (m Model) renderWire() string {
	ops := m.session.Ops()
	if len(ops) == 0 {
		return wireStyle.Render("|0⟩ ─────") + dimStyle.Render("  (empty — press 'a' to add a gate)")
	}

	var sb strings.Builder
	sb.WriteString(wireStyle.Render("|0⟩ ─"))
	for i, op := range ops {
		name := padCenter(op.Gate.Def().Symbol, gateCellW-2)
		box := "[" + name + "]"
		if m.focus == focusDeck && i == m.cursor {
			sb.WriteString(cursorBoxStyle.Render(box))
		} else {
			sb.WriteString(gateStyle.Render(box))
		}
		sb.WriteString(wireStyle.Render("─"))
	}
	sb.WriteString(wireStyle.Render("─▶"))
	return sb.String()
}

func (m Model) renderDeckPanel(width, height int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Gate Deck"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderWire())
	sb.WriteString("\n\n")

	ops := m.session.Ops()
	if len(ops) > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%d gate(s)   share: %s", len(ops), EncodeSequence(ops))))
		sb.WriteString("\n")
		if m.focus == focusDeck && m.cursor < len(ops) {
			op := ops[m.cursor]
			sb.WriteString(dimStyle.Render(fmt.Sprintf("selected: %s added %s",
				op.Gate.Def().Name, op.AddedAt.Format("15:04:05"))))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render("Composite"))
	sb.WriteString("\n")
	sb.WriteString(m.renderComposite())

	return deckStyle.Width(width).Height(height).Render(sb.String())
}

// renderComposite renders the accumulated transformation with its derived
// scalars.
func (m Model) renderComposite() string {
	c := m.session.Composite()
	var sb strings.Builder
	w := 0
	var cells [2][2]string
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			cells[i][j] = c[i][j].Rect(renderPrec)
			if len(cells[i][j]) > w {
				w = len(cells[i][j])
			}
		}
	}
	for i := 0; i < 2; i++ {
		fmt.Fprintf(&sb, "│ %*s  %*s │\n", w, cells[i][0], w, cells[i][1])
	}
	sb.WriteString(dimStyle.Render(fmt.Sprintf("det %s   tr %s",
		Det(c).Rect(renderPrec), Trace(c).Rect(renderPrec))))
	return sb.String()
}

// ──────────────────────────── State panel ────────────────────────────

func (m Model) renderStatePanel(width, height int) string {
	v := m.session.State()
	probs := MeasureProbs(v)
	theta, phi := BlochAngles(v)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("State"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "α₀ = %s   %s\n", v[0].Rect(renderPrec), dimStyle.Render(v[0].Polar(renderPrec)))
	fmt.Fprintf(&sb, "α₁ = %s   %s\n", v[1].Rect(renderPrec), dimStyle.Render(v[1].Polar(renderPrec)))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "P(0) %s %.4f\n", probBar(probs.Prob0), probs.Prob0)
	fmt.Fprintf(&sb, "P(1) %s %.4f\n", probBar(probs.Prob1), probs.Prob1)
	sb.WriteString(dimStyle.Render(fmt.Sprintf("raw norm %.12f", probs.RawNorm)))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "entropy %.4f bits   purity %.4f\n", Entropy(v), Purity(v))
	fmt.Fprintf(&sb, "bloch θ %.4f  φ %.4f\n", theta, phi)
	sb.WriteString("\n")

	sb.WriteString(checkBadge("unitary", IsUnitary(m.session.Composite(), defaultTol)))
	sb.WriteString("  ")
	sb.WriteString(checkBadge("normalized", IsNormalized(v, defaultTol)))
	sb.WriteString("\n\n")

	sb.WriteString(titleStyle.Render("Share"))
	sb.WriteString("\n")
	if m.focus == focusShare {
		sb.WriteString(m.shareEditor.View())
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("⏎ Import  Tab back"))
	} else {
		code := EncodeSequence(m.session.Ops())
		if code == "" {
			code = dimStyle.Render("(empty)")
		}
		sb.WriteString(code)
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("Tab to edit/import"))
	}

	return stateStyle.Width(width).Height(height).Render(sb.String())
}

// ──────────────────────────── Controls panel ────────────────────────────

func (m Model) renderControlsPanel(width, height int) string {
	help := "a Add  ⌫ Remove  ←→ Select  u Undo  r Redo  ctrl+r Reset  ctrl+s Export  Tab Share  q Quit"
	var sb strings.Builder
	sb.WriteString(dimStyle.Render(help))
	if m.statusMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(titleStyle.Render(m.statusMsg))
	}
	return controlsStyle.Width(width).Height(height).Render(sb.String())
}
