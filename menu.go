package main

import (
	"fmt"
	"strings"
)

// gatePicker lists the registry gates in picker order, with property tags
// shown next to the description.
type pickerEntry struct {
	gate GateID
	tags string
}

// buildPicker derives the picker entries from the registry.
func buildPicker() []pickerEntry {
	entries := make([]pickerEntry, 0, int(numGates))
	for _, g := range AllGates() {
		def := g.Def()
		var tags []string
		if def.Hermitian {
			tags = append(tags, "hermitian")
		}
		if def.SelfInverse {
			tags = append(tags, "self-inverse")
		}
		entries = append(entries, pickerEntry{gate: g, tags: strings.Join(tags, ", ")})
	}
	return entries
}

// gatePicker is filled in init, not at var time: the registry table is
// itself populated in an init (gates.go), and file-order init runs that
// one first.
var gatePicker []pickerEntry

func init() {
	gatePicker = buildPicker()
}

// renderMenu renders the floating gate-picker popup.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Add Gate"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(strings.Repeat("─", 46)))
	sb.WriteString("\n")

	for i, entry := range gatePicker {
		def := entry.gate.Def()
		label := fmt.Sprintf("%-3s %-18s", def.Symbol, def.Name)
		if entry.tags != "" {
			label += dimStyle.Render(" (" + entry.tags + ")")
		}
		if i == m.menuItem {
			sb.WriteString(menuSelectedStyle.Render("▸ " + label))
		} else {
			sb.WriteString("  " + label)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	def := gatePicker[m.menuItem].gate.Def()
	sb.WriteString(dimStyle.Render(def.Desc))
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("↑↓ Select  ⏎ Add  Esc ✕"))

	return menuBorderStyle.Render(sb.String())
}
