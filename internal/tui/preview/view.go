package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/cardforge/cardforge/internal/template"
)

const maxSwatches = 6

// View renders the current model state
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return itemStyle.Render(m.spinner.View()+" Generating variants of "+m.tmpl.ID+"...") + "\n"
	}
	if len(m.variants) == 0 {
		return itemStyle.Render("No variants to preview.") + "\n"
	}

	var content strings.Builder

	content.WriteString(titleStyle.Render("🎨 Cardforge Preview"))
	content.WriteString("\n")

	for i, v := range m.variants {
		content.WriteString(m.renderVariant(i, v))
		content.WriteString("\n")
	}

	content.WriteString(footerStyle.Render("↑/↓ navigate • enter select • q quit"))
	content.WriteString("\n")

	return content.String()
}

func (m Model) renderVariant(index int, v *template.CardTemplate) string {
	label := v.ID
	if index == 0 {
		label += " (base)"
	}

	line := fmt.Sprintf("%-28s %s", label, renderSwatches(variantColors(v)))
	if index == m.cursor {
		return selectedItemStyle.Render(line)
	}
	return itemStyle.Render(line)
}

// variantColors collects the distinct colors a variant paints with, in
// paint order: background first, then layer fills.
func variantColors(v *template.CardTemplate) []string {
	seen := make(map[string]struct{})
	var colors []string
	add := func(hex string) {
		if hex == "" || hex == template.TransparentFill {
			return
		}
		if _, ok := seen[hex]; ok {
			return
		}
		seen[hex] = struct{}{}
		colors = append(colors, hex)
	}

	add(v.Background.Color1)
	add(v.Background.Color2)
	for _, l := range v.Layers {
		add(l.Fill)
	}
	if len(colors) > maxSwatches {
		colors = colors[:maxSwatches]
	}
	return colors
}

func renderSwatches(colors []string) string {
	var parts []string
	for _, hex := range colors {
		parts = append(parts, renderSwatch(hex))
	}
	return strings.Join(parts, " ")
}

func renderSwatch(hex string) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(swatchForeground(hex)))
	return style.Render(" " + hex + " ")
}

// swatchForeground picks a readable label color for a swatch background.
func swatchForeground(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}
	if l, _, _ := c.Lab(); l > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}
