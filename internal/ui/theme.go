package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/inventory/internal/vdom"
)

// Theme bundles palette + borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                 string
	Title, Muted, Accent, Success, Error lipgloss.Style
	Selected, Counter                    lipgloss.Style
	Border                               lipgloss.Border
	BorderColor                          lipgloss.Color
	SymOK, SymFail                       string
}

var current = classic()

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:        "neon",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			Counter:     lipgloss.NewStyle().Bold(true).Width(4).Align(lipgloss.Right),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			SymOK:       "✔", SymFail: "✖",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain,
			Selected:    plain,
			Counter:     lipgloss.NewStyle().Width(4).Align(lipgloss.Right),
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.Color(""),
			SymOK:       "ok", SymFail: "x",
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Counter:     lipgloss.NewStyle().Bold(true).Width(4).Align(lipgloss.Right),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		SymOK:       "✔", SymFail: "✖",
	}
}

// Expose what renderers need
func Current() Theme { return current }

// Stylesheet maps the class names used by the inventory tree to this
// theme's styles.
func (t Theme) Stylesheet() vdom.Stylesheet {
	return vdom.Stylesheet{
		"header":    t.Title,
		"item-name": lipgloss.NewStyle().Width(16),
		"counter":   t.Counter,
		"increment": t.Accent,
		"decrement": t.Accent,
		"loading":   t.Muted,
		"help":      t.Muted,
		"selected":  t.Selected,
		"error":     t.Error,
		"fallback":  t.Muted,
	}
}
