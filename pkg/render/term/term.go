// Package term renders a tag cloud for terminal display using lipgloss.
//
// Terminals have no continuous font scale, so the font-size percentage is
// bucketed into visual tiers: dim, normal, highlighted, and bold-bright.
// Entries flow left to right in their given (shuffled) order, wrapped to
// the requested width. Selection and sizing are untouched; this is purely
// an alternative presentation of the same entries the HTML renderer sees.
package term

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mhelmke/wikicloud/pkg/cloud"
)

// DefaultWidth is the wrap width used when none is given.
const DefaultWidth = 72

// Tier styles, smallest to largest: dim gray through bold amber.
var tierStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
}

// Options configures terminal rendering.
type Options struct {
	// Width is the wrap width in cells. Zero means DefaultWidth.
	Width int

	// ShowCounts appends the raw page count to each entry.
	ShowCounts bool
}

// Render lays the entries out as styled, space-separated words wrapped to
// the configured width.
func Render(entries []cloud.Entry, cfg cloud.Config, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	var lines []string
	var line strings.Builder
	lineLen := 0
	for _, e := range entries {
		word := cloud.DisplayName(e.Name)
		if opts.ShowCounts {
			word += lipgloss.NewStyle().Faint(true).Render(" " + strconv.Itoa(e.Count))
		}
		plainLen := len(cloud.DisplayName(e.Name))

		if lineLen > 0 && lineLen+1+plainLen > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteString("  ")
			lineLen += 2
		}
		line.WriteString(styleFor(e.FontPercent, cfg).Render(word))
		lineLen += plainLen
	}
	if lineLen > 0 {
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

// styleFor buckets a font percentage into one of the tier styles. The
// bucket boundaries divide [MinFontPercent, MaxFontPercent] evenly.
func styleFor(percent int, cfg cloud.Config) lipgloss.Style {
	span := cfg.MaxFontPercent - cfg.MinFontPercent
	if span <= 0 {
		return tierStyles[len(tierStyles)/2]
	}
	tier := (percent - cfg.MinFontPercent) * len(tierStyles) / (span + 1)
	if tier < 0 {
		tier = 0
	}
	if tier >= len(tierStyles) {
		tier = len(tierStyles) - 1
	}
	return tierStyles[tier]
}
