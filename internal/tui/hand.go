package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/fingerdrill/internal/finger"
)

var (
	fingerBoxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8C8C8C")).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Padding(0, 1)
	fingerActiveStyle = fingerBoxStyle.
				Foreground(lipgloss.Color("#F0F0F0")).
				BorderForeground(lipgloss.Color("#C89A3A")).
				Bold(true)
)

func fingerBox(d *finger.Diagram, region finger.Region) string {
	if d.IsActive(region) {
		return fingerActiveStyle.Render(region.Name())
	}
	return fingerBoxStyle.Render(region.Name())
}

// renderHand draws both hands with the thumbs underneath; the active region
// is highlighted.
func renderHand(d *finger.Diagram) string {
	var left, right []string
	side := &left
	for _, region := range finger.Regions {
		if region == finger.RegionThumbs {
			side = &right
			continue
		}
		*side = append(*side, fingerBox(d, region))
	}
	hands := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinHorizontal(lipgloss.Top, left...),
		"  ",
		lipgloss.JoinHorizontal(lipgloss.Top, right...),
	)
	thumbs := lipgloss.PlaceHorizontal(lipgloss.Width(hands), lipgloss.Center, fingerBox(d, finger.RegionThumbs))
	return lipgloss.JoinVertical(lipgloss.Left, hands, thumbs)
}
