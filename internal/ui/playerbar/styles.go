package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tunes/internal/ui/styles"
)

var barStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(styles.T().Border)

func artistStyle() lipgloss.Style { return styles.T().S().Muted }

func metaStyle() lipgloss.Style { return styles.T().S().Subtle }

func progressTimeStyle() lipgloss.Style { return styles.T().S().Muted }
