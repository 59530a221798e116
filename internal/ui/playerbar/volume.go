package playerbar

import (
	"fmt"
	"math"

	"github.com/llehouerou/tunes/internal/icons"
)

// RenderVolume renders the volume indicator, e.g. "vol  80%".
func RenderVolume(volume float64) string {
	pct := 0
	if !math.IsNaN(volume) {
		pct = int(math.Round(volume * 100))
	}
	return progressTimeStyle().Render(fmt.Sprintf("%s %3d%%", icons.Volume(volume), pct))
}
