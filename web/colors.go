package web

import (
	"fmt"
	"strings"
)

type colorStop struct {
	threshold int
	color     string
}

// ratingColors maps a 0-99 rating onto the green-to-red scale used for role
// pills, header ratings and metric badges.
var ratingColors = []colorStop{
	{85, "#2E6114"},
	{75, "#5C9E2E"},
	{66, "#7FBC41"},
	{54, "#A7D763"},
	{44, "#F6D645"},
	{25, "#D77A2E"},
	{0, "#C63733"},
}

func RatingColor(v int) string {
	for _, stop := range ratingColors {
		if v >= stop.threshold {
			return stop.color
		}
	}
	return ratingColors[len(ratingColors)-1].color
}

// FormatRating renders a rating as the two digit badge text, e.g. 7 -> "07".
func FormatRating(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 99 {
		v = 99
	}
	return fmt.Sprintf("%02d", v)
}

const defaultChipColor = "#2d3550"

var positionColors = map[string]string{
	"CF": "#6EA8FF", "LWF": "#6EA8FF", "LW": "#6EA8FF", "LAMF": "#6EA8FF",
	"RW": "#6EA8FF", "RWF": "#6EA8FF", "RAMF": "#6EA8FF",
	"AMF": "#7FE28A", "LCMF": "#5FD37A", "RCMF": "#5FD37A", "CMF": "#5FD37A",
	"RDMF": "#31B56B", "LDMF": "#31B56B", "DMF": "#31B56B",
	"LWB": "#FFD34D", "RWB": "#FFD34D", "LB": "#FF9A3C", "RB": "#FF9A3C",
	"RCB": "#D1763A", "CB": "#D1763A", "LCB": "#D1763A",
	"GK": "#B8A1FF",
}

func PositionChipColor(pos string) string {
	if c, ok := positionColors[strings.ToUpper(strings.TrimSpace(pos))]; ok {
		return c
	}
	return defaultChipColor
}
