package model

// ScatterPoint is one labeled point on a performance scatter. Highlighted
// points belong to the selected team and are drawn larger and in the accent
// color.
type ScatterPoint struct {
	Label     string
	X         float64
	Y         float64
	Highlight bool
}

// Scatter is the generic two-metric comparison chart used for both team and
// player performance. The medians are drawn as quadrant guide lines.
type Scatter struct {
	Title   string
	XMetric string
	YMetric string
	XMedian float64
	YMedian float64
	InvertY bool // lower-is-better y metric, axis drawn descending
	Points  []ScatterPoint
}

// SquadProfilePoint is one player on the age/minutes squad structure chart.
type SquadProfilePoint struct {
	Player  string
	Age     float64
	Minutes float64
	Flagged bool // expiring contract or visa player, drawn in red
}

type SquadProfile struct {
	Team   string
	Points []SquadProfilePoint
}

// ArchetypePoint is one player on the quadrant archetype map. Marker encodes
// secondary flags: "diamond" for box threat, "square" for ball carrier,
// "circle" otherwise.
type ArchetypePoint struct {
	Player    string
	Team      string
	X         float64
	Y         float64
	Archetype string
	Marker    string
}

type ArchetypeMap struct {
	Group     PositionGroup
	XLabel    string
	YLabel    string
	Quadrants [4]string // top-left, top-right, bottom-left, bottom-right
	Points    []ArchetypePoint
}

// TeamRow is one row of the team-level stats dataset used for the team
// performance scatter.
type TeamRow struct {
	Team    string
	Metrics map[string]float64
}
