package model

// SquadFilters controls both the comparison pool and the displayed list.
// The minutes range defines the percentile pool; age and visa filtering are
// display-only and never affect the computed numbers.
type SquadFilters struct {
	MinMinutes float64
	MaxMinutes float64
	MinAge     int
	MaxAge     int
	VisaOnly   bool
}

// SquadPlayer is one rendered player card: the raw row plus everything the
// pipeline derived for it.
type SquadPlayer struct {
	Row        PlayerRow
	Rank       int
	PhotoURL   string
	RoleScores []RoleScore // sorted by score, highest first
	Sections   []MetricSection
}

// MetricSection is one block of the expandable per-player metrics panel,
// e.g. "ATTACKING" or "POSSESSION". Only metrics that exist in the source
// data and actually computed a percentile are included.
type MetricSection struct {
	Title string
	Rows  []MetricLine
}

type MetricLine struct {
	Label      string
	Value      float64
	Percentile int
}

// SquadView is the full club page: header profile, notes, and the player
// cards after filtering.
type SquadView struct {
	Profile TeamProfile
	Notes   *TeamNotes
	Players []SquadPlayer
	Filters SquadFilters
	Teams   []string // all configured teams, for the selector
}
