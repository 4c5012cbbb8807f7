package model

// TeamProfile holds the fixed header configuration for one club: crest and
// flag artwork, the four header ratings, and the FotMob squad page used for
// player photos.
type TeamProfile struct {
	Name             string
	CrestPath        string
	PerformanceImage string
	FlagPath         string
	LeagueText       string
	Overall          int
	Attack           int
	Possession       int
	Defense          int
	AverageAge       float64
	LeaguePosition   int
	FotMobSquadURL   string
}

// TeamNotes is the hand-written scouting summary shown under the performance
// section.
type TeamNotes struct {
	Style      []string
	Strengths  []string
	Weaknesses []string
}
