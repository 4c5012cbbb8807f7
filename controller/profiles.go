package controller

import (
	"strings"

	"github.com/Matthewduffy23/Club-View/model"
)

const defaultTeam = "Chengdu Rongcheng"

// teamProfiles is the fixed club catalog. Extend here when onboarding a new
// club.
var teamProfiles = map[string]model.TeamProfile{
	"Chengdu Rongcheng": {
		Name:             "Chengdu Rongcheng",
		CrestPath:        "images/chengdu_rongcheng_f.c.svg.png",
		PerformanceImage: "chengdugraph.png",
		FlagPath:         "images/china.png",
		LeagueText:       "Super League",
		Overall:          95,
		Attack:           89,
		Possession:       77,
		Defense:          96,
		AverageAge:       29.4,
		LeaguePosition:   3,
		FotMobSquadURL:   "https://www.fotmob.com/teams/737052/squad/chengdu-rongcheng-fc",
	},
	"Beijing Guoan": {
		Name:             "Beijing Guoan",
		CrestPath:        "images/beijing.png",
		PerformanceImage: "beijinggraphh.png",
		FlagPath:         "images/china.png",
		LeagueText:       "Super League",
		Overall:          76,
		Attack:           81,
		Possession:       95,
		Defense:          73,
		AverageAge:       29.8,
		LeaguePosition:   4,
		FotMobSquadURL:   "https://www.fotmob.com/teams/4177/squad/beijing-guoan",
	},
}

// teamNotes is keyed by the normalized team name.
var teamNotes = map[string]model.TeamNotes{
	"chengdu rongcheng": {
		Style: []string{
			"Organized",
			"Possession Based",
			"Vertical Build Up",
			"Create Chances via Crosses",
		},
		Strengths: []string{
			"Chance Prevention",
			"Box Entries",
			"Attacking Territory",
		},
		Weaknesses: []string{
			"Finishing",
		},
	},
	"beijing guoan": {
		Style: []string{
			"Dominate Possession",
			"Patient passing build-up",
			"Intense pressing",
		},
		Strengths: []string{
			"Control",
			"Attacking Territory",
			"Finishing",
		},
		Weaknesses: []string{
			"Conceding Goals",
		},
	},
}

func notesFor(team string) *model.TeamNotes {
	n, ok := teamNotes[strings.ToLower(strings.TrimSpace(team))]
	if !ok {
		return nil
	}
	return &n
}
