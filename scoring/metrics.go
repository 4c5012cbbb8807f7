package scoring

import (
	"sort"

	"github.com/Matthewduffy23/Club-View/model"
)

// MetricPair ties a display label to the dataset column it reads.
type MetricPair struct {
	Label  string
	Metric string
}

// SectionSpec is one titled block of the per-player metrics panel.
type SectionSpec struct {
	Title   string
	Metrics []MetricPair
}

// Full backs, midfielders and attackers share the same outfield panel.
var outfieldSections = []SectionSpec{
	{Title: "ATTACKING", Metrics: []MetricPair{
		{"Crosses", "Crosses per 90"},
		{"Crossing %", "Accurate crosses, %"},
		{"Goals: Non-Penalty", "Non-penalty goals per 90"},
		{"xG", "xG per 90"},
		{"Expected Assists", "xA per 90"},
		{"Offensive Duels", "Offensive duels per 90"},
		{"Offensive Duel %", "Offensive duels won, %"},
		{"Shots", "Shots per 90"},
		{"Shooting %", "Shots on target, %"},
		{"Touches in box", "Touches in box per 90"},
	}},
	{Title: "DEFENSIVE", Metrics: []MetricPair{
		{"Aerial Duels", "Aerial duels per 90"},
		{"Aerial Win %", "Aerial duels won, %"},
		{"Defensive Duels", "Defensive duels per 90"},
		{"Defensive Duel %", "Defensive duels won, %"},
		{"PAdj Interceptions", "PAdj Interceptions"},
		{"Shots blocked", "Shots blocked per 90"},
		{"Succ. def acts", "Successful defensive actions per 90"},
	}},
	{Title: "POSSESSION", Metrics: []MetricPair{
		{"Accelerations", "Accelerations per 90"},
		{"Deep completions", "Deep completions per 90"},
		{"Dribbles", "Dribbles per 90"},
		{"Dribbling %", "Successful dribbles, %"},
		{"Forward Passes", "Forward passes per 90"},
		{"Forward Pass %", "Accurate forward passes, %"},
		{"Key passes", "Key passes per 90"},
		{"Long Passes", "Long passes per 90"},
		{"Long Pass %", "Accurate long passes, %"},
		{"Passes", "Passes per 90"},
		{"Passing %", "Accurate passes, %"},
		{"Passes to F3rd", "Passes to final third per 90"},
		{"Passes F3rd %", "Accurate passes to final third, %"},
		{"Passes Pen-Area", "Passes to penalty area per 90"},
		{"Pass Pen-Area %", "Accurate passes to penalty area, %"},
		{"Progessive Passes", "Progressive passes per 90"},
		{"Prog Pass %", "Accurate progressive passes, %"},
		{"Progressive Runs", "Progressive runs per 90"},
		{"Smart Passes", "Smart passes per 90"},
	}},
}

// displaySections defines, per position group, which metrics the expandable
// panel shows and in what order. Metrics listed here but absent from the
// source CSV are silently dropped at render time.
var displaySections = map[model.PositionGroup][]SectionSpec{
	model.GroupGK: {
		{Title: "GOALKEEPING", Metrics: []MetricPair{
			{"Exits", "Exits per 90"},
			{"Goals Prevented", "Prevented goals per 90"},
			{"Goals Conceded", "Conceded goals per 90"},
			{"Save Rate", "Save rate, %"},
			{"Shots Against", "Shots against per 90"},
			{"xG Against", "xG against per 90"},
		}},
		{Title: "POSSESSION", Metrics: []MetricPair{
			{"Passes", "Passes per 90"},
			{"Passing Accuracy %", "Accurate passes, %"},
			{"Long Passes", "Long passes per 90"},
			{"Long Passing %", "Accurate long passes, %"},
		}},
	},
	model.GroupCB: {
		{Title: "ATTACKING", Metrics: []MetricPair{
			{"Goals: Non-Penalty", "Non-penalty goals per 90"},
			{"xG", "xG per 90"},
			{"Offensive Duels", "Offensive duels per 90"},
			{"Offensive Duel Success %", "Offensive duels won, %"},
			{"Progressive Runs", "Progressive runs per 90"},
		}},
		{Title: "DEFENSIVE", Metrics: []MetricPair{
			{"Aerial Duels", "Aerial duels per 90"},
			{"Aerial Duel Success %", "Aerial duels won, %"},
			{"Defensive Duels", "Defensive duels per 90"},
			{"Defensive Duel Success %", "Defensive duels won, %"},
			{"PAdj Interceptions", "PAdj Interceptions"},
			{"Shots Blocked", "Shots blocked per 90"},
			{"Successful Defensive Actions", "Successful defensive actions per 90"},
		}},
		{Title: "POSSESSION", Metrics: []MetricPair{
			{"Accelerations", "Accelerations per 90"},
			{"Dribbles", "Dribbles per 90"},
			{"Dribbling Success %", "Successful dribbles, %"},
			{"Forward Passes", "Forward passes per 90"},
			{"Forward Passing Accuracy %", "Accurate forward passes, %"},
			{"Long Passes", "Long passes per 90"},
			{"Long Passing Success %", "Accurate long passes, %"},
			{"Passes", "Passes per 90"},
			{"Passing Accuracy %", "Accurate passes, %"},
			{"Passes to Final 3rd", "Passes to final third per 90"},
			{"Passes to Final 3rd Success %", "Accurate passes to final third, %"},
			{"Progessive Passes", "Progressive passes per 90"},
			{"Progessive Passing Success %", "Accurate progressive passes, %"},
		}},
	},
	model.GroupFB:  outfieldSections,
	model.GroupCM:  outfieldSections,
	model.GroupATT: outfieldSections,
	model.GroupCF: {
		{Title: "ATTACKING", Metrics: []MetricPair{
			{"Crosses", "Crosses per 90"},
			{"Crossing Accuracy %", "Accurate crosses, %"},
			{"Goals: Non-Penalty", "Non-penalty goals per 90"},
			{"xG", "xG per 90"},
			{"Conversion Rate %", "Goal conversion, %"},
			{"Header Goals", "Head goals per 90"},
			{"Expected Assists", "xA per 90"},
			{"Offensive Duels", "Offensive duels per 90"},
			{"Offensive Duel Success %", "Offensive duels won, %"},
			{"Progressive Runs", "Progressive runs per 90"},
			{"Shots", "Shots per 90"},
			{"Shooting Accuracy %", "Shots on target, %"},
			{"Touches in Opposition Box", "Touches in box per 90"},
		}},
		{Title: "DEFENSIVE", Metrics: []MetricPair{
			{"Aerial Duels", "Aerial duels per 90"},
			{"Aerial Duel Success %", "Aerial duels won, %"},
			{"Defensive Duels", "Defensive duels per 90"},
			{"Defensive Duel Success %", "Defensive duels won, %"},
			{"PAdj. Interceptions", "PAdj Interceptions"},
			{"Successful Def. Actions", "Successful defensive actions per 90"},
		}},
		{Title: "POSSESSION", Metrics: []MetricPair{
			{"Deep Completions", "Deep completions per 90"},
			{"Dribbles", "Dribbles per 90"},
			{"Dribbling Success %", "Successful dribbles, %"},
			{"Key Passes", "Key passes per 90"},
			{"Passes", "Passes per 90"},
			{"Passing Accuracy %", "Accurate passes, %"},
			{"Passes to Penalty Area", "Passes to penalty area per 90"},
			{"Passes to Penalty Area %", "Accurate passes to penalty area, %"},
			{"Smart Passes", "Smart passes per 90"},
		}},
	},
}

// DisplaySections returns the metric panel layout for a position group, or
// nil for groups without one.
func DisplaySections(g model.PositionGroup) []SectionSpec {
	return displaySections[g]
}

// TrackedMetrics is the union of every metric referenced by a role weight
// table or a display section, sorted for deterministic iteration. Percentiles
// are computed for all of them: the panel lists metrics that no role uses,
// and they still need a rank to display.
func TrackedMetrics() []string {
	set := make(map[string]bool)
	for _, roles := range roleCatalogs {
		for _, r := range roles {
			for m := range r.Weights {
				set[m] = true
			}
		}
	}
	for _, sections := range displaySections {
		for _, s := range sections {
			for _, p := range s.Metrics {
				set[p.Metric] = true
			}
		}
	}

	metrics := make([]string, 0, len(set))
	for m := range set {
		metrics = append(metrics, m)
	}
	sort.Strings(metrics)
	return metrics
}
