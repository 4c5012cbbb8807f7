package scoring

import (
	"sort"

	"github.com/Matthewduffy23/Club-View/model"
)

// Role is a named tactical role: a weighted basket of metrics. The weights
// are positive and relative; only their ratios matter.
type Role struct {
	Name    string
	Weights map[string]float64
}

// cmRolesKept is how many of the five midfield roles survive to display.
// Midfielders are the only group with more roles than the card has room for.
const cmRolesKept = 3

// roleCatalogs is the fixed role definition table per position group. It is
// data, not code: changing a role means editing a weight here, nothing else.
// Catalog order is the tie-break order when truncating midfield roles.
var roleCatalogs = map[model.PositionGroup][]Role{
	model.GroupGK: {
		{Name: "Shot Stopper GK", Weights: map[string]float64{
			"Prevented goals per 90": 3, "Save rate, %": 1,
		}},
		{Name: "Ball Playing GK", Weights: map[string]float64{
			"Passes per 90": 1, "Accurate passes, %": 3, "Accurate long passes, %": 2,
		}},
		{Name: "Sweeper GK", Weights: map[string]float64{
			"Exits per 90": 1,
		}},
	},
	model.GroupCB: {
		{Name: "Ball Playing CB", Weights: map[string]float64{
			"Passes per 90": 2, "Accurate passes, %": 2, "Forward passes per 90": 2,
			"Accurate forward passes, %": 2, "Progressive passes per 90": 2,
			"Progressive runs per 90": 1.5, "Dribbles per 90": 1.5,
			"Accurate long passes, %": 1, "Passes to final third per 90": 1.5,
		}},
		{Name: "Wide CB", Weights: map[string]float64{
			"Defensive duels per 90": 1.5, "Defensive duels won, %": 2,
			"Dribbles per 90": 2, "Forward passes per 90": 1,
			"Progressive passes per 90": 1, "Progressive runs per 90": 2,
		}},
		{Name: "Box Defender", Weights: map[string]float64{
			"Aerial duels per 90": 1, "Aerial duels won, %": 3, "PAdj Interceptions": 2,
			"Shots blocked per 90": 1, "Defensive duels won, %": 4,
		}},
	},
	model.GroupFB: {
		{Name: "Build Up FB", Weights: map[string]float64{
			"Passes per 90": 2, "Accurate passes, %": 1.5, "Forward passes per 90": 2,
			"Accurate forward passes, %": 2, "Progressive passes per 90": 2.5,
			"Progressive runs per 90": 2, "Dribbles per 90": 2,
			"Passes to final third per 90": 2, "xA per 90": 1,
		}},
		{Name: "Attacking FB", Weights: map[string]float64{
			"Crosses per 90": 2, "Dribbles per 90": 3.5, "Accelerations per 90": 1,
			"Successful dribbles, %": 1, "Touches in box per 90": 2,
			"Progressive runs per 90": 3, "Passes to penalty area per 90": 2,
			"xA per 90": 3,
		}},
		{Name: "Defensive FB", Weights: map[string]float64{
			"Aerial duels per 90": 1, "Aerial duels won, %": 1.5,
			"Defensive duels per 90": 2, "PAdj Interceptions": 3,
			"Shots blocked per 90": 1, "Defensive duels won, %": 3.5,
		}},
	},
	model.GroupCM: {
		{Name: "Deep Playmaker", Weights: map[string]float64{
			"Passes per 90": 1, "Accurate passes, %": 1, "Forward passes per 90": 2,
			"Accurate forward passes, %": 1.5, "Progressive passes per 90": 3,
			"Passes to final third per 90": 2.5, "Accurate long passes, %": 1,
		}},
		{Name: "Advanced Playmaker", Weights: map[string]float64{
			"Deep completions per 90": 1.5, "Smart passes per 90": 2,
			"xA per 90": 4, "Passes to penalty area per 90": 2,
		}},
		{Name: "Defensive Midfielder", Weights: map[string]float64{
			"Defensive duels per 90": 4, "Defensive duels won, %": 4,
			"PAdj Interceptions": 3, "Aerial duels per 90": 0.5,
			"Aerial duels won, %": 1,
		}},
		{Name: "Goal Threat", Weights: map[string]float64{
			"Non-penalty goals per 90": 3, "xG per 90": 3, "Shots per 90": 1.5,
			"Touches in box per 90": 2,
		}},
		{Name: "Ball-Carrying", Weights: map[string]float64{
			"Dribbles per 90": 4, "Successful dribbles, %": 2,
			"Progressive runs per 90": 3, "Accelerations per 90": 3,
		}},
	},
	model.GroupATT: {
		{Name: "Playmaker", Weights: map[string]float64{
			"Passes per 90": 2, "xA per 90": 3, "Key passes per 90": 1,
			"Deep completions per 90": 1.5, "Smart passes per 90": 1.5,
			"Passes to penalty area per 90": 2,
		}},
		{Name: "Goal Threat", Weights: map[string]float64{
			"xG per 90": 3, "Non-penalty goals per 90": 3, "Shots per 90": 2,
			"Touches in box per 90": 2,
		}},
		{Name: "Ball Carrier", Weights: map[string]float64{
			"Dribbles per 90": 4, "Successful dribbles, %": 2,
			"Progressive runs per 90": 3, "Accelerations per 90": 3,
		}},
	},
	model.GroupCF: {
		{Name: "Target Man CF", Weights: map[string]float64{
			"Aerial duels per 90": 3, "Aerial duels won, %": 5,
		}},
		{Name: "Goal Threat CF", Weights: map[string]float64{
			"Non-penalty goals per 90": 3, "Shots per 90": 1.5, "xG per 90": 3,
			"Touches in box per 90": 1, "Shots on target, %": 0.5,
		}},
		{Name: "Link-Up CF", Weights: map[string]float64{
			"Passes per 90": 2, "Passes to penalty area per 90": 1.5,
			"Deep completions per 90": 1, "Smart passes per 90": 1.5,
			"Accurate passes, %": 1.5, "Key passes per 90": 1, "Dribbles per 90": 2,
			"Successful dribbles, %": 1, "Progressive runs per 90": 2, "xA per 90": 3,
		}},
	},
}

// Roles returns the role catalog for a position group in catalog order.
// GroupOther has no roles.
func Roles(g model.PositionGroup) []Role {
	return roleCatalogs[g]
}

// ComputeRoleScores evaluates every role of the row's position group against
// its computed percentiles. Metrics with no computed percentile contribute to
// neither the numerator nor the denominator, so a player missing unrelated
// data is not penalized. A role whose metrics are all missing scores 0.
// Midfielders keep only their top three roles; ties keep catalog order.
func ComputeRoleScores(g model.PositionGroup, pct model.Percentiles) []model.RoleScore {
	roles := roleCatalogs[g]
	if len(roles) == 0 {
		return nil
	}

	scores := make([]model.RoleScore, 0, len(roles))
	for _, r := range roles {
		scores = append(scores, model.RoleScore{Role: r.Name, Score: scoreRole(r.Weights, pct)})
	}

	if g == model.GroupCM && len(scores) > cmRolesKept {
		sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
		scores = scores[:cmRolesKept]
	}
	return scores
}

func scoreRole(weights map[string]float64, pct model.Percentiles) int {
	var num, den float64
	for metric, w := range weights {
		v, ok := pct.Get(metric)
		if !ok {
			continue
		}
		num += w * v
		den += w
	}
	if den <= 0 {
		return 0
	}
	return Clamp99(num / den)
}

// Clamp99 converts a 0-100 score to the displayed integer range [0, 99].
// 99 is the ceiling on purpose: the display reserves 100 for a hypothetical
// perfect score that never renders.
func Clamp99(v float64) int {
	n := int(v)
	if n < 0 {
		return 0
	}
	if n > 99 {
		return 99
	}
	return n
}
