package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/unrolled/render"

	"github.com/Matthewduffy23/Club-View/controller"
	"github.com/Matthewduffy23/Club-View/model"
)

func clubViewHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := r.URL.Query().Get("team")
		if team == "" {
			team = ctrl.DefaultTeam()
		}
		filters := filtersFromQuery(r)

		view, err := ctrl.Squad(team, filters)
		if err != nil {
			if errors.Is(err, controller.ErrUnknownTeam) {
				render.HTML(w, http.StatusNotFound, "404", "team not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		render.HTML(w, http.StatusOK, "clubview", view)
	}
}

func teamChartHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := r.URL.Query().Get("team")
		if team == "" {
			team = ctrl.DefaultTeam()
		}

		metrics := ctrl.TeamMetricNames()
		x := queryMetric(r, "x", "xG", metrics)
		y := queryMetric(r, "y", "xGA", metrics)

		scatter, err := ctrl.TeamScatter(team, x, y)
		if err != nil {
			renderChartError(render, w, err)
			return
		}
		renderScatterChart(w, scatter)
	}
}

func playerChartHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := r.URL.Query().Get("team")
		if team == "" {
			team = ctrl.DefaultTeam()
		}
		group := model.PositionGroup(r.URL.Query().Get("group"))
		if group == "" {
			group = model.GroupCB
		}

		preset := scatterPresets[group]
		metrics := ctrl.PlayerMetricNames()
		x := queryMetric(r, "x", preset.x, metrics)
		y := queryMetric(r, "y", preset.y, metrics)

		minMinutes := queryFloat(r, "min_minutes", 1000)
		maxMinutes := queryFloat(r, "max_minutes", 5000)

		scatter, err := ctrl.PlayerScatter(team, group, x, y, minMinutes, maxMinutes)
		if err != nil {
			renderChartError(render, w, err)
			return
		}
		renderScatterChart(w, scatter)
	}
}

func squadProfileChartHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := r.URL.Query().Get("team")
		if team == "" {
			team = ctrl.DefaultTeam()
		}

		contractYear := 0
		if r.URL.Query().Get("contract") == "1" {
			contractYear = expiringContractYear
		}
		visa := r.URL.Query().Get("visa") == "1"

		profile, err := ctrl.SquadProfile(team, contractYear, visa)
		if err != nil {
			renderChartError(render, w, err)
			return
		}
		renderSquadProfileChart(w, profile)
	}
}

func archetypeChartHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		group := model.PositionGroup(r.URL.Query().Get("group"))
		if group == "" {
			group = model.GroupCB
		}
		minAge := queryInt(r, "min_age", 16)
		maxAge := queryInt(r, "max_age", 40)

		m, err := ctrl.ArchetypeMap(group, minAge, maxAge)
		if err != nil {
			renderChartError(render, w, err)
			return
		}
		renderArchetypeChart(w, m)
	}
}

// Contract threshold used for the squad profile's "expiring" toggle.
const expiringContractYear = 2026

var scatterPresets = map[model.PositionGroup]struct{ x, y string }{
	model.GroupCB:  {"Progressive passes per 90", "Aerial duels won, %"},
	model.GroupGK:  {"Exits per 90", "Prevented goals per 90"},
	model.GroupFB:  {"Dribbles per 90", "Progressive passes per 90"},
	model.GroupCM:  {"Dribbles per 90", "Progressive passes per 90"},
	model.GroupATT: {"xG per 90", "xA per 90"},
	model.GroupCF:  {"xG per 90", "Non-penalty goals per 90"},
}

func filtersFromQuery(r *http.Request) model.SquadFilters {
	f := controller.DefaultFilters()
	f.MinMinutes = queryFloat(r, "min_minutes", f.MinMinutes)
	f.MaxMinutes = queryFloat(r, "max_minutes", f.MaxMinutes)
	f.MinAge = queryInt(r, "min_age", f.MinAge)
	f.MaxAge = queryInt(r, "max_age", f.MaxAge)
	f.VisaOnly = r.URL.Query().Get("visa") == "1"
	return f
}

// queryMetric returns the requested metric if it is one the controller
// offers, otherwise the fallback.
func queryMetric(r *http.Request, key, fallback string, available []string) string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	for _, m := range available {
		if m == v {
			return v
		}
	}
	return fallback
}

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func renderChartError(render *render.Render, w http.ResponseWriter, err error) {
	if errors.Is(err, controller.ErrNoChartData) || errors.Is(err, controller.ErrUnknownTeam) {
		render.HTML(w, http.StatusNotFound, "404", err.Error())
		return
	}
	render.HTML(w, http.StatusInternalServerError, "500", err.Error())
}
