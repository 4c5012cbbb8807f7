package web

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"

	"github.com/Matthewduffy23/Club-View/model"
)

const (
	leagueColor    = "#cbd5e1"
	highlightColor = "#C81E1E"
	flaggedColor   = "#ef4444"
	neutralColor   = "#e5e7eb"
)

// archetypeColors matches the palette of the quadrant map legend.
var archetypeColors = map[string]string{
	"Build-Up":     "#76B7B2",
	"Lockdown":     "#F28E2B",
	"Two-Way":      "#4E79A7",
	"Limited":      "#E15759",
	"Complete":     "#4E79A7",
	"Box-Defender": "#F28E2B",
	"Ball Player":  "#76B7B2",
	"All Action":   "#4E79A7",
	"Destroyer":    "#F28E2B",
	"Playmaker":    "#76B7B2",
	"Multi-Threat": "#4E79A7",
	"Final Action": "#76B7B2",
	"Facilitator":  "#F28E2B",
	"Poacher":      "#76B7B2",
	"Link-Up":      "#F28E2B",
	"Shot Stopper": "#76B7B2",
}

func renderScatterChart(w http.ResponseWriter, s *model.Scatter) {
	var others, team []opts.ScatterData
	xs := make([]float64, 0, len(s.Points))
	ys := make([]float64, 0, len(s.Points))
	for _, p := range s.Points {
		d := opts.ScatterData{Name: p.Label, Value: []interface{}{p.X, p.Y}}
		if p.Highlight {
			team = append(team, d)
		} else {
			others = append(others, d)
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}

	xMin, xMax := paddedLimits(xs)
	yMin, yMax := paddedLimits(ys)

	yName := s.YMetric
	if s.InvertY {
		yName = fmt.Sprintf("%s (lower = better)", s.YMetric)
	}

	chart := charts.NewScatter()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: s.Title, Theme: "dark", Width: "1150px", Height: "650px"}),
		charts.WithTitleOpts(opts.Title{Title: s.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: xMin, Max: xMax, Name: s.XMetric, NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Min: yMin, Max: yMax, Name: yName, NameLocation: "middle", NameGap: 40}),
	)

	chart.AddSeries("league", others,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 12}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: leagueColor}),
		charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{Name: "median", XAxis: s.XMedian}),
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "median", YAxis: s.YMedian}),
	)
	chart.AddSeries("selected", team,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 18}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: highlightColor}),
	)

	writeChart(w, chart)
}

func renderSquadProfileChart(w http.ResponseWriter, p *model.SquadProfile) {
	var flagged, others []opts.ScatterData
	for _, pt := range p.Points {
		d := opts.ScatterData{Name: pt.Player, Value: []interface{}{pt.Age, pt.Minutes}}
		if pt.Flagged {
			flagged = append(flagged, d)
		} else {
			others = append(others, d)
		}
	}

	chart := charts.NewScatter()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Squad Profile", Theme: "dark", Width: "1600px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Squad Profile — %s", p.Team)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 16, Max: 40, Name: "Age", NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 3500, Name: "Minutes Played", NameLocation: "middle", NameGap: 50}),
	)

	chart.AddSeries("squad", others,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 18}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: neutralColor}),
		// Age bands and importance thresholds.
		charts.WithMarkLineNameXAxisItemOpts(
			opts.MarkLineNameXAxisItem{Name: "ascent", XAxis: 21},
			opts.MarkLineNameXAxisItem{Name: "prime", XAxis: 25},
			opts.MarkLineNameXAxisItem{Name: "experienced", XAxis: 29},
			opts.MarkLineNameXAxisItem{Name: "old", XAxis: 33},
		),
		charts.WithMarkLineNameYAxisItemOpts(
			opts.MarkLineNameYAxisItem{Name: "Important Player", YAxis: 1000},
			opts.MarkLineNameYAxisItem{Name: "Crucial Player", YAxis: 1750},
		),
	)
	chart.AddSeries("flagged", flagged,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 18}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: flaggedColor}),
	)

	writeChart(w, chart)
}

func renderArchetypeChart(w http.ResponseWriter, m *model.ArchetypeMap) {
	byArchetype := make(map[string][]opts.ScatterData)
	for _, p := range m.Points {
		byArchetype[p.Archetype] = append(byArchetype[p.Archetype], opts.ScatterData{
			Name:  fmt.Sprintf("%s (%s)", p.Player, p.Team),
			Value: []interface{}{p.X, p.Y},
		})
	}

	tl, tr, bl, br := m.Quadrants[0], m.Quadrants[1], m.Quadrants[2], m.Quadrants[3]
	subtitle := fmt.Sprintf("%s / %s · %s / %s", tl, tr, bl, br)

	chart := charts.NewScatter()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Player Profiles", Theme: "dark", Width: "1600px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Archetype Map — %s", m.Group), Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: 100, Name: m.XLabel, NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 100, Name: m.YLabel, NameLocation: "middle", NameGap: 40}),
	)

	names := make([]string, 0, len(byArchetype))
	for name := range byArchetype {
		names = append(names, name)
	}
	sort.Strings(names)

	first := true
	for _, name := range names {
		seriesOpts := []charts.SeriesOpts{
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 16}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: archetypeColor(name)}),
		}
		if first {
			// Quadrant guides drawn once.
			seriesOpts = append(seriesOpts,
				charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{Name: "midline", XAxis: 50}),
				charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "midline", YAxis: 50}),
			)
			first = false
		}
		chart.AddSeries(name, byArchetype[name], seriesOpts...)
	}

	writeChart(w, chart)
}

func archetypeColor(name string) string {
	if c, ok := archetypeColors[name]; ok {
		return c
	}
	return leagueColor
}

// paddedLimits widens the raw min/max so edge points are not clipped.
func paddedLimits(vals []float64) (float64, float64) {
	if len(vals) == 0 {
		return 0, 1
	}
	lo := floats.Min(vals)
	hi := floats.Max(vals)
	if lo == hi {
		lo -= 1e-6
		hi += 1e-6
	}
	span := hi - lo
	return lo - span*0.10, hi + span*0.16
}

func writeChart(w http.ResponseWriter, chart *charts.Scatter) {
	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		http.Error(w, fmt.Sprintf("failed to render chart: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
