package components

import (
	"encoding/json"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/sculpt/internal/domain"
)

// ChartTheme carries the display mode into every chart. Charts never look
// the mode up on their own.
type ChartTheme struct {
	Dark bool
}

func (t ChartTheme) mode() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}

func (t ChartTheme) labelColor() string {
	if t.Dark {
		return "#fff"
	}
	return "#1f2937"
}

func (t ChartTheme) strokeColor() string {
	if t.Dark {
		return "rgb(38, 38, 38)"
	}
	return "rgb(255, 255, 255)"
}

// Series is one named line of numbers.
type Series struct {
	Name string `json:"name"`
	Data []int  `json:"data"`
}

// ProgressSample is the static area-chart data shown on the dashboard.
var ProgressSample = struct {
	Categories []string
	Series     []Series
}{
	Categories: []string{
		"2025-08-07T00:00:00.000Z", "2025-08-07T01:30:00.000Z", "2025-08-07T02:30:00.000Z",
		"2025-08-07T03:30:00.000Z", "2025-08-07T04:30:00.000Z", "2025-08-07T05:30:00.000Z",
		"2025-08-07T06:30:00.000Z",
	},
	Series: []Series{
		{Name: "Workouts", Data: []int{45, 89, 33, 12, 49, 190, 20}},
		{Name: "Macros", Data: []int{11, 45, 85, 23, 65, 67, 99}},
		{Name: "Sleep", Data: []int{44, 66, 94, 125, 73, 24, 38}},
	},
}

// MacroSample is the static pie-chart data.
var MacroSample = struct {
	Data   []int
	Labels []string
}{
	Data:   []int{70, 18, 12},
	Labels: []string{"Direct", "Organic search", "Referral"},
}

type chartConfig struct {
	Chart       map[string]any `json:"chart"`
	Theme       map[string]any `json:"theme"`
	Series      any            `json:"series"`
	Labels      []string       `json:"labels,omitempty"`
	XAxis       map[string]any `json:"xaxis,omitempty"`
	Stroke      map[string]any `json:"stroke,omitempty"`
	DataLabels  map[string]any `json:"dataLabels"`
	Tooltip     map[string]any `json:"tooltip,omitempty"`
	Legend      map[string]any `json:"legend,omitempty"`
	PlotOptions map[string]any `json:"plotOptions,omitempty"`
}

// chart renders a mount point; static/js/charts.js reads data-chart and draws it.
func chart(id string, cfg chartConfig) cmp.Node {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return g.Div(g.ID(id), cmp.Text("Chart unavailable"))
	}
	return g.Div(
		g.ID(id),
		g.Class("w-full"),
		g.Data("chart", string(raw)),
	)
}

// ProgressChart is the smooth area chart of the sample progress series.
func ProgressChart(theme ChartTheme) cmp.Node {
	return chart("progress-chart", chartConfig{
		Chart:      map[string]any{"type": "area", "height": 500, "background": "transparent"},
		Theme:      map[string]any{"mode": theme.mode()},
		Series:     ProgressSample.Series,
		XAxis:      map[string]any{"type": "datetime", "categories": ProgressSample.Categories},
		Stroke:     map[string]any{"curve": "smooth"},
		DataLabels: map[string]any{"enabled": false},
		Tooltip:    map[string]any{"x": map[string]any{"format": "dd/MM/yy HH:mm"}},
	})
}

// MacroChart is the pie chart of the sample macro split.
func MacroChart(theme ChartTheme) cmp.Node {
	return chart("macro-chart", chartConfig{
		Chart:  map[string]any{"type": "pie", "height": 320, "zoom": map[string]any{"enabled": false}},
		Theme:  map[string]any{"mode": theme.mode()},
		Series: MacroSample.Data,
		Labels: MacroSample.Labels,
		Stroke: map[string]any{"colors": []string{theme.strokeColor()}},
		DataLabels: map[string]any{
			"style": map[string]any{
				"fontSize":   "20px",
				"fontFamily": "Inter, ui-sans-serif",
				"fontWeight": "400",
				"colors":     []string{"#fff", "#fff", theme.labelColor()},
			},
			"dropShadow": map[string]any{"enabled": false},
		},
		Legend:      map[string]any{"show": true},
		PlotOptions: map[string]any{"pie": map[string]any{"dataLabels": map[string]any{"offset": -15}}},
	})
}

// VolumeChart is a bar chart of total volume per exercise.
func VolumeChart(theme ChartTheme, totals []domain.ExerciseTotal, names []string) cmp.Node {
	volumes := make([]int, len(totals))
	for i, t := range totals {
		volumes[i] = t.Volume
	}
	return chart("volume-chart", chartConfig{
		Chart:      map[string]any{"type": "bar", "height": 320, "toolbar": map[string]any{"show": false}},
		Theme:      map[string]any{"mode": theme.mode()},
		Series:     []Series{{Name: "Volume", Data: volumes}},
		XAxis:      map[string]any{"categories": names},
		DataLabels: map[string]any{"enabled": false},
		Legend:     map[string]any{"show": false},
	})
}
