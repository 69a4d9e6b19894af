// Package chart shapes a metric's history into chart-ready data and draws
// it as a filled line chart in the terminal.
//
// Build is the pure shaping step: fixed bucket labels, a single dataset
// keyed by the metric title, the stroke color and its translucent fill.
// Render turns that data into braille dots, two samples per cell column and
// four levels per cell row.
package chart

import (
	"github.com/zietsense/zietsense/internal/errors"
)

// Labels are the positional bucket names for the five history samples.
var Labels = []string{"Jan", "Feb", "Mar", "Apr", "May"}

const (
	// FillAlpha is the alpha channel of the fill under the line.
	FillAlpha = 0.1
	// Tension is the line smoothing factor.
	Tension = 0.1
)

// Dataset is one plotted series.
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
	Tension         float64   `json:"tension"`
	Fill            bool      `json:"fill"`
}

// Data is a chart-ready structure: category labels plus datasets.
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Legend positions understood by Render. Any other value hides the legend.
const (
	LegendTop    = "top"
	LegendBottom = "bottom"
)

// Options are the display options shared by every metric chart.
type Options struct {
	Title       string `json:"title"`
	Legend      string `json:"legend"`
	BeginAtZero bool   `json:"beginAtZero"`
}

// DefaultOptions returns the options every dashboard chart uses.
func DefaultOptions() Options {
	return Options{
		Title:       "Machine Metrics",
		Legend:      LegendTop,
		BeginAtZero: true,
	}
}

// Build shapes samples into chart data with one dataset labelled title.
// color is the opaque stroke color; the fill is the same color at FillAlpha.
func Build(title string, samples []float64, color string) (Data, error) {
	fill, err := Translucent(color)
	if err != nil {
		return Data{}, errors.WrapWithCode(err, errors.ErrUI,
			"Can't build chart for "+title,
			"Chart colors must look like rgb(255, 99, 132) or #ff6384.")
	}

	return Data{
		Labels: append([]string(nil), Labels...),
		Datasets: []Dataset{{
			Label:           title,
			Data:            append([]float64(nil), samples...),
			BorderColor:     color,
			BackgroundColor: fill,
			Tension:         Tension,
			Fill:            true,
		}},
	}, nil
}

// MustBuild is Build for colors known to be valid.
func MustBuild(title string, samples []float64, color string) Data {
	d, err := Build(title, samples, color)
	if err != nil {
		panic(err)
	}
	return d
}
