package dashboard

import (
	"strconv"

	"github.com/zietsense/zietsense/internal/chart"
	"github.com/zietsense/zietsense/internal/registry"
	"github.com/zietsense/zietsense/internal/status"
)

// Chart stroke colors per metric.
var chartColors = map[registry.Metric]string{
	registry.Temperature:      "rgb(255, 99, 132)",
	registry.Vibration:        "rgb(54, 162, 235)",
	registry.Power:            "rgb(75, 192, 192)",
	registry.OperationalHours: "rgb(153, 102, 255)",
}

// ChartColor returns the stroke color used for a metric's chart.
func ChartColor(m registry.Metric) string {
	return chartColors[m]
}

// Card is one metric tile.
type Card struct {
	Metric  registry.Metric
	Title   string
	Display string
	Current float64
	Optimal registry.Range
	Status  status.Status
}

// RangeText is the "Optimal: min - max" caption.
func (c Card) RangeText() string {
	return "Optimal: " + status.FormatRange(c.Optimal)
}

// Snapshot is everything the view draws for one machine.
type Snapshot struct {
	MachineID   string
	MachineName string
	Cards       []Card
	Charts      []chart.Data
	Maintenance registry.Maintenance
}

// Derive computes the cards, charts and maintenance summary for m. It is
// pure: the same record always yields the same snapshot.
func Derive(m registry.Machine) Snapshot {
	snap := Snapshot{
		MachineID:   m.ID,
		MachineName: m.Name,
		Cards:       make([]Card, 0, len(registry.AllMetrics)),
		Charts:      make([]chart.Data, 0, len(registry.AllMetrics)),
		Maintenance: m.Maintenance,
	}

	for _, metric := range registry.AllMetrics {
		reading := m.Metrics.Reading(metric)
		snap.Cards = append(snap.Cards, Card{
			Metric:  metric,
			Title:   metric.Title(),
			Display: displayValue(m.Metrics, metric),
			Current: reading.Current,
			Optimal: reading.Optimal,
			Status:  status.ClassifyReading(reading),
		})
		snap.Charts = append(snap.Charts,
			chart.MustBuild(metric.Title(), m.History.Series(metric), ChartColor(metric)))
	}
	return snap
}

// displayValue formats the headline value of a card with its unit.
func displayValue(ms registry.Metrics, metric registry.Metric) string {
	switch metric {
	case registry.Temperature:
		return number(ms.Temperature.Current) + "°C"
	case registry.Vibration:
		return number(ms.Vibration.Current) + " m/s²"
	case registry.Power:
		return number(ms.Power.Current) + " W"
	case registry.OperationalHours:
		return number(ms.OperationalHours.Current) + "/" + number(ms.OperationalHours.Total)
	default:
		return ""
	}
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
