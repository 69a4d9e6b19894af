package registry

// Metric identifies one monitored quantity.
type Metric string

const (
	Temperature      Metric = "temperature"
	Vibration        Metric = "vibration"
	Power            Metric = "power"
	OperationalHours Metric = "operational_hours"
)

// AllMetrics lists the metrics in display order.
var AllMetrics = []Metric{Temperature, Vibration, Power, OperationalHours}

// Title returns the human-readable metric name.
func (m Metric) Title() string {
	switch m {
	case Temperature:
		return "Temperature"
	case Vibration:
		return "Vibration"
	case Power:
		return "Power"
	case OperationalHours:
		return "Operational Hours"
	default:
		return string(m)
	}
}

// SeriesLength is the number of samples in every history series.
const SeriesLength = 5

// Range is an inclusive optimal band. A nil Min means 0; a nil Max means
// the metric has no defined ceiling.
type Range struct {
	Min *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty" json:"max,omitempty"`
}

// Bounds returns a Range with both ends set.
func Bounds(minVal, maxVal float64) Range {
	return Range{Min: &minVal, Max: &maxVal}
}

// Ceiling returns a Range with only a maximum set.
func Ceiling(maxVal float64) Range {
	return Range{Max: &maxVal}
}

// Lower returns the effective minimum (0 when unset).
func (r Range) Lower() float64 {
	if r.Min == nil {
		return 0
	}
	return *r.Min
}

// Upper returns the maximum and whether one is defined.
func (r Range) Upper() (float64, bool) {
	if r.Max == nil {
		return 0, false
	}
	return *r.Max, true
}

// Reading is a metric's current value with its optimal band.
type Reading struct {
	Current float64 `yaml:"current" json:"current"`
	Optimal Range   `yaml:"optimal" json:"optimal"`
}

// Hours tracks operational hours against a service budget.
type Hours struct {
	Current float64 `yaml:"current" json:"current"`
	Total   float64 `yaml:"total" json:"total"`
}

// Range treats the budget as the band [0, Total].
func (h Hours) Range() Range {
	return Bounds(0, h.Total)
}

// Metrics holds the current readings of one machine.
type Metrics struct {
	Temperature      Reading `yaml:"temperature" json:"temperature"`
	Vibration        Reading `yaml:"vibration" json:"vibration"`
	Power            Reading `yaml:"power" json:"power"`
	OperationalHours Hours   `yaml:"operational_hours" json:"operational_hours"`
}

// Reading returns the reading for m. Operational hours come back as
// {Current, [0, Total]}.
func (ms Metrics) Reading(m Metric) Reading {
	switch m {
	case Temperature:
		return ms.Temperature
	case Vibration:
		return ms.Vibration
	case Power:
		return ms.Power
	case OperationalHours:
		return Reading{Current: ms.OperationalHours.Current, Optimal: ms.OperationalHours.Range()}
	default:
		return Reading{}
	}
}

// History holds the five positional samples per metric.
type History struct {
	Temperature      []float64 `yaml:"temperature" json:"temperature"`
	Vibration        []float64 `yaml:"vibration" json:"vibration"`
	Power            []float64 `yaml:"power" json:"power"`
	OperationalHours []float64 `yaml:"operational_hours" json:"operational_hours"`
}

// Series returns the samples for m.
func (h History) Series(m Metric) []float64 {
	switch m {
	case Temperature:
		return h.Temperature
	case Vibration:
		return h.Vibration
	case Power:
		return h.Power
	case OperationalHours:
		return h.OperationalHours
	default:
		return nil
	}
}

func (h History) clone() History {
	return History{
		Temperature:      append([]float64(nil), h.Temperature...),
		Vibration:        append([]float64(nil), h.Vibration...),
		Power:            append([]float64(nil), h.Power...),
		OperationalHours: append([]float64(nil), h.OperationalHours...),
	}
}

// Maintenance is the static service summary, shown verbatim.
type Maintenance struct {
	LastMaintenance       string  `yaml:"last_maintenance" json:"last_maintenance"`
	NextMaintenance       string  `yaml:"next_maintenance" json:"next_maintenance"`
	HoursUntilMaintenance float64 `yaml:"hours_until_maintenance" json:"hours_until_maintenance"`
}

// Machine is one registry record.
type Machine struct {
	ID          string      `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	Icon        string      `yaml:"icon" json:"icon"`
	Metrics     Metrics     `yaml:"metrics" json:"metrics"`
	History     History     `yaml:"history" json:"history"`
	Maintenance Maintenance `yaml:"maintenance" json:"maintenance"`
}

func (m Machine) clone() Machine {
	c := m
	c.Metrics.Temperature.Optimal = m.Metrics.Temperature.Optimal.clone()
	c.Metrics.Vibration.Optimal = m.Metrics.Vibration.Optimal.clone()
	c.Metrics.Power.Optimal = m.Metrics.Power.Optimal.clone()
	c.History = m.History.clone()
	return c
}

func (r Range) clone() Range {
	var c Range
	if r.Min != nil {
		v := *r.Min
		c.Min = &v
	}
	if r.Max != nil {
		v := *r.Max
		c.Max = &v
	}
	return c
}
