package registry

import (
	"fmt"
	"math"
	"strings"

	"github.com/zietsense/zietsense/internal/errors"
)

const validateSuggestion = "Check the machine table definition."

func validate(machines []Machine, defaultID string) error {
	if len(machines) == 0 {
		return errors.New(errors.ErrRegistry,
			"Machine table is empty",
			"Define at least one machine.")
	}

	seen := make(map[string]bool, len(machines))
	for i, m := range machines {
		if strings.TrimSpace(m.ID) == "" {
			return errors.Newf(errors.ErrRegistry, validateSuggestion,
				"Machine #%d has no id", i+1)
		}
		if seen[m.ID] {
			return errors.Newf(errors.ErrRegistry, "Machine ids must be unique.",
				"Machine '%s' is defined twice", m.ID)
		}
		seen[m.ID] = true

		if err := validateMachine(m); err != nil {
			return errors.WrapWithCode(err, errors.ErrRegistry,
				fmt.Sprintf("Machine '%s' is invalid", m.ID), validateSuggestion)
		}
	}

	if !seen[defaultID] {
		return errors.Newf(errors.ErrRegistry,
			"Pick one of: "+strings.Join(idsOf(machines), ", "),
			"Default machine '%s' is not in the table", defaultID)
	}
	return nil
}

func validateMachine(m Machine) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is empty")
	}

	for _, metric := range []Metric{Temperature, Vibration, Power} {
		r := m.Metrics.Reading(metric)
		if err := finite(metric, "current", r.Current); err != nil {
			return err
		}
		if err := validateRange(metric, r.Optimal); err != nil {
			return err
		}
	}

	hours := m.Metrics.OperationalHours
	if err := finite(OperationalHours, "current", hours.Current); err != nil {
		return err
	}
	if err := finite(OperationalHours, "total", hours.Total); err != nil {
		return err
	}
	if hours.Total <= 0 {
		return fmt.Errorf("%s total must be positive, got %v", OperationalHours, hours.Total)
	}

	for _, metric := range AllMetrics {
		series := m.History.Series(metric)
		if len(series) != SeriesLength {
			return fmt.Errorf("%s history has %d samples, want %d", metric, len(series), SeriesLength)
		}
		for _, v := range series {
			if err := finite(metric, "history sample", v); err != nil {
				return err
			}
		}
	}

	if err := finite("maintenance", "hours until maintenance", m.Maintenance.HoursUntilMaintenance); err != nil {
		return err
	}
	return nil
}

func validateRange(metric Metric, r Range) error {
	if r.Min != nil {
		if err := finite(metric, "optimal min", *r.Min); err != nil {
			return err
		}
	}
	if r.Max != nil {
		if err := finite(metric, "optimal max", *r.Max); err != nil {
			return err
		}
	}
	if maxVal, ok := r.Upper(); ok && maxVal < r.Lower() {
		return fmt.Errorf("%s optimal max %v is below min %v", metric, maxVal, r.Lower())
	}
	return nil
}

func finite(metric Metric, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %s is not a finite number", metric, field)
	}
	return nil
}

func idsOf(machines []Machine) []string {
	ids := make([]string, 0, len(machines))
	for _, m := range machines {
		if m.ID != "" {
			ids = append(ids, m.ID)
		}
	}
	return ids
}
