package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zietsense/zietsense/internal/registry"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		optimal registry.Range
		want    Status
	}{
		{"inside band", 42, registry.Bounds(30, 50), Optimal},
		{"above max", 51, registry.Bounds(30, 50), High},
		{"below min", 29.9, registry.Bounds(30, 50), Low},
		{"equal to max", 50, registry.Bounds(30, 50), Optimal},
		{"equal to min", 30, registry.Bounds(30, 50), Optimal},
		{"missing min defaults to zero", -0.1, registry.Ceiling(2.0), Low},
		{"zero with missing min", 0, registry.Ceiling(2.0), Optimal},
		{"no maximum", 1000, registry.Range{}, Unavailable},
		{"no maximum ignores min", -5, registry.Range{Min: registry.Bounds(1, 1).Min}, Unavailable},
		{"inverted band reports high first", 55, registry.Bounds(60, 50), High},
		{"inverted band inside gap reports low", 45, registry.Bounds(60, 50), Low},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.value, tt.optimal))
		})
	}
}

func TestClassify_BuiltinScenarios(t *testing.T) {
	r := registry.Builtin()

	carding := r.MustLookup("carding")
	assert.Equal(t, Optimal, ClassifyReading(carding.Metrics.Temperature))

	blowRoom := r.MustLookup("blowRoom")
	assert.Equal(t, High, ClassifyReading(blowRoom.Metrics.Power))

	ringFrame := r.MustLookup("ringFrame")
	assert.Equal(t, Optimal, ClassifyReading(ringFrame.Metrics.Vibration))

	assert.Equal(t, Optimal, ClassifyReading(carding.Metrics.Power), "power equal to max is optimal")
	assert.Equal(t, Optimal, ClassifyReading(blowRoom.Metrics.Temperature), "temperature equal to max is optimal")
	assert.Equal(t, Optimal, ClassifyReading(blowRoom.Metrics.Reading(registry.OperationalHours)))
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		expect string
	}{
		{Optimal, "Optimal"},
		{High, "High"},
		{Low, "Low"},
		{Unavailable, "N/A"},
		{Status(99), "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.status.String())
		})
	}
}

func TestStatus_Alerting(t *testing.T) {
	assert.False(t, Optimal.Alerting())
	assert.True(t, High.Alerting())
	assert.True(t, Low.Alerting())
	assert.True(t, Unavailable.Alerting())
}

func TestStatus_MarshalText(t *testing.T) {
	b, err := High.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "High", string(b))
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "30 - 50", FormatRange(registry.Bounds(30, 50)))
	assert.Equal(t, "0 - 2", FormatRange(registry.Ceiling(2.0)))
	assert.Equal(t, "0 - 2.5", FormatRange(registry.Ceiling(2.5)))
	assert.Equal(t, "0 - ", FormatRange(registry.Range{}))
}
