package series

import (
	"fmt"
	"math"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/api"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"
)

// minAxisSpan is the smallest allowed distance between axis bounds, in
// display units. A converted series whose value span is narrower gets its
// bounds padded symmetrically to this span, so a near-flat temperature line
// is not rendered on an over-zoomed axis that makes noise look like signal.
const minAxisSpan = 10.0

// Bounds is an explicit y-axis override for a chart.
type Bounds struct {
	Min float64
	Max float64
}

// Series is a render-ready sample sequence. Bounds is nil when the chart
// should auto-scale (every non-temperature channel, and an empty series).
type Series struct {
	Values []float64
	Bounds *Bounds
}

// Empty reports whether the series has no renderable samples.
func (s Series) Empty() bool {
	return len(s.Values) == 0
}

// Last returns the most recent sample, or false for an empty series.
func (s Series) Last() (float64, bool) {
	if len(s.Values) == 0 {
		return 0, false
	}
	return s.Values[len(s.Values)-1], true
}

// Transform produces the display series for sensor from payload under the
// given unit preference. Non-temperature channels pass through unchanged
// with no bounds. Temperature is converted per sample from canonical Celsius
// to the active unit; non-finite samples are dropped rather than failing the
// series, and axis bounds are computed over the converted values.
func Transform(sensor Sensor, data *api.TelemetryData, unit prefs.TempUnit) Series {
	if data == nil {
		return Series{}
	}
	desc := Describe(sensor)
	raw := desc.samples(&data.Data)

	if !desc.Temperature {
		return Series{Values: raw}
	}

	converted := make([]float64, 0, len(raw))
	for _, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		converted = append(converted, ConvertTemp(v, unit))
	}
	if len(converted) == 0 {
		return Series{}
	}
	return Series{Values: converted, Bounds: axisBounds(converted)}
}

// axisBounds computes the padded min/max for a non-empty converted series.
func axisBounds(values []float64) *Bounds {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if span := hi - lo; span < minAxisSpan {
		center := (lo + hi) / 2
		lo = center - minAxisSpan/2
		hi = center + minAxisSpan/2
	}
	return &Bounds{Min: lo, Max: hi}
}

// ConvertTemp converts a canonical Celsius sample to the display unit.
func ConvertTemp(celsius float64, unit prefs.TempUnit) float64 {
	if unit == prefs.UnitFahrenheit {
		return celsius*9/5 + 32
	}
	return celsius
}

// ToCelsius inverts ConvertTemp for a displayed value.
func ToCelsius(value float64, unit prefs.TempUnit) float64 {
	if unit == prefs.UnitFahrenheit {
		return (value - 32) * 5 / 9
	}
	return value
}

// FormatValue renders one sample for a tooltip or readout. It must be called
// with the unit preference active at render time, not the one in effect when
// the series was computed, so a unit change stays correct without a refetch.
// Heart rate renders as an integer with "bpm", SpO2 with one decimal and a
// percent sign, temperature with one decimal and the current unit symbol,
// and the raw PPG channels as rounded integers.
func FormatValue(sensor Sensor, v float64, unit prefs.TempUnit) string {
	switch sensor {
	case SensorHeartRate:
		return fmt.Sprintf("%d bpm", int(math.Round(v)))
	case SensorSpO2:
		return fmt.Sprintf("%.1f%%", v)
	case SensorTemperature:
		return fmt.Sprintf("%.1f%s", v, unit.Symbol())
	default:
		return fmt.Sprintf("%d", int(math.Round(v)))
	}
}
