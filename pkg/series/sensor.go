// Package series turns a raw telemetry payload into a renderable display
// series for the currently selected sensor channel: unit conversion, axis
// bound computation, and per-point value formatting.
package series

import (
	"gitlab.com/tinyland/lab/vital-pulse/pkg/api"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/i18n"
)

// Sensor enumerates the rotating set of chartable sensor channels.
type Sensor int

const (
	SensorHeartRate Sensor = iota
	SensorSpO2
	SensorTemperature
	SensorPPGRed
	SensorPPGIR

	sensorCount
)

// Count is the number of sensor channels in the rotation.
const Count = int(sensorCount)

// Next returns the next sensor in the rotation, wrapping after the last.
func (s Sensor) Next() Sensor {
	return Sensor((int(s) + 1) % Count)
}

// Prev returns the previous sensor in the rotation, wrapping before the
// first.
func (s Sensor) Prev() Sensor {
	return Sensor((int(s) + Count - 1) % Count)
}

// Valid reports whether s names one of the defined channels.
func (s Sensor) Valid() bool {
	return s >= 0 && s < sensorCount
}

// Descriptor carries the static identity of one sensor channel.
type Descriptor struct {
	// Key is the stable machine name, used in logs and tests.
	Key string

	// TitleKey localizes the channel's display name.
	TitleKey i18n.Key

	// Color is the chart line color for this channel.
	Color string

	// Temperature marks the one channel whose samples are unit-converted.
	Temperature bool

	// samples extracts this channel's raw array from a payload. Returns nil
	// when the payload lacks the field; a nil result is an empty series, not
	// an error.
	samples func(p *api.TelemetryPayload) []float64
}

var descriptors = [sensorCount]Descriptor{
	SensorHeartRate: {
		Key:      "heartrate",
		TitleKey: i18n.KeySensorHeartRate,
		Color:    "#F44336",
		samples: func(p *api.TelemetryPayload) []float64 {
			if p.PPG == nil {
				return nil
			}
			return p.PPG.HeartRate
		},
	},
	SensorSpO2: {
		Key:      "spo2",
		TitleKey: i18n.KeySensorSpO2,
		Color:    "#64B5F6",
		samples: func(p *api.TelemetryPayload) []float64 {
			if p.PPG == nil {
				return nil
			}
			return p.PPG.SpO2
		},
	},
	SensorTemperature: {
		Key:         "temperature",
		TitleKey:    i18n.KeySensorTemperature,
		Color:       "#FF9800",
		Temperature: true,
		samples: func(p *api.TelemetryPayload) []float64 {
			return p.Temperature
		},
	},
	SensorPPGRed: {
		Key:      "red",
		TitleKey: i18n.KeySensorPPGRed,
		Color:    "#E91E63",
		samples: func(p *api.TelemetryPayload) []float64 {
			if p.PPG == nil {
				return nil
			}
			return p.PPG.Red
		},
	},
	SensorPPGIR: {
		Key:      "ir",
		TitleKey: i18n.KeySensorPPGIR,
		Color:    "#9C27B0",
		samples: func(p *api.TelemetryPayload) []float64 {
			if p.PPG == nil {
				return nil
			}
			return p.PPG.IR
		},
	},
}

// Describe returns the descriptor for s. Invalid sensors map to the first
// channel so a corrupted selection never panics the render path.
func Describe(s Sensor) Descriptor {
	if !s.Valid() {
		s = SensorHeartRate
	}
	return descriptors[s]
}
