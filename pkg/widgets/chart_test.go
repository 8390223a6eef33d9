package widgets

import (
	"strings"
	"testing"

	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/api"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/app"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/bus"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/series"
)

func newChart() *ChartWidget {
	return NewChartWidget(zone.New(), prefs.Default())
}

func telemetry(hr, temp []float64) *api.TelemetryData {
	return &api.TelemetryData{
		Success: true,
		Count:   len(hr),
		Data: api.TelemetryPayload{
			PPG:         &api.PPGBlock{HeartRate: hr},
			Temperature: temp,
		},
	}
}

func TestChartShowsWaitingBeforeData(t *testing.T) {
	w := newChart()
	out := w.View(60, 10)
	if !strings.Contains(out, "Waiting for data") {
		t.Errorf("expected waiting message, got:\n%s", out)
	}
}

func TestChartDisplaysLatestHeartRate(t *testing.T) {
	w := newChart()
	w.Update(app.TelemetryMsg{Data: telemetry([]float64{60, 62, 61}, nil)})

	out := w.View(60, 10)
	if !strings.Contains(out, "61 bpm") {
		t.Errorf("expected latest value '61 bpm' in view, got:\n%s", out)
	}
}

func TestChartRecomputesOnSensorAndUnitChange(t *testing.T) {
	w := newChart()
	w.Update(app.TelemetryMsg{Data: telemetry(nil, []float64{36.2, 36.5})})
	w.Update(app.SensorSelectedMsg{Sensor: series.SensorTemperature})

	out := w.View(60, 10)
	if !strings.Contains(out, "36.5°C") {
		t.Errorf("expected Celsius readout, got:\n%s", out)
	}

	// A unit change recomputes from the cached payload; no new data arrives.
	w.Update(app.UnitChangedMsg{Unit: prefs.UnitFahrenheit})
	out = w.View(60, 10)
	if !strings.Contains(out, "97.7°F") {
		t.Errorf("expected Fahrenheit readout after unit change, got:\n%s", out)
	}
}

func TestChartTitleFollowsLanguage(t *testing.T) {
	w := newChart()
	if w.Title() != "Telemetry" {
		t.Fatalf("expected English title, got %q", w.Title())
	}
	w.Update(app.LanguageChangedMsg{Language: prefs.LangChinese})
	if w.Title() != "实时数据" {
		t.Errorf("expected Chinese title, got %q", w.Title())
	}
}

func TestChartShowsTelemetryErrorAndRecovers(t *testing.T) {
	w := newChart()
	w.Update(app.PollErrorMsg{Topic: bus.TopicTelemetryFailed, Message: "server unreachable"})

	out := w.View(60, 10)
	if !strings.Contains(out, "server unreachable") {
		t.Errorf("expected error message, got:\n%s", out)
	}

	// A later successful poll clears the error.
	w.Update(app.TelemetryMsg{Data: telemetry([]float64{70}, nil)})
	out = w.View(60, 10)
	if strings.Contains(out, "server unreachable") {
		t.Errorf("expected error cleared after fresh data, got:\n%s", out)
	}
}

func TestChartIgnoresOtherStreamsErrors(t *testing.T) {
	w := newChart()
	w.Update(app.TelemetryMsg{Data: telemetry([]float64{70}, nil)})
	w.Update(app.PollErrorMsg{Topic: bus.TopicStatusFailed, Message: "status broke"})

	if out := w.View(60, 10); strings.Contains(out, "status broke") {
		t.Errorf("status error should not surface in the chart, got:\n%s", out)
	}
}

func TestChartTabRowListsAllSensors(t *testing.T) {
	w := newChart()
	out := w.View(80, 12)
	for _, label := range []string{"Heart Rate", "SpO₂", "Temperature", "PPG Red", "PPG IR"} {
		if !strings.Contains(out, label) {
			t.Errorf("expected tab %q in view", label)
		}
	}
}

func TestChartMissingPPGBlockShowsNoData(t *testing.T) {
	w := newChart()
	w.Update(app.TelemetryMsg{Data: &api.TelemetryData{
		Success: true,
		Data:    api.TelemetryPayload{Temperature: []float64{36.5}},
	}})

	// Heart rate is selected but the payload has no PPG block.
	out := w.View(60, 10)
	if !strings.Contains(out, "No data") {
		t.Errorf("expected no-data message for missing PPG block, got:\n%s", out)
	}
}
