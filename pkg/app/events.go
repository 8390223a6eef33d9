package app

import (
	"time"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/api"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/bus"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/monitor"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/series"
)

// TelemetryMsg carries a fresh sample window from the telemetry poll.
type TelemetryMsg struct {
	Data *api.TelemetryData
}

// StatusMsg carries the latest derived analysis from the status poll.
type StatusMsg struct {
	Status *api.StatusInfo
}

// HealthMsg carries the backend health verdict and buffer fill.
type HealthMsg struct {
	Update *monitor.HealthUpdate
}

// PollErrorMsg carries a failed poll action's human-readable message. Topic
// identifies which stream failed so widgets can show the error inline.
type PollErrorMsg struct {
	Topic   bus.Topic
	Message string
}

// NotificationMsg surfaces a one-shot message in the status bar.
type NotificationMsg struct {
	Message string
	At      time.Time
}

// SensorSelectedMsg announces a sensor-channel selection change. Consumers
// recompute their display series from the last cached payload; no fetch.
type SensorSelectedMsg struct {
	Sensor series.Sensor
}

// UnitChangedMsg announces a temperature-unit preference change.
type UnitChangedMsg struct {
	Unit prefs.TempUnit
}

// LanguageChangedMsg announces a display-language preference change. Only
// textual labels change; numeric values are untouched.
type LanguageChangedMsg struct {
	Language prefs.Language
}

// GenerateReportMsg asks the report widget to start a generation cycle.
type GenerateReportMsg struct{}

// ReportResultMsg delivers the outcome of a report generation request.
type ReportResultMsg struct {
	Report *api.Report
	Err    error
}

// TickMsg drives periodic UI housekeeping such as notification expiry.
type TickMsg struct {
	Time time.Time
}
