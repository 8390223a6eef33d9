package api

import (
	"encoding/json"
	"fmt"
)

// HealthInfo is the body of GET /health.
type HealthInfo struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// Healthy reports whether the backend declared itself healthy.
func (h *HealthInfo) Healthy() bool {
	return h.Status == "healthy"
}

// PPGBlock holds the photoplethysmography sample arrays inside a telemetry
// payload. Derived heart-rate and SpO2 series ride alongside the raw red/IR
// channels.
type PPGBlock struct {
	HeartRate []float64 `json:"heartrate"`
	SpO2      []float64 `json:"spo2"`
	Red       []float64 `json:"red"`
	IR        []float64 `json:"ir"`
}

// TelemetryPayload is the data block of GET /api/recent. Any field may be
// absent; consumers treat missing arrays as empty series rather than errors.
type TelemetryPayload struct {
	PPG         *PPGBlock `json:"ppg"`
	Temperature []float64 `json:"temperature"`
	Humidity    []float64 `json:"humidity"`
	Force       []float64 `json:"force"`
	Timestamps  []string  `json:"timestamps"`
}

// TelemetryData is the full envelope of GET /api/recent.
type TelemetryData struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    TelemetryPayload `json:"data"`
	Message string           `json:"message"`
	Error   ErrorText        `json:"error"`
}

// StatusFeatures carries the numeric features behind a discretized status.
// Means are pointers because the backend emits null when a window has no
// usable samples.
type StatusFeatures struct {
	HRMean         *float64 `json:"hr_mean"`
	SpO2Mean       *float64 `json:"spo2_mean"`
	TempMean       *float64 `json:"temp_mean"`
	ActivityMetric *float64 `json:"activity_metric"`
	WindowSize     int      `json:"window_size"`
}

// StatusInfo is one discretized vital-signs status snapshot from
// GET /api/status/current.
type StatusInfo struct {
	Timestamp         string         `json:"timestamp"`
	HeartRateLevel    string         `json:"heart_rate_level"`
	ActivityState     string         `json:"activity_state"`
	SleepState        string         `json:"sleep_state"`
	SpO2Status        string         `json:"spo2_status"`
	TemperatureStatus string         `json:"temperature_status"`
	Features          StatusFeatures `json:"features"`
}

type statusEnvelope struct {
	Success bool         `json:"success"`
	Status  *StatusInfo  `json:"status"`
	History []StatusInfo `json:"history"`
	Error   ErrorText    `json:"error"`
}

// ParsedReport is the LLM-generated health report body.
type ParsedReport struct {
	Summary              string   `json:"summary"`
	ImmediateAdvice      []string `json:"immediate_advice"`
	TrendAnalysis        string   `json:"trend_analysis"`
	Notes                string   `json:"notes"`
	RiskLevel            string   `json:"risk_level"`
	NeedMedicalAttention bool     `json:"need_medical_attention"`
}

// Risk levels emitted by the report backend.
const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
)

// Report is the report block of POST /api/report/manual. LLMParsed is nil
// when the backend could not parse the model output; callers must treat that
// as a failure even though the request succeeded.
type Report struct {
	LLMParsed   *ParsedReport `json:"llm_parsed"`
	HistorySize int           `json:"history_size"`
}

type reportEnvelope struct {
	Success bool      `json:"success"`
	Report  *Report   `json:"report"`
	Error   ErrorText `json:"error"`
}

// BufferInfo is the buffer block of GET /api/buffer.
type BufferInfo struct {
	CurrentSize   int    `json:"current_size"`
	MaxSize       int    `json:"max_size"`
	Utilization   string `json:"utilization"`
	TotalReceived int    `json:"total_received"`
	TotalBatches  int    `json:"total_batches"`
}

type bufferEnvelope struct {
	Success bool        `json:"success"`
	Buffer  *BufferInfo `json:"buffer"`
	Error   ErrorText   `json:"error"`
}

// ErrorText decodes the backend's error field, which is either a plain
// string or a {code, message} object depending on the endpoint.
type ErrorText string

func (e *ErrorText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*e = ErrorText(s)
		return nil
	}
	var obj struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("error field is neither string nor object: %s", data)
	}
	if obj.Code != "" {
		*e = ErrorText(obj.Code + ": " + obj.Message)
	} else {
		*e = ErrorText(obj.Message)
	}
	return nil
}

func (e ErrorText) String() string {
	return string(e)
}
