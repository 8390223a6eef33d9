// Package i18n maps enumerated string keys to localized display text. The
// key set is closed: a missing table entry falls back to English, and a key
// missing from English falls back to the key's name, so the fallback path is
// explicit rather than accidental.
package i18n

import "gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"

// Key identifies one localizable string.
type Key int

const (
	KeyTitleChart Key = iota
	KeyTitleStatus
	KeyTitleServer
	KeyTitleReport

	KeySensorHeartRate
	KeySensorSpO2
	KeySensorTemperature
	KeySensorPPGRed
	KeySensorPPGIR

	KeyLabelHeartRate
	KeyLabelActivity
	KeyLabelSleep
	KeyLabelSpO2
	KeyLabelTemperature
	KeyLabelWindow
	KeyLabelBuffer
	KeyLabelUpdated

	KeyNoData
	KeyWaitingForData
	KeyServerHealthy
	KeyServerUnhealthy

	KeyReportIdle
	KeyReportLoading
	KeyReportSummary
	KeyReportAdvice
	KeyReportTrend
	KeyReportNotes
	KeyReportRisk
	KeyReportSeekCare
	KeyReportHistory
	KeyReportParseFailed

	KeyRiskLow
	KeyRiskModerate
	KeyRiskHigh

	KeyErrTelemetry
	KeyErrStatus
	KeyErrHealth
	KeyErrReport

	KeyHintKeys
)

// T returns the localized text for key in lang.
func T(lang prefs.Language, key Key) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[prefs.LangEnglish][key]; ok {
		return s
	}
	return keyNames[key]
}

// StatusValue localizes a discretized status value reported by the backend
// (e.g. "normal", "resting", "awake"). Unknown values pass through verbatim
// so a new backend level never renders as a blank.
func StatusValue(lang prefs.Language, value string) string {
	if table, ok := statusTables[lang]; ok {
		if s, ok := table[value]; ok {
			return s
		}
	}
	if s, ok := statusTables[prefs.LangEnglish][value]; ok {
		return s
	}
	return value
}

// RiskLevel localizes a report risk level, falling back to the raw value.
func RiskLevel(lang prefs.Language, level string) string {
	switch level {
	case "low":
		return T(lang, KeyRiskLow)
	case "moderate":
		return T(lang, KeyRiskModerate)
	case "high":
		return T(lang, KeyRiskHigh)
	}
	return level
}
