package i18n

import "gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"

// keyNames is the terminal fallback when a key is absent from every table.
var keyNames = map[Key]string{
	KeyTitleChart:        "Telemetry",
	KeyTitleStatus:       "Status",
	KeyTitleServer:       "Server",
	KeyTitleReport:       "Report",
	KeySensorHeartRate:   "Heart Rate",
	KeySensorSpO2:        "SpO2",
	KeySensorTemperature: "Temperature",
	KeySensorPPGRed:      "PPG Red",
	KeySensorPPGIR:       "PPG IR",
}

var tables = map[prefs.Language]map[Key]string{
	prefs.LangEnglish: {
		KeyTitleChart:  "Telemetry",
		KeyTitleStatus: "Vitals Status",
		KeyTitleServer: "Server",
		KeyTitleReport: "Health Report",

		KeySensorHeartRate:   "Heart Rate",
		KeySensorSpO2:        "SpO₂",
		KeySensorTemperature: "Temperature",
		KeySensorPPGRed:      "PPG Red",
		KeySensorPPGIR:       "PPG IR",

		KeyLabelHeartRate:   "Heart rate",
		KeyLabelActivity:    "Activity",
		KeyLabelSleep:       "Sleep",
		KeyLabelSpO2:        "SpO₂",
		KeyLabelTemperature: "Temperature",
		KeyLabelWindow:      "Window",
		KeyLabelBuffer:      "Buffer",
		KeyLabelUpdated:     "Updated",

		KeyNoData:          "No data",
		KeyWaitingForData:  "Waiting for data…",
		KeyServerHealthy:   "Healthy",
		KeyServerUnhealthy: "Unhealthy",

		KeyReportIdle:        "Press g to generate a report",
		KeyReportLoading:     "Generating report",
		KeyReportSummary:     "Summary",
		KeyReportAdvice:      "Advice",
		KeyReportTrend:       "Trend",
		KeyReportNotes:       "Notes",
		KeyReportRisk:        "Risk",
		KeyReportSeekCare:    "Seek medical attention",
		KeyReportHistory:     "History windows",
		KeyReportParseFailed: "Report parsing failed",

		KeyRiskLow:      "low",
		KeyRiskModerate: "moderate",
		KeyRiskHigh:     "high",

		KeyErrTelemetry: "Telemetry update failed",
		KeyErrStatus:    "Status update failed",
		KeyErrHealth:    "Health check failed",
		KeyErrReport:    "Report generation failed",

		KeyHintKeys: "←/→:sensor  u:unit  L:lang  g:report  tab:focus  q:quit",
	},
	prefs.LangChinese: {
		KeyTitleChart:  "实时数据",
		KeyTitleStatus: "体征状态",
		KeyTitleServer: "服务器",
		KeyTitleReport: "健康报告",

		KeySensorHeartRate:   "心率",
		KeySensorSpO2:        "血氧",
		KeySensorTemperature: "体温",
		KeySensorPPGRed:      "PPG 红光",
		KeySensorPPGIR:       "PPG 红外",

		KeyLabelHeartRate:   "心率",
		KeyLabelActivity:    "活动",
		KeyLabelSleep:       "睡眠",
		KeyLabelSpO2:        "血氧",
		KeyLabelTemperature: "体温",
		KeyLabelWindow:      "窗口",
		KeyLabelBuffer:      "缓冲区",
		KeyLabelUpdated:     "更新于",

		KeyNoData:          "暂无数据",
		KeyWaitingForData:  "等待数据…",
		KeyServerHealthy:   "正常",
		KeyServerUnhealthy: "异常",

		KeyReportIdle:        "按 g 生成健康报告",
		KeyReportLoading:     "正在生成报告",
		KeyReportSummary:     "总结",
		KeyReportAdvice:      "建议",
		KeyReportTrend:       "趋势",
		KeyReportNotes:       "备注",
		KeyReportRisk:        "风险",
		KeyReportSeekCare:    "建议就医",
		KeyReportHistory:     "历史窗口数",
		KeyReportParseFailed: "报告解析失败",

		KeyRiskLow:      "低",
		KeyRiskModerate: "中",
		KeyRiskHigh:     "高",

		KeyErrTelemetry: "实时数据更新失败",
		KeyErrStatus:    "状态更新失败",
		KeyErrHealth:    "健康检查失败",
		KeyErrReport:    "报告生成失败",

		KeyHintKeys: "←/→:传感器  u:单位  L:语言  g:报告  tab:焦点  q:退出",
	},
}

// statusTables localize the discretized level values emitted by the backend
// analyzer (heart_rate_level, activity_state, sleep_state, spo2_status,
// temperature_status).
var statusTables = map[prefs.Language]map[string]string{
	prefs.LangEnglish: {
		"normal":   "normal",
		"high":     "high",
		"low":      "low",
		"fever":    "fever",
		"resting":  "resting",
		"active":   "active",
		"awake":    "awake",
		"sleeping": "sleeping",
		"unknown":  "unknown",
	},
	prefs.LangChinese: {
		"normal":   "正常",
		"high":     "偏高",
		"low":      "偏低",
		"fever":    "发热",
		"resting":  "静息",
		"active":   "活动",
		"awake":    "清醒",
		"sleeping": "睡眠",
		"unknown":  "未知",
	},
}
