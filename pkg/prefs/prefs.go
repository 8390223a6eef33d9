// Package prefs holds the user's display preferences: interface language and
// temperature unit. Preferences are process-wide, read once at startup,
// rewritten on explicit user change, and broadcast on the event bus so every
// view recomputes from its cached payload without a new fetch.
package prefs

// Language is a display language code.
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LangEnglish || l == LangChinese
}

// Next returns the next language in the rotation.
func (l Language) Next() Language {
	if l == LangEnglish {
		return LangChinese
	}
	return LangEnglish
}

// TempUnit is a temperature display unit. Canonical storage is Celsius;
// conversion happens at display time.
type TempUnit string

const (
	UnitCelsius    TempUnit = "celsius"
	UnitFahrenheit TempUnit = "fahrenheit"
)

// Valid reports whether u is a supported unit.
func (u TempUnit) Valid() bool {
	return u == UnitCelsius || u == UnitFahrenheit
}

// Toggle returns the other unit.
func (u TempUnit) Toggle() TempUnit {
	if u == UnitCelsius {
		return UnitFahrenheit
	}
	return UnitCelsius
}

// Symbol returns the display symbol for the unit.
func (u TempUnit) Symbol() string {
	if u == UnitFahrenheit {
		return "°F"
	}
	return "°C"
}

// Prefs is the persisted preference set.
type Prefs struct {
	Language Language `toml:"language"`
	TempUnit TempUnit `toml:"temperature_unit"`
}

// Default returns the preferences used when no file exists or a stored value
// is unrecognized.
func Default() Prefs {
	return Prefs{Language: LangEnglish, TempUnit: UnitCelsius}
}

// normalize replaces invalid fields with defaults so a hand-edited file
// cannot wedge the UI.
func (p Prefs) normalize() Prefs {
	d := Default()
	if !p.Language.Valid() {
		p.Language = d.Language
	}
	if !p.TempUnit.Valid() {
		p.TempUnit = d.TempUnit
	}
	return p
}
