package format

import (
	"maps"
	"slices"
)

// Macros are the runtime values the helper library can substitute.
var Macros = map[string]struct{}{
	"DATE_TIME":         {},
	"SHORT_DATE":        {},
	"LONG_DATE":         {},
	"SHORT_TIME":        {},
	"LONG_TIME":         {},
	"YEAR":              {},
	"MONTH":             {},
	"MONTH_NAME":        {},
	"DAY":               {},
	"WEEKDAY":           {},
	"HOUR":              {},
	"MINUTE":            {},
	"SECOND":            {},
	"LOCALE_NAME":       {},
	"LOCALE_CODE":       {},
	"APP_NAME":          {},
	"APP_VERSION":       {},
	"APP_VERSION_FULL":  {},
	"APP_VERSION_MAJOR": {},
	"APP_VERSION_MINOR": {},
	"ARCHITECTURE":      {},
	"DEVICE_FAMILY":     {},
	"OS_VERSION":        {},
}

// IsMacro reports whether token names a known macro.
func IsMacro(token string) bool {
	_, ok := Macros[token]
	return ok
}

func macroNames() []string {
	return slices.Sorted(maps.Keys(Macros))
}
