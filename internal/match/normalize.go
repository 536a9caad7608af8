package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for comparison: lower case, with the
// separators used in resource keys and type names (_ - . space) removed.
// "app_name", "AppName" and "APP-NAME" all fold to "appname".
func NormalizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == ' '
}
