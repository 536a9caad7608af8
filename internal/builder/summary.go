package builder

import (
	"regexp"
	"strings"

	"reswgen/internal/model"
)

const (
	summaryRegular = "Looks up a localized string similar to: "
	summaryPlural  = "Get the pluralized version of the string similar to: "
	summaryVariant = "Get the variant version of the string similar to: "
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// singleLine collapses whitespace runs to one space and trims the result.
func singleLine(value string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(value, " "))
}

func summarize(prefix, value string) string {
	return prefix + singleLine(value)
}

// RequiresHelperLibrary reports whether code generated for c depends on
// the runtime helper library: .NET formatting, plural selection or macros.
func RequiresHelperLibrary(c *model.StronglyTypedClass) bool {
	for _, l := range c.Localizations {
		if l.Common().IsDotNetFormatting {
			return true
		}

		if _, ok := model.PluralOf(l); ok {
			return true
		}

		for _, p := range l.Common().Parameters {
			if _, ok := p.(*model.MacroParameter); ok {
				return true
			}
		}
	}

	return false
}
