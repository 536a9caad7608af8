package tag

import (
	"regexp"
	"strings"
)

// Tag keywords.
const (
	Ignore           = "#ReswPlusIgnore"
	DeprecatedTyped  = "#ReswPlusTyped"
	Format           = "#Format"
	FormatDotNet     = "#FormatNet"
	typeListSplitter = ","
)

var (
	formatPattern = regexp.MustCompile(
		`(?P<tag>` + regexp.QuoteMeta(Format) + `|` + regexp.QuoteMeta(FormatDotNet) + `)\[\s*(?P<formats>[^\]]+)\s*\]`)
	formatTagIndex     = formatPattern.SubexpIndex("tag")
	formatFormatsIndex = formatPattern.SubexpIndex("formats")

	// RE2 has no look-behind: the escaping brace check is done by matching
	// the preceding character (or start of input) explicitly.
	dotNetPlaceholderPattern = regexp.MustCompile(`(?:^|[^{])\{\d+(?:,-?\d+)?(?::[^}]+)?\}`)
)

// Match is a recognized format tag.
type Match struct {
	// Formats is the raw, untrimmed type list between the brackets.
	Formats string
	// IsDotNet is true for #FormatNet.
	IsDotNet bool
}

// Types splits the type list on commas and trims each token.
func (m Match) Types() []string {
	parts := strings.Split(m.Formats, typeListSplitter)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// Parse returns the first format tag found in comment.
func Parse(comment string) (Match, bool) {
	if strings.TrimSpace(comment) == "" {
		return Match{}, false
	}

	m := formatPattern.FindStringSubmatch(comment)
	if m == nil {
		return Match{}, false
	}

	return Match{
		Formats:  m[formatFormatsIndex],
		IsDotNet: m[formatTagIndex] == FormatDotNet,
	}, true
}

// HasFormat reports whether comment contains a well-formed format tag.
func HasFormat(comment string) bool {
	return comment != "" && formatPattern.MatchString(comment)
}

// IsIgnored reports whether comment carries the ignore tag.
func IsIgnored(comment string) bool {
	return strings.Contains(comment, Ignore)
}

// IsDeprecated reports whether comment carries the retired typed tag.
func IsDeprecated(comment string) bool {
	return strings.Contains(comment, DeprecatedTyped)
}

// HasDotNetFormatting reports whether value contains a positional
// placeholder such as {0}, {1,-8} or {2:N2} that is not escaped as {{.
func HasDotNetFormatting(value string) bool {
	return dotNetPlaceholderPattern.MatchString(value)
}
