package namespace

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

const (
	separator = "."
	// stringsSegment is the literal ".Strings" kept in the namespace.
	stringsSegment = ".Strings"
)

var localeSuffixPattern = regexp.MustCompile(
	`\.Strings\.(?P<locale>[a-z]{2}(?:[-_](?:Latn|Cyrl|Hant|Hans))?(?:[-_](?:\d{3}|[A-Z]{2,3}))?)$`)

// Extract returns the namespace components to use for generated code.
// An empty default namespace yields no components.
func Extract(defaultNamespace string) []string {
	if defaultNamespace == "" {
		return []string{}
	}

	if loc := localeSuffixPattern.FindStringIndex(defaultNamespace); loc != nil {
		return strings.Split(defaultNamespace[:loc[0]+len(stringsSegment)], separator)
	}

	return strings.Split(defaultNamespace, separator)
}

// Locale returns the locale encoded in the default namespace suffix, if any.
func Locale(defaultNamespace string) (language.Tag, bool) {
	m := localeSuffixPattern.FindStringSubmatch(defaultNamespace)
	if m == nil {
		return language.Und, false
	}

	raw := strings.ReplaceAll(m[localeSuffixPattern.SubexpIndex("locale")], "_", "-")

	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, false
	}

	return tag, true
}
