package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"

	"reswgen/internal/diagnostic"
	"reswgen/internal/match"
	"reswgen/internal/model"
	"reswgen/internal/resw"
)

const (
	quantifierPlural  = "plural"
	quantifierVariant = "variant"
	unnamedPrefix     = "p"
)

var (
	literalPattern   = regexp.MustCompile(`^"(.*)"$`)
	stringRefPattern = regexp.MustCompile(`^\(\s*(\w+)\s*\)$`)
	functionPattern  = regexp.MustCompile(
		`^(?:(?P<quantifier>(?i:plural|variant))\s+)?(?P<type>\w+)(?:\s+(?P<name>\w+))?$`)
)

// Info is the resolved parameter list of a format tag.
type Info struct {
	Parameters []model.Parameter
	// VariantParameter is the argument marked "Variant", if any.
	VariantParameter *model.FunctionParameter
	// PluralizationParameter is the argument marked "Plural", if any.
	PluralizationParameter *model.FunctionParameter
}

type resolver struct {
	key      string
	resource string
	basic    []resw.Item
	sink     diagnostic.Sink
	info     Info
	names    map[string]struct{}
	// explicit holds every name given in the tag, so automatic names avoid them.
	explicit map[string]struct{}
	index    int
}

// ParseParameters resolves the type tokens of key's format tag. basic
// holds the plain entries a (Key) token may reference. It returns nil when
// tokens is empty or any token cannot be resolved; problems are reported
// to sink.
func ParseParameters(key string, tokens []string, basic []resw.Item, resourceName string, sink diagnostic.Sink) *Info {
	if len(tokens) == 0 {
		return nil
	}

	if sink == nil {
		sink = diagnostic.Discard
	}

	r := &resolver{
		key:      key,
		resource: resourceName,
		basic:    basic,
		sink:     sink,
		names:    make(map[string]struct{}),
		explicit: make(map[string]struct{}),
	}

	for _, token := range tokens {
		if m := functionPattern.FindStringSubmatch(token); m != nil {
			if name := m[functionPattern.SubexpIndex("name")]; name != "" {
				r.explicit[strcase.ToLowerCamel(name)] = struct{}{}
			}
		}
	}

	for _, token := range tokens {
		p, ok := r.parse(token)
		if !ok {
			return nil
		}

		r.info.Parameters = append(r.info.Parameters, p)
	}

	return &r.info
}

func (r *resolver) parse(token string) (model.Parameter, bool) {
	if m := literalPattern.FindStringSubmatch(token); m != nil {
		return &model.LiteralParameter{Value: m[1]}, true
	}

	if m := stringRefPattern.FindStringSubmatch(token); m != nil {
		return r.stringRef(m[1])
	}

	if IsMacro(token) {
		return &model.MacroParameter{Macro: token}, true
	}

	m := functionPattern.FindStringSubmatch(token)
	if m == nil {
		r.report(diagnostic.CodeUnknownType, fmt.Sprintf("malformed format token %q", token), nil)
		return nil, false
	}

	quantifier := strings.ToLower(m[functionPattern.SubexpIndex("quantifier")])
	typeName := m[functionPattern.SubexpIndex("type")]
	name := m[functionPattern.SubexpIndex("name")]

	typ, ok := LookupType(typeName)
	if !ok {
		r.report(diagnostic.CodeUnknownType, fmt.Sprintf("unknown parameter type %q", typeName),
			match.Suggest(typeName, append(typeNames(), macroNames()...)))
		return nil, false
	}

	r.index++
	if name == "" {
		name = r.automaticName()
	} else {
		camel := strcase.ToLowerCamel(name)
		if !validName(camel) {
			r.report(diagnostic.CodeInvalidName, fmt.Sprintf("%q is not a usable parameter name", name), nil)
			return nil, false
		}

		name = camel
	}

	if _, dup := r.names[name]; dup {
		r.report(diagnostic.CodeDuplicateParam, fmt.Sprintf("parameter name %q is used twice", name), nil)
		return nil, false
	}

	r.names[name] = struct{}{}
	p := &model.FunctionParameter{Type: typ, Name: name}

	switch quantifier {
	case quantifierPlural:
		if !typ.IsNumber() || r.info.PluralizationParameter != nil {
			r.report(diagnostic.CodeInvalidQuantity,
				fmt.Sprintf("%q: only one numeric parameter can drive pluralization", token), nil)
			return nil, false
		}

		r.info.PluralizationParameter = p
	case quantifierVariant:
		if !typ.IsInteger() || r.info.VariantParameter != nil {
			r.report(diagnostic.CodeInvalidQuantity,
				fmt.Sprintf("%q: only one integer parameter can select the variant", token), nil)
			return nil, false
		}

		p.IsVariantID = true
		r.info.VariantParameter = p
	}

	return p, true
}

// automaticName returns p<n> for the current position, moving to the next
// number while the tag names a parameter that way itself.
func (r *resolver) automaticName() string {
	for n := r.index; ; n++ {
		name := unnamedPrefix + strconv.Itoa(n)
		if _, taken := r.explicit[name]; !taken {
			return name
		}
	}
}

// validName reports whether name can be emitted as an identifier.
func validName(name string) bool {
	for i, c := range name {
		if i == 0 && !unicode.IsLetter(c) {
			return false
		}

		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			return false
		}
	}

	return name != ""
}

func (r *resolver) stringRef(key string) (model.Parameter, bool) {
	known := make([]string, 0, len(r.basic))
	for _, item := range r.basic {
		if item.Key == key {
			return &model.StringRefParameter{Key: key}, true
		}

		known = append(known, item.Key)
	}

	r.report(diagnostic.CodeUnresolvedRef, fmt.Sprintf("no string named %q to reference", key),
		match.Suggest(key, known))

	return nil, false
}

func (r *resolver) report(code, message string, suggestions []string) {
	r.sink.Report(diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticError,
		Code:        code,
		Message:     message,
		Resource:    r.resource,
		Key:         r.key,
		Suggestions: suggestions,
	})
}
