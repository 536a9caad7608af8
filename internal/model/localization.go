package model

import "reswgen/internal/common"

// Localization describes the accessor generated for one resource key.
type Localization interface {
	// Common returns the fields shared by every kind of localization.
	Common() *Base
	isLocalization()
}

// Base holds the fields shared by every Localization.
type Base struct {
	// Key is the resource key, unique within a StronglyTypedClass.
	Key string
	// Summary is the doc comment derived from a sample value.
	Summary string
	// Parameters are parsed from the format tag. Empty without a tag.
	Parameters []Parameter
	// ExtraParameters are injected by the builder (variant id,
	// pluralization quantifier) when the tag does not provide them.
	ExtraParameters []Parameter
	// IsDotNetFormatting is set by #FormatNet.
	IsDotNetFormatting bool
	// HasPlaceholders is set when a value contains {0}-style placeholders.
	HasPlaceholders bool
}

// Common implements Localization.
func (b *Base) Common() *Base { return b }

// Plural is the payload of plural-capable localizations.
type Plural struct {
	ParameterToUseForPluralization *FunctionParameter
	// SupportNoneState is true when a <key>_None entry exists.
	SupportNoneState bool
}

// Variant is the payload of variant-capable localizations.
type Variant struct {
	ParameterToUseForVariant *FunctionParameter
}

// RegularLocalization is a plain string accessor.
type RegularLocalization struct {
	Base
}

// PluralLocalization selects a plural form from a number.
type PluralLocalization struct {
	Base
	Plural
}

// PluralVariantLocalization selects a variant, then a plural form.
type PluralVariantLocalization struct {
	Base
	Plural
	Variant
}

// VariantLocalization selects a variant from an id.
type VariantLocalization struct {
	Base
	Variant
}

func (*RegularLocalization) isLocalization()       {}
func (*PluralLocalization) isLocalization()        {}
func (*PluralVariantLocalization) isLocalization() {}
func (*VariantLocalization) isLocalization()       {}

// PluralOf returns the plural payload of l, if it has one.
func PluralOf(l Localization) (*Plural, bool) {
	switch l := l.(type) {
	case *PluralLocalization:
		return &l.Plural, true
	case *PluralVariantLocalization:
		return &l.Plural, true
	default:
		return nil, false
	}
}

// VariantOf returns the variant payload of l, if it has one.
func VariantOf(l Localization) (*Variant, bool) {
	switch l := l.(type) {
	case *VariantLocalization:
		return &l.Variant, true
	case *PluralVariantLocalization:
		return &l.Variant, true
	default:
		return nil, false
	}
}

// Kind returns a short name of the localization kind.
func Kind(l Localization) string {
	switch l.(type) {
	case *RegularLocalization:
		return "regular"
	case *PluralLocalization:
		return "plural"
	case *PluralVariantLocalization:
		return "plural_variant"
	case *VariantLocalization:
		return "variant"
	default:
		return common.UnknownStr
	}
}

// ParameterNames returns the names of all accessor arguments of l,
// explicit parameters first.
func ParameterNames(l Localization) []string {
	b := l.Common()

	var names []string
	for _, p := range append(append([]Parameter{}, b.Parameters...), b.ExtraParameters...) {
		if n := ParameterName(p); n != "" {
			names = append(names, n)
		}
	}

	return names
}
