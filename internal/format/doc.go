// Package format resolves the type list of a format tag into accessor
// parameters.
//
// Each comma-separated token is one of:
//
//	"text"                  literal string
//	(OtherKey)              another localized string of the same file
//	SHORT_DATE              runtime macro (see Macros)
//	[Plural|Variant] Type [name]
//
// Type accepts a full name or a short alias, case-insensitive:
// Object/o, Byte/b, Int/i/d, UInt/u, Long/l, ULong/ul, Float/f, Double,
// Decimal/m, Char/c, String/s. Unnamed arguments are called p1, p2, ...
//
// "Plural" marks the number choosing the plural form and "Variant" the
// integer choosing the variant; at most one of each. Anything malformed
// is reported to the diagnostic sink and yields no parameter info at all.
package format
