// Package model holds the typed intermediate representation handed to
// language emitters: one StronglyTypedClass per resource file, made of
// Localizations describing accessor functions.
//
// Localization and Parameter are closed sum types. Consumers dispatch with
// a type switch over the concrete pointer types:
//
//	switch l := loc.(type) {
//	case *model.RegularLocalization:
//	case *model.PluralLocalization:
//	case *model.PluralVariantLocalization:
//	case *model.VariantLocalization:
//	}
//
// Values are built once per generation pass and are not mutated after
// being handed off.
package model
