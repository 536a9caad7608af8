// Package builder turns the raw entries of a resource file into a
// model.StronglyTypedClass ready for code generation.
//
// In basic mode every eligible entry becomes a RegularLocalization with a
// summary only. In advanced mode entries are grouped into plural/variant
// families, format tags found in comments are resolved into accessor
// parameters, and the implicit variant id and pluralization number are
// injected when a tag does not designate them.
//
// Entries are skipped when their key contains a '.' (reserved for
// property resources such as "Button.Content") or when their comment
// carries #ReswPlusIgnore. A malformed tag never fails the build: the
// affected key gets no explicit parameters and the problem is reported to
// the diagnostic sink.
package builder
