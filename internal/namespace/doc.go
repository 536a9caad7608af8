// Package namespace derives the namespace of generated code from the
// default namespace of a resource file.
//
// Resource files usually live under Strings/<locale>/, so the default
// namespace may end with a locale such as ".Strings.fr-CA". That suffix is
// dropped so every locale shares one language-neutral namespace.
package namespace
