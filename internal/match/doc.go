// Package match ranks known names against a misspelled one so that
// diagnostics on format tags can say "did you mean".
//
// Names are compared after NormalizeIdent, using an edit distance that
// also counts swapped neighbours as one edit.
package match
