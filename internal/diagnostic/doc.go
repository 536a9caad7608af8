// Package diagnostic provides structured warnings, errors and notices
// reported while building a localization model.
//
// Key capabilities:
//   - Deprecated tag notices
//   - Unknown parameter type reports with "did you mean" suggestions
//   - Unresolved string reference reports
//   - Pluggable sinks (collecting, slog-backed, fan-out)
//
// Nothing reported here ever aborts a build: semantic irregularities are
// surfaced as diagnostics and the affected key degrades to default behavior.
package diagnostic
