// Package tag recognizes the annotations authors put in resource comments.
//
//	#Format[Int count, String name]   default substitution
//	#FormatNet[Int]                   {n} placeholders always substituted
//	#ReswPlusIgnore                   skip the entry
//	#ReswPlusTyped[...]               retired, reported as deprecated
//
// Only the first format tag of a comment is honored. The matchers are
// compiled once and shared read-only.
package tag
