// Package resw defines the raw resource entries consumed by the model
// builder and the collaborators that produce them.
//
// Two collaborators live behind interfaces so they can evolve on their own:
//
//   - Parser turns a resource document into an ordered list of Items.
//     The bundled YAMLParser reads a plain interchange list; reading .resw
//     XML is left to the host.
//   - Grouper clusters keys sharing a base name into plural/variant
//     families. SuffixGrouper implements the naming convention
//     <base>[_Variant<n>][_<Zero|One|Two|Few|Many|Other|None>].
//
// Interchange format:
//
//	items:
//	  - key: Welcome
//	    value: "Welcome {0}!"
//	    comment: "#Format[String name]"
//	  - key: Files_One
//	    value: "{0} file"
package resw
