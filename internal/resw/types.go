package resw

// Item is a single raw resource entry. An absent comment is the empty string.
type Item struct {
	Key     string `yaml:"key"`
	Value   string `yaml:"value"`
	Comment string `yaml:"comment,omitempty"`
}

// Family is a set of items sharing a base key that together describe one
// plural and/or variant accessor. Items is never empty.
type Family struct {
	Key             string
	Items           []Item
	SupportPlural   bool
	SupportVariants bool
}

// Parser turns a resource document into an ordered list of items.
// A structurally invalid document is an error.
type Parser interface {
	Parse(content []byte) ([]Item, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(content []byte) ([]Item, error)

// Parse implements Parser.
func (f ParserFunc) Parse(content []byte) ([]Item, error) {
	return f(content)
}

// Grouper partitions items into plural/variant families.
// Implementations must not mutate the input.
type Grouper interface {
	Group(items []Item) []Family
}
