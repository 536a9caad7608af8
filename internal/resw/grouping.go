package resw

import "regexp"

// Plural quantity suffixes recognized by SuffixGrouper.
const (
	QuantityZero  = "Zero"
	QuantityOne   = "One"
	QuantityTwo   = "Two"
	QuantityFew   = "Few"
	QuantityMany  = "Many"
	QuantityOther = "Other"
	QuantityNone  = "None"
)

// NoneSuffix marks the optional "nothing" form of a plural family.
const NoneSuffix = "_" + QuantityNone

var familyKeyPattern = regexp.MustCompile(
	`^(?P<base>.+?)(?:_Variant(?P<variant>-?\d+))?(?:_(?P<quantity>Zero|One|Two|Few|Many|Other|None))?$`)

// KeyParts is the decomposition of a family member key.
type KeyParts struct {
	Base     string
	Variant  string
	Quantity string
}

// IsMember reports whether the key carries a variant or quantity suffix.
func (k KeyParts) IsMember() bool {
	return k.Variant != "" || k.Quantity != ""
}

// SplitKey decomposes key into its base name, variant id and plural quantity.
func SplitKey(key string) KeyParts {
	m := familyKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return KeyParts{Base: key}
	}

	return KeyParts{
		Base:     m[familyKeyPattern.SubexpIndex("base")],
		Variant:  m[familyKeyPattern.SubexpIndex("variant")],
		Quantity: m[familyKeyPattern.SubexpIndex("quantity")],
	}
}

// SuffixGrouper groups items by the _Variant<n> and plural quantity
// suffixes of their keys. Families are returned in order of first
// appearance of their base key.
type SuffixGrouper struct{}

// Group implements Grouper.
func (SuffixGrouper) Group(items []Item) []Family {
	var (
		families []Family
		index    = make(map[string]int)
	)

	for _, item := range items {
		parts := SplitKey(item.Key)
		if !parts.IsMember() {
			continue
		}

		i, ok := index[parts.Base]
		if !ok {
			i = len(families)
			index[parts.Base] = i
			families = append(families, Family{Key: parts.Base})
		}

		f := &families[i]
		f.Items = append(f.Items, item)
		f.SupportPlural = f.SupportPlural || parts.Quantity != ""
		f.SupportVariants = f.SupportVariants || parts.Variant != ""
	}

	return families
}
