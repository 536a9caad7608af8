package model

// StronglyTypedClass is the model of one resource file.
type StronglyTypedClass struct {
	ClassName  string
	Namespaces []string
	// ResourceFile is the name used at runtime to load the resources:
	// ClassName, or <library>/<ClassName> for library projects.
	ResourceFile  string
	IsAdvanced    bool
	Localizations []Localization
}

// Keys returns the localization keys in model order.
func (c *StronglyTypedClass) Keys() []string {
	keys := make([]string, 0, len(c.Localizations))
	for _, l := range c.Localizations {
		keys = append(keys, l.Common().Key)
	}

	return keys
}

// Find returns the localization with the given key.
func (c *StronglyTypedClass) Find(key string) (Localization, bool) {
	for _, l := range c.Localizations {
		if l.Common().Key == key {
			return l, true
		}
	}

	return nil, false
}
