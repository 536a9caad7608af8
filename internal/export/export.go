package export

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"reswgen/internal/builder"
	"reswgen/internal/model"
)

// SchemaVersion is the version of the exported document.
const SchemaVersion = "1"

// Parameter kinds.
const (
	KindFunction  = "function"
	KindLiteral   = "literal"
	KindMacro     = "macro"
	KindStringRef = "string_ref"
)

// ClassFile is the exported form of a StronglyTypedClass.
type ClassFile struct {
	Version               string              `yaml:"version"`
	Class                 string              `yaml:"class"`
	Namespaces            []string            `yaml:"namespaces,omitempty"`
	ResourceFile          string              `yaml:"resource_file"`
	Advanced              bool                `yaml:"advanced"`
	RequiresHelperLibrary bool                `yaml:"requires_helper_library"`
	Localizations         []LocalizationEntry `yaml:"localizations"`
}

// LocalizationEntry is the exported form of a Localization.
type LocalizationEntry struct {
	Key              string           `yaml:"key"`
	Kind             string           `yaml:"kind"`
	Summary          string           `yaml:"summary"`
	DotNetFormatting bool             `yaml:"dotnet_formatting,omitempty"`
	HasPlaceholders  bool             `yaml:"has_placeholders,omitempty"`
	Parameters       []ParameterEntry `yaml:"parameters,omitempty"`
	ExtraParameters  []ParameterEntry `yaml:"extra_parameters,omitempty"`
	// VariantParameter names the argument selecting the variant.
	VariantParameter string `yaml:"variant_parameter,omitempty"`
	// PluralParameter names the argument selecting the plural form.
	PluralParameter  string `yaml:"plural_parameter,omitempty"`
	SupportNoneState bool   `yaml:"support_none_state,omitempty"`
}

// ParameterEntry is the exported form of a Parameter. Value holds the
// literal text, the macro name or the referenced key.
type ParameterEntry struct {
	Kind      string `yaml:"kind"`
	Type      string `yaml:"type,omitempty"`
	Name      string `yaml:"name,omitempty"`
	VariantID bool   `yaml:"variant_id,omitempty"`
	Value     string `yaml:"value,omitempty"`
}

// Class converts c to its exported form.
func Class(c *model.StronglyTypedClass) *ClassFile {
	cf := &ClassFile{
		Version:               SchemaVersion,
		Class:                 c.ClassName,
		Namespaces:            c.Namespaces,
		ResourceFile:          c.ResourceFile,
		Advanced:              c.IsAdvanced,
		RequiresHelperLibrary: builder.RequiresHelperLibrary(c),
		Localizations:         make([]LocalizationEntry, 0, len(c.Localizations)),
	}

	for _, l := range c.Localizations {
		cf.Localizations = append(cf.Localizations, exportLocalization(l))
	}

	return cf
}

// ClassYAML converts c to its exported form and marshals it.
func ClassYAML(c *model.StronglyTypedClass) ([]byte, error) {
	data, err := yaml.Marshal(Class(c))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", c.ClassName, err)
	}

	return data, nil
}

func exportLocalization(l model.Localization) LocalizationEntry {
	b := l.Common()

	e := LocalizationEntry{
		Key:              b.Key,
		Kind:             model.Kind(l),
		Summary:          b.Summary,
		DotNetFormatting: b.IsDotNetFormatting,
		HasPlaceholders:  b.HasPlaceholders,
		Parameters:       exportParameters(b.Parameters),
		ExtraParameters:  exportParameters(b.ExtraParameters),
	}

	if v, ok := model.VariantOf(l); ok && v.ParameterToUseForVariant != nil {
		e.VariantParameter = v.ParameterToUseForVariant.Name
	}

	if p, ok := model.PluralOf(l); ok {
		e.SupportNoneState = p.SupportNoneState
		if p.ParameterToUseForPluralization != nil {
			e.PluralParameter = p.ParameterToUseForPluralization.Name
		}
	}

	return e
}

func exportParameters(params []model.Parameter) []ParameterEntry {
	var entries []ParameterEntry

	for _, p := range params {
		switch p := p.(type) {
		case *model.FunctionParameter:
			entries = append(entries, ParameterEntry{
				Kind:      KindFunction,
				Type:      p.Type.String(),
				Name:      p.Name,
				VariantID: p.IsVariantID,
			})
		case *model.LiteralParameter:
			entries = append(entries, ParameterEntry{Kind: KindLiteral, Value: p.Value})
		case *model.MacroParameter:
			entries = append(entries, ParameterEntry{Kind: KindMacro, Value: p.Macro})
		case *model.StringRefParameter:
			entries = append(entries, ParameterEntry{Kind: KindStringRef, Value: p.Key})
		}
	}

	return entries
}
