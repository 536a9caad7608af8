package builder

import (
	"strconv"

	"reswgen/internal/diagnostic"
	"reswgen/internal/format"
	"reswgen/internal/model"
	"reswgen/internal/resw"
	"reswgen/internal/tag"
)

// Names of the parameters injected when a tag does not designate them.
const (
	VariantIDName       = "variantId"
	PluralReferenceName = "pluralizationReferenceNumber"
)

// manageFormattedFunction resolves the format tag of comment into the
// parameters of loc and injects the implicit variant id and pluralization
// number. basic is the parameter-name source for (Key) references and
// family holds the entries loc was built from.
func (b *Builder) manageFormattedFunction(loc model.Localization, comment string, basic, family []resw.Item, resourceName string) {
	base := loc.Common()

	for _, item := range family {
		if tag.IsDeprecated(item.Comment) {
			b.sink.Report(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticWarning,
				Code:     diagnostic.CodeDeprecatedTag,
				Message:  tag.DeprecatedTyped + " is no longer supported, use " + tag.Format + " instead",
				Resource: resourceName,
				Key:      base.Key,
			})

			break
		}
	}

	var info *format.Info
	if m, ok := tag.Parse(comment); ok {
		base.IsDotNetFormatting = m.IsDotNet

		info = format.ParseParameters(base.Key, m.Types(), basic, resourceName, b.sink)
		if info != nil {
			base.Parameters = info.Parameters
		}
	}

	taken := make(map[string]struct{})
	for _, n := range model.ParameterNames(loc) {
		taken[n] = struct{}{}
	}

	if v, ok := model.VariantOf(loc); ok {
		if info != nil && info.VariantParameter != nil {
			v.ParameterToUseForVariant = info.VariantParameter
		} else {
			p := &model.FunctionParameter{Type: model.TypeLong, Name: uniqueName(VariantIDName, taken), IsVariantID: true}
			base.ExtraParameters = append(base.ExtraParameters, p)
			v.ParameterToUseForVariant = p
		}
	}

	if pl, ok := model.PluralOf(loc); ok {
		if info != nil && info.PluralizationParameter != nil {
			pl.ParameterToUseForPluralization = info.PluralizationParameter
		} else {
			p := &model.FunctionParameter{Type: model.TypeDouble, Name: uniqueName(PluralReferenceName, taken)}
			base.ExtraParameters = append(base.ExtraParameters, p)
			pl.ParameterToUseForPluralization = p
		}
	}
}

// uniqueName returns name, or name followed by the first free number, and
// marks the result as taken.
func uniqueName(name string, taken map[string]struct{}) string {
	candidate := name
	for i := 2; ; i++ {
		if _, dup := taken[candidate]; !dup {
			break
		}

		candidate = name + strconv.Itoa(i)
	}

	taken[candidate] = struct{}{}

	return candidate
}
