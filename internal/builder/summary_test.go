package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reswgen/internal/model"
)

func TestSingleLine(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Hello   world  ", "Hello world"},
		{"  line one\n\tline two\r\n", "line one line two"},
		{"", ""},
		{"single", "single"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, singleLine(tt.in))
		})
	}

	assert.Equal(t, "Looks up a localized string similar to: Hello world", summarize(summaryRegular, "Hello   world  "))
}

func TestRequiresHelperLibrary(t *testing.T) {
	tests := []struct {
		name     string
		loc      model.Localization
		expected bool
	}{
		{"plain", &model.RegularLocalization{}, false},
		{"variant", &model.VariantLocalization{}, false},
		{"dotnet", &model.RegularLocalization{Base: model.Base{IsDotNetFormatting: true}}, true},
		{"plural", &model.PluralLocalization{}, true},
		{"plural variant", &model.PluralVariantLocalization{}, true},
		{"macro", &model.RegularLocalization{Base: model.Base{
			Parameters: []model.Parameter{&model.MacroParameter{Macro: "YEAR"}},
		}}, true},
		{"literal", &model.RegularLocalization{Base: model.Base{
			Parameters: []model.Parameter{&model.LiteralParameter{Value: "x"}},
		}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &model.StronglyTypedClass{Localizations: []model.Localization{tt.loc}}
			assert.Equal(t, tt.expected, RequiresHelperLibrary(c))
		})
	}
}
