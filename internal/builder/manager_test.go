package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reswgen/internal/diagnostic"
	"reswgen/internal/model"
	"reswgen/internal/resw"
)

func TestManageFormattedFunction(t *testing.T) {
	tests := []struct {
		name       string
		loc        model.Localization
		comment    string
		params     int
		extras     []string
		dotNet     bool
		designated bool
	}{
		{"regular without tag", &model.RegularLocalization{}, "", 0, nil, false, false},
		{"regular with format", &model.RegularLocalization{}, "#Format[int, string]", 2, nil, false, false},
		{"regular with dotnet", &model.RegularLocalization{}, "#FormatNet[int]", 1, nil, true, false},
		{"variant default", &model.VariantLocalization{}, "", 0, []string{VariantIDName}, false, false},
		{"variant designated", &model.VariantLocalization{}, "#Format[Variant Int g]", 1, nil, false, true},
		{"plural default", &model.PluralLocalization{}, "#Format[String]", 1, []string{PluralReferenceName}, false, false},
		{"plural designated", &model.PluralLocalization{}, "#Format[Plural Double n]", 1, nil, false, true},
		{
			"plural variant default", &model.PluralVariantLocalization{}, "",
			0, []string{VariantIDName, PluralReferenceName}, false, false,
		},
		{"malformed tag", &model.PluralLocalization{}, "#FormatNet[Bogus]", 0, []string{PluralReferenceName}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.loc.Common().Key = "Key"

			New().manageFormattedFunction(tt.loc, tt.comment, nil, nil, "Resources.resw")

			base := tt.loc.Common()
			assert.Len(t, base.Parameters, tt.params)
			assert.Equal(t, tt.dotNet, base.IsDotNetFormatting)

			var extras []string
			for _, p := range base.ExtraParameters {
				extras = append(extras, model.ParameterName(p))
			}
			assert.Equal(t, tt.extras, extras)

			if v, ok := model.VariantOf(tt.loc); ok {
				require.NotNil(t, v.ParameterToUseForVariant)
				assert.True(t, v.ParameterToUseForVariant.IsVariantID)
				assert.True(t, v.ParameterToUseForVariant.Type.IsInteger())
				assert.Equal(t, tt.designated, containsParam(base.Parameters, v.ParameterToUseForVariant))
			}

			if pl, ok := model.PluralOf(tt.loc); ok {
				require.NotNil(t, pl.ParameterToUseForPluralization)
				if !tt.designated {
					assert.Equal(t, model.TypeDouble, pl.ParameterToUseForPluralization.Type)
				}
				assert.Equal(t, tt.designated, containsParam(base.Parameters, pl.ParameterToUseForPluralization))
			}
		})
	}
}

func TestManageFormattedFunction_SynthesizedNamesAreUnique(t *testing.T) {
	loc := &model.PluralVariantLocalization{Base: model.Base{Key: "Friends"}}

	New().manageFormattedFunction(loc, "#Format[Int variantId, Double pluralizationReferenceNumber]", nil, nil, "")

	assert.Equal(t, []string{
		"variantId", "pluralizationReferenceNumber", "variantId2", "pluralizationReferenceNumber2",
	}, model.ParameterNames(loc))
	assert.Equal(t, "variantId2", loc.ParameterToUseForVariant.Name)
	assert.Equal(t, "pluralizationReferenceNumber2", loc.ParameterToUseForPluralization.Name)
}

func TestManageFormattedFunction_DeprecatedTag(t *testing.T) {
	var diags diagnostic.Diagnostics

	loc := &model.PluralLocalization{Base: model.Base{Key: "Files"}}
	family := []resw.Item{
		{Key: "Files_One", Comment: "#ReswPlusTyped[Int]"},
		{Key: "Files_Other", Comment: "#ReswPlusTyped[Int]"},
	}

	New(WithSink(&diags)).manageFormattedFunction(loc, "", nil, family, "Resources.resw")

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeDeprecatedTag, diags.Warnings[0].Code)
	assert.Equal(t, "Files", diags.Warnings[0].Key)
	assert.Empty(t, loc.Parameters)
	assert.Len(t, loc.ExtraParameters, 1)
}

func TestUniqueName(t *testing.T) {
	taken := map[string]struct{}{"n": {}, "n2": {}}

	assert.Equal(t, "n3", uniqueName("n", taken))
	assert.Equal(t, "n4", uniqueName("n", taken))
	assert.Equal(t, "m", uniqueName("m", taken))
}

func containsParam(params []model.Parameter, p *model.FunctionParameter) bool {
	for _, candidate := range params {
		if candidate == model.Parameter(p) {
			return true
		}
	}

	return false
}
