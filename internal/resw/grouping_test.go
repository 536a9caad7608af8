package resw

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitKey(t *testing.T) {
	tests := []struct {
		key      string
		expected KeyParts
	}{
		{"Welcome", KeyParts{Base: "Welcome"}},
		{"Files_One", KeyParts{Base: "Files", Quantity: "One"}},
		{"Files_None", KeyParts{Base: "Files", Quantity: "None"}},
		{"Greeting_Variant1", KeyParts{Base: "Greeting", Variant: "1"}},
		{"Greeting_Variant-2", KeyParts{Base: "Greeting", Variant: "-2"}},
		{"Friends_Variant0_Other", KeyParts{Base: "Friends", Variant: "0", Quantity: "Other"}},
		{"Page_Title_Many", KeyParts{Base: "Page_Title", Quantity: "Many"}},
		{"Files_one", KeyParts{Base: "Files_one"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitKey(tt.key))
		})
	}
}

func TestSuffixGrouper_Group(t *testing.T) {
	items := []Item{
		{Key: "Title", Value: "Title"},
		{Key: "Files_One", Value: "{0} file"},
		{Key: "Greeting_Variant1", Value: "Hello Sir"},
		{Key: "Files_Other", Value: "{0} files"},
		{Key: "Greeting_Variant2", Value: "Hello Madam"},
		{Key: "Friends_Variant1_One", Value: "He has one friend"},
		{Key: "Friends_Variant2_Other", Value: "She has {0} friends"},
	}
	snapshot := append([]Item(nil), items...)

	families := SuffixGrouper{}.Group(items)
	require.Len(t, families, 3, spew.Sdump(families))

	assert.Equal(t, "Files", families[0].Key)
	assert.True(t, families[0].SupportPlural)
	assert.False(t, families[0].SupportVariants)
	assert.Len(t, families[0].Items, 2)

	assert.Equal(t, "Greeting", families[1].Key)
	assert.False(t, families[1].SupportPlural)
	assert.True(t, families[1].SupportVariants)

	assert.Equal(t, "Friends", families[2].Key)
	assert.True(t, families[2].SupportPlural)
	assert.True(t, families[2].SupportVariants)

	assert.Equal(t, snapshot, items, "input must not be mutated")
}

func TestSuffixGrouper_NoFamilies(t *testing.T) {
	families := SuffixGrouper{}.Group([]Item{{Key: "A"}, {Key: "B"}})
	assert.Empty(t, families)
}
