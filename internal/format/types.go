package format

import (
	"strings"

	"reswgen/internal/model"
)

var typeAliases = map[string]model.ParameterType{
	"o":       model.TypeObject,
	"object":  model.TypeObject,
	"b":       model.TypeByte,
	"byte":    model.TypeByte,
	"i":       model.TypeInt,
	"d":       model.TypeInt,
	"int":     model.TypeInt,
	"u":       model.TypeUInt,
	"uint":    model.TypeUInt,
	"l":       model.TypeLong,
	"long":    model.TypeLong,
	"ul":      model.TypeULong,
	"ulong":   model.TypeULong,
	"f":       model.TypeFloat,
	"float":   model.TypeFloat,
	"double":  model.TypeDouble,
	"m":       model.TypeDecimal,
	"decimal": model.TypeDecimal,
	"c":       model.TypeChar,
	"char":    model.TypeChar,
	"s":       model.TypeString,
	"string":  model.TypeString,
}

// LookupType resolves a type name or alias.
func LookupType(name string) (model.ParameterType, bool) {
	t, ok := typeAliases[strings.ToLower(name)]
	return t, ok
}

func typeNames() []string {
	return []string{"Object", "Byte", "Int", "UInt", "Long", "ULong", "Float", "Double", "Decimal", "Char", "String"}
}
