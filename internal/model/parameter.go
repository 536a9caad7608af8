package model

//go:generate go tool stringer -type=ParameterType -trimprefix=Type -output=parametertype_string.go

// ParameterType is the declared type of a function parameter.
type ParameterType int

const (
	_ ParameterType = iota // zero value is invalid

	TypeObject
	TypeByte
	TypeInt
	TypeUInt
	TypeLong
	TypeULong
	TypeFloat
	TypeDouble
	TypeDecimal
	TypeChar
	TypeString
)

// IsInteger reports whether the type is integer-like.
func (t ParameterType) IsInteger() bool {
	switch t {
	case TypeByte, TypeInt, TypeUInt, TypeLong, TypeULong:
		return true
	default:
		return false
	}
}

// IsNumber reports whether the type can drive pluralization.
func (t ParameterType) IsNumber() bool {
	switch t {
	case TypeFloat, TypeDouble, TypeDecimal:
		return true
	default:
		return t.IsInteger()
	}
}

// Parameter is one entry of a format tag type list.
type Parameter interface {
	isParameter()
}

// FunctionParameter is an argument of the generated accessor.
type FunctionParameter struct {
	Type ParameterType
	Name string
	// IsVariantID marks the parameter selecting the variant.
	IsVariantID bool
}

// LiteralParameter is a constant string substituted at its position.
type LiteralParameter struct {
	Value string
}

// MacroParameter is a value computed at runtime by the helper library,
// such as the current date.
type MacroParameter struct {
	Macro string
}

// StringRefParameter substitutes another localized string of the same
// resource file.
type StringRefParameter struct {
	Key string
}

func (*FunctionParameter) isParameter()  {}
func (*LiteralParameter) isParameter()   {}
func (*MacroParameter) isParameter()     {}
func (*StringRefParameter) isParameter() {}

// ParameterName returns the argument name of p, or "" when p is not an
// accessor argument.
func ParameterName(p Parameter) string {
	if fp, ok := p.(*FunctionParameter); ok {
		return fp.Name
	}

	return ""
}
