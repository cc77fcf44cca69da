package lexer

import "strconv"

// ValueKind discriminates the payload carried by a Value.
type ValueKind int

// Value kinds
const (
	ValueAbsent ValueKind = iota // token carries no literal payload
	ValueNumber
	ValueString
	ValueBool
	ValueNil
)

// Value is the literal payload the scanner attaches to a token.
// Materialization happens exactly once, at scan time; later stages read
// the payload and never re-derive it from the lexeme.
type Value struct {
	Kind    ValueKind
	Number  float64 // set when Kind == ValueNumber
	Str     string  // set when Kind == ValueString
	Boolean bool    // set when Kind == ValueBool
}

// NumberValue wraps a numeric payload.
func NumberValue(n float64) Value {
	return Value{Kind: ValueNumber, Number: n}
}

// StringValue wraps a string payload.
func StringValue(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

// BoolValue wraps a boolean payload.
func BoolValue(b bool) Value {
	return Value{Kind: ValueBool, Boolean: b}
}

// NilValue returns the nil payload.
func NilValue() Value {
	return Value{Kind: ValueNil}
}

// IsAbsent reports whether the token carried no literal payload.
func (v Value) IsAbsent() bool {
	return v.Kind == ValueAbsent
}

// String renders the payload in its default text form. Numbers use the
// shortest decimal form that round-trips through float64.
func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case ValueString:
		return v.Str
	case ValueBool:
		return strconv.FormatBool(v.Boolean)
	case ValueNil:
		return "nil"
	default:
		return ""
	}
}
