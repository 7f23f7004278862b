/*
File    : lim/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the runtime data model of Lim: the tagged union
// of values an evaluated program can produce. Value is a leaf package —
// it knows nothing about the AST or the environment chain, so that the
// function closure type (which needs both) can live in its own package
// without creating an import cycle.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Type identifies which variant of the Value union a concrete value is.
type Type string

const (
	NumberType  Type = "Number"
	BooleanType Type = "Boolean"
	StringType  Type = "String"
	NullType    Type = "Null"
	NothingType Type = "Nothing"
	TupleType   Type = "Tuple"
	VectorType  Type = "Vector"
	FunctionType Type = "Function"
	HoleType    Type = "Hole"
)

// Value is implemented by every runtime datum. ToString renders the
// value the way a user-facing result or a string-concatenation context
// would; Inspect renders a debug form suitable for REPL echoing.
type Value interface {
	Type() Type
	ToString() string
	Inspect() string
}

// Truthy implements the boolean-coercion rules used by logical operators,
// conditionals, and loop guards: Number via x≠0, Boolean is itself,
// String via non-empty, Function/Hole always true, Tuple/Vector via
// non-empty, Null/Nothing always false.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Number:
		return float64(t) != 0
	case Boolean:
		return bool(t)
	case String:
		return len(string(t)) != 0
	case Tuple:
		return len(t.Items) != 0
	case Vector:
		return len(t.Items) != 0
	case *Hole:
		return true
	case Null, Nothing:
		return false
	default:
		// Any other host-provided Value (e.g. Function, defined in the
		// function package) is truthy by default.
		return true
	}
}

// Number is the language's sole numeric kind: an IEEE 754 double.
type Number float64

func (Number) Type() Type { return NumberType }
func (n Number) ToString() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}
func (n Number) Inspect() string { return n.ToString() }

// ToNumber implements the source's to_number coercion: numbers pass
// through, booleans coerce to 0.0/1.0, anything else fails.
func ToNumber(v Value) (float64, bool) {
	switch t := v.(type) {
	case Number:
		return float64(t), true
	case Boolean:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Boolean is the language's boolean kind.
type Boolean bool

func (Boolean) Type() Type            { return BooleanType }
func (b Boolean) ToString() string    { return strconv.FormatBool(bool(b)) }
func (b Boolean) Inspect() string     { return b.ToString() }

// String is the language's text kind.
type String string

func (String) Type() Type         { return StringType }
func (s String) ToString() string { return string(s) }
func (s String) Inspect() string  { return strconv.Quote(string(s)) }

// Null is the explicit absence of a value (e.g. an uninitialized `let`).
type Null struct{}

func (Null) Type() Type         { return NullType }
func (Null) ToString() string   { return "null" }
func (Null) Inspect() string    { return "null" }

// Nothing is distinct from Null: it marks "no printable result", the kind
// of value a side-effecting host builtin like printf returns.
type Nothing struct{}

func (Nothing) Type() Type       { return NothingType }
func (Nothing) ToString() string { return "" }
func (Nothing) Inspect() string  { return "<nothing>" }

// Tuple is a fixed-arity heterogeneous grouping, produced by a
// parenthesized list of zero, two or more expressions.
type Tuple struct{ Items []Value }

func (Tuple) Type() Type { return TupleType }
func (t Tuple) ToString() string {
	parts := make([]string, len(t.Items))
	for i, it := range t.Items {
		parts[i] = it.ToString()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t Tuple) Inspect() string {
	parts := make([]string, len(t.Items))
	for i, it := range t.Items {
		parts[i] = it.Inspect()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Vector is a list constructed by a bracketed expression list.
type Vector struct{ Items []Value }

func (Vector) Type() Type { return VectorType }
func (v Vector) ToString() string {
	parts := make([]string, len(v.Items))
	for i, it := range v.Items {
		parts[i] = it.ToString()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (v Vector) Inspect() string {
	parts := make([]string, len(v.Items))
	for i, it := range v.Items {
		parts[i] = it.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Hole is an opaque handle to a host-provided builtin, dispatched by
// integer id. The interpreter core never inspects what a Hole does; it
// only recognizes the variant and routes calls through the id.
type Hole struct {
	ID   uint32
	Name string
}

func (*Hole) Type() Type         { return HoleType }
func (h *Hole) ToString() string { return fmt.Sprintf("<builtin %s>", h.Name) }
func (h *Hole) Inspect() string  { return fmt.Sprintf("Hole(%d:%s)", h.ID, h.Name) }

// Equal implements the language's `==`: defined only for Number==Number
// (within an epsilon, to absorb floating point rounding) and
// Boolean==Boolean by identity. Every other pairing is a type error —
// equality on strings/tuples/vectors is deliberately left unsupported
// rather than inventing undocumented comparison semantics.
func Equal(a, b Value) (bool, error) {
	switch av := a.(type) {
	case Number:
		if bv, ok := b.(Number); ok {
			return math.Abs(float64(av)-float64(bv)) < 1e-9, nil
		}
	case Boolean:
		if bv, ok := b.(Boolean); ok {
			return av == bv, nil
		}
	}
	return false, fmt.Errorf("cannot compare %s and %s for equality", a.Type(), b.Type())
}
