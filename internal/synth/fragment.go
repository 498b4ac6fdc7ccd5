package synth

import (
	"accessor-generator/internal/common"
	"accessor-generator/internal/goexpr"
	"accessor-generator/internal/options"
)

// NewValueParam is the name of the Set accessor parameter.
const NewValueParam = "newValue"

// ReceiverMode is how the accessor receives the record.
type ReceiverMode int

const (
	ByRef    ReceiverMode = iota // Shared reference (pointer receiver)
	ByMutRef                     // Exclusive reference (pointer receiver)
	ByValue                      // Copy of the record (value receiver)
)

// String returns a human-readable receiver mode.
func (m ReceiverMode) String() string {
	switch m {
	case ByRef:
		return "ref"
	case ByMutRef:
		return "mut_ref"
	case ByValue:
		return "value"
	default:
		return common.UnknownStr
	}
}

// IsPointer reports whether the receiver is rendered as a pointer.
func (m ReceiverMode) IsPointer() bool {
	return m != ByValue
}

// Borrow is the reference taken of a value.
type Borrow int

const (
	BorrowNone   Borrow = iota // Value itself
	BorrowShared               // Shared reference
	BorrowMut                  // Mutable reference
)

// String returns a human-readable borrow.
func (b Borrow) String() string {
	switch b {
	case BorrowNone:
		return "none"
	case BorrowShared:
		return "shared"
	case BorrowMut:
		return "mut"
	default:
		return common.UnknownStr
	}
}

// Param is a method parameter.
type Param struct {
	Name string
	Type goexpr.Expr
}

// Return is the result shape of an accessor.
type Return struct {
	// Type is the returned value type; zero when Self is set.
	Type goexpr.Expr
	// Borrow wraps Type, or the receiver type when Self is set.
	Borrow Borrow
	// Self marks accessors returning the receiver for chaining.
	Self bool
}

// Body describes the accessor body.
type Body struct {
	// Field is the accessed struct field.
	Field string
	// Deref is the mutability of the pointer dereference, BorrowNone when
	// the field is accessed directly.
	Deref Borrow
	// Borrow is the reference taken of the accessed place (Get, GetMut).
	Borrow Borrow
	// Assign names the parameter assigned to the field (Set).
	Assign string
}

// MethodFragment is one synthesized accessor.
type MethodFragment struct {
	Kind     options.Kind
	Field    string // Struct field name
	Name     string // Composed name, e.g. "set_x"
	Ident    string // Go identifier, e.g. "SetX"
	Vis      options.Visibility
	Receiver ReceiverMode
	Params   []Param
	Return   Return
	Body     Body
	// Unsafe marks bodies that dereference a pointer field. The dereference
	// is the only unchecked operation in the body.
	Unsafe bool
	// Const records a const_fn request. Go has no compile-time evaluable
	// functions; renderers report it instead of emitting it.
	Const  bool
	Bounds []goexpr.Bound
	Docs   []string
}
