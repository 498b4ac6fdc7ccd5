package options

import "accessor-generator/internal/common"

// PtrDeref is the dereference policy for pointer-typed fields.
type PtrDeref int

const (
	PtrDerefNone     PtrDeref = iota // Field is accessed as is
	PtrDerefAuto                     // Mutability follows the accessor kind
	PtrDerefShared                   // Always a shared (read) dereference
	PtrDerefMut                      // Always a mutable dereference
)

// String returns the directive spelling of the policy.
func (p PtrDeref) String() string {
	switch p {
	case PtrDerefNone:
		return "none"
	case PtrDerefAuto:
		return "auto"
	case PtrDerefShared:
		return "deref"
	case PtrDerefMut:
		return "deref_mut"
	default:
		return common.UnknownStr
	}
}

// ParsePtrDeref parses auto, deref or deref_mut.
func ParsePtrDeref(s string) (PtrDeref, bool) {
	switch s {
	case "auto", "":
		return PtrDerefAuto, true
	case "deref":
		return PtrDerefShared, true
	case "deref_mut":
		return PtrDerefMut, true
	default:
		return PtrDerefNone, false
	}
}

// Visibility of a generated method. In Go it decides whether the method
// identifier is exported.
type Visibility int

const (
	Public  Visibility = iota // Exported identifier
	Private                   // Unexported identifier
)

// String returns the directive spelling of the visibility.
func (v Visibility) String() string {
	switch v {
	case Public:
		return "pub"
	case Private:
		return "private"
	default:
		return common.UnknownStr
	}
}

// ParseVisibility accepts pub/public/exported and private/priv/unexported.
func ParseVisibility(s string) (Visibility, bool) {
	switch s {
	case "pub", "public", "exported":
		return Public, true
	case "private", "priv", "unexported":
		return Private, true
	default:
		return Public, false
	}
}
