package synth

import (
	"accessor-generator/internal/goexpr"
	"accessor-generator/internal/naming"
	"accessor-generator/internal/options"
)

// Field is the identity of the field an accessor is synthesized for.
type Field struct {
	Name string
	Type goexpr.Expr
	Docs []string
}

// Synthesizer builds method fragments.
type Synthesizer struct {
	// PointerDeref allows accessors to dereference pointer fields. When
	// false, ptr_deref options are ignored and fields are accessed directly.
	PointerDeref bool
}

// New returns a Synthesizer with pointer dereferencing enabled.
func New() Synthesizer {
	return Synthesizer{PointerDeref: true}
}

// Synthesize builds the fragment of kind k.
func (s Synthesizer) Synthesize(k options.Kind, f Field, opts options.FinalOptions) MethodFragment {
	switch k {
	case options.GetMut:
		return s.SynthesizeGetMut(f, opts)
	case options.Set:
		return s.SynthesizeSet(f, opts)
	default:
		return s.SynthesizeGet(f, opts)
	}
}

// SynthesizeGet builds a read accessor. It returns by value when cp or
// owned is set and a borrow of the field otherwise.
func (s Synthesizer) SynthesizeGet(f Field, opts options.FinalOptions) MethodFragment {
	m := s.common(options.Get, f, opts)

	m.Receiver = ByRef
	if opts.Owned {
		m.Receiver = ByValue
	}

	deref := s.derefBorrow(options.Get, opts)

	var borrow Borrow

	switch {
	case opts.Copy || opts.Owned:
		borrow = BorrowNone
	case deref != BorrowNone:
		borrow = deref
	default:
		borrow = BorrowShared
	}

	m.Body = Body{Field: f.Name, Deref: deref, Borrow: borrow}
	m.Unsafe = deref != BorrowNone
	m.Return = s.valueReturn(f, opts, borrow)

	return m
}

// SynthesizeGetMut builds a mutable read accessor. The receiver is always
// an exclusive reference and the result a mutable borrow; owned and cp do
// not apply.
func (s Synthesizer) SynthesizeGetMut(f Field, opts options.FinalOptions) MethodFragment {
	m := s.common(options.GetMut, f, opts)

	m.Receiver = ByMutRef

	deref := s.derefBorrow(options.GetMut, opts)
	if deref != BorrowNone {
		deref = BorrowMut
	}

	m.Body = Body{Field: f.Name, Deref: deref, Borrow: BorrowMut}
	m.Unsafe = deref != BorrowNone
	m.Return = s.valueReturn(f, opts, BorrowMut)

	return m
}

// SynthesizeSet builds a write accessor taking the new value and returning
// the receiver for chaining: by value when cp or owned is set, as a
// mutable reference otherwise.
func (s Synthesizer) SynthesizeSet(f Field, opts options.FinalOptions) MethodFragment {
	m := s.common(options.Set, f, opts)

	m.Receiver = ByMutRef
	if opts.Owned {
		m.Receiver = ByValue
	}

	paramType := opts.Type
	if paramType.IsZero() {
		paramType = s.valueType(f, opts)
	}

	deref := s.derefBorrow(options.Set, opts)

	m.Params = []Param{{Name: NewValueParam, Type: paramType}}
	m.Body = Body{Field: f.Name, Deref: deref, Assign: NewValueParam}
	m.Unsafe = deref != BorrowNone

	m.Return = Return{Self: true, Borrow: BorrowMut}
	if opts.Copy || opts.Owned {
		m.Return.Borrow = BorrowNone
	}

	return m
}

func (s Synthesizer) common(k options.Kind, f Field, opts options.FinalOptions) MethodFragment {
	name := naming.Compose(f.Name, opts.Prefix, opts.Suffix)

	return MethodFragment{
		Kind:   k,
		Field:  f.Name,
		Name:   name,
		Ident:  naming.MethodIdent(name, opts.Vis),
		Vis:    opts.Vis,
		Const:  opts.ConstFn,
		Bounds: opts.Bounds,
		Docs:   f.Docs,
	}
}

// derefs reports whether the field is dereferenced.
func (s Synthesizer) derefs(opts options.FinalOptions) bool {
	return s.PointerDeref && opts.PtrDeref != options.PtrDerefNone
}

// derefBorrow resolves the mutability of the dereference for kind k:
// auto follows the kind, deref and deref_mut force it.
func (s Synthesizer) derefBorrow(k options.Kind, opts options.FinalOptions) Borrow {
	if !s.derefs(opts) {
		return BorrowNone
	}

	switch opts.PtrDeref {
	case options.PtrDerefShared:
		return BorrowShared
	case options.PtrDerefMut:
		return BorrowMut
	default:
		if k == options.Get {
			return BorrowShared
		}

		return BorrowMut
	}
}

// valueType is the effective value type: the pointee for dereferenced
// pointer fields, the declared type otherwise.
func (s Synthesizer) valueType(f Field, opts options.FinalOptions) goexpr.Expr {
	if s.derefs(opts) {
		if elem, ok := f.Type.Elem(); ok {
			return elem
		}
	}

	return f.Type
}

// valueReturn is the return of Get and GetMut. An explicit type replaces
// the whole return type, borrow included.
func (s Synthesizer) valueReturn(f Field, opts options.FinalOptions, borrow Borrow) Return {
	if !opts.Type.IsZero() {
		return Return{Type: opts.Type}
	}

	return Return{Type: s.valueType(f, opts), Borrow: borrow}
}
