package options

import "accessor-generator/internal/goexpr"

// FinalOptions is the fully resolved configuration of one accessor.
type FinalOptions struct {
	Owned    bool
	ConstFn  bool
	Copy     bool
	Vis      Visibility
	PtrDeref PtrDeref    // PtrDerefNone when the field is not dereferenced
	Type     goexpr.Expr // Zero when no explicit type was given
	Prefix   string      // Resolved name prefix, empty for none
	Suffix   string      // Resolved name suffix, empty for none
	Bounds   []goexpr.Bound
}

// Materialize turns a fully merged working record into FinalOptions:
// unset booleans are false, unset visibility is public, cleared or unset
// prefix and suffix are empty.
func (o *VariationOptions) Materialize() FinalOptions {
	return FinalOptions{
		Owned:    o.Owned.Or(false),
		ConstFn:  o.ConstFn.Or(false),
		Copy:     o.Copy.Or(false),
		Vis:      o.Vis.Or(Public),
		PtrDeref: o.PtrDeref.Or(PtrDerefNone),
		Type:     o.Type.Or(goexpr.Expr{}),
		Prefix:   o.Prefix.Or(""),
		Suffix:   o.Suffix.Or(""),
		Bounds:   o.Bounds,
	}
}

// ApplyNaming adopts the convention's prefix and suffix for slots of o that
// are still unset. It must run on the working record, before Materialize,
// so that an explicit clear keeps suppressing the convention.
func (o *VariationOptions) ApplyNaming(n Naming) {
	if n.Prefix != "" {
		o.Prefix.Fill(Some(n.Prefix))
	}

	if n.Suffix != "" {
		o.Suffix.Fill(Some(n.Suffix))
	}
}
