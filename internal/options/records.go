package options

import (
	"slices"

	"accessor-generator/internal/goexpr"
)

// VariationOptions are the options of one field for one accessor kind, or
// the field's catch-all options.
type VariationOptions struct {
	Owned    Slot[bool]        // By-value receiver
	ConstFn  Slot[bool]        // Compile-time evaluable function
	Skip     Slot[bool]        // Omit the accessor
	Copy     Slot[bool]        // Return by value instead of by reference
	PtrDeref Slot[PtrDeref]    // Dereference a pointer field
	Type     Slot[goexpr.Expr] // Explicit return (Get, GetMut) or parameter (Set) type
	Prefix   Slot[string]      // Name prefix override, clearable
	Suffix   Slot[string]      // Name suffix override, clearable
	Vis      Slot[Visibility]
	Bounds   []goexpr.Bound // Per-method bounds; empty defers to the next layer
}

// VariationDefaults are container-level defaults. Skip and Type cannot be
// defaulted.
type VariationDefaults struct {
	Owned    Slot[bool]
	ConstFn  Slot[bool]
	Copy     Slot[bool]
	PtrDeref Slot[PtrDeref]
	Prefix   Slot[string]
	Suffix   Slot[string]
	Vis      Slot[Visibility]
	Bounds   []goexpr.Bound
}

// ContainerDefaults holds the catch-all and per-kind defaults of a container.
type ContainerDefaults struct {
	All    VariationDefaults
	Get    VariationDefaults
	GetMut VariationDefaults
	Set    VariationDefaults
}

// For returns the defaults of kind k.
func (d *ContainerDefaults) For(k Kind) *VariationDefaults {
	switch k {
	case Get:
		return &d.Get
	case GetMut:
		return &d.GetMut
	case Set:
		return &d.Set
	default:
		return &VariationDefaults{}
	}
}

// ContainerOptions are the options attached to the struct itself.
type ContainerOptions struct {
	Get    bool // Generate Get for every field unless told otherwise
	GetMut bool // Generate GetMut for every field unless told otherwise
	Set    bool // Generate Set for every field unless told otherwise

	Defaults ContainerDefaults
	// Bounds apply once to the whole generated accessor set.
	Bounds []goexpr.Bound
}

// Enabled reports whether kind k is generated by default.
func (c *ContainerOptions) Enabled(k Kind) bool {
	switch k {
	case Get:
		return c.Get
	case GetMut:
		return c.GetMut
	case Set:
		return c.Set
	default:
		return false
	}
}

// SetEnabled sets the enable-by-default flag of kind k.
func (c *ContainerOptions) SetEnabled(k Kind, enabled bool) {
	switch k {
	case Get:
		c.Get = enabled
	case GetMut:
		c.GetMut = enabled
	case Set:
		c.Set = enabled
	}
}

// FieldOptions are the options attached to a single field.
type FieldOptions struct {
	Skip   bool // Generate nothing for this field
	All    *VariationOptions
	Get    *VariationOptions
	GetMut *VariationOptions
	Set    *VariationOptions
}

// For returns the options of kind k, nil when absent.
func (f *FieldOptions) For(k Kind) *VariationOptions {
	switch k {
	case Get:
		return f.Get
	case GetMut:
		return f.GetMut
	case Set:
		return f.Set
	default:
		return nil
	}
}

// SetFor stores the options of kind k.
func (f *FieldOptions) SetFor(k Kind, opts *VariationOptions) {
	switch k {
	case Get:
		f.Get = opts
	case GetMut:
		f.GetMut = opts
	case Set:
		f.Set = opts
	}
}

// IsZero reports whether no option was given for the field.
func (f *FieldOptions) IsZero() bool {
	return !f.Skip && f.All == nil && f.Get == nil && f.GetMut == nil && f.Set == nil
}

// Clone returns a deep copy of o.
func (o *VariationOptions) Clone() VariationOptions {
	out := *o
	out.Bounds = slices.Clone(o.Bounds)

	return out
}

// Options converts defaults into a working option record.
func (d *VariationDefaults) Options() VariationOptions {
	return VariationOptions{
		Owned:    d.Owned,
		ConstFn:  d.ConstFn,
		Copy:     d.Copy,
		PtrDeref: d.PtrDeref,
		Prefix:   d.Prefix,
		Suffix:   d.Suffix,
		Vis:      d.Vis,
		Bounds:   slices.Clone(d.Bounds),
	}
}

// Defaults drops Skip and Type, keeping the slots that container defaults
// can carry.
func (o *VariationOptions) Defaults() VariationDefaults {
	return VariationDefaults{
		Owned:    o.Owned,
		ConstFn:  o.ConstFn,
		Copy:     o.Copy,
		PtrDeref: o.PtrDeref,
		Prefix:   o.Prefix,
		Suffix:   o.Suffix,
		Vis:      o.Vis,
		Bounds:   slices.Clone(o.Bounds),
	}
}

// FillFrom fills unset slots of o from the field catch-all options.
// Skip is not inherited: options given for a kind mean the accessor is
// wanted. A nil all is a no-op.
func (o *VariationOptions) FillFrom(all *VariationOptions) {
	if all == nil {
		return
	}

	o.Owned.Fill(all.Owned)
	o.ConstFn.Fill(all.ConstFn)
	o.Copy.Fill(all.Copy)
	o.PtrDeref.Fill(all.PtrDeref)
	o.Type.Fill(all.Type)
	o.Prefix.Fill(all.Prefix)
	o.Suffix.Fill(all.Suffix)
	o.Vis.Fill(all.Vis)
	o.Bounds = fillBounds(o.Bounds, all.Bounds)
}

// FillFromDefaults fills unset slots of o from container defaults.
func (o *VariationOptions) FillFromDefaults(d *VariationDefaults) {
	if d == nil {
		return
	}

	o.Owned.Fill(d.Owned)
	o.ConstFn.Fill(d.ConstFn)
	o.Copy.Fill(d.Copy)
	o.PtrDeref.Fill(d.PtrDeref)
	o.Prefix.Fill(d.Prefix)
	o.Suffix.Fill(d.Suffix)
	o.Vis.Fill(d.Vis)
	o.Bounds = fillBounds(o.Bounds, d.Bounds)
}

// fillBounds replaces an empty bound set with a copy of from.
func fillBounds(dst, from []goexpr.Bound) []goexpr.Bound {
	if len(dst) > 0 {
		return dst
	}

	return slices.Clone(from)
}
