package mapping

import (
	"fmt"
	"go/token"

	"accessor-generator/internal/goexpr"
	"accessor-generator/internal/options"
)

// ContainerOptions converts the entry into container options.
func (t *TypeOptions) ContainerOptions() (options.ContainerOptions, error) {
	out := options.ContainerOptions{Get: t.Get, GetMut: t.GetMut, Set: t.Set}

	groups := []struct {
		name string
		src  *Variation
		dst  *options.VariationDefaults
	}{
		{"all", t.Defaults.All, &out.Defaults.All},
		{"get", t.Defaults.Get, &out.Defaults.Get},
		{"get_mut", t.Defaults.GetMut, &out.Defaults.GetMut},
		{"set", t.Defaults.Set, &out.Defaults.Set},
	}

	for _, g := range groups {
		if g.src == nil {
			continue
		}

		if g.src.Skip != nil || g.src.Type != "" {
			return out, fmt.Errorf("%w: line %d: %s defaults %s: skip and type cannot be defaulted",
				ErrInvalid, t.Line, t.Name, g.name)
		}

		v, err := g.src.options()
		if err != nil {
			return out, fmt.Errorf("%w: line %d: %s defaults %s: %w", ErrInvalid, t.Line, t.Name, g.name, err)
		}

		*g.dst = v.Defaults()
	}

	bounds, err := goexpr.ParseBounds(t.Bounds)
	if err != nil {
		return out, fmt.Errorf("%w: line %d: %s: %w", ErrInvalid, t.Line, t.Name, err)
	}

	out.Bounds = bounds

	return out, nil
}

// Options converts the entry into field options.
func (f *FieldOptions) Options() (options.FieldOptions, error) {
	out := options.FieldOptions{}
	if f == nil {
		return out, nil
	}

	out.Skip = f.Skip

	if f.All != nil {
		v, err := f.All.options()
		if err != nil {
			return out, fmt.Errorf("all: %w", err)
		}

		out.All = &v
	}

	for _, k := range options.Kinds {
		src := f.forKind(k)
		if src == nil {
			continue
		}

		v, err := src.options()
		if err != nil {
			return out, fmt.Errorf("%s: %w", k, err)
		}

		out.SetFor(k, &v)
	}

	return out, nil
}

func (f *FieldOptions) forKind(k options.Kind) *Variation {
	switch k {
	case options.Get:
		return f.Get
	case options.GetMut:
		return f.GetMut
	case options.Set:
		return f.Set
	default:
		return nil
	}
}

func (v *Variation) options() (options.VariationOptions, error) {
	var out options.VariationOptions

	out.Owned = boolSlot(v.Owned)
	out.ConstFn = boolSlot(v.ConstFn)
	out.Skip = boolSlot(v.Skip)
	out.Copy = boolSlot(v.Copy)

	if v.PtrDeref != nil {
		p, ok := options.ParsePtrDeref(*v.PtrDeref)
		if !ok {
			return out, fmt.Errorf("ptr_deref expects auto, deref or deref_mut, got %q", *v.PtrDeref)
		}

		out.PtrDeref = options.Some(p)
	}

	if v.Type != "" {
		e, err := goexpr.Parse(v.Type)
		if err != nil {
			return out, err
		}

		out.Type = options.Some(e)
	}

	var err error
	if out.Prefix, err = affixSlot("prefix", v.Prefix); err != nil {
		return out, err
	}

	if out.Suffix, err = affixSlot("suffix", v.Suffix); err != nil {
		return out, err
	}

	if v.Vis != "" {
		vis, ok := options.ParseVisibility(v.Vis)
		if !ok {
			return out, fmt.Errorf("vis expects pub or private, got %q", v.Vis)
		}

		out.Vis = options.Some(vis)
	}

	if out.Bounds, err = goexpr.ParseBounds(v.Bounds); err != nil {
		return out, err
	}

	return out, nil
}

func boolSlot(b *bool) options.Slot[bool] {
	if b == nil {
		return options.Slot[bool]{}
	}

	return options.Some(*b)
}

func affixSlot(name string, a Affix) (options.Slot[string], error) {
	switch {
	case !a.Present:
		return options.Slot[string]{}, nil
	case a.Value == "":
		return options.Cleared[string](), nil
	case !token.IsIdentifier(a.Value):
		return options.Slot[string]{}, fmt.Errorf("%s must be an identifier, got %q", name, a.Value)
	default:
		return options.Some(a.Value), nil
	}
}
