package plan

import (
	"accessor-generator/internal/options"
)

// Layers are the four option layers of one (field, kind) pair together
// with the kind's enable-by-default flag and naming convention.
type Layers struct {
	// Enabled is the container enable-by-default flag for the kind.
	Enabled bool
	// FieldKind holds the field options for the kind, nil when absent.
	FieldKind *options.VariationOptions
	// FieldAll holds the field catch-all options, nil when absent.
	FieldAll *options.VariationOptions
	// KindDefaults holds the container defaults for the kind.
	KindDefaults *options.VariationDefaults
	// AllDefaults holds the container catch-all defaults.
	AllDefaults *options.VariationDefaults
	// Naming is the kind's built-in naming convention.
	Naming options.Naming
}

// LayersFor collects the layers of kind k for a field.
func LayersFor(k options.Kind, container *options.ContainerOptions, field *options.FieldOptions) Layers {
	return Layers{
		Enabled:      container.Enabled(k),
		FieldKind:    field.For(k),
		FieldAll:     field.All,
		KindDefaults: container.Defaults.For(k),
		AllDefaults:  &container.Defaults.All,
		Naming:       k.Naming(),
	}
}

// Resolve merges the layers into the final options of one accessor. The
// boolean result is false when the accessor must be omitted.
//
// Precedence, highest first: field kind, field catch-all, container kind
// defaults, container catch-all defaults, naming convention.
func Resolve(l Layers) (options.FinalOptions, bool) {
	working, ok := merge(l)
	if !ok {
		return options.FinalOptions{}, false
	}

	working.ApplyNaming(l.Naming)

	return working.Materialize(), true
}

// merge runs the layer merge without materializing. It returns false when
// the accessor is omitted.
func merge(l Layers) (options.VariationOptions, bool) {
	var working options.VariationOptions

	switch {
	case l.FieldKind != nil:
		if skip, _ := l.FieldKind.Skip.Get(); skip {
			return working, false
		}

		working = l.FieldKind.Clone()
		working.FillFrom(l.FieldAll)
		working.FillFromDefaults(l.KindDefaults)

	case !l.Enabled:
		return working, false

	case l.FieldAll != nil:
		working = l.FieldAll.Clone()
		// A catch-all skip covers every kind without options of its own.
		if skip, _ := working.Skip.Get(); skip {
			return working, false
		}

		working.FillFromDefaults(l.KindDefaults)

	default:
		if l.KindDefaults != nil {
			working = l.KindDefaults.Options()
		}
	}

	working.FillFromDefaults(l.AllDefaults)

	return working, true
}
