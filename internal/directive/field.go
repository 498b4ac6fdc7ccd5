package directive

import (
	"fmt"

	"accessor-generator/internal/match"
	"accessor-generator/internal/options"
)

// ParseField applies field options to into. Options for the same kind may
// not be given twice, whether in the tag or in directive lines.
func ParseField(src string, into *options.FieldOptions) error {
	items, err := parseList(src)
	if err != nil {
		return err
	}

	for _, it := range items {
		if it.name == "" {
			return it.errorf("unexpected quoted value %q", it.value)
		}

		if it.name == keySkip {
			skip, err := flagValue(it)
			if err != nil {
				return err
			}

			into.Skip = skip

			continue
		}

		if it.name == keyAll {
			if into.All != nil {
				return it.errorf("duplicate option %q", it.name)
			}

			if into.All, err = fieldVariation(it); err != nil {
				return err
			}

			continue
		}

		k, ok := options.ParseKind(it.name)
		if !ok {
			return it.errorf("unknown field option %q%s", it.name, match.DidYouMean(it.name, fieldKeys))
		}

		if into.For(k) != nil {
			return it.errorf("duplicate option %q", it.name)
		}

		v, err := fieldVariation(it)
		if err != nil {
			return err
		}

		into.SetFor(k, v)
	}

	return nil
}

// fieldVariation handles get(...), a bare get and get=false. A bare kind
// requests the accessor with inherited options; false skips it.
func fieldVariation(it item) (*options.VariationOptions, error) {
	if it.hasArgs {
		return variation(it.args, false)
	}

	enabled, err := flagValue(it)
	if err != nil {
		return nil, err
	}

	if !enabled {
		return &options.VariationOptions{Skip: options.Some(true)}, nil
	}

	return &options.VariationOptions{}, nil
}

// MustParseField is ParseField for literals in tests and examples.
func MustParseField(src string) options.FieldOptions {
	var out options.FieldOptions
	if err := ParseField(src, &out); err != nil {
		panic(fmt.Sprintf("directive: %v", err))
	}

	return out
}
