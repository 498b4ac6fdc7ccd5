package directive

import (
	"fmt"

	"accessor-generator/internal/match"
	"accessor-generator/internal/options"
)

const (
	keyDefaults = "defaults"
	keyAll      = "all"
)

// withKinds returns keys followed by the spelling of every kind.
func withKinds(keys ...string) []string {
	for _, k := range options.Kinds {
		keys = append(keys, k.String())
	}

	return keys
}

var (
	containerKeys = withKinds(keyDefaults, keyBounds)
	fieldKeys     = withKinds(keySkip, keyAll)
	defaultsKeys  = withKinds(keyAll)
)

// ParseContainer applies container options to into. It may be called once
// per directive line; repeating an option across lines is an error.
func ParseContainer(src string, into *options.ContainerOptions) error {
	items, err := parseList(src)
	if err != nil {
		return err
	}

	for _, it := range items {
		if it.name == "" {
			return it.errorf("unexpected quoted value %q", it.value)
		}

		if k, ok := options.ParseKind(it.name); ok {
			enabled, err := flagValue(it)
			if err != nil {
				return err
			}

			into.SetEnabled(k, enabled)

			continue
		}

		switch it.name {
		case keyDefaults:
			if err := parseDefaults(it, &into.Defaults); err != nil {
				return err
			}
		case keyBounds:
			if len(into.Bounds) > 0 {
				return it.errorf("duplicate option %q", it.name)
			}

			bounds, err := parseBounds(it)
			if err != nil {
				return err
			}

			into.Bounds = bounds
		default:
			return it.errorf("unknown container option %q%s", it.name, match.DidYouMean(it.name, containerKeys))
		}
	}

	return nil
}

func parseDefaults(it item, into *options.ContainerDefaults) error {
	if !it.hasArgs {
		return it.errorf("%q needs a list", it.name)
	}

	for _, sub := range it.args {
		dst, err := defaultsTarget(sub, into)
		if err != nil {
			return err
		}

		if !sub.hasArgs {
			return sub.errorf("%q needs a list", sub.name)
		}

		if !isZeroDefaults(dst) {
			return sub.errorf("duplicate defaults %q", sub.name)
		}

		v, err := variation(sub.args, true)
		if err != nil {
			return err
		}

		*dst = v.Defaults()
	}

	return nil
}

func defaultsTarget(it item, d *options.ContainerDefaults) (*options.VariationDefaults, error) {
	if it.name == keyAll {
		return &d.All, nil
	}

	if k, ok := options.ParseKind(it.name); ok {
		return d.For(k), nil
	}

	return nil, it.errorf("unknown defaults group %q%s", it.name, match.DidYouMean(it.name, defaultsKeys))
}

func isZeroDefaults(d *options.VariationDefaults) bool {
	return d.Owned.IsUnset() && d.ConstFn.IsUnset() && d.Copy.IsUnset() &&
		d.PtrDeref.IsUnset() && d.Prefix.IsUnset() && d.Suffix.IsUnset() &&
		d.Vis.IsUnset() && len(d.Bounds) == 0
}

// MustParseContainer is ParseContainer for literals in tests and examples.
func MustParseContainer(src string) options.ContainerOptions {
	var out options.ContainerOptions
	if err := ParseContainer(src, &out); err != nil {
		panic(fmt.Sprintf("directive: %v", err))
	}

	return out
}
