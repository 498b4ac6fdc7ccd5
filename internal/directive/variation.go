package directive

import (
	"go/token"
	"strconv"

	"accessor-generator/internal/goexpr"
	"accessor-generator/internal/match"
	"accessor-generator/internal/options"
)

// Option keys accepted inside a variation list.
const (
	keyOwned    = "owned"
	keyConstFn  = "const_fn"
	keySkip     = "skip"
	keyCopy     = "cp"
	keyPtrDeref = "ptr_deref"
	keyType     = "type"
	keyPrefix   = "prefix"
	keySuffix   = "suffix"
	keyVis      = "vis"
	keyBounds   = "bounds"
)

var variationKeys = []string{
	keyOwned, keyConstFn, keySkip, keyCopy, keyPtrDeref, keyType, keyPrefix, keySuffix, keyVis, keyBounds,
}

// variation parses the arguments of all(...), get(...), get_mut(...) or
// set(...). Defaults lists reject skip and type.
func variation(items []item, defaults bool) (*options.VariationOptions, error) {
	out := &options.VariationOptions{}

	for _, it := range items {
		if it.name == "" {
			return nil, it.errorf("unexpected quoted value %q", it.value)
		}

		var err error

		switch it.name {
		case keyOwned:
			err = setFlag(&out.Owned, it)
		case keyConstFn:
			err = setFlag(&out.ConstFn, it)
		case keyCopy:
			err = setFlag(&out.Copy, it)
		case keySkip:
			if defaults {
				return nil, it.errorf("%s cannot be used in defaults", keySkip)
			}

			err = setFlag(&out.Skip, it)
		case keyType:
			if defaults {
				return nil, it.errorf("%s cannot be used in defaults", keyType)
			}

			err = setType(&out.Type, it)
		case keyPtrDeref:
			err = setPtrDeref(&out.PtrDeref, it)
		case keyPrefix:
			err = setAffix(&out.Prefix, it)
		case keySuffix:
			err = setAffix(&out.Suffix, it)
		case keyVis:
			err = setVis(&out.Vis, it)
		case keyBounds:
			if len(out.Bounds) > 0 {
				return nil, it.errorf("duplicate option %q", it.name)
			}

			out.Bounds, err = parseBounds(it)
		default:
			return nil, it.errorf("unknown option %q%s", it.name, match.DidYouMean(it.name, variationKeys))
		}

		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func checkUnset[T any](slot options.Slot[T], it item) error {
	if !slot.IsUnset() {
		return it.errorf("duplicate option %q", it.name)
	}

	return nil
}

// setFlag accepts a bare key (true) or key=true|false.
func setFlag(slot *options.Slot[bool], it item) error {
	if err := checkUnset(*slot, it); err != nil {
		return err
	}

	v, err := flagValue(it)
	if err != nil {
		return err
	}

	*slot = options.Some(v)

	return nil
}

func flagValue(it item) (bool, error) {
	if it.hasArgs {
		return false, it.errorf("%q takes no list", it.name)
	}

	if !it.hasValue {
		return true, nil
	}

	v, err := strconv.ParseBool(it.value)
	if err != nil {
		return false, it.errorf("%q expects true or false, got %q", it.name, it.value)
	}

	return v, nil
}

func setPtrDeref(slot *options.Slot[options.PtrDeref], it item) error {
	if err := checkUnset(*slot, it); err != nil {
		return err
	}

	if it.hasArgs {
		return it.errorf("%q takes no list", it.name)
	}

	p, ok := options.ParsePtrDeref(it.value)
	if !ok {
		return it.errorf("%q expects auto, deref or deref_mut, got %q", it.name, it.value)
	}

	*slot = options.Some(p)

	return nil
}

func setType(slot *options.Slot[goexpr.Expr], it item) error {
	if err := checkUnset(*slot, it); err != nil {
		return err
	}

	if !it.hasValue {
		return it.errorf("%q needs a value", it.name)
	}

	e, err := goexpr.Parse(it.value)
	if err != nil {
		return it.errorf("%q: %v", it.name, err)
	}

	*slot = options.Some(e)

	return nil
}

// setAffix parses a prefix or suffix. An empty quoted value clears it.
func setAffix(slot *options.Slot[string], it item) error {
	if err := checkUnset(*slot, it); err != nil {
		return err
	}

	if !it.hasValue {
		return it.errorf("%q needs a value", it.name)
	}

	if it.value == "" {
		*slot = options.Cleared[string]()
		return nil
	}

	if !token.IsIdentifier(it.value) {
		return it.errorf("%q must be an identifier, got %q", it.name, it.value)
	}

	*slot = options.Some(it.value)

	return nil
}

func setVis(slot *options.Slot[options.Visibility], it item) error {
	if err := checkUnset(*slot, it); err != nil {
		return err
	}

	v, ok := options.ParseVisibility(it.value)
	if !it.hasValue || !ok {
		return it.errorf("%q expects pub or private, got %q", it.name, it.value)
	}

	*slot = options.Some(v)

	return nil
}

// parseBounds parses bounds('S: C', ...). Unquoted bounds must not contain
// spaces, as in bounds(T:fmt.Stringer).
func parseBounds(it item) ([]goexpr.Bound, error) {
	if !it.hasArgs || len(it.args) == 0 {
		return nil, it.errorf("%q needs a list of bounds", it.name)
	}

	out := make([]goexpr.Bound, 0, len(it.args))

	for _, arg := range it.args {
		if (arg.hasValue && arg.name != "") || arg.hasArgs {
			return nil, arg.errorf("malformed bound")
		}

		b, err := goexpr.ParseBound(arg.text())
		if err != nil {
			return nil, arg.errorf("%v", err)
		}

		out = append(out, b)
	}

	return out, nil
}
