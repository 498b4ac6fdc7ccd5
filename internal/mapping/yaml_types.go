package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- TypeOptions YAML methods ---

// UnmarshalYAML records the line of the entry for error messages.
func (t *TypeOptions) UnmarshalYAML(node *yaml.Node) error {
	type plain TypeOptions

	if err := node.Decode((*plain)(t)); err != nil {
		return err
	}

	t.Line = node.Line

	return nil
}

// --- Variation YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Variation.
// Accepts either a boolean shorthand or a mapping of options:
//   - true: the accessor is wanted, options are inherited
//   - false: the accessor is skipped
//   - {cp: true, prefix: with}
func (v *Variation) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var enabled bool

		if err := node.Decode(&enabled); err != nil {
			return fmt.Errorf("line %d: expected boolean or mapping: %w", node.Line, err)
		}

		*v = Variation{}
		if !enabled {
			skip := true
			v.Skip = &skip
		}

		return nil

	case yaml.MappingNode:
		type plain Variation

		return node.Decode((*plain)(v))

	default:
		return fmt.Errorf("line %d: expected boolean or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes the boolean shorthand back when it applies.
func (v Variation) MarshalYAML() (any, error) {
	if v.isEmpty() {
		return true, nil
	}

	if v.isSkipOnly() {
		return false, nil
	}

	type plain Variation

	return plain(v), nil
}

func (v Variation) isEmpty() bool {
	return v.Owned == nil && v.ConstFn == nil && v.Skip == nil && v.Copy == nil &&
		v.PtrDeref == nil && v.Type == "" && !v.Prefix.Present && !v.Suffix.Present &&
		v.Vis == "" && len(v.Bounds) == 0
}

func (v Variation) isSkipOnly() bool {
	if v.Skip == nil || !*v.Skip {
		return false
	}

	rest := v
	rest.Skip = nil

	return rest.isEmpty()
}

// --- Affix YAML methods ---

// UnmarshalYAML marks the affix present. An empty string clears it.
func (a *Affix) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected string, got %v", node.Line, node.Kind)
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	*a = Affix{Present: true, Value: s}

	return nil
}

// MarshalYAML implements custom YAML marshaling for Affix.
func (a Affix) MarshalYAML() (any, error) {
	return a.Value, nil
}
