package goexpr

import (
	"fmt"
	"strings"
)

// Bound is a single constraint predicate "Subject: Constraint", e.g.
// "T: fmt.Stringer". It is rendered as a compile-time assertion that
// Subject implements Constraint.
type Bound struct {
	Subject    Expr
	Constraint Expr
}

// ParseBound parses "Subject: Constraint".
func ParseBound(src string) (Bound, error) {
	subject, constraint, ok := strings.Cut(src, ":")
	if !ok {
		return Bound{}, fmt.Errorf("invalid bound %q: expected \"Subject: Constraint\"", src)
	}

	s, err := Parse(subject)
	if err != nil {
		return Bound{}, fmt.Errorf("invalid bound %q subject: %w", src, err)
	}

	c, err := Parse(constraint)
	if err != nil {
		return Bound{}, fmt.Errorf("invalid bound %q constraint: %w", src, err)
	}

	return Bound{Subject: s, Constraint: c}, nil
}

// ParseBounds parses every element with ParseBound.
func ParseBounds(srcs []string) ([]Bound, error) {
	if len(srcs) == 0 {
		return nil, nil
	}

	out := make([]Bound, 0, len(srcs))
	for _, src := range srcs {
		b, err := ParseBound(src)
		if err != nil {
			return nil, err
		}

		out = append(out, b)
	}

	return out, nil
}

// String returns "Subject: Constraint".
func (b Bound) String() string {
	return b.Subject.String() + ": " + b.Constraint.String()
}

// BoundStrings returns the string form of every bound.
func BoundStrings(bounds []Bound) []string {
	out := make([]string, len(bounds))
	for i, b := range bounds {
		out[i] = b.String()
	}

	return out
}
