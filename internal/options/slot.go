package options

import "fmt"

type slotState uint8

const (
	slotUnset slotState = iota
	slotCleared
	slotSet
)

// Slot is a single option value with three states: unset (never mentioned),
// cleared (explicitly emptied) and set. The zero value is unset.
type Slot[T any] struct {
	state slotState
	value T
}

// Some returns a set slot holding v.
func Some[T any](v T) Slot[T] {
	return Slot[T]{state: slotSet, value: v}
}

// Cleared returns an explicitly cleared slot.
func Cleared[T any]() Slot[T] {
	return Slot[T]{state: slotCleared}
}

// IsUnset reports whether the slot was never given a value.
func (s Slot[T]) IsUnset() bool {
	return s.state == slotUnset
}

// IsCleared reports whether the slot was explicitly cleared.
func (s Slot[T]) IsCleared() bool {
	return s.state == slotCleared
}

// IsSet reports whether the slot holds a value.
func (s Slot[T]) IsSet() bool {
	return s.state == slotSet
}

// Get returns the value and whether the slot is set.
func (s Slot[T]) Get() (T, bool) {
	return s.value, s.state == slotSet
}

// Or returns the value if set, def otherwise.
func (s Slot[T]) Or(def T) T {
	if s.state == slotSet {
		return s.value
	}

	return def
}

// Fill copies from into s when s is unset. A cleared or set slot is never
// overwritten, and a cleared source propagates as cleared.
func (s *Slot[T]) Fill(from Slot[T]) {
	if s.state == slotUnset {
		*s = from
	}
}

// String renders the slot for diagnostics: "-" when unset, "''" when
// cleared, the value otherwise.
func (s Slot[T]) String() string {
	switch s.state {
	case slotCleared:
		return "''"
	case slotSet:
		return fmt.Sprint(s.value)
	default:
		return "-"
	}
}
