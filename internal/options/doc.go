// Package options defines the option records that drive accessor
// generation and the fill-if-unset merge rules between them.
//
// Four layers exist for every (field, accessor kind) pair, highest
// priority first:
//  1. field options for the kind (VariationOptions)
//  2. field catch-all options, "all" (VariationOptions)
//  3. container defaults for the kind (VariationDefaults)
//  4. container catch-all defaults (VariationDefaults)
//
// Every slot is a tri-state Slot: unset, explicitly cleared or set. Only
// unset slots are filled by a lower layer. Bound sets are replaced
// wholesale: an empty set takes the next layer's set as a whole.
package options
