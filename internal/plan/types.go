package plan

import (
	"accessor-generator/internal/analyze"
	"accessor-generator/internal/common"
	"accessor-generator/internal/options"
)

// RecordPlan is the resolved accessor set of one record.
type RecordPlan struct {
	// Record is the annotated struct.
	Record *analyze.Record
	// Fields lists fields with at least one accessor, in declaration order.
	Fields []FieldPlan
}

// FieldPlan is the resolved accessor set of one field.
type FieldPlan struct {
	// Field is the struct field.
	Field *analyze.Field
	// Accessors are ordered Get, GetMut, Set; omitted kinds are absent.
	Accessors []Accessor
}

// Accessor is one accessor to synthesize.
type Accessor struct {
	Kind    options.Kind
	Options options.FinalOptions
}

// Layer identifies the option layer a resolved value came from.
type Layer int

const (
	// LayerFieldKind - field options for the accessor kind (highest priority).
	LayerFieldKind Layer = iota
	// LayerFieldAll - field catch-all options.
	LayerFieldAll
	// LayerKindDefaults - container defaults for the accessor kind.
	LayerKindDefaults
	// LayerAllDefaults - container catch-all defaults.
	LayerAllDefaults
	// LayerConvention - built-in naming convention of the kind.
	LayerConvention
	// LayerBuiltin - built-in fallback (false, public, none).
	LayerBuiltin
)

// String returns a human-readable layer name.
func (l Layer) String() string {
	switch l {
	case LayerFieldKind:
		return "field"
	case LayerFieldAll:
		return "field:all"
	case LayerKindDefaults:
		return "defaults"
	case LayerAllDefaults:
		return "defaults:all"
	case LayerConvention:
		return "convention"
	case LayerBuiltin:
		return "builtin"
	default:
		return common.UnknownStr
	}
}
