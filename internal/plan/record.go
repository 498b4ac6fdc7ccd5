package plan

import (
	"accessor-generator/internal/analyze"
	"accessor-generator/internal/options"
)

// ResolveRecord resolves every accessor of a record. Fields keep their
// declaration order and accessors the fixed Get, GetMut, Set order.
func ResolveRecord(rec *analyze.Record) *RecordPlan {
	p := &RecordPlan{Record: rec}

	for i := range rec.Fields {
		field := &rec.Fields[i]
		if field.Options.Skip {
			continue
		}

		fp := FieldPlan{Field: field}

		for _, k := range options.Kinds {
			final, ok := Resolve(LayersFor(k, &rec.Options, &field.Options))
			if !ok {
				continue
			}

			fp.Accessors = append(fp.Accessors, Accessor{Kind: k, Options: final})
		}

		if len(fp.Accessors) > 0 {
			p.Fields = append(p.Fields, fp)
		}
	}

	return p
}

// Count returns the number of accessors in the plan.
func (p *RecordPlan) Count() int {
	n := 0
	for _, f := range p.Fields {
		n += len(f.Accessors)
	}

	return n
}
