package gen

import (
	"fmt"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/options"
	"accessor-generator/internal/plan"
	"accessor-generator/internal/synth"
)

// RecordMethods is the synthesized accessor set of one record.
type RecordMethods struct {
	Record  *analyze.Record
	Methods []synth.MethodFragment
}

// Assembler turns records into method fragments.
type Assembler struct {
	Synth synth.Synthesizer
}

// NewAssembler returns an assembler whose synthesizer may dereference
// pointer fields when pointerDeref is set.
func NewAssembler(pointerDeref bool) *Assembler {
	return &Assembler{Synth: synth.Synthesizer{PointerDeref: pointerDeref}}
}

// Assemble resolves and synthesizes every accessor of rec, in field order
// then Get, GetMut, Set order. Options Go cannot express and methods whose
// identifier is already taken are reported in diags.
func (a *Assembler) Assemble(rec *analyze.Record, diags *diagnostic.Diagnostics) *RecordMethods {
	out := &RecordMethods{Record: rec}
	p := plan.ResolveRecord(rec)

	taken := make(map[string]string, len(rec.Fields))
	for _, f := range rec.Fields {
		taken[f.Name] = "field " + f.Name
	}

	for _, fp := range p.Fields {
		field := synth.Field{Name: fp.Field.Name, Type: fp.Field.Type, Docs: fp.Field.Docs}

		for _, acc := range fp.Accessors {
			a.check(rec, fp.Field, acc, diags)

			m := a.Synth.Synthesize(acc.Kind, field, acc.Options)

			if owner, ok := taken[m.Ident]; ok {
				diags.AddError(diagnostic.CodeNameConflict,
					fmt.Sprintf("%s accessor %s collides with %s", acc.Kind, m.Ident, owner),
					fp.Field.Pos, rec.Name(), fp.Field.Name)

				continue
			}

			taken[m.Ident] = fmt.Sprintf("%s accessor of %s", acc.Kind, fp.Field.Name)
			out.Methods = append(out.Methods, m)
		}
	}

	if len(out.Methods) == 0 {
		diags.AddInfo(diagnostic.CodeNoAccessorsGenerated, "no accessors generated", rec.Pos, rec.Name(), "")
	}

	return out
}

// check reports options that have no effect in Go.
func (a *Assembler) check(rec *analyze.Record, f *analyze.Field, acc plan.Accessor, diags *diagnostic.Diagnostics) {
	if acc.Options.ConstFn {
		diags.AddWarning(diagnostic.CodeConstFn,
			fmt.Sprintf("const_fn on %s has no Go equivalent and is ignored", acc.Kind),
			f.Pos, rec.Name(), f.Name)
	}

	if acc.Options.PtrDeref == options.PtrDerefNone {
		return
	}

	switch {
	case !a.Synth.PointerDeref:
		diags.AddWarning(diagnostic.CodePtrDerefDisabled,
			fmt.Sprintf("ptr_deref on %s ignored: pointer dereferencing is disabled", acc.Kind),
			f.Pos, rec.Name(), f.Name)
	case !f.IsPointer():
		diags.AddWarning(diagnostic.CodePtrDerefNonPointer,
			fmt.Sprintf("ptr_deref on %s applied to non-pointer type %s", acc.Kind, f.Type),
			f.Pos, rec.Name(), f.Name)
	}
}
