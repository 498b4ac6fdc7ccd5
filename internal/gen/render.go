package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/common"
	"accessor-generator/internal/goexpr"
	"accessor-generator/internal/synth"
)

// NewFile creates the jennifer file for a package.
func NewFile(pkgPath, pkgName string) *jen.File {
	f := jen.NewFilePathName(pkgPath, pkgName)
	f.HeaderComment(HeaderComment)

	return f
}

// RenderRecord appends the container bound assertions and the methods of
// one record to f.
func RenderRecord(f *jen.File, rm *RecordMethods) {
	r := newRecordRenderer(rm.Record)

	// Aliased imports keep the name used in source.
	for name, p := range rm.Record.Imports {
		if name != common.ImportName(p) {
			f.ImportAlias(p, name)
		}
	}

	if len(rm.Record.Options.Bounds) > 0 {
		fn := f.Func().Id("_")
		if rm.Record.IsGeneric() {
			fn.Types(r.typeParams()...)
		}

		fn.Params().Block(r.bounds(rm.Record.Options.Bounds)...)
		f.Line()
	}

	for i := range rm.Methods {
		r.method(f, &rm.Methods[i])
		f.Line()
	}
}

type recordRenderer struct {
	rec   *analyze.Record
	types typeCoder
	recv  string
}

func newRecordRenderer(rec *analyze.Record) *recordRenderer {
	return &recordRenderer{
		rec:   rec,
		types: typeCoder{imports: rec.Imports},
		recv:  ReceiverName(rec.Name()),
	}
}

// ReceiverName is the lowercased first letter of the type name.
func ReceiverName(typeName string) string {
	first, _ := utf8.DecodeRuneInString(typeName)
	if first == utf8.RuneError {
		return "r"
	}

	name := string(unicode.ToLower(first))
	if name == "_" {
		return "r"
	}

	return name
}

// typeParams renders "[T fmt.Stringer, K comparable]".
func (r *recordRenderer) typeParams() []jen.Code {
	out := make([]jen.Code, 0, len(r.rec.TypeParams))
	for _, tp := range r.rec.TypeParams {
		out = append(out, jen.Id(tp.Name).Add(r.types.code(tp.Constraint)))
	}

	return out
}

// selfType renders the record type, instantiated with its own parameters.
func (r *recordRenderer) selfType() *jen.Statement {
	s := jen.Id(r.rec.Name())
	if !r.rec.IsGeneric() {
		return s
	}

	args := make([]jen.Code, 0, len(r.rec.TypeParams))
	for _, tp := range r.rec.TypeParams {
		args = append(args, jen.Id(tp.Name))
	}

	return s.Types(args...)
}

// bounds renders "var _ C = *new(S)" for each bound.
func (r *recordRenderer) bounds(bounds []goexpr.Bound) []jen.Code {
	out := make([]jen.Code, 0, len(bounds))
	for _, b := range bounds {
		out = append(out, jen.Var().Id("_").Add(r.types.code(b.Constraint)).Op("=").
			Op("*").New(r.types.code(b.Subject)))
	}

	return out
}

func (r *recordRenderer) method(f *jen.File, m *synth.MethodFragment) {
	for _, line := range m.Docs {
		f.Comment(docLine(line))
	}

	recv := jen.Id(r.recv)
	if m.Receiver.IsPointer() {
		recv.Op("*")
	}

	recv.Add(r.selfType())

	params := make([]jen.Code, 0, len(m.Params))
	for _, p := range m.Params {
		params = append(params, jen.Id(p.Name).Add(r.types.code(p.Type)))
	}

	body := r.bounds(m.Bounds)
	body = append(body, r.body(m)...)

	f.Func().Params(recv).Id(m.Ident).Params(params...).Add(r.result(m)).Block(body...)
}

func (r *recordRenderer) result(m *synth.MethodFragment) *jen.Statement {
	var typ *jen.Statement

	switch {
	case m.Return.Self:
		typ = r.selfType()
	case m.Return.Type.IsZero():
		return jen.Null()
	default:
		typ = jen.Add(r.types.code(m.Return.Type))
	}

	if m.Return.Borrow != synth.BorrowNone {
		return jen.Op("*").Add(typ)
	}

	return typ
}

// body renders the field access and the return.
//
// A dereferenced pointer field already is a reference to its pointee, so
// a borrow returns the field itself and a by-value read dereferences it.
func (r *recordRenderer) body(m *synth.MethodFragment) []jen.Code {
	field := jen.Id(r.recv).Dot(m.Body.Field)
	deref := m.Body.Deref != synth.BorrowNone

	if m.Body.Assign != "" {
		place := field
		if deref {
			place = jen.Op("*").Add(field)
		}

		return []jen.Code{
			place.Op("=").Id(m.Body.Assign),
			jen.Return(r.selfValue(m)),
		}
	}

	var value *jen.Statement

	switch {
	case deref && m.Body.Borrow != synth.BorrowNone:
		value = field
	case deref:
		value = jen.Op("*").Add(field)
	case m.Body.Borrow != synth.BorrowNone:
		value = jen.Op("&").Add(field)
	default:
		value = field
	}

	return []jen.Code{jen.Return(value)}
}

// selfValue is the receiver as returned by Set.
func (r *recordRenderer) selfValue(m *synth.MethodFragment) *jen.Statement {
	byValue := m.Return.Borrow == synth.BorrowNone
	if byValue && m.Receiver.IsPointer() {
		return jen.Op("*").Id(r.recv)
	}

	return jen.Id(r.recv)
}

// docLine trims trailing blanks; jennifer adds the comment marker.
func docLine(line string) string {
	return strings.TrimRight(line, " \t")
}
