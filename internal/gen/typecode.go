package gen

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/dave/jennifer/jen"

	"accessor-generator/internal/goexpr"
)

// typeCoder converts type expressions written in a source file into
// jennifer code, qualifying package selectors with the file's imports so
// the generated file gets its own import block.
type typeCoder struct {
	imports map[string]string // Import name -> path
}

// code renders e.
func (c typeCoder) code(e goexpr.Expr) jen.Code {
	if e.IsZero() {
		return jen.Null()
	}

	return c.node(e.Node())
}

func (c typeCoder) node(n ast.Expr) *jen.Statement {
	switch t := n.(type) {
	case *ast.Ident:
		return jen.Id(t.Name)

	case *ast.SelectorExpr:
		if x, ok := t.X.(*ast.Ident); ok {
			if p, ok := c.imports[x.Name]; ok {
				return jen.Qual(p, t.Sel.Name)
			}
		}

		return c.node(t.X).Dot(t.Sel.Name)

	case *ast.StarExpr:
		return jen.Op("*").Add(c.node(t.X))

	case *ast.ParenExpr:
		return jen.Parens(c.node(t.X))

	case *ast.ArrayType:
		if t.Len == nil {
			return jen.Index().Add(c.node(t.Elt))
		}

		return jen.Index(c.node(t.Len)).Add(c.node(t.Elt))

	case *ast.Ellipsis:
		return jen.Op("...").Add(c.node(t.Elt))

	case *ast.MapType:
		return jen.Map(c.node(t.Key)).Add(c.node(t.Value))

	case *ast.ChanType:
		switch t.Dir {
		case ast.SEND:
			return jen.Chan().Op("<-").Add(c.node(t.Value))
		case ast.RECV:
			return jen.Op("<-").Chan().Add(c.node(t.Value))
		default:
			return jen.Chan().Add(c.node(t.Value))
		}

	case *ast.FuncType:
		return jen.Func().Params(c.fields(t.Params)...).Params(c.fields(t.Results)...)

	case *ast.IndexExpr:
		return c.node(t.X).Types(c.node(t.Index))

	case *ast.IndexListExpr:
		args := make([]jen.Code, 0, len(t.Indices))
		for _, idx := range t.Indices {
			args = append(args, c.node(idx))
		}

		return c.node(t.X).Types(args...)

	case *ast.BasicLit:
		return jen.Op(t.Value)

	case *ast.UnaryExpr:
		if t.Op == token.TILDE {
			return jen.Op("~").Add(c.node(t.X))
		}

	case *ast.BinaryExpr:
		if t.Op == token.OR {
			return c.node(t.X).Op("|").Add(c.node(t.Y))
		}

	case *ast.InterfaceType:
		if t.Methods == nil || len(t.Methods.List) == 0 {
			return jen.Interface()
		}

	case *ast.StructType:
		if t.Fields == nil || len(t.Fields.List) == 0 {
			return jen.Struct()
		}
	}

	// Literal interface and struct types keep their source text; selectors
	// inside them are not qualified.
	return jen.Op(types.ExprString(n))
}

// fields renders a parameter or result list.
func (c typeCoder) fields(fl *ast.FieldList) []jen.Code {
	if fl == nil {
		return nil
	}

	var out []jen.Code

	for _, f := range fl.List {
		typ := c.node(f.Type)
		if len(f.Names) == 0 {
			out = append(out, typ)
			continue
		}

		for _, n := range f.Names {
			out = append(out, jen.Id(n.Name).Add(c.node(f.Type)))
		}
	}

	return out
}
