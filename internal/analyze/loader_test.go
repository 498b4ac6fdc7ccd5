package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/mapping"
	"accessor-generator/internal/options"
)

func load(t *testing.T, opts *mapping.File, patterns ...string) *Result {
	t.Helper()

	a := NewAnalyzer(Config{Dir: "testdata/shapes", Options: opts})
	res, err := a.LoadPackages(context.Background(), patterns...)
	require.NoError(t, err)

	return res
}

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	res := load(t, nil, ".")

	require.Len(t, res.Packages, 1)
	pkg := res.Packages[0]
	assert.Equal(t, "example.com/shapes", pkg.Path)
	assert.Equal(t, "shapes", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)

	require.Len(t, pkg.Records, 2)
	assert.Equal(t, "Point", pkg.Records[0].Name())
	assert.Equal(t, "Box", pkg.Records[1].Name())
	assert.Len(t, res.Records(), 2)

	assert.True(t, res.Diagnostics.IsValid())
	assert.ElementsMatch(t,
		[]string{diagnostic.CodeEmbeddedSkipped, diagnostic.CodeNotStruct},
		codes(res.Diagnostics.Infos))
}

func TestAnalyzer_PointRecord(t *testing.T) {
	res := load(t, nil, ".")
	point := res.Packages[0].Records[0]

	assert.Equal(t, TypeID{PkgPath: "example.com/shapes", Name: "Point"}, point.ID)
	assert.Equal(t, "shapes", point.PkgName)
	assert.Equal(t, 12, point.Pos.Line)
	assert.False(t, point.IsGeneric())

	assert.True(t, point.Options.Get)
	assert.False(t, point.Options.GetMut)
	assert.True(t, point.Options.Set)
	assert.Equal(t, options.Some(true), point.Options.Defaults.All.Copy)

	names := make([]string, 0, len(point.Fields))
	for _, f := range point.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"X", "Y", "Label", "cache"}, names)

	x := point.Fields[0]
	assert.True(t, x.Exported)
	assert.Equal(t, "int", x.Type.String())
	assert.Equal(t, []string{"X coordinate."}, x.Docs)
	require.NotNil(t, x.Options.Set)
	assert.Equal(t, options.Some("with"), x.Options.Set.Prefix)
	assert.Equal(t, 0, x.Index)

	y := point.Fields[1]
	assert.Equal(t, 1, y.Index)
	require.NotNil(t, y.Options.Set)

	label := point.Fields[2]
	assert.Equal(t, []string{"Label is shown in legends."}, label.Docs)
	require.NotNil(t, label.Options.GetMut)
	assert.Nil(t, label.Options.Get)

	cache := point.Fields[3]
	assert.False(t, cache.Exported)
	assert.True(t, cache.Options.Skip)
	assert.Equal(t, "map[string]int", cache.Type.String())
}

func TestAnalyzer_GenericRecord(t *testing.T) {
	res := load(t, nil, ".")
	box := res.Packages[0].Records[1]

	require.True(t, box.IsGeneric())
	require.Len(t, box.TypeParams, 2)
	assert.Equal(t, "T", box.TypeParams[0].Name)
	assert.Equal(t, "fmt.Stringer", box.TypeParams[0].Constraint.String())
	assert.Equal(t, "K", box.TypeParams[1].Name)
	assert.Equal(t, "comparable", box.TypeParams[1].Constraint.String())

	assert.Equal(t, map[string]string{"fmt": "fmt", "big": "math/big"}, box.Imports)

	require.Len(t, box.Fields, 3)
	assert.True(t, box.Fields[0].IsPointer())
	require.NotNil(t, box.Fields[0].Options.All)
	assert.Equal(t, options.Some(options.PtrDerefAuto), box.Fields[0].Options.All.PtrDeref)
	assert.False(t, box.Fields[1].IsPointer())
	assert.Equal(t, "*big.Int", box.Fields[2].Type.String())
}

func TestAnalyzer_OptionsFile(t *testing.T) {
	f, err := mapping.Parse([]byte(`
types:
  - name: Counter
    get: true
    fields:
      hits: {set: true}
      nme: {skip: true}
  - name: Nope
    package: example.com/shapes
`))
	require.NoError(t, err)

	res := load(t, f, ".")
	require.Len(t, res.Packages[0].Records, 3)

	counter := res.Packages[0].Records[2]
	assert.Equal(t, "Counter", counter.Name())
	assert.True(t, counter.Options.Get)
	require.Len(t, counter.Fields, 2)
	require.NotNil(t, counter.Fields[0].Options.Set)
	assert.True(t, counter.Fields[1].Options.IsZero())

	assert.ElementsMatch(t,
		[]string{diagnostic.CodeUnknownField, diagnostic.CodeUnknownType},
		codes(res.Diagnostics.Errors))

	for _, d := range res.Diagnostics.Errors {
		if d.Code == diagnostic.CodeUnknownField {
			assert.Equal(t, "nme", d.Field)
			assert.Contains(t, d.Message, `(did you mean "name"?)`)
		}
	}
}

func TestAnalyzer_DuplicateType(t *testing.T) {
	f, err := mapping.Parse([]byte("types:\n  - name: Point\n    get: true\n"))
	require.NoError(t, err)

	res := load(t, f, ".")
	require.Len(t, res.Packages[0].Records, 1)
	assert.Equal(t, []string{diagnostic.CodeDuplicateType}, codes(res.Diagnostics.Errors))
}

func TestAnalyzer_SyntaxErrors(t *testing.T) {
	res := load(t, nil, "./broken")

	require.Len(t, res.Diagnostics.Errors, 2)

	for _, d := range res.Diagnostics.Errors {
		assert.Equal(t, diagnostic.CodeSyntax, d.Code)
		assert.Equal(t, "Bad", d.Type)
		assert.True(t, d.Pos.IsValid())
	}

	container := res.Diagnostics.Errors[0]
	assert.Equal(t, 3, container.Pos.Line)
	assert.Equal(t, 21, container.Pos.Column)
	assert.Contains(t, container.Message, `unknown container option "bogus"`)

	assert.Equal(t, "X", res.Diagnostics.Errors[1].Field)
}

func TestAnalyzer_LoadError(t *testing.T) {
	a := NewAnalyzer(Config{Dir: "testdata/shapes"})
	_, err := a.LoadPackages(context.Background(), "./does/not/exist")
	assert.Error(t, err)
}
