package plan

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/goexpr"
	"accessor-generator/internal/options"
)

// layerValues are the distinct values each layer sets in the precedence
// grid, so the winner is identifiable from the result.
var layerValues = [4]bool{true, false, true, false}

func TestResolve_PrecedenceMonotonicity(t *testing.T) {
	// Every combination of which of the four layers sets "cp".
	for mask := range 16 {
		t.Run(fmt.Sprintf("mask=%04b", mask), func(t *testing.T) {
			fieldKind := &options.VariationOptions{}
			fieldAll := &options.VariationOptions{}
			kindDefaults := &options.VariationDefaults{}
			allDefaults := &options.VariationDefaults{}

			if mask&1 != 0 {
				fieldKind.Copy = options.Some(layerValues[0])
			}

			if mask&2 != 0 {
				fieldAll.Copy = options.Some(layerValues[1])
			}

			if mask&4 != 0 {
				kindDefaults.Copy = options.Some(layerValues[2])
			}

			if mask&8 != 0 {
				allDefaults.Copy = options.Some(layerValues[3])
			}

			final, ok := Resolve(Layers{
				FieldKind:    fieldKind,
				FieldAll:     fieldAll,
				KindDefaults: kindDefaults,
				AllDefaults:  allDefaults,
			})
			require.True(t, ok)

			want := false
			for i := range 4 {
				if mask&(1<<i) != 0 {
					want = layerValues[i]
					break
				}
			}

			assert.Equal(t, want, final.Copy)
		})
	}
}

func TestResolve_PrecedenceWithoutFieldKind(t *testing.T) {
	// Container enables the kind, field has only catch-all options.
	for mask := range 8 {
		t.Run(fmt.Sprintf("mask=%03b", mask), func(t *testing.T) {
			fieldAll := &options.VariationOptions{}
			kindDefaults := &options.VariationDefaults{}
			allDefaults := &options.VariationDefaults{}

			if mask&1 != 0 {
				fieldAll.Vis = options.Some(options.Private)
			}

			if mask&2 != 0 {
				kindDefaults.Vis = options.Some(options.Public)
			}

			if mask&4 != 0 {
				allDefaults.Vis = options.Some(options.Private)
			}

			final, ok := Resolve(Layers{
				Enabled:      true,
				FieldAll:     fieldAll,
				KindDefaults: kindDefaults,
				AllDefaults:  allDefaults,
			})
			require.True(t, ok)

			want := options.Public
			switch {
			case mask&1 != 0:
				want = options.Private
			case mask&2 != 0:
				want = options.Public
			case mask&4 != 0:
				want = options.Private
			}

			assert.Equal(t, want, final.Vis)
		})
	}
}

func TestResolve_SkipShortCircuit(t *testing.T) {
	l := Layers{
		Enabled: true,
		FieldKind: &options.VariationOptions{
			Skip:   options.Some(true),
			Copy:   options.Some(true),
			Prefix: options.Some("with"),
		},
		FieldAll:     &options.VariationOptions{Owned: options.Some(true)},
		KindDefaults: &options.VariationDefaults{Copy: options.Some(false)},
		AllDefaults:  &options.VariationDefaults{},
		Naming:       options.Set.Naming(),
	}

	_, ok := Resolve(l)
	assert.False(t, ok)

	// Explicit skip=false keeps the accessor.
	l.FieldKind.Skip = options.Some(false)
	final, ok := Resolve(l)
	require.True(t, ok)
	assert.True(t, final.Copy)
	assert.True(t, final.Owned)
	assert.Equal(t, "with", final.Prefix)
}

func TestResolve_NotEnabled(t *testing.T) {
	_, ok := Resolve(Layers{
		FieldAll:     &options.VariationOptions{Copy: options.Some(true)},
		KindDefaults: &options.VariationDefaults{Copy: options.Some(true)},
	})
	assert.False(t, ok, "a catch-all alone does not enable a kind")

	final, ok := Resolve(Layers{FieldKind: &options.VariationOptions{}})
	require.True(t, ok, "per-kind options enable a kind")
	assert.Equal(t, options.FinalOptions{Vis: options.Public}, final)
}

func TestResolve_CatchAllSkip(t *testing.T) {
	all := &options.VariationOptions{Skip: options.Some(true)}

	_, ok := Resolve(Layers{Enabled: true, FieldAll: all})
	assert.False(t, ok)

	_, ok = Resolve(Layers{Enabled: true, FieldAll: all, FieldKind: &options.VariationOptions{}})
	assert.True(t, ok, "per-kind options override the catch-all skip")
}

func TestResolve_EnabledFromDefaults(t *testing.T) {
	final, ok := Resolve(Layers{
		Enabled:      true,
		KindDefaults: &options.VariationDefaults{Owned: options.Some(true)},
		AllDefaults:  &options.VariationDefaults{Copy: options.Some(true), Vis: options.Some(options.Private)},
		Naming:       options.GetMut.Naming(),
	})
	require.True(t, ok)
	assert.True(t, final.Owned)
	assert.True(t, final.Copy)
	assert.Equal(t, options.Private, final.Vis)
	assert.Equal(t, "mut", final.Suffix)
	assert.Empty(t, final.Prefix)
}

func TestResolve_NamingClearBeatsConvention(t *testing.T) {
	tests := []struct {
		name   string
		layers Layers
		prefix string
	}{
		{
			name:   "convention",
			layers: Layers{Enabled: true, Naming: options.Set.Naming()},
			prefix: "set",
		},
		{
			name: "cleared on container defaults",
			layers: Layers{
				Enabled:     true,
				AllDefaults: &options.VariationDefaults{Prefix: options.Cleared[string]()},
				Naming:      options.Set.Naming(),
			},
		},
		{
			name: "cleared on field kind beats container prefix",
			layers: Layers{
				FieldKind:    &options.VariationOptions{Prefix: options.Cleared[string]()},
				KindDefaults: &options.VariationDefaults{Prefix: options.Some("with")},
				Naming:       options.Set.Naming(),
			},
		},
		{
			name: "container prefix beats convention",
			layers: Layers{
				Enabled:      true,
				KindDefaults: &options.VariationDefaults{Prefix: options.Some("with")},
				Naming:       options.Set.Naming(),
			},
			prefix: "with",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			final, ok := Resolve(tt.layers)
			require.True(t, ok)
			assert.Equal(t, tt.prefix, final.Prefix)
		})
	}
}

func TestResolve_BoundsReplacedNotUnioned(t *testing.T) {
	containerBounds, err := goexpr.ParseBounds([]string{"A: fmt.Stringer", "B: io.Reader", "C: error"})
	require.NoError(t, err)

	final, ok := Resolve(Layers{
		FieldKind:   &options.VariationOptions{Bounds: nil},
		FieldAll:    &options.VariationOptions{Bounds: []goexpr.Bound{}},
		AllDefaults: &options.VariationDefaults{Bounds: containerBounds},
	})
	require.True(t, ok)
	assert.Equal(t, []string{"A: fmt.Stringer", "B: io.Reader", "C: error"}, goexpr.BoundStrings(final.Bounds))

	own, err := goexpr.ParseBounds([]string{"X: comparable"})
	require.NoError(t, err)

	final, ok = Resolve(Layers{
		FieldKind:   &options.VariationOptions{Bounds: own},
		AllDefaults: &options.VariationDefaults{Bounds: containerBounds},
	})
	require.True(t, ok)
	assert.Equal(t, []string{"X: comparable"}, goexpr.BoundStrings(final.Bounds))
}

func TestResolve_TypeComesOnlyFromField(t *testing.T) {
	final, ok := Resolve(Layers{
		FieldKind: &options.VariationOptions{},
		FieldAll:  &options.VariationOptions{Type: options.Some(goexpr.MustParse("fmt.Stringer"))},
	})
	require.True(t, ok)
	assert.Equal(t, "fmt.Stringer", final.Type.String())
}

func TestResolve_DoesNotMutateLayers(t *testing.T) {
	fieldKind := &options.VariationOptions{}
	all := &options.VariationOptions{Copy: options.Some(true)}

	_, ok := Resolve(Layers{FieldKind: fieldKind, FieldAll: all, Naming: options.Set.Naming()})
	require.True(t, ok)
	assert.True(t, fieldKind.Copy.IsUnset())
	assert.True(t, fieldKind.Prefix.IsUnset())
}

func testRecord() *analyze.Record {
	return &analyze.Record{
		ID: analyze.TypeID{PkgPath: "example.com/geo", Name: "Point"},
		Options: options.ContainerOptions{
			Get: true,
			Set: true,
			Defaults: options.ContainerDefaults{
				All: options.VariationDefaults{Copy: options.Some(true)},
			},
		},
		Fields: []analyze.Field{
			{Name: "x", Type: goexpr.MustParse("int")},
			{Name: "y", Type: goexpr.MustParse("int"), Options: options.FieldOptions{
				GetMut: &options.VariationOptions{},
				Set:    &options.VariationOptions{Skip: options.Some(true)},
			}},
			{Name: "cache", Type: goexpr.MustParse("[]byte"), Options: options.FieldOptions{Skip: true}},
		},
	}
}

func TestResolveRecord_Order(t *testing.T) {
	p := ResolveRecord(testRecord())

	require.Len(t, p.Fields, 2)
	assert.Equal(t, "x", p.Fields[0].Field.Name)
	assert.Equal(t, "y", p.Fields[1].Field.Name)

	var kinds [][]options.Kind
	for _, f := range p.Fields {
		var ks []options.Kind
		for _, a := range f.Accessors {
			ks = append(ks, a.Kind)
		}

		kinds = append(kinds, ks)
	}

	assert.Equal(t, [][]options.Kind{
		{options.Get, options.Set},
		{options.Get, options.GetMut},
	}, kinds)
	assert.Equal(t, 4, p.Count())
}

func TestResolveRecord_RoundTripOptions(t *testing.T) {
	p := ResolveRecord(testRecord())

	get := p.Fields[0].Accessors[0]
	set := p.Fields[0].Accessors[1]

	assert.True(t, get.Options.Copy)
	assert.Empty(t, get.Options.Prefix)
	assert.True(t, set.Options.Copy)
	assert.Equal(t, "set", set.Options.Prefix)
}

func TestExplain(t *testing.T) {
	rec := testRecord()
	y := &rec.Fields[1]

	ex := Explain(options.GetMut, LayersFor(options.GetMut, &rec.Options, &y.Options))
	require.False(t, ex.Omitted)
	assert.Equal(t, LayerAllDefaults, ex.Sources["cp"])
	assert.Equal(t, LayerConvention, ex.Sources["suffix"])
	assert.Equal(t, LayerBuiltin, ex.Sources["owned"])
	assert.Equal(t, "mut", ex.Value("suffix"))
	assert.Equal(t, "true", ex.Value("cp"))

	ex = Explain(options.Set, LayersFor(options.Set, &rec.Options, &y.Options))
	assert.True(t, ex.Omitted)
	assert.Equal(t, "skipped by field options", ex.Reason)

	x := &rec.Fields[0]
	ex = Explain(options.GetMut, LayersFor(options.GetMut, &rec.Options, &x.Options))
	assert.True(t, ex.Omitted)
	assert.Equal(t, "not enabled by default and no field options", ex.Reason)
}

func TestExplainRecord(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExplainRecord(&buf, testRecord()))

	out := buf.String()
	assert.Contains(t, out, "example.com/geo.Point")
	assert.Contains(t, out, "cache: skipped")
	assert.Contains(t, out, "cp=true [defaults:all]")
	assert.Contains(t, out, "prefix=set [convention]")
	assert.Contains(t, out, "omitted (skipped by field options)")
}

func TestLayer_String(t *testing.T) {
	assert.Equal(t, "field:all", LayerFieldAll.String())
	assert.Equal(t, "unknown", Layer(42).String())
}
