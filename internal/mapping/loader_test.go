package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-generator/internal/options"
)

func TestParse(t *testing.T) {
	yaml := `
types:
  - name: Point
    package: example.com/geo
    get: true
    set: true
    defaults:
      all: {cp: true, vis: private}
      get_mut: {suffix: ""}
    bounds: ["Point: fmt.Stringer"]
    fields:
      X:
        get: {prefix: "", type: "*int"}
        set: false
      Y:
        get_mut: true
        all: {ptr_deref: deref_mut}
      cache:
        skip: true
  - name: Box
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Types, 2)

	point := f.Types[0]
	assert.Equal(t, 3, point.Line)
	assert.Equal(t, "example.com/geo.Point", point.QualifiedName())

	c, err := point.ContainerOptions()
	require.NoError(t, err)
	assert.True(t, c.Get)
	assert.False(t, c.GetMut)
	assert.True(t, c.Set)
	assert.Equal(t, options.Some(true), c.Defaults.All.Copy)
	assert.Equal(t, options.Some(options.Private), c.Defaults.All.Vis)
	assert.True(t, c.Defaults.GetMut.Suffix.IsCleared())
	require.Len(t, c.Bounds, 1)
	assert.Equal(t, "Point: fmt.Stringer", c.Bounds[0].String())

	x, err := point.Fields["X"].Options()
	require.NoError(t, err)
	require.NotNil(t, x.Get)
	assert.True(t, x.Get.Prefix.IsCleared())
	typ, ok := x.Get.Type.Get()
	require.True(t, ok)
	assert.Equal(t, "*int", typ.String())
	require.NotNil(t, x.Set)
	assert.Equal(t, options.Some(true), x.Set.Skip)

	y, err := point.Fields["Y"].Options()
	require.NoError(t, err)
	require.NotNil(t, y.GetMut)
	assert.True(t, y.GetMut.Skip.IsUnset())
	require.NotNil(t, y.All)
	assert.Equal(t, options.Some(options.PtrDerefMut), y.All.PtrDeref)

	cache, err := point.Fields["cache"].Options()
	require.NoError(t, err)
	assert.True(t, cache.Skip)

	assert.Equal(t, "Box", f.Types[1].QualifiedName())
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]struct {
		yaml    string
		wantErr error
	}{
		"bad version": {
			yaml:    "version: \"2\"\ntypes: []\n",
			wantErr: ErrInvalid,
		},
		"missing name": {
			yaml:    "types:\n  - get: true\n",
			wantErr: ErrInvalid,
		},
		"duplicate type": {
			yaml:    "types:\n  - name: A\n  - name: A\n",
			wantErr: ErrDuplicateType,
		},
		"skip in defaults": {
			yaml:    "types:\n  - name: A\n    defaults:\n      all: {skip: true}\n",
			wantErr: ErrInvalid,
		},
		"type in defaults": {
			yaml:    "types:\n  - name: A\n    defaults:\n      get: {type: int}\n",
			wantErr: ErrInvalid,
		},
		"bad ptr_deref": {
			yaml:    "types:\n  - name: A\n    fields:\n      x: {get: {ptr_deref: always}}\n",
			wantErr: ErrInvalid,
		},
		"bad prefix": {
			yaml:    "types:\n  - name: A\n    fields:\n      x: {get: {prefix: \"with space\"}}\n",
			wantErr: ErrInvalid,
		},
		"bad bound": {
			yaml:    "types:\n  - name: A\n    bounds: [\"A\"]\n",
			wantErr: ErrInvalid,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Parse([]byte("types: [1, 2"))
	assert.Error(t, err)

	_, err = Parse([]byte("types:\n  - name: A\n    fields:\n      x: {get: [1]}\n"))
	assert.Error(t, err)
}

func TestFile_Lookup(t *testing.T) {
	f := &File{Types: []TypeOptions{
		{Name: "Point"},
		{Name: "Point", Package: "example.com/geo"},
		{Name: "Box", Package: "example.com/other"},
	}}

	got, ok := f.Lookup("example.com/geo", "Point")
	require.True(t, ok)
	assert.Equal(t, "example.com/geo", got.Package)

	got, ok = f.Lookup("example.com/shapes", "Point")
	require.True(t, ok)
	assert.Empty(t, got.Package)

	_, ok = f.Lookup("example.com/geo", "Box")
	assert.False(t, ok)

	var nilFile *File
	_, ok = nilFile.Lookup("x", "y")
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accessors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("types:\n  - name: A\n    get: true\n"), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, f.Types, 1)
	assert.True(t, f.Types[0].Get)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshal_Shorthands(t *testing.T) {
	skip := true
	f := &File{Version: "1", Types: []TypeOptions{{
		Name: "A",
		Fields: map[string]*FieldOptions{
			"x": {Get: &Variation{}, Set: &Variation{Skip: &skip}, GetMut: &Variation{Prefix: Affix{Present: true}}},
		},
	}}}

	data, err := Marshal(f)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "get: true")
	assert.Contains(t, out, "set: false")
	assert.Contains(t, out, `prefix: ""`)

	back, err := Parse(data)
	require.NoError(t, err)

	x, err := back.Types[0].Fields["x"].Options()
	require.NoError(t, err)
	require.NotNil(t, x.GetMut)
	assert.True(t, x.GetMut.Prefix.IsCleared())
	assert.Equal(t, options.Some(true), x.Set.Skip)
}
