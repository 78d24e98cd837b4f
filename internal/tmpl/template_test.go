package tmpl_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scalar-collections/internal/tmpl"
)

type kind struct {
	typeName, friendly string
}

var (
	byteKind = kind{"Byte", "byte"}
	intKind  = kind{"Int", "int"}
)

var fillers = map[string]tmpl.Filler[kind]{
	"type":          func(k kind) string { return k.typeName },
	"friendly_name": func(k kind) string { return k.friendly },
	"loop":          func(kind) string { return "#type#" },
}

func TestParseName(t *testing.T) {
	tests := []struct {
		filename string
		params   int
		name     string
		wantErr  bool
	}{
		{filename: "1.#type#List.template", params: 1, name: "#type#List"},
		{filename: "2.#type.0##type.1#Map.template", params: 2, name: "#type.0##type.1#Map"},
		{filename: "0.constants.template", params: 0, name: "constants"},
		{filename: "12.x.y.template", params: 12, name: "x.y"},
		{filename: "1.plain", params: 1, name: "plain"},
		{filename: "List.template", wantErr: true},
		{filename: "x.List.template", wantErr: true},
		{filename: "-1.List.template", wantErr: true},
		{filename: "+1.List.template", wantErr: true},
		{filename: "1..template", wantErr: true},
		{filename: ".template", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			params, name, err := tmpl.ParseName(tt.filename)
			if tt.wantErr {
				require.ErrorIs(t, err, tmpl.ErrMalformedName)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.params, params)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#type#", tmpl.Placeholder("type", 0, 1))
	assert.Equal(t, "#type.0#", tmpl.Placeholder("type", 0, 2))
	assert.Equal(t, "#type.1#", tmpl.Placeholder("type", 1, 2))
}

func TestFillTwoParameters(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"maps/2.#type.0##type.1#Map.template": {Data: []byte("// #friendly_name.0# to #friendly_name.1#\ntype #type.0##type.1#Map struct{}\n")},
	}

	tm, err := tmpl.Load(fsys, "maps/2.#type.0##type.1#Map.template", fillers)
	require.NoError(t, err)
	assert.Equal(t, 2, tm.ParametersNeeded())
	assert.Equal(t, "#type.0##type.1#Map", tm.Name())

	name, err := tm.FillName(byteKind, intKind)
	require.NoError(t, err)
	assert.Equal(t, "ByteIntMap", name)

	contents, err := tm.FillContents(byteKind, intKind)
	require.NoError(t, err)
	assert.Equal(t, "// byte to int\ntype ByteIntMap struct{}\n", contents)

	_, err = tm.FillName(byteKind)
	require.ErrorIs(t, err, tmpl.ErrArgumentCount)

	_, err = tm.FillContents(byteKind, intKind, intKind)
	require.ErrorIs(t, err, tmpl.ErrArgumentCount)
	assert.Contains(t, err.Error(), "needs 2 arguments, got 3")
}

func TestFillSingleParameter(t *testing.T) {
	t.Parallel()

	tm := tmpl.New("1.#type#List.template", "#type#List", 1,
		"#type# #type.0# #TYPE# #friendly_name#", fillers)

	name, err := tm.FillName(intKind)
	require.NoError(t, err)
	assert.Equal(t, "IntList", name)

	contents, err := tm.FillContents(intKind)
	require.NoError(t, err)
	assert.Equal(t, "Int #type.0# #TYPE# int", contents, "indexed and upper-case keys are not placeholders here")
}

func TestFillDoesNotRescan(t *testing.T) {
	t.Parallel()

	tm := tmpl.New("1.x.template", "x", 1, "#loop#", fillers)

	contents, err := tm.FillContents(byteKind)
	require.NoError(t, err)
	assert.Equal(t, "#type#", contents)
}

func TestFillZeroParameters(t *testing.T) {
	t.Parallel()

	tm := tmpl.New("0.consts.template", "consts", 0, "const #type# = 1", fillers)

	contents, err := tm.FillContents()
	require.NoError(t, err)
	assert.Equal(t, "const #type# = 1", contents)

	_, err = tm.FillName(byteKind)
	require.ErrorIs(t, err, tmpl.ErrArgumentCount)
}

func TestFillIsPure(t *testing.T) {
	t.Parallel()

	tm := tmpl.New("2.x.template", "#type.1##type.0#", 2, strings.Repeat("#type.0#-#type.1#;", 3), fillers)

	first, err := tm.FillContents(byteKind, intKind)
	require.NoError(t, err)

	second, err := tm.FillContents(byteKind, intKind)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "Byte-Int;Byte-Int;Byte-Int;", first)

	name, err := tm.FillName(byteKind, intKind)
	require.NoError(t, err)
	assert.Equal(t, "IntByte", name)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"List.template": {Data: []byte("x")},
	}

	_, err := tmpl.Load(fsys, "List.template", fillers)
	require.ErrorIs(t, err, tmpl.ErrMalformedName)

	_, err = tmpl.Load(fsys, "1.Missing.template", fillers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1.Missing.template")
}
