package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShader_DesktopLayout(t *testing.T) {
	fsys := fstest.MapFS{
		"assets/shaders/raymarch_glsl.vert": {Data: []byte("void main(){}")},
		"assets/shaders/raymarch_glsl.frag": {Data: []byte("void main(){ }")},
	}
	vert, frag, err := NewLoader(fsys, Desktop).LoadShader("raymarch")
	require.NoError(t, err)
	assert.Equal(t, "void main(){}", vert)
	assert.Equal(t, "void main(){ }", frag)
}

func TestLoadShader_ConsoleLayout(t *testing.T) {
	fsys := fstest.MapFS{
		"raymarch.vert": {Data: []byte("v")},
		"raymarch.frag": {Data: []byte("f")},
	}
	vert, frag, err := NewLoader(fsys, Console).LoadShader("raymarch")
	require.NoError(t, err)
	assert.Equal(t, "v", vert)
	assert.Equal(t, "f", frag)
}

func TestLoadShader_MissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		"assets/shaders/raymarch_glsl.vert": {Data: []byte("v")},
	}
	_, _, err := NewLoader(fsys, nil).LoadShader("raymarch")
	require.ErrorIs(t, err, ErrAssetNotFound)
	assert.Contains(t, err.Error(), "assets/shaders/raymarch_glsl.frag")
}

func TestLoadShader_EmptyFile(t *testing.T) {
	fsys := fstest.MapFS{
		"raymarch.vert": {Data: []byte{}},
		"raymarch.frag": {Data: []byte("f")},
	}
	_, _, err := NewLoader(fsys, Console).LoadShader("raymarch")
	require.ErrorIs(t, err, ErrEmptyAsset)
}

func TestLayoutByName(t *testing.T) {
	l, err := LayoutByName("console")
	require.NoError(t, err)
	assert.Equal(t, "x.frag", l("x", "frag"))

	l, err = LayoutByName("")
	require.NoError(t, err)
	assert.Equal(t, "assets/shaders/x_glsl.vert", l("x", "vert"))

	_, err = LayoutByName("vita")
	assert.Error(t, err)
}
