package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrEmptyAsset    = errors.New("asset is empty")
)

// Layout maps a shader name and stage extension ("vert", "frag") to a path
// inside the asset filesystem.
type Layout func(name, ext string) string

// Desktop keeps shaders under assets/shaders with a _glsl suffix.
func Desktop(name, ext string) string {
	return path.Join("assets", "shaders", name+"_glsl."+ext)
}

// Console keeps shaders at the package root, as on the console build.
func Console(name, ext string) string {
	return name + "." + ext
}

// LayoutByName resolves "desktop" or "console".
func LayoutByName(s string) (Layout, error) {
	switch s {
	case "", "desktop":
		return Desktop, nil
	case "console":
		return Console, nil
	}
	return nil, fmt.Errorf("unknown asset layout %q", s)
}

// Loader reads shader sources from an fs.FS.
type Loader struct {
	FS     fs.FS
	Layout Layout
}

func NewLoader(fsys fs.FS, layout Layout) *Loader {
	if layout == nil {
		layout = Desktop
	}
	return &Loader{FS: fsys, Layout: layout}
}

// LoadShader reads the vertex and fragment sources for name. Both files must
// exist and be non-empty.
func (l *Loader) LoadShader(name string) (vert, frag string, err error) {
	vert, err = l.read(l.Layout(name, "vert"))
	if err != nil {
		return "", "", err
	}
	frag, err = l.read(l.Layout(name, "frag"))
	if err != nil {
		return "", "", err
	}
	return vert, frag, nil
}

func (l *Loader) read(p string) (string, error) {
	b, err := fs.ReadFile(l.FS, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("cannot open %s: %w", p, ErrAssetNotFound)
		}
		return "", fmt.Errorf("read %s: %w", p, err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("load %s: %w", p, ErrEmptyAsset)
	}
	return string(b), nil
}
