package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/mandelbrot-explorer/internal/config"
)

func TestLoadFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	f, err := LoadFont(path)
	require.NoError(t, err)
	assert.Equal(t, goregular.TTF, f.Data)
	assert.Contains(t, f.Name, "Go")
}

func TestLoadFontMissing(t *testing.T) {
	_, err := LoadFont(filepath.Join(t.TempDir(), "missing.ttf"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
	assert.Contains(t, err.Error(), "read font")
}

func TestLoadFontInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font at all"), 0o644))

	_, err := LoadFont(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestParseFontEmpty(t *testing.T) {
	_, err := ParseFont(nil)
	assert.EqualError(t, err, "empty font data")
}

func TestLoadBundledFont(t *testing.T) {
	f, err := LoadFont(filepath.Join("..", "..", config.FontPath))
	require.NoError(t, err)
	assert.NotEmpty(t, f.Data)
	assert.NotEmpty(t, f.Name)
}
