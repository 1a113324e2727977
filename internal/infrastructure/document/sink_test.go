package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html lang="en"><head><title>t</title><meta name="theme-color" content="#fff"></head>
<body><p>hi</p></body></html>`

func writePage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))
	return path
}

func TestSink_ApplyThemeClass(t *testing.T) {
	path := writePage(t, page)
	s := NewSink(path)

	require.NoError(t, s.ApplyThemeClass("dark contrast-high"))

	class, _, err := Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, "dark contrast-high", class)

	require.NoError(t, s.ApplyThemeClass("light"))
	class, _, err = Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, "light", class)
}

func TestSink_SetMetaColorUpdatesAndCreates(t *testing.T) {
	path := writePage(t, page)
	s := NewSink(path)

	require.NoError(t, s.SetMetaColor("#0a0a0b"))

	_, color, err := Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, "#0a0a0b", color)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Equal(t, 1, strings.Count(out, `name="theme-color"`))
	assert.Contains(t, out, `<meta name="msapplication-navbutton-color" content="#0a0a0b"/>`)
	assert.Contains(t, out, "<p>hi</p>")
}

func TestSink_KeepsPermissions(t *testing.T) {
	path := writePage(t, page)
	require.NoError(t, NewSink(path).ApplyThemeClass("dark"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestSink_MissingFile(t *testing.T) {
	s := NewSink(filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, s.ApplyThemeClass("dark"))
	assert.Error(t, s.SetMetaColor("#000"))
}

func TestSink_FragmentGetsRoot(t *testing.T) {
	// The HTML parser synthesizes html/head/body for fragments.
	path := writePage(t, "<p>fragment</p>")
	s := NewSink(path)

	require.NoError(t, s.ApplyThemeClass("light"))
	require.NoError(t, s.SetMetaColor("#ffffff"))

	class, color, err := Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, "light", class)
	assert.Equal(t, "#ffffff", color)
}
