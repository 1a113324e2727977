package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lookout/internal/domain/entity"
)

func TestMarkdownReference(t *testing.T) {
	ref := markdownReference()

	for _, kind := range entity.SignalKinds() {
		assert.Contains(t, ref, kind.Media())
	}
	assert.Contains(t, ref, `appearance.contrast = "high"`)
	assert.Contains(t, ref, "`dark contrast-high`")
	assert.Contains(t, ref, "`light`")
}

func TestClassNames_RoundTrip(t *testing.T) {
	names := classNames()
	require.Len(t, names, 6)
	for _, name := range names {
		_, err := entity.ParseClassName(name)
		assert.NoError(t, err, name)
	}
}

func TestManReference(t *testing.T) {
	page := manReference(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

	assert.Contains(t, page, `.TH LOOKOUT-PREFERENCES 7 "Oct 2026"`)
	assert.Contains(t, page, ".B "+entity.MediaPrefersDark)
	assert.Contains(t, page, ".BR lookout (1)")
}

func TestGenerateMarkdown_WritesReferenceAndSchema(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateMarkdown(dir))

	assert.FileExists(t, filepath.Join(dir, "lookout.md"))
	assert.FileExists(t, filepath.Join(dir, "preferences.md"))

	data, err := os.ReadFile(filepath.Join(dir, "config.schema.json"))
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	files := generatedFiles(dir, docFormats["markdown"].exts)
	assert.Contains(t, files, "config.schema.json")
	assert.Contains(t, files, "preferences.md")
}
