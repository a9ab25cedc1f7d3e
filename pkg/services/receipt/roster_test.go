package receipt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRoster_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	content := `categories:
  - name: "ENTERTAINMENT"
    apps:
      - name: "YOUTUBE"
        category: "ENTERTAINMENT"
        icon: "/assets/receipt/icons/youtube.png"
        min: 60
        max: 240
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	roster, err := LoadRoster(path)

	require.NoError(t, err)
	require.Len(t, roster.Categories, 1)
	assert.Equal(t, "ENTERTAINMENT", roster.Categories[0].Name)
	require.Len(t, roster.Categories[0].Apps, 1)
	assert.Equal(t, "YOUTUBE", roster.Categories[0].Apps[0].Name)
	assert.Equal(t, 60, roster.Categories[0].Apps[0].Min)
	assert.Equal(t, 240, roster.Categories[0].Apps[0].Max)
}

func TestLoadRoster_MissingFile(t *testing.T) {
	_, err := LoadRoster(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRoster_EmptyRoster(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: []"), 0o644))

	_, err := LoadRoster(path)
	assert.ErrorContains(t, err, "defines no categories")
}

func TestDefaultRoster_RangesAreSane(t *testing.T) {
	for _, cat := range DefaultRoster().Categories {
		for _, app := range cat.Apps {
			assert.Greater(t, app.Min, 0, "%s min", app.Name)
			assert.GreaterOrEqual(t, app.Max, app.Min, "%s range", app.Name)
			assert.NotEmpty(t, app.Icon, "%s icon", app.Name)
		}
	}
}
