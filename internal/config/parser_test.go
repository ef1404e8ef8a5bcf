package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blockerrors "github.com/blockkit/delimiter/pkg/errors"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "delimiter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesYAML(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, `
styles: [star, line]
lineWidths: [8, 25, 50]
defaultStyle: line
defaultLineWidth: 50
saveAll: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Style{StyleStar, StyleLine}, cfg.Styles)
	assert.Equal(t, []int{8, 25, 50}, cfg.LineWidths)
	assert.Equal(t, StyleLine, cfg.DefaultStyle)
	assert.Equal(t, 50, cfg.DefaultLineWidth)
	assert.True(t, cfg.SaveAll)
}

func TestLoadReportsMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *blockerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadReportsMalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, "styles: [star\n")
	_, err := Load(path)
	var parseErr *blockerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, "defaultLineWidth: 999\n")
	_, err := Load(path)
	var validationErr *blockerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestFromJSONAcceptsCanonicalKeys(t *testing.T) {
	t.Parallel()

	cfg, err := FromJSON([]byte(`{
		"styles": ["star", "line"],
		"lineWidths": [8, 25],
		"lineThickness": [1, 2, 3],
		"defaultStyle": "line",
		"defaultLineWidth": 25,
		"defaultLineThickness": 3,
		"saveAll": true
	}`))
	require.NoError(t, err)
	assert.Equal(t, []Style{StyleStar, StyleLine}, cfg.Styles)
	assert.Equal(t, []int{8, 25}, cfg.LineWidths)
	assert.Equal(t, []int{1, 2, 3}, cfg.LineThickness)
	assert.Equal(t, StyleLine, cfg.DefaultStyle)
	assert.Equal(t, 25, cfg.DefaultLineWidth)
	assert.Equal(t, 3, cfg.DefaultLineThickness)
	assert.True(t, cfg.SaveAll)
}

func TestFromJSONAcceptsLegacyOptionKeys(t *testing.T) {
	t.Parallel()

	cfg, err := FromJSON([]byte(`{
		"styleOptions": ["dash"],
		"lineWidthOptions": [50, 60],
		"lineThicknessOptions": [2]
	}`))
	require.NoError(t, err)
	assert.Equal(t, []Style{StyleDash}, cfg.Styles)
	assert.Equal(t, []int{50, 60}, cfg.LineWidths)
	assert.Equal(t, []int{2}, cfg.LineThickness)
}

func TestFromJSONPrefersCanonicalOverLegacy(t *testing.T) {
	t.Parallel()

	cfg, err := FromJSON([]byte(`{"styles": ["star"], "styleOptions": ["dash"]}`))
	require.NoError(t, err)
	assert.Equal(t, []Style{StyleStar}, cfg.Styles)
}

func TestFromJSONEmptyInput(t *testing.T) {
	t.Parallel()

	cfg, err := FromJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestFromJSONRejectsNonObject(t *testing.T) {
	t.Parallel()

	_, err := FromJSON([]byte(`[1, 2, 3]`))
	var parseErr *blockerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
