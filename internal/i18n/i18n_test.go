package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogs(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	de := `headline = Willkommen
err_user_taken = Benutzername ist bereits vergeben
`
	en := `headline = Welcome
err_user_taken = Username is already taken
`

	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.ini"), []byte(de), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.ini"), []byte(en), 0o644))

	return dir
}

func TestLoad_And_T(t *testing.T) {
	dir := writeCatalogs(t)

	tr, err := Load(dir, []string{"de", "en"}, "de")
	require.NoError(t, err)

	assert.Equal(t, "Willkommen", tr.T("de", "headline"))
	assert.Equal(t, "Welcome", tr.T("en", "headline"))
	assert.Equal(t, "Benutzername ist bereits vergeben", tr.T("de", "err_user_taken"))
}

func TestT_UnknownKeyPassesThrough(t *testing.T) {
	dir := writeCatalogs(t)

	tr, err := Load(dir, []string{"de", "en"}, "de")
	require.NoError(t, err)

	// дыра в каталоге должна быть видна на странице
	assert.Equal(t, "no_such_key", tr.T("de", "no_such_key"))
}

func TestT_UnknownLangFallsBack(t *testing.T) {
	dir := writeCatalogs(t)

	tr, err := Load(dir, []string{"de", "en"}, "de")
	require.NoError(t, err)

	assert.Equal(t, "Willkommen", tr.T("fr", "headline"))
}

func TestLoad_MissingCatalog(t *testing.T) {
	dir := writeCatalogs(t)

	_, err := Load(dir, []string{"de", "en", "fr"}, "de")

	assert.Error(t, err)
}

func TestLoad_EmptyCodes(t *testing.T) {
	_, err := Load(t.TempDir(), nil, "de")

	assert.Error(t, err)
}

func TestSupported(t *testing.T) {
	dir := writeCatalogs(t)

	tr, err := Load(dir, []string{"de", "en"}, "de")
	require.NoError(t, err)

	assert.True(t, tr.Supported("de"))
	assert.True(t, tr.Supported("en"))
	assert.False(t, tr.Supported("fr"))
	assert.False(t, tr.Supported(""))
}

func TestDefault(t *testing.T) {
	dir := writeCatalogs(t)

	tr, err := Load(dir, []string{"de", "en"}, "de")
	require.NoError(t, err)

	assert.Equal(t, "de", tr.Default())
}

func TestNegotiate(t *testing.T) {
	dir := writeCatalogs(t)

	tr, err := Load(dir, []string{"de", "en"}, "de")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"пустой заголовок", "", "de"},
		{"английский", "en-US,en;q=0.9", "en"},
		{"немецкий", "de-DE,de;q=0.9,en;q=0.5", "de"},
		{"неподдерживаемый язык", "fr-FR", "de"},
		{"мусор", "not a header", "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Negotiate(tt.header))
		})
	}
}
