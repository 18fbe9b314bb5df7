package domainlang

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTLDRules(t *testing.T) {
	r := NewResolver(DefaultTables())

	tests := []struct {
		domain string
		code   string
	}{
		{"nu.nl", "nl"},
		{"google.nl", "nl"},
		{"immobilienscout24.de", "de"},
		{"lemonde.fr", "fr"},
		{"sub.domain.ru", "ru"},
	}
	for _, tt := range tests {
		code, ok := r.Resolve(tt.domain)
		require.True(t, ok, tt.domain)
		assert.Equal(t, tt.code, code, tt.domain)
	}
}

func TestResolveGenericTLDs(t *testing.T) {
	r := NewResolver(DefaultTables())

	for _, domain := range []string{"google.com", "wikipedia.org", "speedtest.net", "example.io"} {
		_, ok := r.Resolve(domain)
		assert.False(t, ok, domain)
	}
}

func TestResolveExceptionsBeatTLDRules(t *testing.T) {
	r := NewResolver(DefaultTables())

	// .be would map to Dutch, but youtu.be is YouTube's short domain.
	_, ok := r.Resolve("youtu.be")
	assert.False(t, ok)

	code, ok := r.Resolve("tweakers.be")
	require.True(t, ok)
	assert.Equal(t, "nl", code)
}

func TestResolveExceptionWithCode(t *testing.T) {
	r := NewResolver(Tables{
		Exceptions: map[string]string{"rt.com": "ru"},
		TLDs:       map[string]string{},
	})

	code, ok := r.Resolve("rt.com")
	require.True(t, ok)
	assert.Equal(t, "ru", code)
}

func TestResolveCaseAndWhitespace(t *testing.T) {
	r := NewResolver(DefaultTables())

	code, ok := r.Resolve("  NU.NL ")
	require.True(t, ok)
	assert.Equal(t, "nl", code)

	_, ok = r.Resolve("YouTu.BE")
	assert.False(t, ok)
}

func TestResolveNeverFails(t *testing.T) {
	r := NewResolver(DefaultTables())

	for _, domain := range []string{"", ".", "localhost", "plain", "trailing.nl."} {
		assert.NotPanics(t, func() { r.Resolve(domain) }, domain)
	}

	code, ok := r.Resolve("trailing.nl.")
	require.True(t, ok)
	assert.Equal(t, "nl", code)
}

func TestBaseDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.nu.nl/binnenland/article", "nu.nl"},
		{"http://nu.nl", "nu.nl"},
		{"google.nl", "google.nl"},
		{"https://user@host.example.de:8080/x?q=1", "example.de"},
		{"ftp://a.b.c.d.co.uk", "co.uk"},
		{"localhost", "localhost"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseDomain(tt.in), tt.in)
	}
}

func TestLoadTablesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.yaml")
	data := `
exceptions:
  youtu.be: ignore
  rt.com: ru
tlds:
  nl: nl
  jp: ja
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	r, err := Load(path)
	require.NoError(t, err)

	code, ok := r.Resolve("asahi.jp")
	require.True(t, ok)
	assert.Equal(t, "ja", code)

	_, ok = r.Resolve("youtu.be")
	assert.False(t, ok)

	// The file replaces the defaults entirely.
	_, ok = r.Resolve("heise.de")
	assert.False(t, ok)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	r, err := Load("")
	require.NoError(t, err)

	code, ok := r.Resolve("nu.nl")
	require.True(t, ok)
	assert.Equal(t, "nl", code)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestTablesCopyIsIndependent(t *testing.T) {
	r := NewResolver(DefaultTables())
	tables := r.Tables()
	tables.TLDs["nl"] = "xx"

	code, ok := r.Resolve("nu.nl")
	require.True(t, ok)
	assert.Equal(t, "nl", code)
}
