package collect

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/glotscan/glotscan/internal/domainlang"
	"github.com/glotscan/glotscan/internal/evidence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirefoxCollect(t *testing.T) {
	root := t.TempDir()
	profile := filepath.Join(root, "abc123.default-release")
	require.NoError(t, os.MkdirAll(profile, 0o755))

	prefs := `user_pref("browser.startup.page", 3);
user_pref("intl.accept_languages", "nl-NL,nl,en-US");
`
	require.NoError(t, os.WriteFile(filepath.Join(profile, "prefs.js"), []byte(prefs), 0o600))

	writeHistoryDB(t, filepath.Join(profile, "places.sqlite"), "moz_places", map[string]int{
		"https://nu.nl/":      2000,
		"https://youtu.be/x":  7,
		"https://github.com/": 500,
	})

	ff := &Firefox{Root: root, Resolver: domainlang.NewResolver(domainlang.DefaultTables())}
	items, err := ff.Collect(context.Background())
	require.NoError(t, err)

	agg := evidence.Aggregate(items, 3)

	prefEntries := agg[evidence.SourceFirefoxPref]
	var prefCodes []string
	for _, e := range prefEntries {
		prefCodes = append(prefCodes, e.Code)
	}
	assert.ElementsMatch(t, []string{"nl-NL", "nl", "en-US"}, prefCodes)

	histEntries := agg[evidence.SourceFirefoxHistory]
	require.Len(t, histEntries, 1)
	assert.Equal(t, "nl", histEntries[0].Code)
	assert.Equal(t, 2000, histEntries[0].Weight)
}

func TestFirefoxCollectMissingRoot(t *testing.T) {
	ff := &Firefox{Root: filepath.Join(t.TempDir(), "nope"), Resolver: domainlang.NewResolver(domainlang.DefaultTables())}
	items, err := ff.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFirefoxCollectProfileWithoutArtifacts(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty.profile"), 0o755))

	ff := &Firefox{Root: root, Resolver: domainlang.NewResolver(domainlang.DefaultTables())}
	items, err := ff.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
