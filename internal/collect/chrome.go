package collect

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/glotscan/glotscan/internal/domainlang"
	"github.com/glotscan/glotscan/internal/evidence"
)

// chromeHistoryQuery reads per-page visit counts from the History
// database's urls table.
const chromeHistoryQuery = `SELECT url, visit_count FROM urls WHERE visit_count > 0 ORDER BY visit_count DESC`

// chromePreferences is the slice of Chrome's Preferences JSON we care
// about: the accept-languages value under "intl".
type chromePreferences struct {
	Intl struct {
		AcceptLanguages string `json:"accept_languages"`
	} `json:"intl"`
}

// Chrome extracts language preferences and history from every profile
// ("Default", "Profile 1", ...) under Chrome's user data directory.
type Chrome struct {
	Root         string
	Resolver     *domainlang.Resolver
	HistoryLimit int
}

// NewChrome builds a collector over the platform's default user data
// directory.
func NewChrome(resolver *domainlang.Resolver, historyLimit int) *Chrome {
	return &Chrome{Root: DefaultChromeRoot(), Resolver: resolver, HistoryLimit: historyLimit}
}

func (c *Chrome) Name() string { return "chrome" }

// Collect walks the profile directories; absence of Chrome, a profile's
// Preferences file, or its History database all just mean less
// evidence. Malformed Preferences JSON is skipped, not fatal.
func (c *Chrome) Collect(ctx context.Context) ([]evidence.Evidence, error) {
	profiles, err := os.ReadDir(c.Root)
	if err != nil {
		return nil, nil // Chrome not installed
	}

	var items []evidence.Evidence
	for _, profile := range profiles {
		if !profile.IsDir() {
			continue
		}
		dir := filepath.Join(c.Root, profile.Name())

		if data, err := os.ReadFile(filepath.Join(dir, "Preferences")); err == nil {
			var prefs chromePreferences
			if json.Unmarshal(data, &prefs) == nil {
				for _, tag := range splitLanguageList(prefs.Intl.AcceptLanguages) {
					items = append(items, evidence.Evidence{
						Code:   tag,
						Source: evidence.SourceChromePref,
						Weight: 1,
					})
				}
			}
		}

		historyDB := filepath.Join(dir, "History")
		if info, err := os.Stat(historyDB); err != nil || info.IsDir() {
			continue
		}
		rows, err := queryHistory(ctx, historyDB, chromeHistoryQuery, c.HistoryLimit)
		if err != nil {
			return items, err
		}
		items = append(items, historyEvidence(rows, evidence.SourceChromeHistory, c.Resolver)...)
	}
	return items, nil
}
