package collect

import (
	"context"
	"os"
	"path/filepath"

	"github.com/glotscan/glotscan/internal/domainlang"
	"github.com/glotscan/glotscan/internal/evidence"
)

// firefoxHistoryQuery reads per-page visit counts from places.sqlite.
const firefoxHistoryQuery = `SELECT url, visit_count FROM moz_places WHERE visit_count > 0 ORDER BY visit_count DESC`

// Firefox extracts language preferences and history from every profile
// under the Firefox profiles root.
type Firefox struct {
	Root         string // profiles directory; empty means no Firefox
	Resolver     *domainlang.Resolver
	HistoryLimit int
}

// NewFirefox builds a collector over the platform's default profile
// location.
func NewFirefox(resolver *domainlang.Resolver, historyLimit int) *Firefox {
	return &Firefox{Root: DefaultFirefoxRoot(), Resolver: resolver, HistoryLimit: historyLimit}
}

func (f *Firefox) Name() string { return "firefox" }

// Collect walks the profile directories. Profiles without prefs.js or
// places.sqlite are skipped; an absent root yields no evidence at all.
func (f *Firefox) Collect(ctx context.Context) ([]evidence.Evidence, error) {
	profiles, err := os.ReadDir(f.Root)
	if err != nil {
		return nil, nil // Firefox not installed
	}

	var items []evidence.Evidence
	for _, profile := range profiles {
		if !profile.IsDir() {
			continue
		}
		dir := filepath.Join(f.Root, profile.Name())

		if data, err := os.ReadFile(filepath.Join(dir, "prefs.js")); err == nil {
			for _, tag := range parseAcceptLanguages(string(data)) {
				items = append(items, evidence.Evidence{
					Code:   tag,
					Source: evidence.SourceFirefoxPref,
					Weight: 1,
				})
			}
		}

		placesDB := filepath.Join(dir, "places.sqlite")
		if _, err := os.Stat(placesDB); err != nil {
			continue
		}
		rows, err := queryHistory(ctx, placesDB, firefoxHistoryQuery, f.HistoryLimit)
		if err != nil {
			return items, err
		}
		items = append(items, historyEvidence(rows, evidence.SourceFirefoxHistory, f.Resolver)...)
	}
	return items, nil
}
