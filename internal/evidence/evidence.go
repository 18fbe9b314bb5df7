// Package evidence defines the unit every collector produces and the
// aggregation that turns raw observations into ranked per-source
// tallies. Aggregation is pure: same input, same output, no state.
package evidence

// Source identifies where a piece of evidence was observed. Evidence
// from different sources is reported side by side, never merged.
type Source string

const (
	SourceLocale         Source = "locale"
	SourceLayout         Source = "layout"
	SourceFirefoxPref    Source = "firefox-pref"
	SourceChromePref     Source = "chrome-pref"
	SourceFirefoxHistory Source = "firefox-history"
	SourceChromeHistory  Source = "chrome-history"
	SourceSteam          Source = "steam"
	SourceMusicFolder    Source = "music-folder"
)

// Unclassified is the reserved code bucket for evidence whose raw value
// could not be mapped to a language. It is reported, not dropped, so
// the raw material stays inspectable.
const Unclassified = "unclassified"

// Evidence is a single observed hint: a language code, where it was
// seen, and how strongly it counts. Weight is a visit count, a letter
// count, or 1 for one-off signals. Label optionally carries the
// artifact behind the observation (a domain, a filename) for display.
type Evidence struct {
	Code   string
	Source Source
	Weight int
	Label  string
}
