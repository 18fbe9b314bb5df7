// Package report assembles aggregated evidence into the final
// structured report and renders it as text or JSON. Section order is
// fixed so two runs over the same machine produce identical output.
package report

import (
	"sort"

	"github.com/glotscan/glotscan/internal/evidence"
	"github.com/glotscan/glotscan/internal/lang"
)

// Meta carries the trailing one-line facts about the scanned system.
type Meta struct {
	OS              string   `json:"os"`
	LocaleRaw       string   `json:"locale_raw"`
	LocaleCode      string   `json:"locale_code"`
	KeyboardLayouts []string `json:"keyboard_layouts"`
}

// Section is one named block of the report: either a flat list of
// items (language tags, names) or ranked entries with weights.
type Section struct {
	Title   string           `json:"title"`
	Items   []string         `json:"items,omitempty"`
	Entries []evidence.Entry `json:"entries,omitempty"`
}

// Report is the consolidated result of a scan.
type Report struct {
	Sections []Section `json:"sections"`
	Meta     Meta      `json:"meta"`
}

// source display names, also used for section ordering within a group.
var sourceTitles = map[evidence.Source]string{
	evidence.SourceChromePref:     "Chrome Languages",
	evidence.SourceFirefoxPref:    "Firefox Languages",
	evidence.SourceSteam:          "Steam Language",
	evidence.SourceMusicFolder:    "Detected Languages in Music Folder",
	evidence.SourceChromeHistory:  "Chrome History (Non-generic TLDs)",
	evidence.SourceFirefoxHistory: "Firefox History (Non-generic TLDs)",
}

// prefSources and historySources fix the per-group section order
// (alphabetical by source label).
var prefSources = []evidence.Source{
	evidence.SourceChromePref,
	evidence.SourceFirefoxPref,
	evidence.SourceSteam,
}

var historySources = []evidence.Source{
	evidence.SourceChromeHistory,
	evidence.SourceFirefoxHistory,
}

// Build assembles the report: preference sections first, then the
// music-folder findings, the merged human-readable summary, the
// history sections, and the metadata block. Sections for sources that
// produced nothing still appear, empty, so absence is visible.
func Build(agg evidence.Aggregated, meta Meta) *Report {
	r := &Report{Meta: meta}

	for _, source := range prefSources {
		r.Sections = append(r.Sections, Section{
			Title: sourceTitles[source],
			Items: entryCodes(agg[source]),
		})
	}

	r.Sections = append(r.Sections, Section{
		Title:   sourceTitles[evidence.SourceMusicFolder],
		Entries: agg[evidence.SourceMusicFolder],
	})

	r.Sections = append(r.Sections, Section{
		Title: "Installed Languages (Human-readable)",
		Items: describedUnion(agg, meta.LocaleCode),
	})

	for _, source := range historySources {
		r.Sections = append(r.Sections, Section{
			Title:   sourceTitles[source],
			Entries: agg[source],
		})
	}

	return r
}

// entryCodes flattens ranked entries back to their codes, keeping the
// aggregator's order. Unresolved values stay visible via their labels.
func entryCodes(entries []evidence.Entry) []string {
	var codes []string
	for _, e := range entries {
		if e.Code == evidence.Unclassified {
			codes = append(codes, e.Examples...)
			continue
		}
		codes = append(codes, e.Code)
	}
	return codes
}

// describedUnion merges every distinct code from the installed-side
// sources (system locale, installed locales, browser preferences,
// Steam) into one deduplicated, sorted list of display names. Codes
// with no known display name stay in the list verbatim, since locale
// evidence has no section of its own to fall back to. History and
// layouts stay out entirely, as a visited .de site or a "us" key
// layout is a weaker signal with its own section.
func describedUnion(agg evidence.Aggregated, localeCode string) []string {
	seen := make(map[string]bool)
	add := func(code string) {
		if code == "" || code == evidence.Unclassified {
			return
		}
		seen[lang.Describe(lang.Normalize(code))] = true
	}

	add(localeCode)
	for _, source := range prefSources {
		for _, e := range agg[source] {
			add(e.Code)
		}
	}
	for _, e := range agg[evidence.SourceLocale] {
		add(e.Code)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
