package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/glotscan/glotscan/internal/evidence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAggregated() evidence.Aggregated {
	return evidence.Aggregated{
		evidence.SourceFirefoxPref: {
			{Code: "en-US", Weight: 1},
			{Code: "nl", Weight: 1},
		},
		evidence.SourceSteam: {
			{Code: "ru", Weight: 1},
		},
		evidence.SourceMusicFolder: {
			{Code: "Cyrillic", Weight: 14, Examples: []string{"Премьера.mp3"}},
		},
		evidence.SourceFirefoxHistory: {
			{Code: "nl", Weight: 3905, Examples: []string{"nu.nl", "google.nl", "educus.nl"}},
			{Code: "de", Weight: 30, Examples: []string{"immobilienscout24.de"}},
		},
	}
}

func sampleMeta() Meta {
	return Meta{
		OS:              "Linux",
		LocaleRaw:       "en_US.UTF-8",
		LocaleCode:      "en",
		KeyboardLayouts: []string{"us", "ru"},
	}
}

func TestBuildSectionOrder(t *testing.T) {
	r := Build(sampleAggregated(), sampleMeta())

	var titles []string
	for _, s := range r.Sections {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		"Chrome Languages",
		"Firefox Languages",
		"Steam Language",
		"Detected Languages in Music Folder",
		"Installed Languages (Human-readable)",
		"Chrome History (Non-generic TLDs)",
		"Firefox History (Non-generic TLDs)",
	}, titles)
}

func TestBuildInstalledLanguagesSummary(t *testing.T) {
	r := Build(sampleAggregated(), sampleMeta())

	var summary Section
	for _, s := range r.Sections {
		if s.Title == "Installed Languages (Human-readable)" {
			summary = s
		}
	}
	// Locale (en), Firefox prefs (en-US -> en, nl), Steam (ru):
	// deduplicated, described, sorted. History codes stay out.
	assert.Equal(t, []string{"Dutch", "English", "Russian"}, summary.Items)
}

func TestBuildSummaryKeepsUnknownLocales(t *testing.T) {
	agg := evidence.Aggregated{
		evidence.SourceLocale: {
			{Code: "nl", Weight: 1},
			{Code: "zz", Weight: 1},
		},
	}
	r := Build(agg, Meta{LocaleCode: "en"})

	var summary Section
	for _, s := range r.Sections {
		if s.Title == "Installed Languages (Human-readable)" {
			summary = s
		}
	}
	// An installed locale with no display name has no section of its
	// own, so the summary carries it verbatim.
	assert.Equal(t, []string{"Dutch", "English", "zz"}, summary.Items)
}

func TestBuildEmptySourcesStillGetSections(t *testing.T) {
	r := Build(evidence.Aggregated{}, Meta{OS: "Linux"})

	for _, s := range r.Sections {
		assert.Empty(t, s.Items, s.Title)
		assert.Empty(t, s.Entries, s.Title)
	}
	assert.Len(t, r.Sections, 7)
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, Build(sampleAggregated(), sampleMeta())))
	out := buf.String()

	assert.Contains(t, out, "Firefox Languages:\n  - en-US\n  - nl\n")
	assert.Contains(t, out, "  - nl x 3905: nu.nl, google.nl, educus.nl\n")
	assert.Contains(t, out, "  - de x 30: immobilienscout24.de\n")
	assert.Contains(t, out, "  - Cyrillic x 14: Премьера.mp3\n")
	assert.Contains(t, out, "Operating System: Linux\n")
	// The normalized code leads; the raw locale stays visible beside it.
	assert.Contains(t, out, "Language Code: en (en_US.UTF-8)\n")
	assert.Contains(t, out, "Current Keyboard Layout: us,ru\n")

	// No entry leaked in from the youtu.be-style exception domains.
	assert.NotContains(t, out, "be x")
}

func TestRenderTextSectionOrderInOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, Build(sampleAggregated(), sampleMeta())))
	out := buf.String()

	prefs := strings.Index(out, "Firefox Languages:")
	music := strings.Index(out, "Detected Languages in Music Folder:")
	installed := strings.Index(out, "Installed Languages (Human-readable):")
	history := strings.Index(out, "Firefox History (Non-generic TLDs):")
	osLine := strings.Index(out, "Operating System:")

	assert.True(t, prefs < music && music < installed && installed < history && history < osLine)
}

func TestRenderJSONRoundTrips(t *testing.T) {
	r := Build(sampleAggregated(), sampleMeta())

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, r))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, r.Meta, decoded.Meta)
	assert.Len(t, decoded.Sections, len(r.Sections))
}

func TestEntryCodesPreservesUnresolved(t *testing.T) {
	agg := evidence.Aggregated{
		evidence.SourceChromePref: {
			{Code: evidence.Unclassified, Weight: 1, Examples: []string{"x-klingon"}},
			{Code: "fr", Weight: 1},
		},
	}
	r := Build(agg, Meta{})

	chrome := r.Sections[0]
	require.Equal(t, "Chrome Languages", chrome.Title)
	assert.Contains(t, chrome.Items, "x-klingon")
	assert.Contains(t, chrome.Items, "fr")
}
