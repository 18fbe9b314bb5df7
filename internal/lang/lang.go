// Package lang normalizes the various language identifiers the
// collectors hand us: locale strings ("en_US.UTF-8"), BCP-47 browser
// tags ("en-US"), and full language words as Steam stores them
// ("russian"). Display names come from golang.org/x/text so the table
// of human-readable names is not ours to maintain.
package lang

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize extracts the primary language subtag from a raw locale or
// language tag: "en_US.UTF-8" and "en-US" both become "en". Input with
// no recognizable separator passes through trimmed and lower-cased, so
// callers always get something to report.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	// Encoding suffix first ("en_US.UTF-8", "C.UTF-8"), then region.
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexAny(s, "_-"); i >= 0 {
		s = s[:i]
	}
	return s
}

// Name resolves a language code to its English display name:
// "ru" becomes ("Russian", true). The second return is false when the
// tag parser or the display table does not know the code.
func Name(code string) (string, bool) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", false
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return "", false
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return "", false
	}
	return name, true
}

// Describe is Name with a passthrough: codes that do not resolve come
// back unchanged, never as an error, so unresolved values stay visible
// in the report.
func Describe(code string) string {
	if name, ok := Name(code); ok {
		return name
	}
	return code
}

// steamWords maps the full language words Steam writes into config.vdf
// to primary language subtags. Steam has a few names of its own
// (koreana, schinese) next to plain English words.
var steamWords = map[string]string{
	"english":    "en",
	"german":     "de",
	"french":     "fr",
	"italian":    "it",
	"spanish":    "es",
	"latam":      "es",
	"portuguese": "pt",
	"brazilian":  "pt",
	"dutch":      "nl",
	"danish":     "da",
	"swedish":    "sv",
	"norwegian":  "no",
	"finnish":    "fi",
	"polish":     "pl",
	"czech":      "cs",
	"hungarian":  "hu",
	"romanian":   "ro",
	"bulgarian":  "bg",
	"greek":      "el",
	"russian":    "ru",
	"ukrainian":  "uk",
	"turkish":    "tr",
	"arabic":     "ar",
	"thai":       "th",
	"vietnamese": "vi",
	"indonesian": "id",
	"japanese":   "ja",
	"koreana":    "ko",
	"korean":     "ko",
	"schinese":   "zh",
	"tchinese":   "zh",
}

// FromWord resolves a full language word to its code. The second
// return is false for words we do not know.
func FromWord(word string) (string, bool) {
	code, ok := steamWords[strings.ToLower(strings.TrimSpace(word))]
	return code, ok
}
