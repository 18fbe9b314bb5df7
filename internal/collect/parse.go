package collect

import (
	"regexp"
	"strings"
)

// parseXKBLayouts pulls the layout list out of `setxkbmap -query`
// output. The relevant line looks like "layout:     us,ru".
func parseXKBLayouts(out string) []string {
	for _, line := range strings.Split(out, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found || strings.TrimSpace(key) != "layout" {
			continue
		}
		var layouts []string
		for _, l := range strings.Split(value, ",") {
			if l = strings.TrimSpace(l); l != "" {
				layouts = append(layouts, l)
			}
		}
		return layouts
	}
	return nil
}

var acceptLanguagesPref = regexp.MustCompile(`user_pref\("intl\.accept_languages",\s*"([^"]*)"\)`)

// parseAcceptLanguages extracts the intl.accept_languages value from
// prefs.js content and splits it into individual tags.
func parseAcceptLanguages(prefsJS string) []string {
	m := acceptLanguagesPref.FindStringSubmatch(prefsJS)
	if m == nil {
		return nil
	}
	return splitLanguageList(m[1])
}

// splitLanguageList splits a comma-separated accept-languages value,
// trimming whitespace and dropping empty tags.
func splitLanguageList(value string) []string {
	var tags []string
	for _, tag := range strings.Split(value, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

var steamLanguageEntry = regexp.MustCompile(`"[Ll]anguage"\s+"(\w+)"`)

// parseSteamLanguage finds the Language entry in config.vdf content.
// Steam stores a full word ("russian"), not a code.
func parseSteamLanguage(vdf string) string {
	m := steamLanguageEntry.FindStringSubmatch(vdf)
	if m == nil {
		return ""
	}
	return m[1]
}
