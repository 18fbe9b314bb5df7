//go:build linux

package collect

import (
	"os"
	"os/exec"
	"strings"
)

type linuxProvider struct{}

func newPlatformProvider() Provider {
	return linuxProvider{}
}

func (linuxProvider) OSName() string { return "Linux" }

// SystemLocale checks the usual environment variables in precedence
// order; an unset environment yields "".
func (linuxProvider) SystemLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// KeyboardLayouts asks setxkbmap for the active layout set. The output
// contains a "layout: us,ru" line; each comma-separated entry is one
// layout. No X session or no setxkbmap means no layouts.
func (linuxProvider) KeyboardLayouts() []string {
	out, err := exec.Command("setxkbmap", "-query").Output()
	if err != nil {
		return nil
	}
	return parseXKBLayouts(string(out))
}

// InstalledLocales lists the locales generated on the system.
func (linuxProvider) InstalledLocales() []string {
	out, err := exec.Command("locale", "-a").Output()
	if err != nil {
		return nil
	}
	var locales []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			locales = append(locales, line)
		}
	}
	return locales
}
