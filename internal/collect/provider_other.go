//go:build !linux && !windows

package collect

import (
	"os"
	"runtime"
	"strings"
)

// fallbackProvider covers platforms without a dedicated implementation.
// Locale detection via environment variables still works on most of
// them; layouts and installed locales do not.
type fallbackProvider struct{}

func newPlatformProvider() Provider {
	return fallbackProvider{}
}

func (fallbackProvider) OSName() string {
	if runtime.GOOS == "darwin" {
		return "macOS"
	}
	return strings.ToUpper(runtime.GOOS[:1]) + runtime.GOOS[1:]
}

func (fallbackProvider) SystemLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

func (fallbackProvider) KeyboardLayouts() []string { return nil }

func (fallbackProvider) InstalledLocales() []string { return nil }
