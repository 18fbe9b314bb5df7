//go:build windows

package collect

import (
	"golang.org/x/sys/windows/registry"
)

type windowsProvider struct{}

func newPlatformProvider() Provider {
	return windowsProvider{}
}

func (windowsProvider) OSName() string { return "Windows" }

// SystemLocale reads the user's locale name ("en-US") from the
// International control panel key.
func (windowsProvider) SystemLocale() string {
	key, err := registry.OpenKey(registry.CURRENT_USER, `Control Panel\International`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer key.Close()

	name, _, err := key.GetStringValue("LocaleName")
	if err != nil {
		return ""
	}
	return name
}

// KeyboardLayouts enumerates the installed layouts and returns their
// display names ("US", "Russian").
func (windowsProvider) KeyboardLayouts() []string {
	root, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SYSTEM\CurrentControlSet\Control\Keyboard Layouts`, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil
	}
	defer root.Close()

	ids, err := root.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}

	var layouts []string
	for _, id := range ids {
		sub, err := registry.OpenKey(root, id, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		if text, _, err := sub.GetStringValue("Layout Text"); err == nil && text != "" {
			layouts = append(layouts, text)
		}
		sub.Close()
	}
	return layouts
}

// InstalledLocales returns the user's configured language list.
func (windowsProvider) InstalledLocales() []string {
	key, err := registry.OpenKey(registry.CURRENT_USER,
		`Control Panel\International\User Profile`, registry.QUERY_VALUE)
	if err != nil {
		return nil
	}
	defer key.Close()

	languages, _, err := key.GetStringsValue("Languages")
	if err != nil {
		return nil
	}
	return languages
}
