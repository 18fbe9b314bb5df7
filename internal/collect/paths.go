package collect

import (
	"os"
	"path/filepath"
	"runtime"
)

func home() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return h
}

// DefaultFirefoxRoot returns the directory holding Firefox profiles.
func DefaultFirefoxRoot() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Mozilla", "Firefox", "Profiles")
	case "darwin":
		return filepath.Join(home(), "Library", "Application Support", "Firefox", "Profiles")
	default:
		return filepath.Join(home(), ".mozilla", "firefox")
	}
}

// DefaultChromeRoot returns the directory holding Chrome profiles.
func DefaultChromeRoot() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "Google", "Chrome", "User Data")
	case "darwin":
		return filepath.Join(home(), "Library", "Application Support", "Google", "Chrome")
	default:
		return filepath.Join(home(), ".config", "google-chrome")
	}
}

// DefaultSteamConfigs returns candidate locations of Steam's
// config.vdf, in probe order. Only the first existing one is read.
func DefaultSteamConfigs() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			filepath.Join(os.Getenv("ProgramFiles(x86)"), "Steam", "config", "config.vdf"),
			filepath.Join(os.Getenv("ProgramFiles"), "Steam", "config", "config.vdf"),
		}
	case "darwin":
		return []string{
			filepath.Join(home(), "Library", "Application Support", "Steam", "config", "config.vdf"),
		}
	default:
		return []string{
			filepath.Join(home(), ".steam", "steam", "config", "config.vdf"),
			filepath.Join(home(), ".local", "share", "Steam", "config", "config.vdf"),
		}
	}
}

// DefaultMusicDir returns the user's music folder.
func DefaultMusicDir() string {
	return filepath.Join(home(), "Music")
}
