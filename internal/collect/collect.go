// Package collect gathers raw language signals from the artifacts a
// machine happens to have: browser profiles, the Steam config, the
// music folder, and the OS itself. Every collector tolerates a missing
// artifact by returning no evidence; none of them may abort a scan.
package collect

import (
	"context"

	"github.com/glotscan/glotscan/internal/evidence"
)

// Collector extracts evidence from one artifact. A missing artifact is
// not an error: the collector returns an empty slice. Errors are for
// artifacts that exist but could not be read, and the caller treats
// them as zero evidence after logging.
type Collector interface {
	Name() string
	Collect(ctx context.Context) ([]evidence.Evidence, error)
}

// Provider answers platform-specific questions about the host. The
// pipeline consumes only this interface; the implementation is picked
// per platform at build time.
type Provider interface {
	// SystemLocale returns the raw default locale ("en_US.UTF-8"),
	// possibly empty.
	SystemLocale() string
	// KeyboardLayouts returns raw installed layout identifiers.
	KeyboardLayouts() []string
	// InstalledLocales returns every locale generated on the system
	// ("locale -a" on Linux, the user language list on Windows).
	InstalledLocales() []string
	// OSName returns the display name of the operating system.
	OSName() string
}

// NewProvider returns the host platform's Provider.
func NewProvider() Provider {
	return newPlatformProvider()
}
