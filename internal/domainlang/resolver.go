// Package domainlang maps visited domains to the language their
// country-code TLD usually implies. The mapping is heuristic table data,
// loadable from YAML, with exact-domain exceptions taking precedence
// over TLD rules.
package domainlang

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Resolver answers "what language does this domain hint at". It is
// immutable after construction and safe for concurrent use.
type Resolver struct {
	tables Tables
}

// NewResolver builds a resolver over the given tables. Keys are folded
// to lower case once here so lookups stay case-insensitive.
func NewResolver(tables Tables) *Resolver {
	folded := Tables{
		Exceptions: make(map[string]string, len(tables.Exceptions)),
		TLDs:       make(map[string]string, len(tables.TLDs)),
	}
	for k, v := range tables.Exceptions {
		folded.Exceptions[strings.ToLower(k)] = v
	}
	for k, v := range tables.TLDs {
		folded.TLDs[strings.ToLower(strings.TrimPrefix(k, "."))] = v
	}
	return &Resolver{tables: folded}
}

// Load reads a tables file (YAML) and returns a resolver over it. An
// empty path yields the built-in defaults.
func Load(path string) (*Resolver, error) {
	if path == "" {
		return NewResolver(DefaultTables()), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables file: %w", err)
	}
	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("parsing tables file %s: %w", path, err)
	}
	return NewResolver(tables), nil
}

// Tables returns a copy of the active rule set, e.g. for dumping it
// back out as YAML.
func (r *Resolver) Tables() Tables {
	return r.tables.clone()
}

// Resolve maps a bare host name to a language code. The second return
// is false when the domain carries no signal: generic TLDs, unmapped
// TLDs, and exception rules marked Ignore. Exceptions are checked
// before TLD rules, so a full-domain rule always wins. Never fails.
func (r *Resolver) Resolve(domain string) (string, bool) {
	domain = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(domain), "."))
	if domain == "" {
		return "", false
	}
	if code, ok := r.tables.Exceptions[domain]; ok {
		if code == Ignore {
			return "", false
		}
		return code, true
	}
	tld := domain[strings.LastIndex(domain, ".")+1:]
	code, ok := r.tables.TLDs[tld]
	if !ok || code == Ignore {
		return "", false
	}
	return code, true
}

// BaseDomain reduces a URL or host to its registrable-ish base: the
// rightmost two labels. "www.nu.nl/path" becomes "nu.nl". Scheme, port,
// userinfo and path are stripped; the result is lower case. Malformed
// input comes back trimmed rather than failing.
func BaseDomain(rawURL string) string {
	host := strings.ToLower(strings.TrimSpace(rawURL))
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if i := strings.LastIndex(host, "@"); i >= 0 {
		host = host[i+1:]
	}
	if i := strings.Index(host, ":"); i >= 0 {
		host = host[:i]
	}
	parts := strings.Split(host, ".")
	if len(parts) > 2 {
		return strings.Join(parts[len(parts)-2:], ".")
	}
	return host
}
