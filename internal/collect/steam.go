package collect

import (
	"context"
	"os"

	"github.com/glotscan/glotscan/internal/evidence"
	"github.com/glotscan/glotscan/internal/lang"
)

// Steam reads the client language out of Steam's config.vdf. The value
// is a full word like "russian"; we map it to a code where we can and
// keep the raw word as the label either way.
type Steam struct {
	ConfigPaths []string
}

// NewSteam builds a collector over the platform's candidate config
// locations.
func NewSteam() *Steam {
	return &Steam{ConfigPaths: DefaultSteamConfigs()}
}

func (s *Steam) Name() string { return "steam" }

// Collect probes each candidate path and reads the first config that
// exists. No Steam, or a config without a Language entry, yields no
// evidence. An unknown language word is still reported, unclassified.
func (s *Steam) Collect(_ context.Context) ([]evidence.Evidence, error) {
	for _, path := range s.ConfigPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		word := parseSteamLanguage(string(data))
		if word == "" {
			return nil, nil
		}
		code, ok := lang.FromWord(word)
		if !ok {
			code = "" // aggregator routes it to the unclassified bucket
		}
		return []evidence.Evidence{{
			Code:   code,
			Source: evidence.SourceSteam,
			Weight: 1,
			Label:  word,
		}}, nil
	}
	return nil, nil
}
