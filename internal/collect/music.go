package collect

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/glotscan/glotscan/internal/evidence"
	"github.com/glotscan/glotscan/internal/script"
)

// minLettersForGuess is the smallest number of classified letters in a
// name worth running full language detection on; shorter names give
// the trigram detector nothing to work with.
const minLettersForGuess = 6

// minGuessConfidence gates the language guess; filenames are noisy.
const minGuessConfidence = 0.7

// Music scans file and directory names under the user's music folder.
// Names written in a non-default script are strong hints, so every
// classified letter counts; sufficiently long names additionally get a
// whole-language guess.
type Music struct {
	Dir string
}

// NewMusic builds a collector over the platform's music folder.
func NewMusic() *Music {
	return &Music{Dir: DefaultMusicDir()}
}

func (m *Music) Name() string { return "music-folder" }

// Collect walks the folder. A missing or empty folder yields no
// evidence; unreadable subtrees are skipped rather than failing the
// walk.
func (m *Music) Collect(ctx context.Context) ([]evidence.Evidence, error) {
	var items []evidence.Evidence
	err := filepath.WalkDir(m.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == m.Dir {
				return filepath.SkipAll // no music folder at all
			}
			return fs.SkipDir
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if path == m.Dir {
			return nil
		}
		items = append(items, nameEvidence(d.Name())...)
		return nil
	})
	if err != nil {
		return items, err
	}
	return items, nil
}

// nameEvidence classifies one file or directory name. Script families
// are reported per letter count; a confident whole-name language guess
// is added on top as its own code.
func nameEvidence(name string) []evidence.Evidence {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	tally := script.Classify(name)
	items := make([]evidence.Evidence, 0, len(tally)+1)
	for family, count := range tally {
		items = append(items, evidence.Evidence{
			Code:   family,
			Source: evidence.SourceMusicFolder,
			Weight: count,
			Label:  name,
		})
	}

	if tally.Total() >= minLettersForGuess {
		info := whatlanggo.Detect(base)
		if info.IsReliable() && info.Confidence >= minGuessConfidence {
			if code := info.Lang.Iso6391(); code != "" {
				items = append(items, evidence.Evidence{
					Code:   code,
					Source: evidence.SourceMusicFolder,
					Weight: 1,
					Label:  name,
				})
			}
		}
	}
	return items
}
