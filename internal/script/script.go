// Package script classifies text into writing-system families using
// Unicode range tables. It backs the music-folder scan, where filenames
// written in Cyrillic, Han, etc. hint at the languages a user reads.
package script

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tally maps a script family name to the number of runes observed in it.
// Families with a zero count are never present.
type Tally map[string]int

// family pairs a display name with its Unicode range table. Kept as an
// ordered slice so classification walks the same table order every run.
type family struct {
	name   string
	ranges *unicode.RangeTable
}

// families lists the writing systems we can tell apart. Digits,
// punctuation and whitespace belong to no family and are never counted.
var families = []family{
	{"Latin", unicode.Latin},
	{"Cyrillic", unicode.Cyrillic},
	{"Han", unicode.Han},
	{"Arabic", unicode.Arabic},
	{"Greek", unicode.Greek},
	{"Hebrew", unicode.Hebrew},
	{"Devanagari", unicode.Devanagari},
	{"Thai", unicode.Thai},
	{"Hangul", unicode.Hangul},
	{"Hiragana", unicode.Hiragana},
	{"Katakana", unicode.Katakana},
}

// Classify counts the runes of text per script family. Unsupported or
// non-letter runes are skipped rather than reported, and a trailing
// filename extension contributes nothing, so "Премьера.pm3" tallies
// only its Cyrillic letters. The result contains only families that
// actually occurred. Input is NFC-normalized first so decomposed
// accents don't split a letter across runes.
func Classify(text string) Tally {
	tally := make(Tally)
	for _, r := range norm.NFC.String(stripExt(text)) {
		if !unicode.IsLetter(r) {
			continue
		}
		for _, f := range families {
			if unicode.Is(f.ranges, r) {
				tally[f.name]++
				break
			}
		}
	}
	return tally
}

// stripExt drops a trailing filename extension: a final dot followed by
// a short run of ASCII letters and digits. Dots elsewhere in the text,
// or suffixes that don't look like extensions, are left alone.
func stripExt(text string) string {
	i := strings.LastIndexByte(text, '.')
	if i < 0 || i == len(text)-1 || len(text)-i-1 > 5 {
		return text
	}
	for _, r := range text[i+1:] {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return text
		}
	}
	return text[:i]
}

// Dominant returns the family with the highest count, breaking ties by
// name so the answer is stable. Returns "" for an empty tally.
func (t Tally) Dominant() string {
	best := ""
	bestCount := 0
	for name, count := range t {
		if count > bestCount || (count == bestCount && (best == "" || name < best)) {
			best = name
			bestCount = count
		}
	}
	return best
}

// Total returns the number of classified runes across all families.
func (t Tally) Total() int {
	sum := 0
	for _, c := range t {
		sum += c
	}
	return sum
}
