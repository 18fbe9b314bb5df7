package domainlang

// Ignore is the rule value for domains and TLDs that must never be read
// as a language signal, even when a generic rule would match them.
const Ignore = "ignore"

// Tables holds the replaceable mapping data behind the resolver. The
// built-in defaults below are a starter heuristic, not an authority:
// ship your own YAML file to change them (see Load).
type Tables struct {
	// Exceptions maps full domains to a language code or Ignore. An
	// exception always wins over the TLD rule for the same input, which
	// is how vanity ccTLD domains (youtu.be, goo.gl) are kept out of
	// the tallies.
	Exceptions map[string]string `yaml:"exceptions"`

	// TLDs maps a bare top-level domain (no dot) to the language most
	// commonly associated with it. Generic TLDs are simply absent.
	TLDs map[string]string `yaml:"tlds"`
}

// DefaultTables returns the built-in rule set. Callers get a fresh copy;
// mutating it never affects other resolvers.
func DefaultTables() Tables {
	t := Tables{
		Exceptions: map[string]string{
			// ccTLDs picked for the brand, not the country.
			"youtu.be":    Ignore,
			"goo.gl":      Ignore,
			"bit.ly":      Ignore,
			"t.co":        Ignore,
			"twitch.tv":   Ignore,
			"notion.so":   Ignore,
			"discord.gg":  Ignore,
			"telegram.me": Ignore,
		},
		TLDs: map[string]string{
			"nl": "nl",
			"de": "de",
			"fr": "fr",
			"es": "es",
			"it": "it",
			"pt": "pt",
			"br": "pt",
			"ru": "ru",
			"ua": "uk",
			"by": "be",
			"pl": "pl",
			"cz": "cs",
			"sk": "sk",
			"hu": "hu",
			"ro": "ro",
			"bg": "bg",
			"gr": "el",
			"tr": "tr",
			"se": "sv",
			"no": "no",
			"dk": "da",
			"fi": "fi",
			"is": "is",
			"ee": "et",
			"lv": "lv",
			"lt": "lt",
			"be": "nl",
			"at": "de",
			"ch": "de",
			"jp": "ja",
			"kr": "ko",
			"cn": "zh",
			"tw": "zh",
			"hk": "zh",
			"vn": "vi",
			"th": "th",
			"id": "id",
			"il": "he",
			"sa": "ar",
			"eg": "ar",
			"ir": "fa",
			"in": "hi",
			"mx": "es",
			"ar": "es",
			"cl": "es",
			"co": "es",
			"uk": "en",
			"au": "en",
			"nz": "en",
			"ie": "en",
			"ca": "en",
			"us": "en",
		},
	}
	return t.clone()
}

func (t Tables) clone() Tables {
	out := Tables{
		Exceptions: make(map[string]string, len(t.Exceptions)),
		TLDs:       make(map[string]string, len(t.TLDs)),
	}
	for k, v := range t.Exceptions {
		out.Exceptions[k] = v
	}
	for k, v := range t.TLDs {
		out.TLDs[k] = v
	}
	return out
}
