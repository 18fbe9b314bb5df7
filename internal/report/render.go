package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// RenderText writes the report in the classic indented-bullet layout:
//
//	Firefox Languages:
//	  - en-US
//	Firefox History (Non-generic TLDs):
//	  - nl x 3905: nu.nl, google.nl, educus.nl
//	Operating System: Linux
func RenderText(w io.Writer, r *Report) error {
	for _, section := range r.Sections {
		if _, err := fmt.Fprintf(w, "%s:\n", section.Title); err != nil {
			return err
		}
		for _, item := range section.Items {
			if _, err := fmt.Fprintf(w, "  - %s\n", item); err != nil {
				return err
			}
		}
		for _, entry := range section.Entries {
			line := fmt.Sprintf("  - %s x %d", entry.Code, entry.Weight)
			if len(entry.Examples) > 0 {
				line += ": " + strings.Join(entry.Examples, ", ")
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}

	code := r.Meta.LocaleCode
	if r.Meta.LocaleRaw != "" && r.Meta.LocaleRaw != code {
		code += " (" + r.Meta.LocaleRaw + ")"
	}
	_, err := fmt.Fprintf(w, "Operating System: %s\nLanguage Code: %s\nCurrent Keyboard Layout: %s\n",
		r.Meta.OS, code, strings.Join(r.Meta.KeyboardLayouts, ","))
	return err
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
