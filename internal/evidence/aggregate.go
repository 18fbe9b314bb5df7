package evidence

import "sort"

// Entry is one aggregated row: a code, its summed weight within one
// source, and up to the configured number of example labels.
type Entry struct {
	Code     string   `json:"code"`
	Weight   int      `json:"weight"`
	Examples []string `json:"examples,omitempty"`
}

// Aggregated holds per-source ranked entries.
type Aggregated map[Source][]Entry

// Aggregate groups evidence by source, sums weights per code, and ranks
// each group by weight descending with code order breaking ties, so the
// result is the same no matter how the input was ordered. Evidence with
// an empty code lands in the Unclassified bucket. exampleCap bounds the
// labels kept per entry; zero or negative means unlimited.
func Aggregate(items []Evidence, exampleCap int) Aggregated {
	type key struct {
		source Source
		code   string
	}
	type acc struct {
		weight int
		counts map[string]int // label -> occurrences
		order  []string       // labels in first-seen order
	}

	groups := make(map[key]*acc)
	for _, ev := range items {
		code := ev.Code
		if code == "" {
			code = Unclassified
		}
		weight := ev.Weight
		if weight < 1 {
			weight = 1
		}
		k := key{ev.Source, code}
		a := groups[k]
		if a == nil {
			a = &acc{counts: make(map[string]int)}
			groups[k] = a
		}
		a.weight += weight
		if ev.Label != "" {
			if _, seen := a.counts[ev.Label]; !seen {
				a.order = append(a.order, ev.Label)
			}
			a.counts[ev.Label] += weight
		}
	}

	out := make(Aggregated)
	for k, a := range groups {
		out[k.source] = append(out[k.source], Entry{
			Code:     k.code,
			Weight:   a.weight,
			Examples: topLabels(a.counts, a.order, exampleCap),
		})
	}
	for source := range out {
		entries := out[source]
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Weight != entries[j].Weight {
				return entries[i].Weight > entries[j].Weight
			}
			return entries[i].Code < entries[j].Code
		})
	}
	return out
}

// topLabels ranks labels by their accumulated weight, heaviest first,
// with lexical order as the tie-break, and truncates to the cap.
func topLabels(counts map[string]int, order []string, limit int) []string {
	if len(order) == 0 {
		return nil
	}
	labels := make([]string, len(order))
	copy(labels, order)
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	if limit > 0 && len(labels) > limit {
		labels = labels[:limit]
	}
	return labels
}
