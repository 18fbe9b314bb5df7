// Package pipeline wires the collectors, the aggregator, and the
// report assembler into a single one-shot scan. Collector failures are
// logged and contribute zero evidence; a machine with nothing to read
// still produces a complete (empty) report.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/glotscan/glotscan/internal/collect"
	"github.com/glotscan/glotscan/internal/common"
	"github.com/glotscan/glotscan/internal/domainlang"
	"github.com/glotscan/glotscan/internal/evidence"
	"github.com/glotscan/glotscan/internal/lang"
	"github.com/glotscan/glotscan/internal/report"
)

// Options configures a scan. The zero value scans everything with
// unlimited history and uncapped examples.
type Options struct {
	// ExampleCap bounds the example labels kept per aggregated entry;
	// zero or negative means unlimited.
	ExampleCap int
	// HistoryLimit bounds the rows read per history database.
	HistoryLimit int
	// MusicDir overrides the music folder; empty means the default.
	MusicDir string
	// TablesPath points at a YAML rules file replacing the built-in
	// domain tables; empty means the defaults.
	TablesPath string
	// Sources restricts the artifact collectors to the named subset
	// (firefox, chrome, steam, music-folder); empty enables all.
	Sources []string
	// Logger receives collector warnings; nil means slog.Default().
	Logger *slog.Logger
}

// Pipeline runs a scan. Fields are exported so tests can assemble one
// around fake collectors and providers.
type Pipeline struct {
	Provider   collect.Provider
	Collectors []collect.Collector
	ExampleCap int
	Logger     *slog.Logger
}

// New assembles the default pipeline for the host platform.
func New(opts Options) (*Pipeline, error) {
	resolver, err := domainlang.Load(opts.TablesPath)
	if err != nil {
		return nil, fmt.Errorf("loading domain tables: %w", err)
	}

	music := collect.NewMusic()
	if opts.MusicDir != "" {
		music.Dir = opts.MusicDir
	}

	all := []collect.Collector{
		collect.NewFirefox(resolver, opts.HistoryLimit),
		collect.NewChrome(resolver, opts.HistoryLimit),
		collect.NewSteam(),
		music,
	}

	collectors, err := filterCollectors(all, opts.Sources)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Pipeline{
		Provider:   collect.NewProvider(),
		Collectors: collectors,
		ExampleCap: opts.ExampleCap,
		Logger:     logger,
	}, nil
}

func filterCollectors(all []collect.Collector, names []string) ([]collect.Collector, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]collect.Collector, len(all))
	for _, c := range all {
		byName[c.Name()] = c
	}
	var out []collect.Collector
	for _, name := range names {
		c, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown source %q", name)
		}
		out = append(out, c)
	}
	return out, nil
}

// Run performs the scan: every collector in turn, then the platform
// provider's own signals, one aggregation pass, one report. Run never
// fails; the worst outcome is an empty report.
func (p *Pipeline) Run(ctx context.Context) *report.Report {
	var items []evidence.Evidence
	for _, c := range p.Collectors {
		timer := common.NewNamedTimer(c.Name())
		got, err := c.Collect(ctx)
		timer.Stop()
		if err != nil {
			p.Logger.Warn("collector failed, continuing without it",
				slog.String("collector", c.Name()), slog.Any("error", err))
		}
		items = append(items, got...)
		p.Logger.Debug("collector finished",
			slog.String("collector", c.Name()),
			slog.Int("evidence", len(got)),
			slog.Duration("took", timer.Duration()))
	}

	rawLocale := p.Provider.SystemLocale()
	localeCode := lang.Normalize(rawLocale)
	if localeCode != "" {
		items = append(items, evidence.Evidence{
			Code:   localeCode,
			Source: evidence.SourceLocale,
			Weight: 1,
			Label:  rawLocale,
		})
	}
	for _, raw := range p.Provider.InstalledLocales() {
		code := lang.Normalize(raw)
		if code == "" || code == "c" || code == "posix" {
			continue
		}
		items = append(items, evidence.Evidence{
			Code:   code,
			Source: evidence.SourceLocale,
			Weight: 1,
			Label:  raw,
		})
	}

	agg := evidence.Aggregate(items, p.ExampleCap)
	// Key layouts reach the report as metadata only, never as evidence.
	meta := report.Meta{
		OS:              p.Provider.OSName(),
		LocaleRaw:       rawLocale,
		LocaleCode:      localeCode,
		KeyboardLayouts: p.Provider.KeyboardLayouts(),
	}
	return report.Build(agg, meta)
}
