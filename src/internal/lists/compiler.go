package lists

import (
	"context"
	"fmt"

	"github.com/maksimkurb/dns-blackhole/src/internal/config"
	"github.com/maksimkurb/dns-blackhole/src/internal/log"
)

// Options is everything a single compile run needs.
type Options struct {
	// Input is a local source list file; when empty SourceListURL is fetched.
	Input         string
	SourceListURL string
	Whitelist     string
	WhitelistMode config.WhitelistMode
	Output        string
	WriteChecksum bool
	Write         WriteOptions
}

// OptionsFromConfig maps a validated configuration onto compile options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Input:         cfg.General.Input,
		SourceListURL: cfg.General.SourceListURL,
		Whitelist:     cfg.General.Whitelist,
		WhitelistMode: cfg.General.WhitelistMode,
		Output:        cfg.General.Output,
		WriteChecksum: cfg.General.WriteChecksum,
		Write: WriteOptions{
			Format:      cfg.General.Format,
			BlackholeIP: cfg.General.BlackholeIP,
			Sort:        cfg.General.SortOutput,
		},
	}
}

// Stats summarizes a finished compile run.
type Stats struct {
	Sources     int
	LinesRead   int
	Hostnames   int
	Written     int
	Skipped     int
	Whitelisted int
	Checksum    string
}

// Compile resolves the source list, fetches and parses every blacklist in
// order, then writes the deduplicated hostnames to opts.Output.
//
// The first failure aborts the run; the output file is only created after
// every source was fetched successfully.
func Compile(ctx context.Context, opts Options, fetcher ListFetcher) (*Stats, error) {
	writeOpts := opts.Write

	if opts.Whitelist != "" {
		if opts.WhitelistMode == config.WhitelistSubstring {
			whitelist, err := LoadWhitelist(opts.Whitelist)
			if err != nil {
				return nil, err
			}

			log.Infof("Loaded %d whitelist entries from %s", whitelist.Len(), opts.Whitelist)
			writeOpts.Exclude = whitelist.Matches
		} else {
			// Ignore mode never opens the file.
			log.Warnf("Whitelist %s is not applied, set whitelist mode to \"%s\" to enable it",
				opts.Whitelist, config.WhitelistSubstring)
		}
	}

	sources, err := ResolveSources(ctx, opts.Input, opts.SourceListURL, fetcher)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve blacklist sources: %w", err)
	}

	stats := &Stats{Sources: len(sources)}
	hostnames := NewHostnameSet()

	for i, url := range sources {
		log.Infof("(%d/%d) Requesting blacklist at: %s", i+1, len(sources), url)

		result, err := fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("(%d/%d) failed to fetch blacklist: %w", i+1, len(sources), err)
		}

		log.Infof("Got %d hostnames to add to blacklist", len(result.Lines))
		log.Debugf("Blacklist %s: %d bytes, MD5 %s", url, result.Size, result.Checksum)

		added := ProcessBlacklist(result.Lines, hostnames)
		stats.LinesRead += len(result.Lines)

		log.Debugf("Blacklist %s added %d new hostnames (%d total)", url, added, hostnames.Len())
	}

	stats.Hostnames = hostnames.Len()

	log.Infof("Opening %s", opts.Output)
	result, err := WriteOutputFile(opts.Output, hostnames, writeOpts, opts.WriteChecksum)
	if err != nil {
		return nil, err
	}

	stats.Written = result.Written
	stats.Skipped = result.Skipped
	stats.Whitelisted = result.Excluded
	stats.Checksum = result.Checksum

	if result.Skipped > 0 {
		log.Debugf("Skipped %d hostnames unsupported by %s format", result.Skipped, writeOpts.Format)
	}
	if result.Excluded > 0 {
		log.Infof("Whitelist removed %d hostnames", result.Excluded)
	}
	log.Infof("Wrote %d hostname blackholes", result.Written)

	return stats, nil
}
