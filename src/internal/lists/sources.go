package lists

import (
	"context"
	"strings"

	"github.com/maksimkurb/dns-blackhole/src/internal/errors"
	"github.com/maksimkurb/dns-blackhole/src/internal/log"
	"github.com/maksimkurb/dns-blackhole/src/internal/utils"
)

// ResolveSources returns the blacklist URLs to fetch, in order.
//
// With a non-empty input path every line of that file is used; otherwise the
// remote source list at sourceListURL is fetched. Lines are trimmed but never
// filtered, so a blank or comment line becomes a (failing) URL.
func ResolveSources(ctx context.Context, input, sourceListURL string, fetcher ListFetcher) ([]string, error) {
	var lines []string

	if input != "" {
		log.Infof("Opening blacklist-list file at: %s", input)

		fileLines, err := utils.ReadLines(input)
		if err != nil {
			return nil, errors.NewIOError("failed to read blacklist-list file", err)
		}
		lines = fileLines
	} else {
		log.Infof("Requesting blacklist-list at: %s", sourceListURL)

		result, err := fetcher.Fetch(ctx, sourceListURL)
		if err != nil {
			return nil, err
		}
		lines = result.Lines
	}

	urls := make([]string, len(lines))
	for i, line := range lines {
		urls[i] = strings.TrimSpace(line)
	}

	return urls, nil
}
