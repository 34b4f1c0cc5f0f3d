// Package lists compiles remote domain blacklists into a single blackhole file.
//
// The pipeline is strictly sequential:
//
//  1. ResolveSources reads the blacklist URLs from a local file or fetches
//     the remote source list.
//  2. Every blacklist is fetched in order by a ListFetcher; the first failure
//     aborts the run.
//  3. ProcessBlacklist parses "<ip> <hostname>" and "<hostname>" lines into a
//     HostnameSet, skipping blanks, comments and anything else.
//  4. WriteOutputFile renders the set in hosts or dnsmasq format.
//
// Compile runs all of the above:
//
//	stats, err := lists.Compile(ctx, lists.OptionsFromConfig(cfg), lists.NewFetcher(cfg.HTTPTimeout()))
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	log.Infof("Wrote %d hostname blackholes", stats.Written)
package lists
