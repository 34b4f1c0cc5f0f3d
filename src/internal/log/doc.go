// Package log provides simple leveled logging for dns-blackhole.
//
// Messages are written to stdout with coloured level prefixes
// ([DBG], [INF], [WRN], [ERR]); errors always go to stderr. Debug messages
// are only printed in verbose mode.
//
// # Example Usage
//
//	log.Infof("(%d/%d) Requesting blacklist at: %s", i, n, url)
//	log.SetVerbose(true)
//	log.Debugf("Checksum: %s", sum)
//
// A rotating copy of the log can be kept on disk:
//
//	if err := log.SetLogFile(log.FileConfig{Filename: "/var/log/dns-blackhole.log", MaxSizeMB: 10}); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	defer log.CloseLogFile()
package log
