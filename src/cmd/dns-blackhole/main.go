package main

import (
	"fmt"
	"os"

	"github.com/maksimkurb/dns-blackhole/src/internal/commands"
	"github.com/maksimkurb/dns-blackhole/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	cmd := commands.CreateCompileCommand()
	cmd.SetUsage(func() {
		fmt.Fprintf(os.Stderr, "DNS blackhole list compiler\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Downloads every blacklist named by the source list and writes the\n")
		fmt.Fprintf(os.Stderr, "merged hostnames as a hosts file or a dnsmasq configuration.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		cmd.PrintDefaults()
	})

	if err := cmd.Init(os.Args[1:], ctx); err != nil {
		log.Fatalf("Failed to initialize command: %v", err)
	}

	if err := cmd.Run(); err != nil {
		log.Fatalf("Failed to run command: %v", err)
	}
}
