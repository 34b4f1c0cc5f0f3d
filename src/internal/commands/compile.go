package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/dns-blackhole/src/internal/config"
	"github.com/maksimkurb/dns-blackhole/src/internal/errors"
	"github.com/maksimkurb/dns-blackhole/src/internal/lists"
	"github.com/maksimkurb/dns-blackhole/src/internal/log"
)

var _ Runner = (*CompileCommand)(nil)

func CreateCompileCommand() *CompileCommand {
	gc := &CompileCommand{
		fs:  flag.NewFlagSet("dns-blackhole", flag.ExitOnError),
		out: os.Stdout,
	}

	gc.stringFlag(&gc.Input, "Use a local file with blacklist URLs instead of the remote source list", "i", "input")
	gc.stringFlag(&gc.Whitelist, "File with hostname substrings to whitelist (see --whitelist-mode)", "w", "whitelist")
	gc.stringFlag(&gc.Output, fmt.Sprintf("Output filename (default %q)", config.DefaultOutput), "o", "output")
	gc.boolFlag(&gc.Dnsmasq, "Output in dnsmasq.conf compatible format instead of a hosts file", "d", "dnsmasq")
	gc.stringFlag(&gc.ConfigPath, "Path to an optional TOML configuration file", "c", "config")
	gc.stringFlag(&gc.WhitelistMode, "Whitelist behaviour: \"ignore\" or \"substring\" (default \"ignore\")", "whitelist-mode")
	gc.stringFlag(&gc.BlackholeIP, fmt.Sprintf("Address blacklisted hostnames resolve to (default %q)", config.DefaultBlackholeIP), "blackhole-ip")
	gc.boolFlag(&gc.Sort, "Sort output lines by hostname", "sort")
	gc.boolFlag(&gc.Checksum, "Write an MD5 checksum of the output to <output>.md5", "checksum")
	gc.stringFlag(&gc.LogFile, "Also write logs to this file (rotated)", "log-file")
	gc.boolFlag(&gc.Verbose, "Enable debug logging", "v", "verbose")
	gc.boolFlag(&gc.PrintConfig, "Print the effective configuration and exit", "print-config")
	gc.boolFlag(&gc.ShowVersion, "Print version and exit", "version")

	return gc
}

type CompileCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
	out io.Writer

	Input         string
	Whitelist     string
	Output        string
	Dnsmasq       bool
	ConfigPath    string
	WhitelistMode string
	BlackholeIP   string
	Sort          bool
	Checksum      bool
	LogFile       string
	Verbose       bool
	PrintConfig   bool
	ShowVersion   bool

	// aliases maps every flag name to its canonical (first) name.
	aliases map[string]string
}

func (g *CompileCommand) stringFlag(p *string, usage string, names ...string) {
	for _, name := range names {
		g.fs.StringVar(p, name, "", usage)
		g.alias(name, names[0])
	}
}

func (g *CompileCommand) boolFlag(p *bool, usage string, names ...string) {
	for _, name := range names {
		g.fs.BoolVar(p, name, false, usage)
		g.alias(name, names[0])
	}
}

func (g *CompileCommand) alias(name, canonical string) {
	if g.aliases == nil {
		g.aliases = make(map[string]string)
	}
	g.aliases[name] = canonical
}

// explicitFlags returns the canonical names of the flags given on the command line.
func (g *CompileCommand) explicitFlags() map[string]bool {
	set := make(map[string]bool)
	g.fs.Visit(func(f *flag.Flag) {
		set[g.aliases[f.Name]] = true
	})
	return set
}

func (g *CompileCommand) Name() string {
	return g.fs.Name()
}

func (g *CompileCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", g.fs.Args())
	}

	if g.ShowVersion {
		return nil
	}

	// stdout carries the TOML document.
	if g.PrintConfig {
		log.SetForceStdErr(true)
	}

	if g.Verbose {
		log.SetVerbose(true)
	}

	cfg, err := loadConfigOrDefault(g.ConfigPath)
	if err != nil {
		return err
	}

	g.applyFlags(cfg)

	if err := cfg.ValidateConfig(); err != nil {
		return errors.NewValidationError("configuration validation failed", err)
	}

	g.cfg = cfg
	return nil
}

// applyFlags overrides config values with the flags that were set explicitly.
func (g *CompileCommand) applyFlags(cfg *config.Config) {
	explicit := g.explicitFlags()

	if explicit["i"] {
		cfg.General.Input = g.Input
	}
	if explicit["w"] {
		cfg.General.Whitelist = g.Whitelist
	}
	if explicit["o"] {
		cfg.General.Output = g.Output
	}
	if explicit["d"] {
		if g.Dnsmasq {
			cfg.General.Format = config.FormatDnsmasq
		} else {
			cfg.General.Format = config.FormatHosts
		}
	}
	if explicit["whitelist-mode"] {
		cfg.General.WhitelistMode = config.WhitelistMode(g.WhitelistMode)
	}
	if explicit["blackhole-ip"] {
		cfg.General.BlackholeIP = g.BlackholeIP
	}
	if explicit["sort"] {
		cfg.General.SortOutput = g.Sort
	}
	if explicit["checksum"] {
		cfg.General.WriteChecksum = g.Checksum
	}
	if explicit["log-file"] {
		cfg.Log.File = g.LogFile
	}
}

func (g *CompileCommand) Run() error {
	if g.ShowVersion {
		fmt.Fprintf(g.out, "dns-blackhole %s (commit: %s, date: %s)\n", g.ctx.Version, g.ctx.Commit, g.ctx.Date)
		return nil
	}

	if g.PrintConfig {
		buf, err := g.cfg.SerializeConfig()
		if err != nil {
			return fmt.Errorf("failed to serialize config: %v", err)
		}
		_, err = g.out.Write(buf.Bytes())
		return err
	}

	if g.cfg.Log.File != "" {
		if err := log.SetLogFile(g.cfg.Log.FileConfig()); err != nil {
			return err
		}
		defer func() {
			if err := log.CloseLogFile(); err != nil {
				log.Warnf("Failed to close log file: %v", err)
			}
		}()
	}

	fetcher := lists.NewFetcher(g.cfg.HTTPTimeout())
	if _, err := lists.Compile(context.Background(), lists.OptionsFromConfig(g.cfg), fetcher); err != nil {
		return err
	}

	return nil
}

func (g *CompileCommand) SetUsage(usage func()) {
	g.fs.Usage = usage
}

func (g *CompileCommand) PrintDefaults() {
	g.fs.PrintDefaults()
}
