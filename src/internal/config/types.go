package config

import (
	"path/filepath"
	"time"

	"github.com/maksimkurb/dns-blackhole/src/internal/log"
	"github.com/maksimkurb/dns-blackhole/src/internal/utils"
)

// Format selects the output serialization.
type Format string

const (
	FormatHosts   Format = "hosts"
	FormatDnsmasq Format = "dnsmasq"
)

// WhitelistMode selects what is done with the whitelist file.
type WhitelistMode string

const (
	// WhitelistIgnore loads the whitelist but never applies it.
	WhitelistIgnore WhitelistMode = "ignore"
	// WhitelistSubstring drops every hostname that contains a whitelist entry.
	WhitelistSubstring WhitelistMode = "substring"
)

const (
	DefaultSourceListURL = "https://v.firebog.net/hosts/lists.php?type=tick"
	DefaultBlackholeIP   = "127.0.0.1"
	DefaultOutput        = "hosts.blackholed"
)

type Config struct {
	// General holds the compile settings.
	General GeneralConfig `toml:"general"`
	// Log holds the optional log file settings.
	Log LogConfig `toml:"log"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// SourceListURL is the remote list of blacklist URLs, used when Input is empty.
	SourceListURL string `toml:"source_list_url" json:"source_list_url" validate:"required,source_url"`
	// Input is a local file with one blacklist URL per line (optional).
	Input string `toml:"input" json:"input"`
	// Whitelist is a file with hostname substrings to keep out of the output (optional).
	Whitelist string `toml:"whitelist" json:"whitelist"`
	// WhitelistMode is "ignore" (default) or "substring".
	WhitelistMode WhitelistMode `toml:"whitelist_mode" json:"whitelist_mode" validate:"required,oneof=ignore substring"`
	// Output is the path of the compiled file (default: hosts.blackholed).
	Output string `toml:"output" json:"output" validate:"required"`
	// Format is "hosts" (default) or "dnsmasq".
	Format Format `toml:"format" json:"format" validate:"required,oneof=hosts dnsmasq"`
	// BlackholeIP is the address every blacklisted hostname resolves to (default: 127.0.0.1).
	BlackholeIP string `toml:"blackhole_ip" json:"blackhole_ip" validate:"required,ip"`
	// SortOutput writes hostnames in lexical order instead of set order.
	SortOutput bool `toml:"sort_output" json:"sort_output"`
	// WriteChecksum stores an MD5 of the output in "<output>.md5".
	WriteChecksum bool `toml:"write_checksum" json:"write_checksum"`
	// HTTPTimeoutSeconds limits each request (0 = no timeout).
	HTTPTimeoutSeconds int `toml:"http_timeout_seconds" json:"http_timeout_seconds" validate:"gte=0"`
}

type LogConfig struct {
	// File is the path of a rotating log file (optional).
	File string `toml:"file" json:"file"`
	// MaxSizeMB is the size at which the log file is rotated (default: 10).
	MaxSizeMB int `toml:"max_size_mb" json:"max_size_mb" validate:"gte=0"`
	// MaxBackups is the number of rotated files to keep (default: 3).
	MaxBackups int `toml:"max_backups" json:"max_backups" validate:"gte=0"`
	// MaxAgeDays is the number of days to keep rotated files (default: 28).
	MaxAgeDays int `toml:"max_age_days" json:"max_age_days" validate:"gte=0"`
	// Compress gzips rotated files (default: true).
	Compress bool `toml:"compress" json:"compress"`
}

// DefaultConfig returns the built-in settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			SourceListURL: DefaultSourceListURL,
			WhitelistMode: WhitelistIgnore,
			Output:        DefaultOutput,
			Format:        FormatHosts,
			BlackholeIP:   DefaultBlackholeIP,
		},
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}

// GetConfigDir returns the directory of the loaded config file, or "" for defaults.
func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(c._absConfigFilePath)
}

// ResolvePath makes paths from the config file relative to its directory.
func (c *Config) ResolvePath(path string) string {
	if path == "" || c.GetConfigDir() == "" {
		return path
	}
	return utils.GetAbsolutePath(path, c.GetConfigDir())
}

func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.General.HTTPTimeoutSeconds) * time.Second
}

func (l LogConfig) FileConfig() log.FileConfig {
	return log.FileConfig{
		Filename:   l.File,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
}
