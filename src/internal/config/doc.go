// Package config handles the optional TOML configuration file for dns-blackhole.
//
// Settings are layered: DefaultConfig, then the TOML file (if any), then
// command-line flags. ValidateConfig reports every problem at once, using
// the TOML key names in field paths:
//
//	[general]
//	output = "/etc/dnsmasq.d/blackhole.conf"
//	format = "dnsmasq"
//	blackhole_ip = "0.0.0.0"
//
//	[log]
//	file = "/var/log/dns-blackhole.log"
package config
