package lists

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/dns-blackhole/src/internal/config"
	"github.com/maksimkurb/dns-blackhole/src/internal/errors"
	"github.com/maksimkurb/dns-blackhole/src/internal/hashing"
	"github.com/maksimkurb/dns-blackhole/src/internal/utils"
)

const (
	TMPL_HOSTNAME = "hostname"
	TMPL_IP       = "ip"
)

var outputTemplates = map[config.Format]*fasttemplate.Template{
	config.FormatHosts:   fasttemplate.New("{{ip}} {{hostname}}\n", "{{", "}}"),
	config.FormatDnsmasq: fasttemplate.New("address=/{{hostname}}/{{ip}}\n", "{{", "}}"),
}

// WriteOptions controls how a HostnameSet is serialized.
type WriteOptions struct {
	Format      config.Format
	BlackholeIP string
	// Sort writes hostnames in lexical order instead of set order.
	Sort bool
	// Exclude, when set, drops every hostname it returns true for.
	Exclude func(hostname string) bool
}

// WriteResult counts what happened to each hostname of the set.
type WriteResult struct {
	Written  int
	Skipped  int // unsupported by the output format
	Excluded int // dropped by WriteOptions.Exclude
	Checksum string
}

// SupportedByDnsmasq reports whether dnsmasq can parse an address=/<hostname>/ line.
func SupportedByDnsmasq(hostname string) bool {
	return !strings.Contains(hostname, "--") && !strings.HasPrefix(hostname, "-")
}

// WriteHostnames writes one line per hostname to w and returns the counts.
func WriteHostnames(w io.Writer, hostnames *HostnameSet, opts WriteOptions) (*WriteResult, error) {
	tmpl, ok := outputTemplates[opts.Format]
	if !ok {
		return nil, errors.NewConfigError(fmt.Sprintf("unsupported output format \"%s\"", opts.Format), nil)
	}

	var members []string
	if opts.Sort {
		members = hostnames.Sorted()
	} else {
		members = hostnames.Hostnames()
	}

	result := &WriteResult{}
	for _, hostname := range members {
		if opts.Exclude != nil && opts.Exclude(hostname) {
			result.Excluded++
			continue
		}

		if opts.Format == config.FormatDnsmasq && !SupportedByDnsmasq(hostname) {
			result.Skipped++
			continue
		}

		if _, err := tmpl.Execute(w, map[string]interface{}{
			TMPL_HOSTNAME: hostname,
			TMPL_IP:       opts.BlackholeIP,
		}); err != nil {
			return result, fmt.Errorf("failed to write hostname \"%s\": %w", hostname, err)
		}
		result.Written++
	}

	return result, nil
}

// WriteOutputFile creates (or truncates) path and writes the hostnames to it.
// With writeChecksum the MD5 of the written content is stored in "<path>.md5".
func WriteOutputFile(path string, hostnames *HostnameSet, opts WriteOptions, writeChecksum bool) (*WriteResult, error) {
	if _, ok := outputTemplates[opts.Format]; !ok {
		return nil, errors.NewConfigError(fmt.Sprintf("unsupported output format \"%s\"", opts.Format), nil)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, errors.NewIOError("failed to create output file", err)
	}
	defer utils.CloseOrWarn(file)

	buffer := bufio.NewWriter(file)
	checksumProxy := hashing.NewMD5WriterProxy(buffer)

	result, err := WriteHostnames(checksumProxy, hostnames, opts)
	if err != nil {
		return nil, errors.NewIOError("failed to write output file", err)
	}

	if err := buffer.Flush(); err != nil {
		return nil, errors.NewIOError("failed to flush output file", err)
	}

	if result.Checksum, err = checksumProxy.GetChecksum(); err != nil {
		return nil, errors.NewInternalError("failed to calculate output checksum", err)
	}

	if writeChecksum {
		if err := hashing.WriteChecksumFile(checksumProxy, path); err != nil {
			return nil, errors.NewIOError("failed to write output checksum", err)
		}
	}

	return result, nil
}
