package lists

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseLine extracts the hostname from a single blacklist line.
//
// Accepted shapes are "<ip> <hostname>" and "<hostname>". Blank lines,
// single-character lines, comments and lines with any other number of
// whitespace-separated tokens yield no hostname.
func ParseLine(line string) (string, bool) {
	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)

	if utf8.RuneCountInString(stripped) <= 1 {
		return "", false
	}
	if stripped[0] == '#' {
		return "", false
	}

	fields := strings.Fields(stripped)
	switch len(fields) {
	case 2:
		return fields[1], true
	case 1:
		return fields[0], true
	default:
		return "", false
	}
}

// ProcessBlacklist parses every line into hostnames and returns how many of
// them were new to the set.
func ProcessBlacklist(lines []string, hostnames *HostnameSet) int {
	added := 0
	for _, line := range lines {
		if hostname, ok := ParseLine(line); ok && hostnames.Add(hostname) {
			added++
		}
	}
	return added
}
