package lists

import (
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
		ok       bool
	}{
		{"Empty line", "", "", false},
		{"Whitespace only", "   \t ", "", false},
		{"Single character", "a", "", false},
		{"Single character after whitespace", "   x", "", false},
		{"Single multibyte character", "ж", "", false},
		{"Comment", "# comment", "", false},
		{"Indented comment", "   #127.0.0.1 ads.example.com", "", false},
		{"Hosts format", "127.0.0.1 ads.example.com", "ads.example.com", true},
		{"Hosts format with tabs", "0.0.0.0\t\tads.example.com", "ads.example.com", true},
		{"Hosts format with leading whitespace", "  127.0.0.1   ads.example.com  ", "ads.example.com", true},
		{"Bare hostname", "tracker.example.net", "tracker.example.net", true},
		{"Bare hostname with trailing whitespace", "tracker.example.net \r", "tracker.example.net", true},
		{"Two characters", "ab", "ab", true},
		{"Inline comment makes three tokens", "127.0.0.1 ads.example.com #ads", "", false},
		{"Three tokens", "127.0.0.1 a.example.com b.example.com", "", false},
		{"No normalization", "ADS.Example.COM.", "ADS.Example.COM.", true},
		{"Hash inside hostname", "ads#1.example.com", "ads#1.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hostname, ok := ParseLine(tt.line)
			if ok != tt.ok {
				t.Errorf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if hostname != tt.expected {
				t.Errorf("Expected hostname '%s', got '%s'", tt.expected, hostname)
			}
		})
	}
}

func TestProcessBlacklist(t *testing.T) {
	hostnames := NewHostnameSet()

	lines := []string{
		"# comment",
		"",
		"127.0.0.1 ads.example.com",
		"tracker.example.net",
		"127.0.0.1 ads.example.com",
	}

	added := ProcessBlacklist(lines, hostnames)

	if added != 2 {
		t.Errorf("Expected 2 new hostnames, got %d", added)
	}

	if hostnames.Len() != 2 {
		t.Errorf("Expected set size 2, got %d", hostnames.Len())
	}

	for _, hostname := range []string{"ads.example.com", "tracker.example.net"} {
		if !hostnames.Contains(hostname) {
			t.Errorf("Expected set to contain '%s'", hostname)
		}
	}
}

func TestProcessBlacklist_AccumulatesAcrossSources(t *testing.T) {
	hostnames := NewHostnameSet()

	ProcessBlacklist([]string{"a.example.com", "b.example.com"}, hostnames)
	added := ProcessBlacklist([]string{"0.0.0.0 b.example.com", "c.example.com"}, hostnames)

	if added != 1 {
		t.Errorf("Expected 1 new hostname from second source, got %d", added)
	}

	if hostnames.Len() != 3 {
		t.Errorf("Expected set size 3, got %d", hostnames.Len())
	}
}

func TestProcessBlacklist_Empty(t *testing.T) {
	hostnames := NewHostnameSet()

	if added := ProcessBlacklist(nil, hostnames); added != 0 {
		t.Errorf("Expected 0 new hostnames, got %d", added)
	}
}
