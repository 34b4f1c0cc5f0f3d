package commands

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/dns-blackhole/src/internal/config"
	"github.com/maksimkurb/dns-blackhole/src/internal/log"
)

func init() {
	log.DisableLogs()
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/a.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("127.0.0.1 ads.example.com\n-bad.example.com\n"))
	})
	r.Get("/b.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("tracker.example.net\n"))
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func readSortedLines(t *testing.T, path string) []string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	sort.Strings(lines)
	return lines
}

func initCommand(t *testing.T, args ...string) *CompileCommand {
	t.Helper()

	cmd := CreateCompileCommand()
	if err := cmd.Init(args, &AppContext{Version: "1.0.0", Commit: "abc", Date: "today"}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return cmd
}

func TestCompileCommand_Defaults(t *testing.T) {
	cmd := initCommand(t)

	if cmd.Name() != "dns-blackhole" {
		t.Errorf("Expected name dns-blackhole, got %s", cmd.Name())
	}
	if cmd.cfg.General.Output != config.DefaultOutput {
		t.Errorf("Expected output %s, got %s", config.DefaultOutput, cmd.cfg.General.Output)
	}
	if cmd.cfg.General.Format != config.FormatHosts {
		t.Errorf("Expected hosts format, got %s", cmd.cfg.General.Format)
	}
	if cmd.cfg.General.SourceListURL != config.DefaultSourceListURL {
		t.Errorf("Expected default source list URL, got %s", cmd.cfg.General.SourceListURL)
	}
}

func TestCompileCommand_ShortAndLongFlags(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "sources.txt", "")

	for _, args := range [][]string{
		{"-i", input, "-o", "out.txt", "-d"},
		{"--input", input, "--output", "out.txt", "--dnsmasq"},
	} {
		cmd := initCommand(t, args...)

		if cmd.cfg.General.Input != input {
			t.Errorf("%v: expected input %s, got %s", args, input, cmd.cfg.General.Input)
		}
		if cmd.cfg.General.Output != "out.txt" {
			t.Errorf("%v: expected output out.txt, got %s", args, cmd.cfg.General.Output)
		}
		if cmd.cfg.General.Format != config.FormatDnsmasq {
			t.Errorf("%v: expected dnsmasq format, got %s", args, cmd.cfg.General.Format)
		}
	}
}

func TestCompileCommand_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.toml", `
[general]
output = "from-config.txt"
format = "dnsmasq"
blackhole_ip = "0.0.0.0"
sort_output = true
`)

	cmd := initCommand(t, "-c", configPath, "-o", "from-flag.txt")

	if cmd.cfg.General.Output != "from-flag.txt" {
		t.Errorf("Expected flag output to win, got %s", cmd.cfg.General.Output)
	}
	// Not given on the command line, so the config file values stay.
	if cmd.cfg.General.Format != config.FormatDnsmasq {
		t.Errorf("Expected dnsmasq format from config, got %s", cmd.cfg.General.Format)
	}
	if cmd.cfg.General.BlackholeIP != "0.0.0.0" {
		t.Errorf("Expected blackhole IP from config, got %s", cmd.cfg.General.BlackholeIP)
	}
	if !cmd.cfg.General.SortOutput {
		t.Error("Expected sort_output from config to be kept")
	}
}

func TestCompileCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()

	cmd := CreateCompileCommand()
	err := cmd.Init([]string{"-i", filepath.Join(dir, "missing.txt")}, &AppContext{})
	if err == nil {
		t.Fatal("Expected validation error for missing input file")
	}
	if !strings.Contains(err.Error(), "file does not exist") {
		t.Errorf("Unexpected error: %v", err)
	}

	cmd = CreateCompileCommand()
	if err := cmd.Init([]string{"--whitelist-mode", "regex"}, &AppContext{}); err == nil {
		t.Error("Expected validation error for unknown whitelist mode")
	}

	cmd = CreateCompileCommand()
	if err := cmd.Init([]string{"unexpected"}, &AppContext{}); err == nil {
		t.Error("Expected error for positional arguments")
	}
}

func TestCompileCommand_MissingWhitelist(t *testing.T) {
	server := newTestServer(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "sources.txt", server.URL+"/b.txt\n")
	whitelist := filepath.Join(dir, "nope.txt")
	output := filepath.Join(dir, "hosts.blackholed")

	cmd := initCommand(t, "-i", input, "-w", whitelist, "-o", output)
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if lines := readSortedLines(t, output); len(lines) != 1 || lines[0] != "127.0.0.1 tracker.example.net" {
		t.Errorf("Unexpected output: %q", lines)
	}

	cmd = CreateCompileCommand()
	err := cmd.Init([]string{"-i", input, "-w", whitelist, "--whitelist-mode", "substring"}, &AppContext{})
	if err == nil {
		t.Fatal("Expected validation error for missing whitelist in substring mode")
	}
	if !strings.Contains(err.Error(), "general.whitelist: file does not exist") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestCompileCommand_Version(t *testing.T) {
	cmd := initCommand(t, "--version")

	var out bytes.Buffer
	cmd.out = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if out.String() != "dns-blackhole 1.0.0 (commit: abc, date: today)\n" {
		t.Errorf("Unexpected version output: %q", out.String())
	}
}

func TestCompileCommand_PrintConfig(t *testing.T) {
	cmd := initCommand(t, "--print-config", "--blackhole-ip", "0.0.0.0")
	t.Cleanup(func() { log.SetForceStdErr(false) })

	var out bytes.Buffer
	cmd.out = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(out.String(), "blackhole_ip = '0.0.0.0'") {
		t.Errorf("Expected serialized blackhole_ip, got:\n%s", out.String())
	}
}

func TestCompileCommand_Run(t *testing.T) {
	server := newTestServer(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "sources.txt", fmt.Sprintf("%s/a.txt\n%s/b.txt\n", server.URL, server.URL))
	output := filepath.Join(dir, "dnsmasq.conf")

	cmd := initCommand(t, "-i", input, "-o", output, "-d", "--checksum", "--log-file", filepath.Join(dir, "run.log"))
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	expected := []string{
		"address=/ads.example.com/127.0.0.1",
		"address=/tracker.example.net/127.0.0.1",
	}
	lines := readSortedLines(t, output)
	if strings.Join(lines, "|") != strings.Join(expected, "|") {
		t.Errorf("Expected %v, got %v", expected, lines)
	}

	if _, err := os.Stat(output + ".md5"); err != nil {
		t.Errorf("Expected checksum file: %v", err)
	}
}

func TestCompileCommand_RunFailsOnFetchError(t *testing.T) {
	server := newTestServer(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "sources.txt", server.URL+"/a.txt\n"+server.URL+"/missing.txt\n")
	output := filepath.Join(dir, "hosts.blackholed")

	cmd := initCommand(t, "-i", input, "-o", output)
	err := cmd.Run()
	if err == nil {
		t.Fatal("Expected fetch error")
	}
	if !strings.Contains(err.Error(), "Status code - 404") {
		t.Errorf("Unexpected error: %v", err)
	}

	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("Expected no output file, got %v", err)
	}
}
