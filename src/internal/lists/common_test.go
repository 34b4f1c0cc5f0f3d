package lists

import (
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/dns-blackhole/src/internal/log"
)

func init() {
	log.DisableLogs()
}

// newListServer serves every path of routes as text/plain with status 200.
// Unknown paths return 404, paths in failing return 500.
func newListServer(t *testing.T, routes map[string]string, failing ...string) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	for path, body := range routes {
		body := body
		r.Get(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(body))
		})
	}
	for _, path := range failing {
		r.Get(path, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Server Error", http.StatusInternalServerError)
		})
	}

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// readLineSet returns the non-empty lines of a file, sorted, for order-insensitive comparison.
func readLineSet(t *testing.T, path string) []string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}

	return sortedLines(string(content))
}

func sortedLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	sort.Strings(lines)
	return lines
}
