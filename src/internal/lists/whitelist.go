package lists

import (
	"strings"

	"github.com/samber/lo"

	"github.com/maksimkurb/dns-blackhole/src/internal/errors"
	"github.com/maksimkurb/dns-blackhole/src/internal/utils"
)

// Whitelist holds hostname substrings that must not be blackholed.
type Whitelist struct {
	substrings []string
}

// NewWhitelist keeps the trimmed, non-empty, non-comment entries.
func NewWhitelist(entries []string) *Whitelist {
	return &Whitelist{
		substrings: lo.FilterMap(entries, func(entry string, _ int) (string, bool) {
			entry = strings.TrimSpace(entry)
			return entry, entry != "" && !strings.HasPrefix(entry, "#")
		}),
	}
}

func LoadWhitelist(path string) (*Whitelist, error) {
	lines, err := utils.ReadLines(path)
	if err != nil {
		return nil, errors.NewIOError("failed to read whitelist file", err)
	}
	return NewWhitelist(lines), nil
}

func (w *Whitelist) Len() int {
	return len(w.substrings)
}

// Matches reports whether hostname contains any whitelist entry.
func (w *Whitelist) Matches(hostname string) bool {
	return lo.SomeBy(w.substrings, func(substring string) bool {
		return strings.Contains(hostname, substring)
	})
}
