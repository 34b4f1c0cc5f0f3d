package lists

import (
	"slices"

	"github.com/samber/lo"
)

// HostnameSet is an insert-only set of blacklisted hostnames.
type HostnameSet struct {
	hostnames map[string]struct{}
}

func NewHostnameSet() *HostnameSet {
	return &HostnameSet{
		hostnames: make(map[string]struct{}),
	}
}

// Add inserts hostname and reports whether it was not present before.
func (s *HostnameSet) Add(hostname string) bool {
	if _, exists := s.hostnames[hostname]; exists {
		return false
	}
	s.hostnames[hostname] = struct{}{}
	return true
}

func (s *HostnameSet) Contains(hostname string) bool {
	_, exists := s.hostnames[hostname]
	return exists
}

func (s *HostnameSet) Len() int {
	return len(s.hostnames)
}

// Hostnames returns the members in unspecified order.
func (s *HostnameSet) Hostnames() []string {
	return lo.Keys(s.hostnames)
}

// Sorted returns the members in lexical order.
func (s *HostnameSet) Sorted() []string {
	hostnames := s.Hostnames()
	slices.Sort(hostnames)
	return hostnames
}
