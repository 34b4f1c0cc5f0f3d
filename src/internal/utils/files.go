package utils

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/maksimkurb/dns-blackhole/src/internal/log"
)

func CloseOrWarn(file io.Closer) {
	if err := file.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}

// SplitLines splits text on every line boundary: "\n", "\r\n", "\r", "\v",
// "\f", the file/group/record separators (0x1c-0x1e), NEL (U+0085) and the
// Unicode line and paragraph separators. A trailing line break does not
// produce an empty last element and empty text yields no lines.
func SplitLines(text string) []string {
	var lines []string

	start := 0
	for i, r := range text {
		if i < start || !isLineBreak(r) {
			continue
		}

		lines = append(lines, text[start:i])
		start = i + utf8.RuneLen(r)
		if r == '\r' && strings.HasPrefix(text[start:], "\n") {
			start++
		}
	}

	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// ReadLines reads a whole text file and returns its lines (see SplitLines).
func ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(content)), nil
}
