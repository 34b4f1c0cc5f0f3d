// Package utils provides small helpers shared across dns-blackhole:
// path resolution relative to the config directory, line splitting that
// accepts LF, CRLF and CR endings, and closing files with a logged warning.
package utils
