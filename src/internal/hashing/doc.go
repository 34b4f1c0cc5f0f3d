// Package hashing provides MD5 checksum calculation utilities.
//
// ChecksumReaderProxy hashes a fetched blacklist body while it is read, and
// ChecksumWriterProxy hashes the compiled output while it is written so a
// "<output>.md5" sidecar can be stored next to it.
//
//	proxy := hashing.NewMD5ReaderProxy(resp.Body)
//	content, _ := io.ReadAll(proxy)
//	checksum, _ := proxy.GetChecksum()
package hashing
