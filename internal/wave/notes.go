package wave

import "strings"

// ParseNotes decodes a wave note section into a flat key/value map. The
// note is line-oriented text separated by carriage returns; each line
// with a colon contributes one entry, split on the first colon with both
// sides trimmed. Lines without a colon are ignored. Duplicate keys keep
// the last value seen.
//
// ParseNotes never fails: a missing or malformed note yields an empty or
// partial map, and lookups fall back to defaults downstream.
func ParseNotes(note []byte) map[string]string {
	notes := make(map[string]string)
	for _, line := range strings.Split(string(note), "\r") {
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		notes[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return notes
}
