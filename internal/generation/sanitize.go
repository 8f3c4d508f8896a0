package generation

import "strings"

// fence is the markdown code block delimiter models wrap JSON in even
// when instructed not to.
const fence = "```"

// languageTag is the fence language identifier recognized after an opener.
const languageTag = "json"

// Sanitize strips markdown fence markers from a raw model response and
// returns the trimmed remainder. It removes every occurrence of a
// json-tagged opener (case-insensitive, with optional spacing between the
// backticks and the tag) and every bare closer. The function is total and
// idempotent: text without markers comes back trimmed but otherwise
// unchanged, and sanitizing twice equals sanitizing once.
func Sanitize(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))

	i := 0
	for i < len(raw) {
		if !strings.HasPrefix(raw[i:], fence) {
			sb.WriteByte(raw[i])
			i++
			continue
		}
		i += len(fence)

		// Consume an optional language tag directly after the opener.
		j := i
		for j < len(raw) && (raw[j] == ' ' || raw[j] == '\t') {
			j++
		}
		if hasLanguageTag(raw[j:]) {
			i = j + len(languageTag)
		}
	}

	return strings.TrimSpace(sb.String())
}

// hasLanguageTag reports whether s starts with the json tag followed by a
// word boundary, so "jsonp" is left alone.
func hasLanguageTag(s string) bool {
	if len(s) < len(languageTag) {
		return false
	}
	if !strings.EqualFold(s[:len(languageTag)], languageTag) {
		return false
	}
	if len(s) == len(languageTag) {
		return true
	}
	next := s[len(languageTag)]
	return !isWordByte(next)
}

func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '_':
		return true
	}
	return false
}
