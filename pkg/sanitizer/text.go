package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRun       = regexp.MustCompile(`\s+`)
	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
)

// SingleLine turns line breaks and tabs into spaces and drops every other
// control character.
func SingleLine(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// NormalizeWhitespace collapses whitespace runs into one space and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// MaxLength returns a transform that keeps at most n runes.
func MaxLength(n int) func(string) string {
	return func(s string) string {
		if n <= 0 {
			return ""
		}
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return string(runes[:n])
	}
}

// Filename reduces s to a lowercase, portable file name fragment of at most
// 100 bytes. Empty results fall back to "file".
func Filename(s string) string {
	s = unsafeFilenameChars.ReplaceAllString(NormalizeWhitespace(strings.ToLower(s)), "_")
	s = strings.Trim(s, "._-")
	if len(s) > 100 {
		s = strings.TrimRight(s[:100], "._-")
	}
	if s == "" {
		return "file"
	}
	return s
}

// MaskEmail hides the local part of an address except its first rune,
// for log output. Strings that are not addresses come back unchanged.
func MaskEmail(addr string) string {
	addr = strings.TrimSpace(addr)
	local, domain, ok := strings.Cut(addr, "@")
	if !ok || local == "" || domain == "" {
		return addr
	}
	runes := []rune(local)
	return string(runes[0]) + strings.Repeat("*", len(runes)-1) + "@" + domain
}
