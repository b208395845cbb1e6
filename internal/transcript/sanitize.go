package transcript

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reNBSP       = regexp.MustCompile(" ")
	reControl    = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
)

// Sanitize normalizes raw transcript text so it is safe to embed in a prompt.
// Conservative: keeps line breaks; collapses >2 newlines into a single blank
// line. Total and idempotent; always returns a string, possibly empty.
func Sanitize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reNBSP.ReplaceAllString(s, " ")
	s = reControl.ReplaceAllString(s, "")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	// trim trailing spaces on lines
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	s = strings.Join(lines, "\n")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
