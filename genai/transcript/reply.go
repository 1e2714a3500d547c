package transcript

import "strings"

// ExtractReply turns raw backend output into a single reply line: the echoed
// context is stripped when present, then the first line of what remains is
// trimmed.
func ExtractReply(raw, context string) string {
	remainder := strings.TrimPrefix(raw, context)
	remainder = strings.TrimSpace(remainder)
	if i := strings.IndexByte(remainder, '\n'); i >= 0 {
		remainder = remainder[:i]
	}
	return strings.TrimSpace(remainder)
}
