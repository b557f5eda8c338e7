package format

import "strings"

// FormatNumberString inserts thousands separators into a string of decimal
// digits. Input that is not purely digits is returned unchanged.
//
// Parameters:
//   - s: The digits to group, most significant first.
//
// Returns:
//   - string: The grouped number, e.g. "6,765" for "6765".
func FormatNumberString(s string) string {
	if len(s) <= 3 || strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + (len(s)-1)/3)
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// TruncateDigits shortens s to its first and last edge characters joined by
// "..." when it is longer than limit. Shorter values are returned as is.
func TruncateDigits(s string, limit, edge int) string {
	if len(s) <= limit || 2*edge >= len(s) {
		return s
	}
	return s[:edge] + "..." + s[len(s)-edge:]
}
