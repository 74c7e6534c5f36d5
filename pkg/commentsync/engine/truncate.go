package engine

// DefaultTruncateLength is the snapshot length used in merge details.
const DefaultTruncateLength = 50

// Ellipsis marks truncated text.
const Ellipsis = "..."

// Truncate shortens s to n characters followed by Ellipsis when it is
// longer than n characters. Length is counted in runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		n = DefaultTruncateLength
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + Ellipsis
}
