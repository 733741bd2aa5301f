// backend/utils/text.go
package utils

// Truncate shortens s to at most n characters, counting runes so a
// multi-byte character is never cut in half.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
