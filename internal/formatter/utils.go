package formatter

import (
	"fmt"

	"github.com/yildizm/swdex/internal/emoji"
)

// formatNumber formats numbers with commas for readability
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return addCommas(fmt.Sprintf("%d", n))
}

// addCommas adds commas to number strings
func addCommas(s string) string {
	if len(s) <= 3 {
		return s
	}
	return addCommas(s[:len(s)-3]) + "," + s[len(s)-3:]
}

// pluralize renders n with the matching noun
func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return formatNumber(n) + " " + plural
}

// emojiDisabled follows the process-wide --no-emoji setting
func emojiDisabled() bool {
	return emoji.IsEmojiDisabled()
}
