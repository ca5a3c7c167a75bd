package tutor

import "regexp"

// The model is told not to emit LaTeX dollar delimiters, but it still slips
// sometimes. These strip the delimiters while keeping the content inside.
var (
	reDoubleDollar = regexp.MustCompile(`\$\$([\s\S]*?)\$\$`)
	reSingleDollar = regexp.MustCompile(`\$([\s\S]*?)\$`)
	reBracket      = regexp.MustCompile(`\\\[([\s\S]*?)\\\]`)
	reParen        = regexp.MustCompile(`\\\(([\s\S]*?)\\\)`)
)

// SanitizeMath removes LaTeX math delimiters from model output. Double
// dollars go first so `$$x$$` does not degrade into stray single dollars.
func SanitizeMath(text string) string {
	text = reDoubleDollar.ReplaceAllString(text, "$1")
	text = reSingleDollar.ReplaceAllString(text, "$1")
	text = reBracket.ReplaceAllString(text, "$1")
	text = reParen.ReplaceAllString(text, "$1")
	return text
}
