// Package arabic builds match patterns that treat interchangeable Arabic
// letterforms as equivalent. Readers spell hamza-bearing letters
// inconsistently, so a search for one variant must match all of them.
package arabic

import (
	"regexp"
	"strings"
)

// Hamza equivalence classes. Each member of a class expands to the full
// class in the generated pattern.
const (
	alefClass = "[اأإآ]"
	wawClass  = "[وؤ]"
	yaClass   = "[يئ]"
)

var classByRune = map[rune]string{
	'ا': alefClass, // bare alef
	'أ': alefClass, // alef with hamza above
	'إ': alefClass, // alef with hamza below
	'آ': alefClass, // alef with madda
	'و': wawClass,  // bare waw
	'ؤ': wawClass,  // waw with hamza
	'ي': yaClass,   // bare ya
	'ئ': yaClass,   // ya with hamza
}

// NormalizePattern converts raw query text into a regular-expression
// fragment suitable for case-insensitive substring matching. Each rune
// belonging to an equivalence class is replaced by the class exactly once,
// in a single left-to-right scan; sequential whole-string replacement would
// re-substitute runes inside previously emitted classes. All other runes
// are escaped so user input cannot inject regex syntax.
func NormalizePattern(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if class, ok := classByRune[r]; ok {
			b.WriteString(class)
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}

	return b.String()
}

// Matches reports whether the given text contains a case-insensitive
// substring match for the normalized form of term. The document store
// evaluates the same pattern server-side; this helper exists for in-process
// checks and tests.
func Matches(term, text string) bool {
	re, err := regexp.Compile("(?i)" + NormalizePattern(term))
	if err != nil {
		return false
	}
	return re.MatchString(text)
}
