package reportparse

import (
	"regexp"
	"strings"
)

// classAttrPattern matches double-quoted class attributes in a serialized
// fragment. goquery re-serializes attributes with double quotes, so this
// covers every class list in a preserved module.
var classAttrPattern = regexp.MustCompile(`class="([^"]*)"`)

// classSubstitutions remaps utility class tokens in preserved module
// fragments so colors and emphasis stay consistent regardless of which
// badge classification the original markup encoded. The set is fixed and
// order-independent; tokens are rewritten whole, so bg-gray-500 is not
// re-expanded when it is already fully qualified.
var classSubstitutions = map[string]string{
	// Heading emphasis and source-link colors collapse to the product accent.
	"text-red-600":  "text-violet-600",
	"text-blue-600": "text-violet-600",
	// Categorical badge backgrounds: country, industry, general.
	"bg-green": "bg-sky-600",
	"bg-tan":   "bg-cyan-600",
	"bg-gray":  "bg-gray-500",
	// Fixed-height badge spans need vertical centering outside the
	// original layout context.
	"h-7": "h-7 flex items-center",
}

// substituteClasses applies the cosmetic class substitutions to a preserved
// HTML fragment. Only the stored fragment is affected; extracted plain-text
// fields are taken from the DOM before serialization.
func substituteClasses(fragment string) string {
	return classAttrPattern.ReplaceAllStringFunc(fragment, func(attr string) string {
		inner := attr[len(`class="`) : len(attr)-1]
		tokens := strings.Fields(inner)
		for i, token := range tokens {
			if replacement, ok := classSubstitutions[token]; ok {
				tokens[i] = replacement
			}
		}
		return `class="` + strings.Join(tokens, " ") + `"`
	})
}
