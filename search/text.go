package search

import (
	"regexp"
	"strings"
)

// tokenPattern matches alphanumeric runs including the Swedish vowels
// å, ä and ö. SSYK titles and descriptions are Swedish text.
var tokenPattern = regexp.MustCompile(`[0-9a-zA-ZåäöÅÄÖ]+`)

// Tokenize lowercases text and splits it into alphanumeric runs.
// The same rule applies to corpus entries at build time and to queries
// at ranking time, so lexical matching sees identical token shapes.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
