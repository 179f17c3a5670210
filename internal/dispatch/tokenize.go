package dispatch

import "strings"

// tokenize splits one input line into whitespace-separated tokens after
// stripping every `"` byte, wherever it occurs. This matches the
// reference parser, which does not require quotes to be paired: a
// stray `"` anywhere in a line simply vanishes before tokenization.
func tokenize(line string) []string {
	stripped := strings.ReplaceAll(line, `"`, "")
	return strings.Fields(stripped)
}
