// Package writing holds the text rules shared by the editor-facing
// parts of the backend.
package writing

import "strings"

// WordCount counts whitespace-delimited tokens in content. Empty and
// all-whitespace content count as zero words. Thai prose is often
// written without spaces between words; like the rest of the app this
// counts space-separated runs, not linguistic words.
func WordCount(content string) int {
	return len(strings.Fields(content))
}
