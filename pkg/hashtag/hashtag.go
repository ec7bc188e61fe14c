// Package hashtag extracts hashtags from caption text.
package hashtag

import "regexp"

// tagPattern matches a '#' followed by word characters (letters, digits,
// underscore). Unicode classes rather than \w: Go's \w is ASCII-only and
// would truncate tags like #café or #日本. The capture group excludes
// the '#'.
var tagPattern = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// Extract returns every hashtag in text, in order of appearance, with case
// preserved and duplicates kept. Duplicates matter downstream: hashtag
// ranking counts total occurrences, not unique posts. Empty input yields
// an empty slice.
func Extract(text string) []string {
	if text == "" {
		return []string{}
	}

	matches := tagPattern.FindAllStringSubmatch(text, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}
