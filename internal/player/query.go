package player

import "strings"

// Engine prefixes the audio backend resolves natively.
var searchPrefixes = []string{"ytsearch:", "ytmsearch:", "scsearch:", "spsearch:"}

// BuildSearchQuery normalizes raw user input into a backend query. URLs and
// already-prefixed engine searches pass through unchanged; anything else
// becomes a YouTube search.
func BuildSearchQuery(input string) string {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return input
	}
	for _, prefix := range searchPrefixes {
		if strings.HasPrefix(input, prefix) {
			return input
		}
	}
	return "ytsearch:" + input
}
