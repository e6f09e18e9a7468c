package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search returns every line of contents containing query byte for byte.
func Search(query, contents string) []string {
	return filter(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchCaseInsensitive returns every line of contents whose lower-case form
// contains the lower-case form of query. Lines are returned as written.
func SearchCaseInsensitive(query, contents string) []string {
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	return filter(contents, func(line string) bool {
		return strings.Contains(lower.String(line), query)
	})
}

// Lines splits contents at "\n" and "\r\n" terminators. A terminator at the
// very end does not start another line.
func Lines(contents string) []string {
	lines := make([]string, 0, strings.Count(contents, "\n")+1)
	for len(contents) > 0 {
		line, rest, found := strings.Cut(contents, "\n")
		if found {
			line = strings.TrimSuffix(line, "\r")
		}
		lines = append(lines, line)
		contents = rest
	}
	return lines
}

func filter(contents string, keep func(line string) bool) []string {
	results := []string{}
	for _, line := range Lines(contents) {
		if keep(line) {
			results = append(results, line)
		}
	}
	return results
}
