package search

// Searcher returns the lines of contents that match query, in source order.
type Searcher interface {
	Search(query, contents string) []string
}

// New returns the case-insensitive Searcher when ignoreCase is set and the
// exact one otherwise.
func New(ignoreCase bool) Searcher {
	if ignoreCase {
		return caseInsensitive{}
	}
	return caseSensitive{}
}

type caseSensitive struct{}

func (caseSensitive) Search(query, contents string) []string {
	return Search(query, contents)
}

type caseInsensitive struct{}

func (caseInsensitive) Search(query, contents string) []string {
	return SearchCaseInsensitive(query, contents)
}
