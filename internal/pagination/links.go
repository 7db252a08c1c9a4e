package pagination

import "fmt"

// Links are the navigation links of one page of a collection.
type Links struct {
	Self  string `json:"self"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
}

// BuildLinks returns the links for the page at offset when the collection size is
// unknown. Next is always present, even on what turns out to be the last page, and
// first/last are omitted.
//
// offset must be a non-negative multiple of pageSize and pageSize must be positive;
// prev is computed as offset-pageSize without clamping.
func BuildLinks(baseURL string, offset, pageSize int) Links {
	links := baseLinks(baseURL, offset, pageSize)
	links.Next = pageURL(baseURL, offset+pageSize, pageSize)
	return links
}

// BuildCountedLinks returns the links for the page at offset of a collection holding
// count items. Next is present only while offset+pageSize < count, and first/last are
// always present. The same offset precondition as BuildLinks applies.
func BuildCountedLinks(baseURL string, offset, pageSize, count int) Links {
	links := baseLinks(baseURL, offset, pageSize)
	if offset+pageSize < count {
		links.Next = pageURL(baseURL, offset+pageSize, pageSize)
	}
	links.First = pageURL(baseURL, 0, pageSize)
	links.Last = pageURL(baseURL, (count/pageSize)*pageSize, pageSize)
	return links
}

func baseLinks(baseURL string, offset, pageSize int) Links {
	links := Links{Self: pageURL(baseURL, offset, pageSize)}
	if offset != 0 {
		links.Prev = pageURL(baseURL, offset-pageSize, pageSize)
	}
	return links
}

func pageURL(baseURL string, offset, limit int) string {
	return fmt.Sprintf("%s?offset=%d&limit=%d", baseURL, offset, limit)
}
