// ABOUTME: Locator abstraction for HTML extraction over unstable third-party markup
// ABOUTME: An ordered list of candidate locators is tried in sequence; the first non-empty wins

package scrape

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// Locator finds candidate elements in a parsed document. A nil or empty
// selection is not an error; it just means the next locator gets a try.
type Locator func(doc *goquery.Document) *goquery.Selection

// FirstMatch applies locators in order and returns the first non-empty
// selection. Returns an empty selection when nothing matches anywhere, so
// callers can range over it without nil checks.
func FirstMatch(doc *goquery.Document, locators ...Locator) *goquery.Selection {
	for _, locate := range locators {
		if sel := locate(doc); sel != nil && sel.Length() > 0 {
			return sel
		}
	}
	return doc.Find("")
}

// BySelector returns a locator for a plain CSS selector.
func BySelector(selector string) Locator {
	return func(doc *goquery.Document) *goquery.Selection {
		return doc.Find(selector)
	}
}

// ByIDPattern returns a locator matching elements of the given selector whose
// id attribute matches pattern. vBulletin tags interesting elements with
// numeric ids like thread_title_12345 and post_message_67890.
func ByIDPattern(selector string, pattern *regexp.Regexp) Locator {
	return func(doc *goquery.Document) *goquery.Selection {
		return doc.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
			id, ok := s.Attr("id")
			return ok && pattern.MatchString(id)
		})
	}
}

// PreviousMatch walks backwards from sel through preceding siblings at each
// ancestor level and returns the closest earlier element matching selector,
// or nil if none exists. Used to pair a post body with the author block that
// precedes it in the markup.
func PreviousMatch(sel *goquery.Selection, selector string) *goquery.Selection {
	for cur := sel; cur.Length() > 0; cur = cur.Parent() {
		prev := cur.PrevAll()
		for i := 0; i < prev.Length(); i++ {
			sib := prev.Eq(i)
			if sib.Is(selector) {
				return sib
			}
			if found := sib.Find(selector); found.Length() > 0 {
				return found.Last()
			}
		}
	}
	return nil
}
