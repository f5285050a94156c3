package htmlutil

import (
	"bytes"
	"regexp"
	"strings"

	"ncaa-rosters/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// Text returns the cleaned text content of the whole selection.
func Text(sel *goquery.Selection) string {
	if sel == nil {
		return ""
	}
	var buffer bytes.Buffer
	for _, n := range sel.Nodes {
		getTextRecursive(n, &buffer)
	}
	return textutil.Clean(buffer.String())
}

func attr(node *html.Node, key string) (string, bool) {
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// ClassMatches reports whether any single class token of the element matches
// the pattern.
func ClassMatches(node *html.Node, pattern *regexp.Regexp) bool {
	if node == nil || node.Type != html.ElementNode {
		return false
	}
	class, ok := attr(node, "class")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(class) {
		if pattern.MatchString(token) {
			return true
		}
	}
	return false
}

// IDMatches reports whether the id attribute of the element matches the pattern.
func IDMatches(node *html.Node, pattern *regexp.Regexp) bool {
	if node == nil || node.Type != html.ElementNode {
		return false
	}
	id, ok := attr(node, "id")
	return ok && pattern.MatchString(id)
}

// FindByClass returns every element under sel with one of the given tag names
// (all tags when none are given) whose class matches the pattern, in document order.
func FindByClass(sel *goquery.Selection, pattern *regexp.Regexp, tags ...string) *goquery.Selection {
	return findMatching(sel, tags, func(n *html.Node) bool {
		return ClassMatches(n, pattern)
	})
}

// FindByID is FindByClass for the id attribute.
func FindByID(sel *goquery.Selection, pattern *regexp.Regexp, tags ...string) *goquery.Selection {
	return findMatching(sel, tags, func(n *html.Node) bool {
		return IDMatches(n, pattern)
	})
}

func findMatching(sel *goquery.Selection, tags []string, match func(*html.Node) bool) *goquery.Selection {
	selector := "*"
	if len(tags) > 0 {
		selector = strings.Join(tags, ",")
	}
	return sel.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return match(s.Get(0))
	})
}
