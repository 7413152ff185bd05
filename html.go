package epub

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// headingAtoms is the set of heading elements considered when deriving a
// chapter title from its markup.
var headingAtoms = map[atom.Atom]bool{
	atom.H1: true,
	atom.H2: true,
	atom.H3: true,
	atom.H4: true,
	atom.H5: true,
	atom.H6: true,
}

// extractTitle derives a display title from rendered chapter markup: the
// <title> text when non-empty, otherwise the text of the first heading.
// Returns "" when neither yields text or the markup cannot be parsed.
func extractTitle(markup []byte) string {
	doc, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		return ""
	}

	if n := findNode(doc, func(n *html.Node) bool { return n.DataAtom == atom.Title }); n != nil {
		if t := nodeText(n); t != "" {
			return t
		}
	}
	if n := findNode(doc, func(n *html.Node) bool { return headingAtoms[n.DataAtom] }); n != nil {
		return nodeText(n)
	}
	return ""
}

// findNode walks the tree depth-first and returns the first element node
// matching the predicate, or nil.
func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

// nodeText concatenates the text content of n's subtree, collapsing runs of
// whitespace to single spaces.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
