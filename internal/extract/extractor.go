// Package extract pulls readable article text out of raw HTML.
//
// Extraction runs an ordered cascade of strategies, first non-empty match
// wins: a semantic <article> container, a semantic <main> container, a
// fixed list of content selectors used by common blogging platforms, all
// paragraph elements with meaningful text, and finally every visible text
// node. The input document is stripped of non-content subtrees before any
// strategy runs.
package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// minParagraphChars is the threshold for a <p> element to count as content.
const minParagraphChars = 50

// minLineChars is the threshold below which a normalised line is dropped
// as navigation or boilerplate.
const minLineChars = 40

// strippedTags are removed from the parse tree before extraction.
var strippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"iframe":   true,
	"svg":      true,
}

// contentSelectors are class/id patterns used by common blogging platforms,
// tried in order after the semantic containers.
var contentSelectors = []string{
	"post-content", "entry-content", "article-content",
	"content", "post", "entry", "blog-post",
}

var spaceRuns = regexp.MustCompile(`[ \t]+`)

// Extract returns the readable text of an HTML document and true, or
// ("", false) when no strategy yields any text. Callers treat false as
// "no content from this page", not a fatal condition.
func Extract(htmlSrc string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(htmlSrc))
	if err != nil {
		return "", false
	}

	stripNonContent(doc)

	// Strategy 1 and 2: semantic containers.
	for _, tag := range []string{"article", "main"} {
		if node := findElement(doc, tag); node != nil {
			if text := Normalize(nodeText(node)); text != "" {
				return text, true
			}
		}
	}

	// Strategy 3: common content class/id selectors.
	for _, selector := range contentSelectors {
		if node := findBySelector(doc, selector); node != nil {
			if text := Normalize(nodeText(node)); text != "" {
				return text, true
			}
		}
	}

	// Strategy 4: meaningful paragraphs.
	var paragraphs []string
	collectParagraphs(doc, &paragraphs)
	if len(paragraphs) > 0 {
		if text := Normalize(strings.Join(paragraphs, "\n")); text != "" {
			return text, true
		}
	}

	// Strategy 5: all visible text.
	if text := Normalize(nodeText(doc)); text != "" {
		return text, true
	}

	return "", false
}

// Normalize collapses space runs within lines, drops lines shorter than
// minLineChars (navigation fragments), and rejoins with newlines.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(spaceRuns.ReplaceAllString(line, " "))
		if len(line) >= minLineChars {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// stripNonContent removes script/style/nav and similar subtrees in place.
func stripNonContent(n *html.Node) {
	var next *html.Node
	for child := n.FirstChild; child != nil; child = next {
		next = child.NextSibling
		if child.Type == html.ElementNode && strippedTags[child.Data] {
			n.RemoveChild(child)
			continue
		}
		stripNonContent(child)
	}
}

// findElement returns the first element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// findBySelector returns the first element whose id equals selector or
// whose class attribute contains selector as a token.
func findBySelector(n *html.Node, selector string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			switch attr.Key {
			case "id":
				if attr.Val == selector {
					return n
				}
			case "class":
				for _, class := range strings.Fields(attr.Val) {
					if class == selector {
						return n
					}
				}
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findBySelector(child, selector); found != nil {
			return found
		}
	}
	return nil
}

// collectParagraphs gathers the text of <p> elements above the content
// threshold.
func collectParagraphs(n *html.Node, out *[]string) {
	if n.Type == html.ElementNode && n.Data == "p" {
		text := strings.TrimSpace(nodeText(n))
		if len(text) > minParagraphChars {
			*out = append(*out, text)
		}
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectParagraphs(child, out)
	}
}

// blockTags start a new output line when text is flattened.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "hr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "tr": true, "blockquote": true, "pre": true,
	"table": true, "section": true, "article": true, "main": true,
}

// nodeText flattens a subtree to text, inserting newlines at block elements.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	writeNodeText(n, &sb)
	return sb.String()
}

func writeNodeText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteByte('\n')
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		writeNodeText(child, sb)
	}
	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteByte('\n')
	}
}
