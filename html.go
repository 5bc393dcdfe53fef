package speedreading

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

func loadHTML(_ context.Context, src Source) (string, error) {
	doc, err := html.Parse(bytes.NewReader(src.Data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	root := findElement(doc, "body")
	if root == nil {
		root = doc
	}

	var b strings.Builder
	collectText(root, &b)
	return strings.TrimSpace(b.String()), nil
}

// collectText appends the readable text below n, leaving a space after
// block elements so their words do not run together.
func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		if skipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			b.WriteString("\n")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}

	if n.Type == html.ElementNode && isBlockElement(n.Data) {
		b.WriteString(" ")
	}
}

func skipElement(tag string) bool {
	switch tag {
	case "head", "title", "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

func isBlockElement(tag string) bool {
	switch tag {
	case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "td", "th",
		"blockquote", "pre", "article", "section", "header", "footer", "dd", "dt":
		return true
	}
	return false
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
