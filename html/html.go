/*
Package html creates lists of strings from the textual content of HTML.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/varray"
	"golang.org/x/net/html"
)

// tracer writes to trace with key 'varray'
func tracer() tracing.Trace {
	return tracing.Select("varray")
}

// InnerText creates a list of the text nodes of an HTML element and all
// its descendents, in document order. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, split at element boundaries. Text nodes consisting of
// white space only are skipped.
func InnerText(n *html.Node) (*varray.List[string], error) {
	if n == nil {
		return nil, varray.ErrIllegalArguments
	}
	b := varray.NewBuilder[string]()
	collectText(n, b)
	return b.List(), nil
}

func collectText(n *html.Node, b *varray.Builder[string]) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style":
			return
		}
	} else if n.Type == html.TextNode {
		if strings.TrimSpace(n.Data) != "" {
			if err := b.Append(n.Data); err != nil {
				tracer().Errorf("html: %v", err)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML creates a list from the textual content of an HTML fragment.
// It does not interpret layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*varray.List[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := varray.NewBuilder[string]()
	for _, n := range nodes {
		collectText(n, b)
	}
	return b.List(), nil
}
