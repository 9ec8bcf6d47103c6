// Package markdown renders the optional per-page notes written in Markdown.
package markdown

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var notes = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// RenderNotes converts a Markdown note to HTML. Raw HTML in the source is
// omitted by goldmark's default renderer, so the result is safe to embed.
// Blank input yields an empty fragment.
func RenderNotes(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := notes.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	// #nosec G203 -- goldmark escapes text and drops raw HTML without html.WithUnsafe.
	return template.HTML(buf.String()), nil
}
