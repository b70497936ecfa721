package components

import (
	"bytes"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var (
	markdownOnce sync.Once
	markdown     goldmark.Markdown
)

// md returns the shared converter. Raw HTML in the source is not rendered.
func md() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdown = goldmark.New(goldmark.WithExtensions(extension.Typographer, extension.Linkify))
	})
	return markdown
}

// RenderMarkdown converts catalog prose to HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := md().Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Markdown renders src inside a prose container. When conversion fails the
// source is shown as plain text.
func Markdown(src string, class string) g.Node {
	out, err := RenderMarkdown(src)
	if err != nil {
		return h.Div(h.Class(class), h.P(g.Text(src)))
	}
	return h.Div(h.Class(class), g.Raw(out))
}
