package web

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// The parser and policy are built once; both are safe for concurrent use.
var (
	markdownOnce   sync.Once
	markdownParser goldmark.Markdown
	sanitizer      *bluemonday.Policy
)

func getMarkdown() (goldmark.Markdown, *bluemonday.Policy) {
	markdownOnce.Do(func() {
		markdownParser = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
			),
		)
		sanitizer = bluemonday.UGCPolicy()
	})
	return markdownParser, sanitizer
}

// renderSummary renders a proposal summary. Summaries often arrive with
// escaped newlines ("\\n"), which are restored before parsing.
func renderSummary(summary string) template.HTML {
	if summary == "" {
		return ""
	}

	md, policy := getMarkdown()

	var buf bytes.Buffer
	err := md.Convert([]byte(strings.ReplaceAll(summary, `\n`, "\n")), &buf)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(summary))
	}

	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}
