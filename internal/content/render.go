// Package content renders platform-served markdown for display. Article
// summaries and bodies arrive as untrusted markdown; everything is
// sanitized on the way out.
package content

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
	textStripper  *bluemonday.Policy
	blockTagRe    = regexp.MustCompile(`(?i)</(p|li|h[1-6]|blockquote|pre|tr)>|<br\s*/?>`)
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
	textStripper = bluemonday.StrictPolicy()
}

// RenderHTML converts a markdown string to sanitized HTML.
// Returns empty string for empty input.
func RenderHTML(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return htmlSanitizer.Sanitize(buf.String())
}

// RenderText converts a markdown string to plain terminal text: markdown
// is rendered, tags are stripped, entities are decoded, and block
// boundaries become newlines.
func RenderText(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return strings.TrimSpace(textStripper.Sanitize(src))
	}

	// Preserve paragraph/list boundaries before stripping all tags.
	withBreaks := blockTagRe.ReplaceAllString(buf.String(), "$0\n")
	stripped := textStripper.Sanitize(withBreaks)
	decoded := html.UnescapeString(stripped)

	lines := strings.Split(decoded, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
