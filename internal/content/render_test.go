package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHTML_BasicMarkdown(t *testing.T) {
	out := RenderHTML("# Título\n\nTexto com **negrito**.")

	assert.Contains(t, out, "<h1>Título</h1>")
	assert.Contains(t, out, "<strong>negrito</strong>")
}

func TestRenderHTML_Empty(t *testing.T) {
	assert.Equal(t, "", RenderHTML(""))
}

func TestRenderHTML_StripsScripts(t *testing.T) {
	out := RenderHTML("Olá <script>alert('xss')</script> mundo")

	assert.NotContains(t, out, "<script")
	assert.Contains(t, out, "Olá")
	assert.Contains(t, out, "mundo")
}

func TestRenderHTML_GFMTables(t *testing.T) {
	out := RenderHTML("| a | b |\n|---|---|\n| 1 | 2 |")

	assert.Contains(t, out, "<table>")
}

func TestRenderText_ParagraphBoundaries(t *testing.T) {
	out := RenderText("# Título\n\nPrimeiro parágrafo.\n\nSegundo parágrafo.")

	lines := strings.Split(out, "\n")
	assert.Equal(t, []string{"Título", "Primeiro parágrafo.", "Segundo parágrafo."}, lines)
}

func TestRenderText_ListItems(t *testing.T) {
	out := RenderText("- um\n- dois\n- três")

	assert.Equal(t, "um\ndois\ntrês", out)
}

func TestRenderText_DecodesEntities(t *testing.T) {
	out := RenderText("uso &amp; abuso")

	assert.Equal(t, "uso & abuso", out)
}

func TestRenderText_Empty(t *testing.T) {
	assert.Equal(t, "", RenderText(""))
}

func TestRenderText_StripsInlineMarkup(t *testing.T) {
	out := RenderText("Texto com **negrito** e [link](https://example.org).")

	assert.Equal(t, "Texto com negrito e link.", out)
}
