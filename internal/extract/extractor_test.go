package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longLine = "This sentence is comfortably longer than the forty character boilerplate cutoff."

func TestExtract_ArticleContainer(t *testing.T) {
	src := `<html><body>
		<nav>Home About Contact and plenty of other navigation words here</nav>
		<article><p>` + longLine + `</p></article>
		<div class="content"><p>Decoy container text that should never be selected over article.</p></div>
	</body></html>`

	text, ok := Extract(src)
	require.True(t, ok)
	assert.Contains(t, text, "forty character boilerplate cutoff")
	assert.NotContains(t, text, "Decoy container")
	assert.NotContains(t, text, "navigation words")
}

func TestExtract_MainContainer(t *testing.T) {
	src := `<html><body><main><p>` + longLine + `</p></main></body></html>`

	text, ok := Extract(src)
	require.True(t, ok)
	assert.Contains(t, text, "boilerplate cutoff")
}

func TestExtract_ContentSelectors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"class token", `<div class="entry-content extra"><p>` + longLine + `</p></div>`},
		{"id", `<div id="content"><p>` + longLine + `</p></div>`},
		{"blog platform class", `<div class="post-content"><p>` + longLine + `</p></div>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, ok := Extract("<html><body>" + tc.src + "</body></html>")
			require.True(t, ok)
			assert.Contains(t, text, "boilerplate cutoff")
		})
	}
}

func TestExtract_MeaningfulParagraphs(t *testing.T) {
	src := `<html><body>
		<p>short</p>
		<p>` + longLine + `</p>
		<p>` + longLine + ` And a second meaningful paragraph follows it.</p>
	</body></html>`

	text, ok := Extract(src)
	require.True(t, ok)
	assert.Contains(t, text, "second meaningful paragraph")
	assert.NotContains(t, text, "short")
}

func TestExtract_StripsNonContent(t *testing.T) {
	src := `<html><head><style>body { color: red; } /* styling rules long enough */</style></head><body>
		<script>console.log("should never appear in extracted output text");</script>
		<header>Site header words that are long enough to pass the line filter</header>
		<footer>Footer copyright words that are long enough to pass the filter</footer>
		<aside>Sidebar words that are long enough to pass the line filter too</aside>
		<iframe src="x"></iframe>
		<article><p>` + longLine + `</p></article>
	</body></html>`

	text, ok := Extract(src)
	require.True(t, ok)
	assert.NotContains(t, text, "console.log")
	assert.NotContains(t, text, "Site header")
	assert.NotContains(t, text, "Footer copyright")
	assert.NotContains(t, text, "Sidebar")
}

func TestExtract_NoContent(t *testing.T) {
	_, ok := Extract("<html><body><p>tiny</p></body></html>")
	assert.False(t, ok)
}

func TestExtract_EmptyInput(t *testing.T) {
	_, ok := Extract("")
	assert.False(t, ok)
}

func TestExtract_Idempotent(t *testing.T) {
	src := `<html><body><article>
		<p>` + longLine + `</p>
		<p>` + longLine + ` With even more trailing content in this one.</p>
	</article></body></html>`

	first, ok := Extract(src)
	require.True(t, ok)

	// Re-extracting the cleaned output wrapped minimally as HTML must not
	// remove further content.
	again, ok := Extract("<html><body>" + strings.ReplaceAll(first, "\n", "<br>") + "</body></html>")
	require.True(t, ok)
	assert.Equal(t, first, again)
}

func TestNormalize(t *testing.T) {
	t.Run("collapses space runs", func(t *testing.T) {
		in := "word   spaced\t\tout across a line long enough to be kept here"
		assert.Equal(t, "word spaced out across a line long enough to be kept here", Normalize(in))
	})

	t.Run("drops short lines", func(t *testing.T) {
		in := "Menu\nHome\n" + longLine
		assert.Equal(t, longLine, Normalize(in))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
	})
}
