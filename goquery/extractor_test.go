package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("selects main over later candidates", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<article><p>article text</p></article>
			<main><p>main text</p></main>
		</body></html>`

		e := &goquery.Extractor{}
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "main", result.Matched)
		assert.Contains(t, result.ContentHTML, "main text")
		assert.NotContains(t, result.ContentHTML, "article text")
	})

	t.Run("selects article when no main exists", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="content"><p>div text</p></div>
			<article><p>article text</p></article>
		</body></html>`

		e := &goquery.Extractor{}
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "article", result.Matched)
		assert.Contains(t, result.ContentHTML, "article text")
	})

	t.Run("selects role main attribute", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div role="main"><p>role text</p></div></body></html>`

		e := &goquery.Extractor{}
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, `[role="main"]`, result.Matched)
		assert.Contains(t, result.ContentHTML, "role text")
	})

	t.Run("selects content class candidates in order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div class="content"><p>generic content</p></div>
			<div class="post-content"><p>post content</p></div>
		</body></html>`

		e := &goquery.Extractor{}
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, ".post-content", result.Matched)
		assert.Contains(t, result.ContentHTML, "post content")
	})

	t.Run("falls back to body when nothing matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><p>plain text</p></div></body></html>`

		e := &goquery.Extractor{}
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "body", result.Matched)
		assert.Contains(t, result.ContentHTML, "plain text")
	})

	t.Run("removes boilerplate elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<script>var x = 1;</script>
			<style>.a { color: red }</style>
			<nav>navigation</nav>
			<header>page header</header>
			<footer>page footer</footer>
			<p>kept text</p>
		</main></body></html>`

		e := &goquery.Extractor{}
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "kept text")
		assert.NotContains(t, result.ContentHTML, "var x = 1;")
		assert.NotContains(t, result.ContentHTML, "color: red")
		assert.NotContains(t, result.ContentHTML, "navigation")
		assert.NotContains(t, result.ContentHTML, "page header")
		assert.NotContains(t, result.ContentHTML, "page footer")
	})

	t.Run("removes ad and widget noise by class and id", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<div class="advertisement">buy this</div>
			<div class="ad">or this</div>
			<div class="popup">popup</div>
			<div class="modal">modal</div>
			<div class="cookie-banner">cookies</div>
			<div class="newsletter-signup">subscribe</div>
			<div class="ad-banner">class pattern ad</div>
			<div id="ad-slot">id pattern ad</div>
			<div class="social-share">share</div>
			<div class="comments-section">comments</div>
			<p>kept text</p>
		</main></body></html>`

		e := &goquery.Extractor{}
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "kept text")
		for _, noise := range []string{
			"buy this", "or this", "popup", "modal", "cookies",
			"subscribe", "class pattern ad", "id pattern ad", "share", "comments",
		} {
			assert.NotContains(t, result.ContentHTML, noise)
		}
	})

	t.Run("boilerplate removal applies before selection", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<nav><main><p>nav main</p></main></nav>
			<article><p>article text</p></article>
		</body></html>`

		e := &goquery.Extractor{}
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "article", result.Matched)
	})

	t.Run("extra strip selectors are honored", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
			<div class="related-posts">related</div>
			<p>kept text</p>
		</main></body></html>`

		e := &goquery.Extractor{StripSelectors: []string{".related-posts"}}
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "kept text")
		assert.NotContains(t, result.ContentHTML, "related")
	})

	t.Run("extra content selectors are tried after built-ins", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="docs-body"><p>docs text</p></div></body></html>`

		e := &goquery.Extractor{ContentSelectors: []string{".docs-body"}}
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, ".docs-body", result.Matched)
		assert.Contains(t, result.ContentHTML, "docs text")
	})

	t.Run("returns outer HTML of the matched element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main class="wrap"><p>text</p></main></body></html>`

		e := &goquery.Extractor{}
		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, `<main class="wrap">`)
	})
}
