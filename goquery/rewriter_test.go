package goquery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/goquery"
	"github.com/fwojciec/pagemd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriter_Rewrite(t *testing.T) {
	t.Parallel()

	unresolved := &mock.ImageLocalizer{
		LocalizeFn: func(ctx context.Context, src string) (*pagemd.LocalizedImage, error) {
			return nil, nil
		},
	}

	t.Run("keeps external image references", func(t *testing.T) {
		t.Parallel()

		r := &goquery.Rewriter{Images: unresolved}
		out, rewrites, err := r.Rewrite(context.Background(), `<html><body><img src="https://cdn.example.com/a.png" alt="a"></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, out, `src="https://cdn.example.com/a.png"`)
		require.Len(t, rewrites, 1)
		assert.Equal(t, "https://cdn.example.com/a.png", rewrites[0].Source)
		assert.Equal(t, "https://cdn.example.com/a.png", rewrites[0].Target)
		assert.False(t, rewrites[0].Localized)
	})

	t.Run("drops data URI references", func(t *testing.T) {
		t.Parallel()

		r := &goquery.Rewriter{Images: unresolved}
		out, rewrites, err := r.Rewrite(context.Background(), `<html><body><img src="data:image/png;base64,AAAA"></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, out, `src=""`)
		assert.NotContains(t, out, "base64")
		require.Len(t, rewrites, 1)
		assert.Empty(t, rewrites[0].Target)
		assert.False(t, rewrites[0].Localized)
	})

	t.Run("localizes resolvable local references", func(t *testing.T) {
		t.Parallel()

		images := &mock.ImageLocalizer{
			LocalizeFn: func(ctx context.Context, src string) (*pagemd.LocalizedImage, error) {
				assert.Equal(t, "./assets/photo.png", src)
				return &pagemd.LocalizedImage{Path: "images/photo.png", Copied: true}, nil
			},
		}

		r := &goquery.Rewriter{Images: images}
		out, rewrites, err := r.Rewrite(context.Background(), `<html><body><img src="./assets/photo.png" alt="p"></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, out, `src="images/photo.png"`)
		require.Len(t, rewrites, 1)
		assert.Equal(t, "./assets/photo.png", rewrites[0].Source)
		assert.Equal(t, "images/photo.png", rewrites[0].Target)
		assert.True(t, rewrites[0].Localized)
		assert.True(t, rewrites[0].Copied)
	})

	t.Run("keeps unresolved local references unchanged", func(t *testing.T) {
		t.Parallel()

		r := &goquery.Rewriter{Images: unresolved}
		out, rewrites, err := r.Rewrite(context.Background(), `<html><body><img src="gone/mystery.png"></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, out, `src="gone/mystery.png"`)
		require.Len(t, rewrites, 1)
		assert.Equal(t, "gone/mystery.png", rewrites[0].Target)
		assert.False(t, rewrites[0].Localized)
	})

	t.Run("ignores images without src", func(t *testing.T) {
		t.Parallel()

		r := &goquery.Rewriter{Images: unresolved}
		out, rewrites, err := r.Rewrite(context.Background(), `<html><body><img alt="decorative"><img src=""></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, rewrites)
		assert.NotContains(t, out, `alt="Image"`)
	})

	t.Run("fills missing alt text", func(t *testing.T) {
		t.Parallel()

		r := &goquery.Rewriter{Images: unresolved}
		out, _, err := r.Rewrite(context.Background(), `<html><body>
			<img src="https://example.com/no-alt.png">
			<img src="https://example.com/empty-alt.png" alt="">
			<img src="https://example.com/has-alt.png" alt="kept">
		</body></html>`)

		require.NoError(t, err)
		assert.Contains(t, out, `src="https://example.com/no-alt.png" alt="Image"`)
		assert.Contains(t, out, `src="https://example.com/empty-alt.png" alt="Image"`)
		assert.Contains(t, out, `alt="kept"`)
	})

	t.Run("propagates localizer errors", func(t *testing.T) {
		t.Parallel()

		images := &mock.ImageLocalizer{
			LocalizeFn: func(ctx context.Context, src string) (*pagemd.LocalizedImage, error) {
				return nil, errors.New("disk full")
			},
		}

		r := &goquery.Rewriter{Images: images}
		_, _, err := r.Rewrite(context.Background(), `<html><body><img src="local.png"></body></html>`)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("folds code blocks into fenced text", func(t *testing.T) {
		t.Parallel()

		r := &goquery.Rewriter{Images: unresolved}
		out, _, err := r.Rewrite(context.Background(), `<html><body><pre><code class="language-python">print(1)</code></pre></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, out, "```python\nprint(1)\n```")
		assert.Contains(t, out, `data-fenced="true"`)
		assert.NotContains(t, out, "<code")
	})

	t.Run("detects lang- prefixed classes", func(t *testing.T) {
		t.Parallel()

		r := &goquery.Rewriter{Images: unresolved}
		out, _, err := r.Rewrite(context.Background(), `<html><body><pre><code class="hljs lang-go">a := 1</code></pre></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, out, "```go\na := 1\n```")
	})

	t.Run("fences without language when no class matches", func(t *testing.T) {
		t.Parallel()

		r := &goquery.Rewriter{Images: unresolved}
		out, _, err := r.Rewrite(context.Background(), `<html><body><pre><code class="hljs">plain()</code></pre></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, out, "```\nplain()\n```")
	})

	t.Run("leaves pre without code child alone", func(t *testing.T) {
		t.Parallel()

		r := &goquery.Rewriter{Images: unresolved}
		out, _, err := r.Rewrite(context.Background(), `<html><body><pre>raw text</pre></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, out, "<pre>raw text</pre>")
		assert.NotContains(t, out, "data-fenced")
	})

	t.Run("records every image with a non-empty src in order", func(t *testing.T) {
		t.Parallel()

		r := &goquery.Rewriter{Images: unresolved}
		_, rewrites, err := r.Rewrite(context.Background(), `<html><body>
			<img src="https://example.com/one.png">
			<img>
			<img src="data:image/gif;base64,BB">
			<img src="two.png">
		</body></html>`)

		require.NoError(t, err)
		require.Len(t, rewrites, 3)
		assert.Equal(t, "https://example.com/one.png", rewrites[0].Source)
		assert.Equal(t, "data:image/gif;base64,BB", rewrites[1].Source)
		assert.Equal(t, "two.png", rewrites[2].Source)
	})
}
