// Package htmltomarkdown converts HTML content to Markdown text.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagemd"
	"golang.org/x/net/html"
)

// strippedTags produce no output even when they survive content
// extraction.
var strippedTags = []string{"script", "style", "nav", "header", "footer"}

// removeTagsPlugin registers tags to be removed during conversion.
type removeTagsPlugin struct {
	tags []string
}

func (p *removeTagsPlugin) Name() string {
	return "remove-tags"
}

func (p *removeTagsPlugin) Init(conv *converter.Converter) error {
	for _, tag := range p.tags {
		conv.Register.TagType(tag, converter.TagTypeRemove, converter.PriorityStandard)
	}
	return nil
}

// Ensure Converter implements pagemd.Converter at compile time.
var _ pagemd.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter producing ATX headings and "-"
// bullets, with custom rendering for pre blocks and cleared images.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle("atx"),
				commonmark.WithBulletListMarker("-"),
			),
			table.NewTablePlugin(),
			&removeTagsPlugin{tags: strippedTags},
		),
	)

	// PriorityEarly (100) runs before the commonmark plugin (PriorityStandard 500).
	conv.Register.RendererFor("pre", converter.TagTypeBlock, renderPre, converter.PriorityEarly)
	conv.Register.RendererFor("img", converter.TagTypeInline, renderImage, converter.PriorityEarly)

	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagemd.Errorf(pagemd.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// renderPre writes pre content verbatim when it was already folded into
// fence text upstream, marked by a data-fenced attribute. Everything else
// is deferred to the standard code block renderer.
func renderPre(ctx converter.Context, w converter.Writer, node *html.Node) converter.RenderStatus {
	if dom.GetAttributeOr(node, "data-fenced", "") == "" {
		return converter.RenderTryNext
	}

	text := dom.CollectText(node)
	if strings.TrimSpace(text) == "" {
		return converter.RenderSuccess
	}

	w.WriteString("\n\n")
	w.WriteString(text)
	w.WriteString("\n\n")
	return converter.RenderSuccess
}

// renderImage suppresses images whose src was cleared and defers everything
// else to the standard renderer.
func renderImage(ctx converter.Context, w converter.Writer, node *html.Node) converter.RenderStatus {
	if dom.GetAttributeOr(node, "src", "") == "" {
		return converter.RenderSuccess
	}
	return converter.RenderTryNext
}
