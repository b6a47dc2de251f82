package generator

import (
	"fmt"
	"strings"

	"copydesk/internal/store"
)

const articleSystemPrompt = `You write long-form articles for a content team.
Respond with a single JSON object containing these keys:
  "title"             - the article headline
  "meta_description"  - under 160 characters, for search snippets
  "body"              - the full article in Markdown
Leave "long_description" and "short_description" as empty strings.
Do not include any text outside the JSON object.`

const productSystemPrompt = `You write product copy for an online catalog.
Respond with a single JSON object containing these keys:
  "title"             - the product name as a headline
  "meta_description"  - under 160 characters, for search snippets
  "long_description"  - several paragraphs in Markdown
  "short_description" - one or two sentences
Leave "body" as an empty string.
Do not include any text outside the JSON object.`

func systemPrompt(kind store.Kind) (string, error) {
	switch kind {
	case store.KindArticle:
		return articleSystemPrompt, nil
	case store.KindProduct:
		return productSystemPrompt, nil
	default:
		return "", fmt.Errorf("unsupported content kind %q", kind)
	}
}

func userPrompt(params Params) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", strings.TrimSpace(params.Topic))
	if len(params.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(params.Keywords, ", "))
	}
	if tone := strings.TrimSpace(params.Tone); tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", tone)
	}
	if lang := strings.TrimSpace(params.Language); lang != "" {
		fmt.Fprintf(&b, "Language: %s\n", lang)
	}
	return strings.TrimSpace(b.String())
}
