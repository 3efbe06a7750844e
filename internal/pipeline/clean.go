package pipeline

import (
	"regexp"
	"strings"
)

// cleanRule is one substitution in the cleaning sequence.
type cleanRule struct {
	re   *regexp.Regexp
	repl string
}

// cleanRules are applied in order, globally. Later rules act on the residue
// of earlier ones, so the sequence must not be reordered: tag spans have to
// go before the malformed-leftover rules, and entity removal before the
// dangling-numeric-entity rule.
var cleanRules = []cleanRule{
	// Comment fragments. Deliberately without the <> delimiters so literal
	// "!--...--" text left behind by a broken feed is stripped too.
	{regexp.MustCompile(`!--.*?--`), ""},

	// Well-formed tag spans.
	{regexp.MustCompile(`<[^>]*>`), ""},

	// Malformed and partial tag leftovers (feeds emit these without quotes).
	{regexp.MustCompile(`div class=\s*\w+`), ""},
	{regexp.MustCompile(`span class=\s*\w+`), ""},
	{regexp.MustCompile(`a href=\s*[^\s>]+`), ""},
	{regexp.MustCompile(`/div`), ""},
	{regexp.MustCompile(`/span`), ""},
	{regexp.MustCompile(`/a`), ""},
	{regexp.MustCompile(`/p`), ""},

	// Stray tag-name tokens once the brackets are gone.
	{regexp.MustCompile(`\bp\b`), ""},
	{regexp.MustCompile(`\bmd\b`), ""},
	{regexp.MustCompile(`\bbr\b`), ""},

	// Entities, then dangling numeric fragments left by half-stripped ones.
	{regexp.MustCompile(`&[a-zA-Z0-9#]+;`), " "},
	{regexp.MustCompile(`#\d+;`), ""},

	// Feed boilerplate.
	{regexp.MustCompile(`submitted by`), ""},
	{regexp.MustCompile(`\[link\]`), ""},
	{regexp.MustCompile(`\[comments\]`), ""},

	// Collapse whitespace runs.
	{regexp.MustCompile(`\s+`), " "},
}

// CleanContent strips markup artifacts and feed boilerplate from free-text
// lead content. Matching is literal, case-sensitive, and order-dependent.
func CleanContent(text string) string {
	if text == "" {
		return ""
	}
	for _, r := range cleanRules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return strings.TrimSpace(text)
}
