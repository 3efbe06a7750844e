package pipeline

import (
	"strings"

	"github.com/sells-group/leads-cli/internal/model"
)

const maxContentLen = 300

// Normalize reshapes a raw lead into the fixed record the frontend
// consumes. Absent fields get defaults; present fields pass through, so an
// explicitly empty title stays empty.
func Normalize(l model.Lead) model.NormalizedLead {
	n := model.NormalizedLead{
		ID:        l.Str("executionId"),
		Title:     strOr(l, "title", "Untitled"),
		Subreddit: strings.ReplaceAll(l.Str("subreddit"), "r/", ""),
		Author:    strings.ReplaceAll(l.Str("author"), "u/", ""),
		Link:      l.Str("link"),
		Priority:  strOr(l, "priority", "Medium"),
		Score:     l.Num("score"),
		Location:  l.Str("location"),
		FoundAt:   l.Str("foundAt"),
		PubDate:   l.Str("pubDate"),
	}

	if content := l.Str("content"); content != "" {
		n.Content = truncate(CleanContent(content), maxContentLen)
	}

	// highKeywords wins over keywords when the origin node set it.
	if _, ok := l["highKeywords"]; ok {
		n.Keywords = l.Str("highKeywords")
	} else {
		n.Keywords = l.Str("keywords")
	}

	return n
}

// strOr returns the field's string value, or def when the field is absent or
// not a string.
func strOr(l model.Lead, key, def string) string {
	v, ok := l[key]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// truncate cuts s to at most n runes. Content is user text, so the cut is by
// character, not byte.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
