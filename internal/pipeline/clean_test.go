package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanContent_Empty(t *testing.T) {
	assert.Equal(t, "", CleanContent(""))
}

func TestCleanContent_PlainTextUntouched(t *testing.T) {
	assert.Equal(t, "Looking for a plumber in Mesa", CleanContent("Looking for a plumber in Mesa"))
}

func TestCleanContent_IdempotentOnCleanText(t *testing.T) {
	s := "Need a quote for house painting, any recommendations?"
	once := CleanContent(s)
	assert.Equal(t, once, CleanContent(once))
}

func TestCleanContent_TagsEntitiesBoilerplate(t *testing.T) {
	got := CleanContent("<p>Hello &amp; welcome [link] submitted by bob</p>")
	assert.Equal(t, "Hello welcome bob", got)
}

func TestCleanContent_CommentFragments(t *testing.T) {
	// The pattern intentionally omits the <> delimiters, so bare fragments
	// are stripped as well.
	assert.Equal(t, "before after", CleanContent("before !-- hidden -- after"))
	assert.Equal(t, "x y", CleanContent("x <!-- one --> y"))
}

func TestCleanContent_MalformedTagLeftovers(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"div class= intro some text", "some text"},
		{"span class=badge score", "score"},
		{"a href= https://example.com/x click here", "click here"},
		{"text /div /san /p end", "text /san end"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanContent(tt.in), "input %q", tt.in)
	}
}

func TestCleanContent_StrayTokens(t *testing.T) {
	// Standalone p, md, br go; embedded occurrences stay.
	assert.Equal(t, "text and more", CleanContent("text p and md more br"))
	assert.Equal(t, "pmd campground", CleanContent("pmd campground"))
}

func TestCleanContent_Entities(t *testing.T) {
	// Named and numeric entities become a space; dangling numeric fragments
	// vanish entirely.
	assert.Equal(t, "a b", CleanContent("a&nbsp;b"))
	assert.Equal(t, "a b", CleanContent("a&#39;b"))
	assert.Equal(t, "score 12", CleanContent("score #8203;12"))
}

func TestCleanContent_WhitespaceCollapse(t *testing.T) {
	assert.Equal(t, "one two three", CleanContent("  one\t\ttwo\n\nthree  "))
}

func TestCleanContent_RedditFeedSample(t *testing.T) {
	in := `<table><tr><td> &#32; submitted by &#32; <a href="https://www.reddit.com/user/bob"> /u/bob </a> &#32; <span><a href="https://example.com">[link]</a></span> &#32; <span><a href="https://reddit.com/r/Phoenix/comments/1">[comments]</a></span></td></tr></table>`
	assert.Equal(t, "/u/bob", CleanContent(in))
}
