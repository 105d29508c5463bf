package drawio

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/heartmarshall/bpe-analyzer/internal/domain"
)

// PlainText converts a draw.io value attribute, which may hold HTML, into a
// single line of plain text:
//   - HTML entities are decoded twice, so "&amp;nbsp;" becomes a space and
//     "&amp;amp;" becomes "&"
//   - <br> tags become line breaks, every other tag is dropped
//   - a "<" with no closing ">" after it is not a tag and is kept as text
//   - whitespace runs, including NBSP and line breaks, collapse to one space
func PlainText(value string) string {
	if value == "" {
		return ""
	}

	markup, tail := splitUnclosed(html.UnescapeString(value))

	var b strings.Builder
	b.Grow(len(value))

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			b.WriteString(html.UnescapeString(tail))
			return domain.CollapseSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				b.WriteByte('\n')
			}
		}
	}
}

// splitUnclosed cuts s at the first "<" that follows the last ">". The tail
// cannot contain a complete tag and must not reach the tokenizer, which
// would swallow it as an unfinished one.
func splitUnclosed(s string) (markup, tail string) {
	from := strings.LastIndexByte(s, '>') + 1
	i := strings.IndexByte(s[from:], '<')
	if i < 0 {
		return s, ""
	}
	return s[:from+i], s[from+i:]
}
