package active

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

// underscore lowercases a name, turning camel-case boundaries, spaces and
// dashes into underscores: "BlogPost", "blog post" and "blog-post" all
// become "blog_post". Acronym runs stay together ("HTMLPage" gives
// "html_page").
func underscore(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes) + 4)
	for i, r := range runes {
		if r == '-' || r == ' ' {
			b.WriteRune('_')
			continue
		}
		if unicode.IsUpper(r) {
			if i > 0 && !isSeparator(runes[i-1]) &&
				(!unicode.IsUpper(runes[i-1]) ||
					(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// pluralize returns the English plural used for default collection paths
// and has_many accessor names.
func pluralize(s string) string {
	return inflection.Plural(s)
}
