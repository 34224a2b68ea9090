package active

import (
	"encoding/json"
	"fmt"
	"regexp"
)

var placeholderPattern = regexp.MustCompile(`:(\w+)`)

/*
Interpolate replaces every ':field' placeholder in template with the string
form of the matching value in fields:

    Interpolate("posts/:id/comments", active.Fields{"id": 7})
    // "posts/7/comments"

A placeholder is a word-character run right after a colon; a colon not
followed by a word character passes through untouched. There is no escape
syntax. A placeholder with no matching field fails with a MissingFieldError
naming it, and no partially substituted result is returned.
*/
func Interpolate(template string, fields Fields) (string, error) {
	var missing *MissingFieldError
	result := placeholderPattern.ReplaceAllStringFunc(
		template,
		func(match string) string {
			key := match[1:]
			value, exists := fields[key]
			if !exists {
				if missing == nil {
					missing = &MissingFieldError{Template: template, Field: key}
				}
				return match
			}
			return formatValue(value)
		},
	)
	if missing != nil {
		return "", missing
	}
	return result, nil
}

// formatValue renders a field value the way it should appear inside a URL
// path or query string. Numbers decoded with UseNumber keep their exact
// source form.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
