package enrich

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	// matches a JSON object inside a markdown fence: ```json { ... } ```
	jsonBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	// greedy: first '{' to last '}'
	jsonObjectPattern    = regexp.MustCompile(`(?s)\{.*\}`)
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractJSON pulls the first well-formed JSON object out of free-form model
// output. When no object decodes, the greedy first-to-last brace span is
// returned so the caller reports the parse error. It returns "" when the text
// holds no braces at all.
func ExtractJSON(content string) string {
	if m := jsonBlockPattern.FindStringSubmatch(content); len(m) > 1 {
		content = m[1]
	}
	content = trailingCommaPattern.ReplaceAllString(content, "$1")

	for i := strings.IndexByte(content, '{'); i >= 0; {
		var obj json.RawMessage
		if err := json.NewDecoder(strings.NewReader(content[i:])).Decode(&obj); err == nil {
			return string(obj)
		}
		next := strings.IndexByte(content[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}

	return jsonObjectPattern.FindString(content)
}
