package assistant

import (
	"encoding/json"
	"regexp"
	"strings"
)

// bareJSONLineMaxLen is the length above which a line that is itself a JSON
// object is treated as leaked structured output rather than prose.
const bareJSONLineMaxLen = 60

var (
	codeFencePattern  = regexp.MustCompile("(?s)```[a-zA-Z0-9]*\\n?.*?```")
	danglingFence     = regexp.MustCompile("(?s)```.*$")
	blankLinesPattern = regexp.MustCompile(`\n{3,}`)
)

// SanitizeAnswer removes structured-output leakage from the model's markdown
// answer: fenced code blocks, lines that are bare JSON objects, and runs of
// blank lines. An answer that sanitizes down to nothing is replaced with the
// generic fallback sentence so the user never sees an empty reply.
func SanitizeAnswer(text string) string {
	text = codeFencePattern.ReplaceAllString(text, "")
	// A fence the model never closed would otherwise survive whole.
	text = danglingFence.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if isBareJSONLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	text = strings.Join(kept, "\n")

	text = blankLinesPattern.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	if text == "" {
		return fallbackAnswer
	}
	return text
}

// isBareJSONLine reports whether the line is a standalone JSON object longer
// than the leak threshold.
func isBareJSONLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) <= bareJSONLineMaxLen {
		return false
	}
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return false
	}
	return json.Valid([]byte(trimmed))
}
