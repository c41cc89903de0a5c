package translation

import (
	"regexp"
	"strings"
)

var (
	// thinkBlockPattern matches reasoning blocks some local models emit
	// before the actual answer, including their content.
	thinkBlockPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
)

// Sanitize strips the extraneous markup local models wrap around their
// output: <think> reasoning blocks (with content), surrounding code
// fences and leftover angle-bracket tags. Reasoning blocks go first, or
// the tag pass would strip only their markers and leak the reasoning
// text into the translated file.
func Sanitize(response string) string {
	response = thinkBlockPattern.ReplaceAllString(response, "")
	response = stripFences(response)
	response = tagPattern.ReplaceAllString(response, "")
	return strings.TrimSpace(response)
}

// stripFences removes a leading ``` fence line (with optional language
// tag) and its closing fence, when the model wrapped the whole answer.
func stripFences(response string) string {
	lines := strings.Split(strings.TrimSpace(response), "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "```") {
		return response
	}

	lines = lines[1:]
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
