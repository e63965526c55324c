package ai

import (
	"regexp"
	"strings"
)

// The webhook's response shape has drifted over time: sometimes the workflow
// nests the real payload inside a stringified "raw" field, sometimes it
// returns double-escaped JSON, sometimes a plain {"output": ...} object.
// The extraction order below is a compatibility contract with deployed
// workflows; do not reorder the cases.
var (
	rawWrapperRe    = regexp.MustCompile(`(?s)"raw"\s*:\s*"\{(.+?)\}"`)
	escapedOutputRe = regexp.MustCompile(`(?s)\\"output\\"\s*:\s*\\"(.+?)\\"`)
	plainOutputRe   = regexp.MustCompile(`(?s)"output"\s*:\s*"(.+?)"`)
	responseRe      = regexp.MustCompile(`(?s)"response"\s*:\s*"(.+?)"`)
	messageRe       = regexp.MustCompile(`(?s)"message"\s*:\s*"(.+?)"`)
)

// ExtractResponseText pulls the assistant reply out of a webhook response
// body. If no known field is found, the body is returned verbatim so the
// user at least sees something.
func ExtractResponseText(body string) string {
	content := body
	if m := rawWrapperRe.FindStringSubmatch(content); m != nil {
		content = "{" + m[1] + "}"
	}

	switch {
	case strings.Contains(content, `\"output\"`):
		if m := escapedOutputRe.FindStringSubmatch(content); m != nil {
			return unescapeNewlines(m[1])
		}
	case strings.Contains(content, `"output"`):
		if m := plainOutputRe.FindStringSubmatch(content); m != nil {
			return unescapeNewlines(m[1])
		}
	case strings.Contains(content, `"response"`):
		if m := responseRe.FindStringSubmatch(content); m != nil {
			return unescapeNewlines(m[1])
		}
	case strings.Contains(content, `"message"`):
		if m := messageRe.FindStringSubmatch(content); m != nil {
			return unescapeNewlines(m[1])
		}
	}

	return content
}

func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
