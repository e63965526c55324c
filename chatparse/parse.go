// Package chatparse implements the heuristics that classify assistant
// replies: detecting generated-prototype links, recognizing confirmation
// questions and cleaning escaped text for display.
package chatparse

import (
	"regexp"
	"strings"
)

// ConfirmReply is the canned affirmative sent when the user accepts a
// confirmation question.
const ConfirmReply = "Sí, continúa"

var prototypeLinkRe = regexp.MustCompile(`https://\S+/webhook/\S+`)

// Workflow confirmation questions follow a few known phrasings. Matching is
// case-insensitive against the last line of the reply.
var confirmationPhrases = []string{
	"¿guardamos esta idea?",
	"¿quieres que guardemos",
	"responde 'sí' para continuar",
	"continúe con la generación",
}

// LinkMatch is a prototype link found inside an assistant reply, split into
// the text before it, the URL itself, the text after it and the prototype
// identifier encoded in the URL.
type LinkMatch struct {
	Before      string
	URL         string
	After       string
	PrototypeID string
}

// FindPrototypeLink scans a reply for a generated-prototype URL. The
// identifier is the segment after the last "/p/" in the URL; when the URL
// has no "/p/" segment the whole URL is used.
func FindPrototypeLink(text string) (LinkMatch, bool) {
	loc := prototypeLinkRe.FindStringIndex(text)
	if loc == nil {
		return LinkMatch{}, false
	}

	url := text[loc[0]:loc[1]]

	id := url
	if i := strings.LastIndex(url, "/p/"); i >= 0 {
		id = url[i+len("/p/"):]
	}
	// Escaped replies can leave a trailing backslash glued to the id.
	if i := strings.Index(id, `\`); i >= 0 {
		id = id[:i]
	}

	return LinkMatch{
		Before:      strings.TrimSpace(text[:loc[0]]),
		URL:         url,
		After:       strings.TrimSpace(text[loc[1]:]),
		PrototypeID: id,
	}, true
}

// FindConfirmation reports whether the reply ends with a short confirmation
// question. It returns the reply split into the main text and the question
// line. Link detection takes precedence; callers check for a link first.
func FindConfirmation(text string) (main, question string, ok bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", "", false
	}

	lines := strings.Split(trimmed, "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if len([]rune(last)) >= 100 {
		return "", "", false
	}

	lower := strings.ToLower(last)
	matched := false
	for _, phrase := range confirmationPhrases {
		if strings.Contains(lower, phrase) {
			matched = true
			break
		}
	}
	if !matched {
		return "", "", false
	}

	main = strings.TrimSpace(strings.Join(lines[:len(lines)-1], "\n"))
	return main, last, true
}

// CleanResponse undoes the escaping that webhook replies arrive with. The
// replacement order matters: compound escapes are resolved before the
// catch-all backslash removal.
func CleanResponse(s string) string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\t`, "\t")
	s = strings.ReplaceAll(s, `\\`, `\`)
	s = strings.ReplaceAll(s, `\r`, "")
	s = strings.ReplaceAll(s, `\`, "")
	return strings.TrimSpace(s)
}
