package export

import (
	"regexp"
	"strings"
)

// pdfStyles forces print-friendly rendering: white background, visible
// overflow and no fixed positioning, so the converter paginates cleanly.
const pdfStyles = `<style media="all">
	html, body { background: #ffffff !important; overflow: visible !important; }
	* { position: static !important; float: none !important; }
	@page { size: A4; margin: 12mm; }
</style>`

var (
	scriptTagRe      = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	selfClosingScrRe = regexp.MustCompile(`(?is)<script[^>]*/>`)
	displayNoneRe    = regexp.MustCompile(`(?i)display\s*:\s*none`)
	visibilityRe     = regexp.MustCompile(`(?i)visibility\s*:\s*hidden`)
	headCloseRe      = regexp.MustCompile(`(?i)</head>`)
	headOpenRe       = regexp.MustCompile(`(?i)<head[^>]*>`)
)

// PrepareForPDF rewrites prototype HTML for static rendering: scripts are
// stripped, hidden elements are revealed and the print stylesheet is
// injected. Documents without a head are wrapped in a minimal skeleton.
func PrepareForPDF(html string) string {
	html = scriptTagRe.ReplaceAllString(html, "")
	html = selfClosingScrRe.ReplaceAllString(html, "")
	html = displayNoneRe.ReplaceAllString(html, "display:block")
	html = visibilityRe.ReplaceAllString(html, "visibility:visible")

	return injectIntoHead(html, pdfStyles)
}

// injectIntoHead places markup just before </head>, or after <head> when the
// document never closes it, or wraps bare fragments in a full document.
func injectIntoHead(html, markup string) string {
	if loc := headCloseRe.FindStringIndex(html); loc != nil {
		return html[:loc[0]] + markup + html[loc[0]:]
	}
	if loc := headOpenRe.FindStringIndex(html); loc != nil {
		return html[:loc[1]] + markup + html[loc[1]:]
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head>")
	b.WriteString(markup)
	b.WriteString("</head><body>")
	b.WriteString(html)
	b.WriteString("</body></html>")
	return b.String()
}
