// Package viewer renders prototype HTML for on-screen preview. Previews open
// in the system browser; the HTML gets a theme override stylesheet first so
// the prototype matches the app's light or dark appearance.
package viewer

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"

	"prototype-creator/utils"
)

const darkThemeStyles = `<style media="screen">
	html, body { background: #1e1e1e !important; color: #e4e4e4 !important; }
	a { color: #8ab4f8 !important; }
</style>`

const lightThemeStyles = `<style media="screen">
	html, body { background: #ffffff !important; color: #1a1a1a !important; }
</style>`

var (
	headCloseRe = regexp.MustCompile(`(?i)</head>`)
	headOpenRe  = regexp.MustCompile(`(?i)<head[^>]*>`)
)

// InjectThemeCSS adds a theme override stylesheet to prototype HTML. The
// stylesheet lands just before </head>, after <head> when the document never
// closes it, or the fragment is wrapped in a minimal document.
func InjectThemeCSS(html string, dark bool) string {
	styles := lightThemeStyles
	if dark {
		styles = darkThemeStyles
	}

	if loc := headCloseRe.FindStringIndex(html); loc != nil {
		return html[:loc[0]] + styles + html[loc[0]:]
	}
	if loc := headOpenRe.FindStringIndex(html); loc != nil {
		return html[:loc[1]] + styles + html[loc[1]:]
	}
	return "<!DOCTYPE html><html><head>" + styles + "</head><body>" + html + "</body></html>"
}

// BrowserViewer previews prototypes by writing a temp file and opening it in
// the system browser.
type BrowserViewer struct {
	logger *utils.Logger
}

// NewBrowserViewer creates a browser-backed preview.
func NewBrowserViewer(logger *utils.Logger) *BrowserViewer {
	return &BrowserViewer{logger: logger}
}

// Preview writes the themed HTML to a temp file and hands it to the system
// browser. The file is left behind; the OS temp cleaner reclaims it.
func (v *BrowserViewer) Preview(html string, dark bool) error {
	themed := InjectThemeCSS(html, dark)

	f, err := os.CreateTemp("", "prototype-*.html")
	if err != nil {
		return utils.WrapError(err, "failed to create preview file")
	}
	if _, err := f.WriteString(themed); err != nil {
		f.Close()
		return utils.WrapError(err, "failed to write preview file")
	}
	if err := f.Close(); err != nil {
		return utils.WrapError(err, "failed to close preview file")
	}

	path, err := filepath.Abs(f.Name())
	if err != nil {
		path = f.Name()
	}

	v.logger.Info("Opening preview %s", path)
	if err := openBrowser(path); err != nil {
		return utils.WrapError(err, "failed to open browser")
	}
	return nil
}

func openBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
