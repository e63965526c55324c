package export

import (
	"regexp"
	"strings"
	"testing"
)

func TestFilename(t *testing.T) {
	got := Filename("Mi App: Recetas!", FormatHTML)
	pattern := regexp.MustCompile(`^Mi_App__Recetas__\d{8}_\d{6}\.html$`)
	if !pattern.MatchString(got) {
		t.Errorf("filename %q does not match expected pattern", got)
	}
}

func TestFilenameTruncatesLongNames(t *testing.T) {
	long := strings.Repeat("a", 80)
	got := Filename(long, FormatPDF)
	base := strings.SplitN(got, "_2", 2)[0]
	if len(base) > 50 {
		t.Errorf("sanitized name too long: %d chars", len(base))
	}
	if !strings.HasSuffix(got, ".pdf") {
		t.Errorf("expected .pdf suffix, got %q", got)
	}
}

func TestFilenameEmptyName(t *testing.T) {
	got := Filename("", FormatHTML)
	if !strings.HasPrefix(got, "prototype_") {
		t.Errorf("empty name should use placeholder, got %q", got)
	}
}

func TestFormatMetadata(t *testing.T) {
	tests := []struct {
		f       Format
		ext     string
		mime    string
		display string
	}{
		{FormatHTML, "html", "text/html", "HTML"},
		{FormatPDF, "pdf", "application/pdf", "PDF"},
	}
	for _, tt := range tests {
		if tt.f.Extension() != tt.ext {
			t.Errorf("%v extension = %q, want %q", tt.f, tt.f.Extension(), tt.ext)
		}
		if tt.f.MIMEType() != tt.mime {
			t.Errorf("%v mime = %q, want %q", tt.f, tt.f.MIMEType(), tt.mime)
		}
		if tt.f.DisplayName() != tt.display {
			t.Errorf("%v display = %q, want %q", tt.f, tt.f.DisplayName(), tt.display)
		}
	}
}

func TestResultConstructors(t *testing.T) {
	if r := Success("/tmp/x.html"); r.Status != StatusSuccess || r.Path != "/tmp/x.html" {
		t.Errorf("unexpected success result: %+v", r)
	}
	if r := Errorf("boom %d", 7); r.Status != StatusError || r.Message != "boom 7" {
		t.Errorf("unexpected error result: %+v", r)
	}
	if r := Cancelled(); r.Status != StatusCancelled {
		t.Errorf("unexpected cancelled result: %+v", r)
	}
}

func TestPrepareForPDFStripsScripts(t *testing.T) {
	html := `<html><head><title>x</title></head><body><script type="text/javascript">alert("hi")</script><p>contenido</p></body></html>`
	got := PrepareForPDF(html)
	if strings.Contains(got, "<script") || strings.Contains(got, "alert") {
		t.Errorf("script should be removed, got %q", got)
	}
	if !strings.Contains(got, "<p>contenido</p>") {
		t.Errorf("content should survive, got %q", got)
	}
}

func TestPrepareForPDFRevealsHiddenElements(t *testing.T) {
	html := `<html><head></head><body><div style="display: none">a</div><div style="visibility:hidden">b</div></body></html>`
	got := PrepareForPDF(html)
	if strings.Contains(strings.ToLower(got), "display: none") {
		t.Error("display:none should be rewritten")
	}
	if !strings.Contains(got, "display:block") {
		t.Error("expected display:block")
	}
	if !strings.Contains(got, "visibility:visible") {
		t.Error("expected visibility:visible")
	}
}

func TestPrepareForPDFInjectsStylesBeforeHeadClose(t *testing.T) {
	html := `<html><HEAD><title>x</title></HEAD><body>ok</body></html>`
	got := PrepareForPDF(html)
	styleIdx := strings.Index(got, "<style")
	headIdx := strings.Index(strings.ToLower(got), "</head>")
	if styleIdx < 0 || headIdx < 0 || styleIdx > headIdx {
		t.Errorf("styles should land inside head, got %q", got)
	}
}

func TestPrepareForPDFWrapsBareFragment(t *testing.T) {
	got := PrepareForPDF(`<p>solo un fragmento</p>`)
	if !strings.Contains(got, "<html>") || !strings.Contains(got, "</body></html>") {
		t.Errorf("fragment should be wrapped in a document, got %q", got)
	}
	if !strings.Contains(got, "<p>solo un fragmento</p>") {
		t.Errorf("fragment content lost: %q", got)
	}
}
