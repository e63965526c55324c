// Package export turns prototype HTML into downloadable HTML or PDF files.
package export

import (
	"fmt"
	"regexp"
	"time"
)

// Format selects the export output type.
type Format int

const (
	FormatHTML Format = iota
	FormatPDF
)

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	if f == FormatPDF {
		return "pdf"
	}
	return "html"
}

// MIMEType returns the content type for the format.
func (f Format) MIMEType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/html"
}

// DisplayName returns the label shown in menus and dialogs.
func (f Format) DisplayName() string {
	if f == FormatPDF {
		return "PDF"
	}
	return "HTML"
}

func (f Format) String() string {
	return f.DisplayName()
}

// Status classifies how an export attempt ended.
type Status int

const (
	StatusSuccess Status = iota
	StatusError
	StatusCancelled
)

// Result describes the outcome of an export attempt. Path is set on success;
// Message carries the error text on failure.
type Result struct {
	Status  Status
	Path    string
	Message string
}

// Success builds a successful result pointing at the written file.
func Success(path string) Result {
	return Result{Status: StatusSuccess, Path: path}
}

// Errorf builds a failed result with a formatted message.
func Errorf(format string, v ...interface{}) Result {
	return Result{Status: StatusError, Message: fmt.Sprintf(format, v...)}
}

// Cancelled builds a result for a user-aborted export.
func Cancelled() Result {
	return Result{Status: StatusCancelled}
}

// Exporter writes prototype HTML out in the chosen format. Implementations
// decide where the file lands (save dialog, downloads directory).
type Exporter interface {
	ExportHTML(html, name string) Result
	ExportPDF(html, name string) Result
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Filename derives a collision-resistant file name from a prototype name:
// unsafe characters become underscores, the name is capped at 50 characters
// and a timestamp is appended.
func Filename(name string, f Format) string {
	safe := unsafeFilenameChars.ReplaceAllString(name, "_")
	if len(safe) > 50 {
		safe = safe[:50]
	}
	if safe == "" {
		safe = "prototype"
	}
	return fmt.Sprintf("%s_%s.%s", safe, time.Now().Format("20060102_150405"), f.Extension())
}
