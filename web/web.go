// Package web holds the embedded HTML templates for the server.
package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates with their helper functions.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"filesize": FormatFileSize,
		"words":    FormatWordCount,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// FormatFileSize formats a file size in bytes to a human-readable string
func FormatFileSize(bytes int64) string {
	return humanize.Bytes(uint64(bytes))
}

// FormatWordCount formats a word count with the correct plural form.
func FormatWordCount(count *int64) string {
	if count == nil {
		return ""
	}
	return english.Plural(int(*count), "word", "")
}
