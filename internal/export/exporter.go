package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/cj3636/glit/internal/git"
)

// Format represents the desired export format.
type Format string

const (
	// FormatHTML emits an HTML document for the diff.
	FormatHTML Format = "html"
	// FormatMarkdown emits a Markdown diff code block per file.
	FormatMarkdown Format = "markdown"
	// FormatANSI emits an ANSI-colored string.
	FormatANSI Format = "ansi"
)

// ParseFormat resolves a user-supplied format name.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(raw) {
	case "", string(FormatMarkdown), "md":
		return FormatMarkdown, nil
	case string(FormatHTML), "htm":
		return FormatHTML, nil
	case string(FormatANSI), "text":
		return FormatANSI, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", raw)
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatANSI:
		return "txt"
	default:
		return "md"
	}
}

// RenderCommit returns the full commit diff in the requested format.
// Title is usually the commit hash.
func RenderCommit(diff git.CommitDiff, format Format, title string) (string, error) {
	switch format {
	case FormatHTML:
		return renderHTML(diff, title), nil
	case FormatMarkdown:
		return renderMarkdown(diff, title), nil
	case FormatANSI:
		return renderANSI(diff, title), nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
}

// RenderFileMarkdown returns one file's diff as a Markdown code block,
// the shape used when copying a diff to the clipboard.
func RenderFileMarkdown(file git.FileDiff) string {
	var b strings.Builder
	b.WriteString("### ")
	b.WriteString(file.Filename)
	b.WriteString("\n\n```diff\n")
	b.WriteString(file.Content)
	if !strings.HasSuffix(file.Content, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString("```\n")
	return b.String()
}

func renderHTML(diff git.CommitDiff, title string) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\">")
	b.WriteString("<style>body{background:#0f111a;color:#e5e7eb;font-family:Menlo,Consolas,monospace;}" +
		"pre{white-space:pre-wrap;word-wrap:break-word;}" +
		".added{background:#12281a;color:#8dd39e;}" +
		".removed{background:#2b1313;color:#f19999;}" +
		".hunk{color:#7dd3fc;}" +
		".context{color:#cbd5e1;}" +
		"h1{font-size:18px;margin-bottom:12px;}" +
		"h2{font-size:14px;margin:16px 0 4px;color:#9ca3af;}" +
		"</style></head><body>")

	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(title))

	for _, file := range diff.Files {
		fmt.Fprintf(&b, "<h2>%s</h2>\n<pre>", html.EscapeString(file.Filename))
		for _, line := range splitLines(file.Content) {
			class := classifyLine(line)
			fmt.Fprintf(&b, "<div class=\"%s\">%s</div>\n", class, html.EscapeString(line))
		}
		b.WriteString("</pre>\n")
	}

	b.WriteString("</body></html>")
	return b.String()
}

func renderMarkdown(diff git.CommitDiff, title string) string {
	var b strings.Builder

	if title != "" {
		b.WriteString("# ")
		b.WriteString(title)
		b.WriteString("\n\n")
	}

	for _, file := range diff.Files {
		b.WriteString(RenderFileMarkdown(file))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderANSI(diff git.CommitDiff, title string) string {
	var b strings.Builder
	reset := "\x1b[0m"

	if title != "" {
		fmt.Fprintf(&b, "%s\n\n", title)
	}

	for _, file := range diff.Files {
		fmt.Fprintf(&b, "\x1b[1m%s%s\n", file.Filename, reset)
		for _, line := range splitLines(file.Content) {
			fmt.Fprintf(&b, "%s%s%s\n", ansiColor(line), line, reset)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func splitLines(content string) []string {
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

func classifyLine(line string) string {
	switch {
	case strings.HasPrefix(line, "@@"):
		return "hunk"
	case strings.HasPrefix(line, "+"):
		return "added"
	case strings.HasPrefix(line, "-"):
		return "removed"
	default:
		return "context"
	}
}

func ansiColor(line string) string {
	switch {
	case strings.HasPrefix(line, "@@"):
		return "\x1b[36m"
	case strings.HasPrefix(line, "+"):
		return "\x1b[32m"
	case strings.HasPrefix(line, "-"):
		return "\x1b[31m"
	default:
		return "\x1b[37m"
	}
}
