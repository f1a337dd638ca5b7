package smoke

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	bannerWidth = 60
	indent      = "   "
	okMark      = "✅"
	failMark    = "❌"
)

// Reporter renders the smoke run as console output
type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

func (r *Reporter) Banner(title string) {
	line := strings.Repeat("=", bannerWidth)
	r.printf("%s\n%s\n%s\n", line, title, line)
}

// Footer closes the run with a banner preceded by a blank line
func (r *Reporter) Footer(title string) {
	r.printf("\n")
	r.Banner(title)
}

func (r *Reporter) Step(n int, title string) {
	r.printf("\n%d. %s...\n", n, title)
}

func (r *Reporter) Status(code int) {
	r.printf("%sStatus: %d\n", indent, code)
}

// Body prints the full indented body
func (r *Reporter) Body(body []byte) {
	r.printf("%sResponse: %s\n", indent, Render(body))
}

// BodyPreview prints the first n characters of the indented body
func (r *Reporter) BodyPreview(body []byte, n int) {
	r.printf("%sResponse: %s\n", indent, Preview(body, n))
}

// SuccessPreview prints a success mark followed by a preview on its own line
func (r *Reporter) SuccessPreview(body []byte, n int) {
	r.printf("%s%s Success! Data preview:\n", indent, okMark)
	r.printf("%s%s\n", indent, Preview(body, n))
}

// FailureField prints the error field of a failed response
func (r *Reporter) FailureField(value any, ok bool) {
	r.printf("%s%s Failed! Error: %s\n", indent, failMark, FormatField(value, ok))
}

func (r *Reporter) OK(message string) {
	r.printf("%s%s %s\n", indent, okMark, message)
}

func (r *Reporter) Fail(message string) {
	r.printf("%s%s %s\n", indent, failMark, message)
}

// Diagnostic prints a top-level failure, unindented, with optional hint lines
func (r *Reporter) Diagnostic(message string, hints ...string) {
	r.printf("%s %s\n", failMark, message)
	for _, h := range hints {
		r.printf("%s%s\n", indent, h)
	}
}

// Render re-indents a raw JSON body with two spaces, keeping field order
// and the body's own string escaping
func Render(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(body), "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}

// Preview returns the first n characters of Render(body) followed by "..."
func Preview(body []byte, n int) string {
	return Truncate(Render(body), n) + "..."
}

// Truncate cuts s to at most n runes
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// FormatField renders a response field for display: strings as-is,
// absent or null as "null", anything else as compact JSON.
func FormatField(value any, ok bool) string {
	if !ok || value == nil {
		return "null"
	}
	if s, isString := value.(string); isString {
		return s
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(raw)
}
