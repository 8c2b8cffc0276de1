package orchestrator

import (
	"fmt"
	"io"
	"strings"

	"scaffer/internal/output"
)

// Reporter writes styled results to the user
type Reporter struct {
	w      io.Writer
	styles output.Styles
}

// NewReporter creates a reporter that writes to w in the given theme
func NewReporter(w io.Writer, theme string) *Reporter {
	return &Reporter{
		w:      w,
		styles: output.NewStyles(theme),
	}
}

// Styles returns the styles of the reporter's theme
func (r *Reporter) Styles() output.Styles {
	return r.styles
}

// Noun renders an identifier, path or name
func (r *Reporter) Noun(s string) string {
	return r.styles.Noun.Render(s)
}

// Heading writes a section title
func (r *Reporter) Heading(title string) {
	fmt.Fprintln(r.w, r.styles.Heading.Render(title))
}

// Item writes a "label: value" line
func (r *Reporter) Item(label, value string) {
	fmt.Fprintln(r.w, r.styles.Item(label, value))
}

// Step writes the start of a step
func (r *Reporter) Step(msg string) {
	fmt.Fprintln(r.w, r.styles.Step(msg))
}

// Check writes a completed step
func (r *Reporter) Check(msg string) {
	fmt.Fprintln(r.w, r.styles.Check(msg))
}

// Cross writes a skipped or failed step
func (r *Reporter) Cross(msg string) {
	fmt.Fprintln(r.w, r.styles.Cross(msg))
}

// Success writes a completion line
func (r *Reporter) Success(msg string) {
	fmt.Fprintln(r.w, r.styles.Success.Render("✓ "+msg))
}

// Warning writes a non-fatal problem
func (r *Reporter) Warning(msg string) {
	fmt.Fprintln(r.w, r.styles.Warning.Render("! "+msg))
}

// Block writes text indented under the previous line
func (r *Reporter) Block(text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintf(r.w, "      %s\n", line)
	}
}

// Blank writes an empty line
func (r *Reporter) Blank() {
	fmt.Fprintln(r.w)
}
