package notes

import "strings"

// LineBreak is the marker the note body uses in place of a newline.
const LineBreak = "<br>"

var (
	titleEscaper = strings.NewReplacer(`"`, `\"`)
	textEscaper  = strings.NewReplacer(`"`, `\"`, "\n", LineBreak)
)

// EscapeTitle backslash-escapes every double quote in a note title.
func EscapeTitle(title string) string {
	return titleEscaper.Replace(title)
}

// EscapeText backslash-escapes every double quote and replaces every newline
// with LineBreak.
func EscapeText(text string) string {
	return textEscaper.Replace(text)
}
