package output

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
)

// chromaStyles maps scaffer themes to chroma styles.
var chromaStyles = map[string]string{
	"default": "monokai",
	"dracula": "dracula",
	"mono":    "bw",
}

// Highlight renders content for the terminal using the lexer matching path's
// file name. Content is returned unchanged when nothing matches or rendering fails.
func Highlight(path, content, theme string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return content
	}

	style, ok := chromaStyles[theme]
	if !ok {
		style = chromaStyles[DefaultTheme]
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, content, lexer.Config().Name, "terminal256", style); err != nil {
		return content
	}

	return strings.TrimRight(buf.String(), "\n")
}
