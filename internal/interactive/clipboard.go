package interactive

import (
	"strings"

	"github.com/atotto/clipboard"

	"scaffer/internal/interfaces"
	"scaffer/internal/output"
)

// ClipboardPrompter pre-fills empty multi-line prompts with the clipboard content.
type ClipboardPrompter struct {
	interfaces.Prompter
	read func() (string, error)
}

// NewClipboardPrompter wraps inner so that Editor defaults to the system clipboard.
func NewClipboardPrompter(inner interfaces.Prompter) *ClipboardPrompter {
	return &ClipboardPrompter{Prompter: inner, read: clipboard.ReadAll}
}

// Editor asks inner with the clipboard content as default when none is given.
func (c *ClipboardPrompter) Editor(message, defaultValue, help string) (string, error) {
	if defaultValue == "" {
		content, err := c.read()
		if err != nil {
			output.Warn("could not read clipboard", "err", err)
		} else if strings.TrimSpace(content) != "" {
			defaultValue = content
		}
	}

	return c.Prompter.Editor(message, defaultValue, help)
}
