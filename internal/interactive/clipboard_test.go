package interactive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaultEcho answers Editor with the default it was given.
type defaultEcho struct {
	Scripted
}

func (d *defaultEcho) Editor(message, defaultValue, help string) (string, error) {
	return defaultValue, nil
}

func TestClipboardPrompter_Editor(t *testing.T) {
	tests := []struct {
		name    string
		clip    string
		clipErr error
		given   string
		want    string
	}{
		{name: "seeds empty default", clip: "fn main() {}", want: "fn main() {}"},
		{name: "keeps explicit default", clip: "fn main() {}", given: "old", want: "old"},
		{name: "blank clipboard ignored", clip: "  \n", want: ""},
		{name: "read failure ignored", clipErr: errors.New("no clipboard"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewClipboardPrompter(&defaultEcho{})
			p.read = func() (string, error) { return tt.clip, tt.clipErr }

			got, err := p.Editor("Content", tt.given, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClipboardPrompter_DelegatesOtherPrompts(t *testing.T) {
	inner := NewScripted("demo")
	p := NewClipboardPrompter(inner)

	got, err := p.Input("Project name", "", "")
	require.NoError(t, err)
	assert.Equal(t, "demo", got)
	assert.Equal(t, []string{"Project name"}, inner.Asked)
}
