package output

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemes(t *testing.T) {
	assert.Equal(t, []string{"default", "dracula", "mono"}, Themes())
	assert.True(t, IsValidTheme("dracula"))
	assert.False(t, IsValidTheme("solarized"))
}

func TestStyles_Render(t *testing.T) {
	s := NewStyles("mono")

	assert.Equal(t, "   → Language: Rust", s.Item("Language", "Rust"))
	assert.Equal(t, "   → cd demo", s.Item("", "cd demo"))
	assert.Contains(t, s.Check(".gitignore added"), "✓ .gitignore added")
	assert.Contains(t, s.Cross("skipped"), "✗")
	assert.Contains(t, s.Step("src/main.rs"), "► src/main.rs")
}

func TestNewStyles_UnknownThemeFallsBack(t *testing.T) {
	assert.NotPanics(t, func() {
		NewStyles("does-not-exist").Item("a", "b")
	})
}

func TestHighlight(t *testing.T) {
	src := "package main\n\nfunc main() {}\n"

	plain := Highlight("notes.unknownext", src, "default")
	assert.Equal(t, src, plain, "unknown file types are returned unchanged")

	colored := Highlight("main.go", src, "dracula")
	assert.Contains(t, colored, "func")
	assert.NotEqual(t, strings.TrimRight(src, "\n"), colored)
}

func TestRunWithSpinner_OffTerminal(t *testing.T) {
	ran := false
	err := RunWithSpinner(context.Background(), func(ctx context.Context) error {
		ran = true
		return nil
	}, WithTitle("testing"))
	require.NoError(t, err)
	assert.True(t, ran)

	boom := errors.New("boom")
	err = RunWithSpinner(context.Background(), func(ctx context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRunWithSpinner_Timeout(t *testing.T) {
	err := RunWithSpinner(context.Background(), func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}, WithTimeout(10*time.Millisecond))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer

	SetupLogging(false)
	SetOutput(&buf)
	Debug("hidden")
	Warn("shown", "key", "value")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")

	buf.Reset()
	SetupLogging(true)
	SetOutput(&buf)
	Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	SetupLogging(false)
}
