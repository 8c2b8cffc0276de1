package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/interactive"
	"scaffer/pkg/models"
)

func TestSplitDirectories(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"src,tests", []string{"src", "tests"}},
		{"src, tests", []string{"src", " tests"}},
		{"", []string{""}},
		{"a,,b", []string{"a", "", "b"}},
		{"docs/api", []string{"docs/api"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitDirectories(tt.input), "SplitDirectories(%q)", tt.input)
	}
}

func TestBuilder_Build(t *testing.T) {
	prompter := interactive.NewScripted(
		"src,tests",
		true, "src/main.rs", "fn main() {}",
		true, "Cargo.toml", "[package]\nname = \"{{project_name}}\"",
		false,
		"cargo run",
	)

	record, err := NewBuilder(prompter).Build()
	require.NoError(t, err)
	assert.Equal(t, 0, prompter.Remaining())

	want := models.NewRecord(
		[]string{"src", "tests"},
		[]models.File{
			models.NewFile("src/main.rs", "fn main() {}"),
			models.NewFile("Cargo.toml", "[package]\nname = \"{{project_name}}\""),
		},
		"cargo run",
	)
	assert.True(t, want.Equal(record), "got %+v", record)
}

func TestBuilder_NoFiles(t *testing.T) {
	prompter := interactive.NewScripted("", false, "")

	record, err := NewBuilder(prompter).Build()
	require.NoError(t, err)
	assert.Equal(t, []string{""}, record.Structure.Directories)
	assert.Empty(t, record.Structure.Files)
	assert.Equal(t, "", record.StartCommand)
}

func TestBuilder_RepeatedPathKeepsLastContent(t *testing.T) {
	prompter := interactive.NewScripted(
		true, "main.go", "first",
		true, "go.mod", "module x",
		true, "main.go", "second",
		false,
	)

	files, err := NewBuilder(prompter).CollectFiles()
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "main.go", files[0].Path)
	assert.Equal(t, []string{"second"}, files[0].ContentHistory.Versions())
	assert.Equal(t, "go.mod", files[1].Path)
}

func TestBuilder_PromptFailure(t *testing.T) {
	prompter := interactive.NewScripted("src", true, "main.go")

	_, err := NewBuilder(prompter).Build()
	require.Error(t, err)
	assert.True(t, scerrors.IsKind(err, scerrors.ErrInvalidInput))
}
