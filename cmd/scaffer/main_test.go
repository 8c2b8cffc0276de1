package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addGlobalFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "")
	cmd.Flags().Bool("verbose", false, "")
	cmd.Flags().String("template-dir", "", "")
	cmd.Flags().String("theme", "", "")
	cmd.Flags().Bool("numbers", false, "")
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{}
	addGlobalFlags(cmd)
	cmd.Flags().String("language", "", "")
	cmd.Flags().String("name", "", "")
	cmd.Flags().String("path", "", "")
	cmd.Flags().Bool("gitignore", false, "")
	cmd.Flags().Bool("no-gitignore", false, "")
	cmd.Flags().Bool("git", false, "")
	return cmd
}

func TestBuildCreateRequest(t *testing.T) {
	tests := []struct {
		name          string
		flags         map[string]string
		wantGitignore *bool
		wantErr       bool
	}{
		{
			name:  "nothing given",
			flags: map[string]string{},
		},
		{
			name: "every value given",
			flags: map[string]string{
				"config":    "/tmp/scaffer.toml",
				"language":  "rust",
				"name":      "demo",
				"path":      "/work",
				"gitignore": "true",
				"git":       "true",
				"verbose":   "true",
			},
			wantGitignore: boolPtr(true),
		},
		{
			name:          "no gitignore",
			flags:         map[string]string{"no-gitignore": "true"},
			wantGitignore: boolPtr(false),
		},
		{
			name:          "explicit false gitignore",
			flags:         map[string]string{"gitignore": "false"},
			wantGitignore: boolPtr(false),
		},
		{
			name:    "both gitignore flags",
			flags:   map[string]string{"gitignore": "true", "no-gitignore": "true"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newCreateCommand()
			for flag, value := range tt.flags {
				require.NoError(t, cmd.Flags().Set(flag, value))
			}

			request, err := buildCreateRequest(cmd)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.flags["config"], request.ConfigPath)
			assert.Equal(t, tt.flags["language"], request.Language)
			assert.Equal(t, tt.flags["name"], request.Name)
			assert.Equal(t, tt.flags["path"], request.Path)
			assert.Equal(t, tt.flags["git"] == "true", request.GitInit)
			assert.Equal(t, tt.flags["verbose"] == "true", request.Verbose)
			assert.Equal(t, tt.wantGitignore, request.Gitignore)
		})
	}
}

func TestBuildTemplateRequest(t *testing.T) {
	t.Run("list with filter", func(t *testing.T) {
		cmd := &cobra.Command{}
		addGlobalFlags(cmd)
		cmd.Flags().String("filter", "", "")
		require.NoError(t, cmd.Flags().Set("filter", "py"))
		require.NoError(t, cmd.Flags().Set("theme", "mono"))

		request, err := buildTemplateRequest(cmd)
		require.NoError(t, err)
		assert.Equal(t, "py", request.Filter)
		assert.Equal(t, "mono", request.Theme)
		assert.Empty(t, request.Identifier)
	})

	t.Run("add from clipboard", func(t *testing.T) {
		cmd := &cobra.Command{}
		addGlobalFlags(cmd)
		cmd.Flags().String("language", "", "")
		cmd.Flags().Bool("clipboard", false, "")
		require.NoError(t, cmd.Flags().Set("language", "Zig"))
		require.NoError(t, cmd.Flags().Set("clipboard", "true"))

		request, err := buildTemplateRequest(cmd)
		require.NoError(t, err)
		assert.Equal(t, "Zig", request.Identifier)
		assert.True(t, request.FromClipboard)
	})

	t.Run("remove by template flag", func(t *testing.T) {
		cmd := &cobra.Command{}
		addGlobalFlags(cmd)
		cmd.Flags().String("template", "", "")
		require.NoError(t, cmd.Flags().Set("template", "java"))
		require.NoError(t, cmd.Flags().Set("numbers", "true"))

		request, err := buildTemplateRequest(cmd)
		require.NoError(t, err)
		assert.Equal(t, "java", request.Identifier)
		assert.True(t, request.NumberSelect)
	})
}

func TestCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range templatesCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"list", "add", "remove", "update", "show", "history"} {
		assert.True(t, names[want], "templates %s should be registered", want)
	}

	assert.NotNil(t, createCmd.Flags().Lookup("language"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("template-dir"))
}

func boolPtr(b bool) *bool {
	return &b
}
