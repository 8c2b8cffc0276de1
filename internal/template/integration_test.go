package template_test

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffer/internal/interactive"
	"scaffer/internal/scaffold"
	"scaffer/internal/template"
)

// Author a template, evolve it, then instantiate it: only the newest content lands on disk.
func TestAuthorUpdateInstantiate(t *testing.T) {
	store := template.NewStore(t.TempDir())

	author := interactive.NewScripted(
		"src",
		true, "src/main.py", "print('v1')",
		true, "setup.py", "name='{{project_name}}'",
		false,
		"python src/main.py",
	)
	record, err := template.NewBuilder(author).Build()
	require.NoError(t, err)
	require.NoError(t, store.Save("Python", record))

	edit := interactive.NewScripted(
		false,
		false,
		true,
		true, "src/main.py", "print('{{project_name}} v2')",
		false,
	)
	_, err = template.NewUpdater(store, edit).Update("python")
	require.NoError(t, err)

	loaded, err := store.Load("PYTHON")
	require.NoError(t, err)
	require.Equal(t, []string{"src/main.py"}, loaded.FilePaths())
	assert.Equal(t, []string{"print('v1')", "print('{{project_name}} v2')"},
		loaded.Structure.Files[0].ContentHistory.Versions())

	fs := memfs.New()
	result, err := scaffold.NewInstantiator(fs, nil).Instantiate(context.Background(), loaded,
		scaffold.Options{ProjectName: "snake", Identifier: "Python"})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/main.py"}, result.Files)

	data, err := util.ReadFile(fs, "snake/src/main.py")
	require.NoError(t, err)
	assert.Equal(t, "print('snake v2')", string(data))

	_, err = fs.Stat("snake/setup.py")
	assert.Error(t, err, "files left out of the update batch are dropped")
}

func TestBundledTemplatesInstantiate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, template.InstallBundled(dir))
	store := template.NewStore(dir)

	for _, id := range template.BundledIdentifiers() {
		t.Run(id, func(t *testing.T) {
			record, err := store.Load(id)
			require.NoError(t, err)

			fs := memfs.New()
			_, err = scaffold.NewInstantiator(fs, nil).Instantiate(context.Background(), record,
				scaffold.Options{ProjectName: "demo"})
			require.NoError(t, err)

			for _, path := range record.FilePaths() {
				data, err := util.ReadFile(fs, fs.Join("demo", path))
				require.NoError(t, err)
				assert.NotContains(t, string(data), template.ProjectNamePlaceholder)
			}
		})
	}
}
