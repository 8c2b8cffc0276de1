package scaffold

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/template"
	"scaffer/pkg/models"
)

type stubFetcher struct {
	body  string
	err   error
	calls []string
}

func (s *stubFetcher) Fetch(ctx context.Context, identifier string) (string, error) {
	s.calls = append(s.calls, identifier)
	return s.body, s.err
}

func readFile(t *testing.T, fs billy.Filesystem, path string) string {
	t.Helper()
	data, err := util.ReadFile(fs, path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

func rustRecord() *models.Record {
	return models.NewRecord(
		[]string{"src", "tests"},
		[]models.File{
			models.NewFile("Cargo.toml", "[package]\nname = \"{{project_name}}\"\n"),
			{Path: "src/main.rs", ContentHistory: models.HistoryOf("fn main() {}", "fn main() {\n    println!(\"{{project_name}}\");\n}\n")},
		},
		"cargo run",
	)
}

func TestInstantiate_WritesCurrentContent(t *testing.T) {
	fs := memfs.New()
	inst := NewInstantiator(fs, nil)

	result, err := inst.Instantiate(context.Background(), rustRecord(), Options{ProjectName: "demo", Identifier: "Rust"})
	require.NoError(t, err)

	assert.Equal(t, []string{"src", "tests"}, result.Directories)
	assert.Equal(t, []string{"Cargo.toml", "src/main.rs"}, result.Files)
	assert.False(t, result.GitignoreWritten)
	assert.NoError(t, result.GitignoreErr)

	assert.Equal(t, "[package]\nname = \"demo\"\n", readFile(t, fs, "demo/Cargo.toml"))
	assert.Equal(t, "fn main() {\n    println!(\"demo\");\n}\n", readFile(t, fs, "demo/src/main.rs"))

	info, err := fs.Stat("demo/tests")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInstantiate_CreatesMissingParents(t *testing.T) {
	fs := memfs.New()
	record := models.NewRecord(nil, []models.File{models.NewFile("a/b/c.txt", "x")}, "")

	_, err := NewInstantiator(fs, nil).Instantiate(context.Background(), record, Options{ProjectName: "p"})
	require.NoError(t, err)
	assert.Equal(t, "x", readFile(t, fs, "p/a/b/c.txt"))
}

func TestInstantiate_OverwritesExisting(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "demo/Cargo.toml", []byte("old"), 0644))

	_, err := NewInstantiator(fs, nil).Instantiate(context.Background(), rustRecord(), Options{ProjectName: "demo"})
	require.NoError(t, err)
	assert.Equal(t, "[package]\nname = \"demo\"\n", readFile(t, fs, "demo/Cargo.toml"))
}

func TestInstantiate_EmptyDirectoryEntry(t *testing.T) {
	fs := memfs.New()
	record := models.NewRecord([]string{""}, nil, "")

	result, err := NewInstantiator(fs, nil).Instantiate(context.Background(), record, Options{ProjectName: "demo"})
	require.NoError(t, err)
	assert.Equal(t, []string{""}, result.Directories)

	info, err := fs.Stat("demo")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInstantiate_RequiresName(t *testing.T) {
	_, err := NewInstantiator(memfs.New(), nil).Instantiate(context.Background(), rustRecord(), Options{})
	require.Error(t, err)
	assert.True(t, scerrors.IsKind(err, scerrors.ErrInvalidInput))
}

func TestInstantiate_Gitignore(t *testing.T) {
	fs := memfs.New()
	fetcher := &stubFetcher{body: "target/\n"}

	result, err := NewInstantiator(fs, fetcher).Instantiate(context.Background(), rustRecord(),
		Options{ProjectName: "demo", Identifier: "Rust", Gitignore: true})
	require.NoError(t, err)

	assert.True(t, result.GitignoreWritten)
	assert.Equal(t, []string{"Rust"}, fetcher.calls)
	assert.Equal(t, "target/\n", readFile(t, fs, "demo/.gitignore"))
}

func TestInstantiate_FetchFailureIsNotFatal(t *testing.T) {
	fs := memfs.New()
	fetchErr := scerrors.FetchFailure("Rust", "http://example.test/Rust.gitignore", errors.New("boom"))
	record := models.NewRecord(nil, []models.File{
		models.NewFile("one.txt", "1"),
		models.NewFile("two.txt", "2"),
	}, "")

	result, err := NewInstantiator(fs, &stubFetcher{err: fetchErr}).Instantiate(context.Background(), record,
		Options{ProjectName: "demo", Identifier: "Rust", Gitignore: true})
	require.NoError(t, err)

	assert.False(t, result.GitignoreWritten)
	assert.True(t, scerrors.IsKind(result.GitignoreErr, scerrors.ErrFetchFailure))
	assert.Equal(t, "1", readFile(t, fs, "demo/one.txt"))
	assert.Equal(t, "2", readFile(t, fs, "demo/two.txt"))

	_, err = fs.Stat("demo/.gitignore")
	assert.True(t, os.IsNotExist(err))
}

func TestInstantiate_NoFetcher(t *testing.T) {
	result, err := NewInstantiator(memfs.New(), nil).Instantiate(context.Background(), rustRecord(),
		Options{ProjectName: "demo", Identifier: "Rust", Gitignore: true})
	require.NoError(t, err)
	assert.True(t, scerrors.IsKind(result.GitignoreErr, scerrors.ErrFetchFailure))
}

func TestInstantiate_GitInit(t *testing.T) {
	fs := osfs.New(t.TempDir())

	result, err := NewInstantiator(fs, nil).Instantiate(context.Background(), rustRecord(),
		Options{ProjectName: "demo", GitInit: true})
	require.NoError(t, err)
	assert.True(t, result.GitInitialized)

	repo, err := git.PlainOpen(result.Root)
	require.NoError(t, err)
	_, err = repo.Worktree()
	assert.NoError(t, err)
}

func TestInitRepository_Memfs(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("demo", 0755))
	require.NoError(t, InitRepository(fs, "demo"))

	worktree, err := fs.Chroot("demo")
	require.NoError(t, err)
	dotgit, err := worktree.Chroot(git.GitDirName)
	require.NoError(t, err)

	_, err = git.Open(filesystem.NewStorage(dotgit, cache.NewObjectLRUDefault()), worktree)
	assert.NoError(t, err)
}

// Instantiating then reading back yields the substituted current content of every file.
func TestInstantiateProperty_ContentMatchesCurrentVersion(t *testing.T) {
	properties := gopter.NewProperties(nil)

	versionGen := gen.SliceOfN(3, gen.AlphaString()).Map(func(parts []string) string {
		return strings.Join(parts, "\n"+template.ProjectNamePlaceholder+"\n")
	})

	properties.Property("files equal Substitute(Current, name)", prop.ForAll(
		func(name string, older string, current string) bool {
			record := models.NewRecord([]string{"src"}, []models.File{
				{Path: "src/main.txt", ContentHistory: models.HistoryOf(older, current)},
				models.NewFile("README", current),
			}, "")

			fs := memfs.New()
			if _, err := NewInstantiator(fs, nil).Instantiate(context.Background(), record, Options{ProjectName: name}); err != nil {
				return false
			}

			for _, f := range record.Structure.Files {
				data, err := util.ReadFile(fs, fs.Join(name, f.Path))
				if err != nil {
					return false
				}
				if string(data) != template.Substitute(f.ContentHistory.Current(), name) {
					return false
				}
			}
			return true
		},
		gen.Identifier(),
		versionGen,
		versionGen,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
