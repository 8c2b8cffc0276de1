// Package scaffold materializes template records as project directories.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/interfaces"
	"scaffer/internal/output"
	"scaffer/internal/template"
	"scaffer/pkg/models"
)

// GitignoreName is the file written at the project root when an ignore file is fetched
const GitignoreName = ".gitignore"

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Options selects what Instantiate does besides writing the template
type Options struct {
	// ProjectName names the project directory and replaces the placeholder.
	ProjectName string

	// Identifier is the display form of the language, used to find the ignore file.
	Identifier string

	// Gitignore fetches an ignore file for Identifier.
	Gitignore bool

	// GitInit initializes an empty git repository in the project.
	GitInit bool
}

// Result describes what was created
type Result struct {
	Root             string
	Directories      []string
	Files            []string
	GitignoreWritten bool
	// GitignoreErr holds the fetch failure, if any. It never fails the instantiation.
	GitignoreErr     error
	GitInitialized   bool
}

// Instantiator writes projects into a destination filesystem
type Instantiator struct {
	fs      billy.Filesystem
	fetcher interfaces.IgnoreFetcher
}

// NewInstantiator creates an instantiator rooted at the destination fs.
// fetcher may be nil when ignore files are never requested.
func NewInstantiator(fs billy.Filesystem, fetcher interfaces.IgnoreFetcher) *Instantiator {
	return &Instantiator{
		fs:      fs,
		fetcher: fetcher,
	}
}

// Instantiate creates <destination>/<ProjectName>, every directory of record and
// every file with its current content. Existing directories are reused and
// existing files overwritten. Nothing is rolled back on failure.
func (i *Instantiator) Instantiate(ctx context.Context, record *models.Record, opts Options) (*Result, error) {
	if opts.ProjectName == "" {
		return nil, scerrors.InvalidInput("name", "project name is empty", nil)
	}

	result := &Result{
		Root:        filepath.Join(i.fs.Root(), opts.ProjectName),
		Directories: []string{},
		Files:       []string{},
	}

	if err := i.fs.MkdirAll(opts.ProjectName, dirPerm); err != nil {
		return nil, scerrors.IOFailure("create project directory", result.Root, err)
	}

	for _, dir := range record.Structure.Directories {
		target := i.fs.Join(opts.ProjectName, dir)
		if err := i.fs.MkdirAll(target, dirPerm); err != nil {
			return nil, scerrors.IOFailure("create directory", filepath.Join(i.fs.Root(), target), err)
		}
		result.Directories = append(result.Directories, dir)
		output.Debug("created directory", "path", target)
	}

	processor := template.NewProcessor(opts.ProjectName)
	for _, file := range processor.Render(record) {
		target := i.fs.Join(opts.ProjectName, file.Path)
		if err := i.writeFile(target, file.Content); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, file.Path)
		output.Debug("wrote file", "path", target, "bytes", len(file.Content))
	}

	if opts.Gitignore {
		i.writeGitignore(ctx, opts, result)
	}

	if opts.GitInit {
		if err := InitRepository(i.fs, opts.ProjectName); err != nil {
			return nil, err
		}
		result.GitInitialized = true
	}

	return result, nil
}

func (i *Instantiator) writeFile(target string, content []byte) error {
	if parent := filepath.Dir(target); parent != "." {
		if err := i.fs.MkdirAll(parent, dirPerm); err != nil {
			return scerrors.IOFailure("create directory", filepath.Join(i.fs.Root(), parent), err)
		}
	}

	if err := util.WriteFile(i.fs, target, content, filePerm); err != nil {
		return scerrors.IOFailure("write file", filepath.Join(i.fs.Root(), target), err)
	}

	return nil
}

// writeGitignore records fetch and write failures in result instead of returning them.
func (i *Instantiator) writeGitignore(ctx context.Context, opts Options, result *Result) {
	if i.fetcher == nil {
		result.GitignoreErr = scerrors.FetchFailure(opts.Identifier, "", fmt.Errorf("no fetcher configured"))
		output.Warn("could not fetch .gitignore", "language", opts.Identifier, "err", result.GitignoreErr)
		return
	}

	body, err := i.fetcher.Fetch(ctx, opts.Identifier)
	if err != nil {
		result.GitignoreErr = err
		output.Warn("could not fetch .gitignore", "language", opts.Identifier, "err", err)
		return
	}

	target := i.fs.Join(opts.ProjectName, GitignoreName)
	if err := util.WriteFile(i.fs, target, []byte(body), filePerm); err != nil {
		result.GitignoreErr = scerrors.IOFailure("write file", filepath.Join(i.fs.Root(), target), err)
		output.Warn("could not write .gitignore", "err", err)
		return
	}

	result.GitignoreWritten = true
}
