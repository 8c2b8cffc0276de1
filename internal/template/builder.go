package template

import (
	"fmt"
	"strings"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/interfaces"
	"scaffer/internal/output"
	"scaffer/pkg/models"
)

// Builder collects a new template record from user input.
type Builder struct {
	prompter interfaces.Prompter
}

// NewBuilder creates a builder that asks prompter for every value.
func NewBuilder(prompter interfaces.Prompter) *Builder {
	return &Builder{prompter: prompter}
}

// Build collects directories, files and a start command into a new record.
// It never consults stored records; collisions are resolved by Store.Save.
func (b *Builder) Build() (*models.Record, error) {
	directories, err := b.CollectDirectories(nil)
	if err != nil {
		return nil, err
	}

	files, err := b.CollectFiles()
	if err != nil {
		return nil, err
	}

	startCommand, err := b.CollectStartCommand("")
	if err != nil {
		return nil, err
	}

	return models.NewRecord(directories, files, startCommand), nil
}

// CollectDirectories asks for a comma-separated list of directories.
func (b *Builder) CollectDirectories(current []string) ([]string, error) {
	input, err := b.prompter.Input(
		"Enter the directories of the template (comma-separated):",
		strings.Join(current, ","),
		"Example: src,tests,docs/api",
	)
	if err != nil {
		return nil, scerrors.InvalidInput("directories", "could not read directories", err)
	}

	return SplitDirectories(input), nil
}

// SplitDirectories splits input on commas without trimming.
// An empty input yields a single empty directory entry.
func SplitDirectories(input string) []string {
	return strings.Split(input, ",")
}

// CollectFiles asks for files until the user declines to add another.
// Every file starts a one-element history. Entering a path twice keeps
// the last content for it.
func (b *Builder) CollectFiles() ([]models.File, error) {
	files := []models.File{}
	index := make(map[string]int)

	for {
		more, err := b.prompter.Confirm("Add a file to the template?", len(files) == 0)
		if err != nil {
			return nil, scerrors.InvalidInput("file", "could not read confirmation", err)
		}
		if !more {
			break
		}

		path, err := b.prompter.Input(
			"Enter the path of the file:",
			"",
			"Relative to the project root, e.g. src/main.rs",
		)
		if err != nil {
			return nil, scerrors.InvalidInput("file path", "could not read path", err)
		}

		content, err := b.prompter.Editor(
			fmt.Sprintf("Enter the content of %s:", path),
			"",
			fmt.Sprintf("%s is replaced by the project name", ProjectNamePlaceholder),
		)
		if err != nil {
			return nil, scerrors.InvalidInput("file content", "could not read content", err)
		}

		if i, ok := index[path]; ok {
			files[i] = models.NewFile(path, content)
			output.Info("replaced file", "path", path, "content", Truncate(content, 40))
			continue
		}

		index[path] = len(files)
		files = append(files, models.NewFile(path, content))
		output.Info("added file", "path", path, "content", Truncate(content, 40))
	}

	return files, nil
}

// CollectStartCommand asks how to run or build a generated project.
func (b *Builder) CollectStartCommand(current string) (string, error) {
	command, err := b.prompter.Input(
		"Enter the start command:",
		current,
		"Shown as the last next step after a project is created, e.g. cargo run",
	)
	if err != nil {
		return "", scerrors.InvalidInput("start command", "could not read start command", err)
	}

	return command, nil
}
