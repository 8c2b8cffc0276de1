package template

import (
	"fmt"
	"strings"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/interfaces"
	"scaffer/internal/output"
	"scaffer/pkg/models"
)

// Updater edits a stored record while keeping the content history of its files.
type Updater struct {
	store    interfaces.TemplateStore
	prompter interfaces.Prompter
	builder  *Builder
}

// NewUpdater creates an updater over store that asks prompter for changes.
func NewUpdater(store interfaces.TemplateStore, prompter interfaces.Prompter) *Updater {
	return &Updater{
		store:    store,
		prompter: prompter,
		builder:  NewBuilder(prompter),
	}
}

// Update runs one update session for identifier and saves the result under
// the same identifier. Each field is only replaced after the user confirms.
func (u *Updater) Update(identifier string) (*models.Record, error) {
	existing, err := u.store.Load(identifier)
	if err != nil {
		return nil, err
	}

	startCommand := existing.StartCommand
	change, err := u.confirm(fmt.Sprintf("Current start command: %q. Change it?", startCommand))
	if err != nil {
		return nil, err
	}
	if change {
		if startCommand, err = u.builder.CollectStartCommand(startCommand); err != nil {
			return nil, err
		}
	}

	directories := existing.Structure.Directories
	change, err = u.confirm(fmt.Sprintf("Current directories: [%s]. Replace them?",
		strings.Join(directories, ", ")))
	if err != nil {
		return nil, err
	}
	if change {
		if directories, err = u.builder.CollectDirectories(directories); err != nil {
			return nil, err
		}
	}

	files := existing.Structure.Files
	change, err = u.confirm(fmt.Sprintf("Current files: [%s]. Change them?",
		strings.Join(existing.FilePaths(), ", ")))
	if err != nil {
		return nil, err
	}
	if change {
		batch, err := u.builder.CollectFiles()
		if err != nil {
			return nil, err
		}
		files = MergeFiles(existing.Structure.Files, batch)
	}

	updated := models.NewRecord(directories, files, startCommand)
	if err := u.store.Save(identifier, updated); err != nil {
		return nil, err
	}

	output.Debug("updated template", "identifier", identifier, "files", len(files))
	return updated, nil
}

func (u *Updater) confirm(message string) (bool, error) {
	ok, err := u.prompter.Confirm(message, false)
	if err != nil {
		return false, scerrors.InvalidInput("confirmation", "could not read answer", err)
	}
	return ok, nil
}

// MergeFiles merges a batch of newly entered files into existing ones, keyed by path.
// A batch file whose path exists gets its content appended to that file's history;
// a new path starts a fresh history. Existing files absent from the batch are dropped.
// The result follows batch order and existing histories are not modified.
func MergeFiles(existing, batch []models.File) []models.File {
	byPath := make(map[string]models.History, len(existing))
	for _, f := range existing {
		byPath[f.Path] = f.ContentHistory
	}

	merged := make([]models.File, 0, len(batch))
	for _, f := range batch {
		history, ok := byPath[f.Path]
		if !ok {
			merged = append(merged, models.NewFile(f.Path, f.ContentHistory.Current()))
			continue
		}
		merged = append(merged, models.File{
			Path:           f.Path,
			ContentHistory: history.Append(f.ContentHistory.Current()),
		})
	}

	return merged
}
