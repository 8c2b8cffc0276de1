package orchestrator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zeebo/xxh3"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/interactive"
	"scaffer/internal/interfaces"
	"scaffer/internal/output"
	"scaffer/internal/template"
	"scaffer/pkg/models"
)

// ListTemplates prints and returns the stored identifiers containing request.Filter
func (o *Orchestrator) ListTemplates(request *models.TemplateRequest) ([]string, error) {
	if _, err := o.loadForTemplates(request); err != nil {
		return nil, err
	}

	identifiers, err := o.store().List(request.Filter)
	if err != nil {
		return nil, err
	}
	sort.Strings(identifiers)

	r := o.reporter
	r.Heading(fmt.Sprintf("Templates in %s:", contractPath(o.cfg.TemplateDir)))
	if len(identifiers) == 0 {
		if request.Filter != "" {
			r.Item("", fmt.Sprintf("(none matching %q)", request.Filter))
		} else {
			r.Item("", "(none found)")
		}
		return identifiers, nil
	}
	for _, id := range identifiers {
		r.Item("", r.Noun(id))
	}

	return identifiers, nil
}

// AddTemplate authors a new template and returns the saved record. An existing
// template with the same identifier is only replaced after confirmation; when
// the user declines, nothing is saved and both return values are nil.
func (o *Orchestrator) AddTemplate(request *models.TemplateRequest) (*models.Record, error) {
	if _, err := o.loadForTemplates(request); err != nil {
		return nil, err
	}

	prompter := o.prompterFor(request.NumberSelect)
	if request.FromClipboard {
		prompter = interactive.NewClipboardPrompter(prompter)
	}

	identifier := request.Identifier
	if identifier == "" {
		var err error
		identifier, err = prompter.Input("Enter the language of the template:", "", "Also used to look up its .gitignore")
		if err != nil {
			return nil, scerrors.InvalidInput("language", "could not read language", err)
		}
		identifier = strings.TrimSpace(identifier)
	}
	if identifier == "" {
		return nil, scerrors.InvalidInput("language", "template language is empty", nil)
	}

	store := o.store()
	if store.Exists(identifier) {
		overwrite, err := prompter.Confirm(fmt.Sprintf("Template %s already exists. Overwrite it?", identifier), false)
		if err != nil {
			return nil, scerrors.InvalidInput("confirmation", "could not read answer", err)
		}
		if !overwrite {
			o.reporter.Warning("Template " + identifier + " left unchanged")
			return nil, nil
		}
	}

	record, err := template.NewBuilder(prompter).Build()
	if err != nil {
		return nil, err
	}

	if err := store.Save(identifier, record); err != nil {
		return nil, err
	}

	o.reporter.Success(fmt.Sprintf("Template %s saved with %d file(s)", o.reporter.Noun(identifier), len(record.Structure.Files)))
	return record, nil
}

// RemoveTemplate deletes a template, asking which one when request.Identifier is empty
func (o *Orchestrator) RemoveTemplate(request *models.TemplateRequest) error {
	if _, err := o.loadForTemplates(request); err != nil {
		return err
	}

	identifier, err := o.selectTemplate(request, "Select a template to remove:")
	if err != nil {
		return err
	}

	if err := o.store().Delete(identifier); err != nil {
		return err
	}

	o.reporter.Success("Template " + o.reporter.Noun(identifier) + " removed")
	return nil
}

// UpdateTemplate edits a template, keeping the history of its files
func (o *Orchestrator) UpdateTemplate(request *models.TemplateRequest) (*models.Record, error) {
	if _, err := o.loadForTemplates(request); err != nil {
		return nil, err
	}

	identifier, err := o.selectTemplate(request, "Select a template to update:")
	if err != nil {
		return nil, err
	}

	record, err := template.NewUpdater(o.store(), o.prompterFor(request.NumberSelect)).Update(identifier)
	if err != nil {
		return nil, err
	}

	o.reporter.Success("Template " + o.reporter.Noun(identifier) + " updated")
	return record, nil
}

// ShowTemplate prints a template with the current content of each file highlighted
func (o *Orchestrator) ShowTemplate(request *models.TemplateRequest) (*models.Record, error) {
	cfg, err := o.loadForTemplates(request)
	if err != nil {
		return nil, err
	}

	identifier, err := o.selectTemplate(request, "Select a template to show:")
	if err != nil {
		return nil, err
	}

	record, err := o.store().Load(identifier)
	if err != nil {
		return nil, err
	}

	r := o.reporter
	r.Heading("Template " + identifier + ":")
	r.Item("Directories", strings.Join(record.Structure.Directories, ", "))
	r.Item("Start command", record.StartCommand)
	for _, f := range record.Structure.Files {
		r.Blank()
		r.Step(r.Noun(f.Path))
		r.Block(output.Highlight(f.Path, f.ContentHistory.Current(), cfg.Theme))
	}

	return record, nil
}

// VersionInfo describes one stored version of a file
type VersionInfo struct {
	Index   int
	Digest  string
	Size    int
	Preview string
	Current bool
}

// Digest returns the xxh3 digest of content as 16 hex digits
func Digest(content string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(content))
}

// History prints and returns every stored version of every file of a template
func (o *Orchestrator) History(request *models.TemplateRequest) (map[string][]VersionInfo, error) {
	if _, err := o.loadForTemplates(request); err != nil {
		return nil, err
	}

	identifier, err := o.selectTemplate(request, "Select a template:")
	if err != nil {
		return nil, err
	}

	record, err := o.store().Load(identifier)
	if err != nil {
		return nil, err
	}

	r := o.reporter
	r.Heading("History of " + identifier + ":")

	history := make(map[string][]VersionInfo, len(record.Structure.Files))
	for _, f := range record.Structure.Files {
		r.Step(r.Noun(f.Path))

		versions := f.ContentHistory.Versions()
		infos := make([]VersionInfo, 0, len(versions))
		for i, v := range versions {
			info := VersionInfo{
				Index:   i + 1,
				Digest:  Digest(v),
				Size:    len(v),
				Preview: template.Truncate(v, 40),
				Current: i == len(versions)-1,
			}
			infos = append(infos, info)

			line := fmt.Sprintf("v%d %s %dB %s", info.Index, info.Digest, info.Size, info.Preview)
			if info.Current {
				r.Check(line + " (current)")
			} else {
				r.Item("", line)
			}
		}
		history[f.Path] = infos
	}

	return history, nil
}

// ShowConfig prints the resolved configuration
func (o *Orchestrator) ShowConfig(request *models.TemplateRequest) (*interfaces.Config, error) {
	cfg, err := o.loadForTemplates(request)
	if err != nil {
		return nil, err
	}

	r := o.reporter
	r.Heading("Configuration:")
	if p, ok := o.configManager.(interface{ Path() string }); ok {
		r.Item("File", contractPath(p.Path()))
	}
	r.Item("Template directory", contractPath(cfg.TemplateDir))
	r.Item("Languages", strings.Join(cfg.Languages, ", "))
	r.Item("Theme", cfg.Theme)
	r.Item("Gitignore source", cfg.GitignoreURL)
	r.Item("Fetch timeout", cfg.FetchTimeout.String())

	return cfg, nil
}

func (o *Orchestrator) loadForTemplates(request *models.TemplateRequest) (*interfaces.Config, error) {
	if request == nil {
		return nil, scerrors.InvalidInput("request", "request cannot be nil", nil)
	}
	return o.LoadConfiguration(request.ConfigPath, request.TemplateDir, request.Theme)
}

// selectTemplate returns request.Identifier or asks the user to pick a stored template
func (o *Orchestrator) selectTemplate(request *models.TemplateRequest, message string) (string, error) {
	if request.Identifier != "" {
		return request.Identifier, nil
	}

	identifiers, err := o.store().List("")
	if err != nil {
		return "", err
	}
	if len(identifiers) == 0 {
		return "", scerrors.InvalidInput("template", "there are no templates", nil)
	}
	sort.Strings(identifiers)

	identifier, err := o.prompterFor(request.NumberSelect).Select(message, identifiers, "")
	if err != nil {
		return "", scerrors.InvalidInput("template", "could not read selection", err)
	}

	return identifier, nil
}
