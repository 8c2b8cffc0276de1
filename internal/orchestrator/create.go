package orchestrator

import (
	"context"
	"errors"
	"os"
	"strings"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/interfaces"
	"scaffer/internal/output"
	"scaffer/internal/scaffold"
	"scaffer/internal/template"
	"scaffer/pkg/models"
)

// Create instantiates a template as a new project. Values missing from request
// are asked for; a failed .gitignore fetch is reported but does not fail.
func (o *Orchestrator) Create(ctx context.Context, request *models.CreateRequest) (*scaffold.Result, error) {
	if request == nil {
		return nil, scerrors.InvalidInput("request", "request cannot be nil", nil)
	}

	cfg, err := o.LoadConfiguration(request.ConfigPath, request.TemplateDir, request.Theme)
	if err != nil {
		return nil, err
	}

	prompter := o.prompterFor(request.NumberSelect)

	if err := o.collectCreateInputs(prompter, request, cfg); err != nil {
		return nil, err
	}

	language := Capitalize(request.Language)
	record, err := o.store().Load(request.Language)
	if err != nil {
		return nil, err
	}

	gitignore := false
	if request.Gitignore != nil {
		gitignore = *request.Gitignore
	} else {
		gitignore, err = prompter.Confirm("Fetch a .gitignore for "+language+"?", true)
		if err != nil {
			return nil, scerrors.InvalidInput("gitignore", "could not read answer", err)
		}
	}

	instantiator := scaffold.NewInstantiator(o.newFS(request.Path), o.fetcherFor())
	result, err := instantiator.Instantiate(ctx, record, scaffold.Options{
		ProjectName: request.Name,
		Identifier:  language,
		Gitignore:   gitignore,
		GitInit:     request.GitInit,
	})
	if err != nil {
		return nil, err
	}

	o.reportCreated(language, request, record, result, gitignore)
	return result, nil
}

// collectCreateInputs asks for the language, project name and destination when absent
func (o *Orchestrator) collectCreateInputs(prompter interfaces.Prompter, request *models.CreateRequest, cfg *interfaces.Config) error {
	var err error

	if request.Language == "" {
		if len(cfg.Languages) == 0 {
			return scerrors.InvalidInput("language", "no languages are configured", nil)
		}
		request.Language, err = prompter.Select("Select a language:", cfg.Languages, "Languages come from the configuration file")
		if err != nil {
			return scerrors.InvalidInput("language", "could not read selection", err)
		}
	}

	if request.Name == "" {
		request.Name, err = prompter.Input("Enter the project name:", "", "")
		if err != nil {
			return scerrors.InvalidInput("name", "could not read project name", err)
		}
		request.Name = strings.TrimSpace(request.Name)
	}
	if request.Name == "" {
		return scerrors.InvalidInput("name", "project name is empty", nil)
	}

	if request.Path == "" {
		here, err := prompter.Confirm("Create the project in the current directory?", true)
		if err != nil {
			return scerrors.InvalidInput("path", "could not read answer", err)
		}
		if here {
			request.Path, err = os.Getwd()
			if err != nil {
				return scerrors.IOFailure("get current directory", ".", err)
			}
		} else {
			request.Path, err = prompter.Input("Enter the destination directory:", "", "The project is created inside it")
			if err != nil {
				return scerrors.InvalidInput("path", "could not read destination", err)
			}
		}
	}
	request.Path = expandHome(strings.TrimSpace(request.Path))
	if request.Path == "" {
		return scerrors.InvalidInput("path", "destination is empty", nil)
	}

	return nil
}

func (o *Orchestrator) reportCreated(language string, request *models.CreateRequest, record *models.Record, result *scaffold.Result, gitignore bool) {
	r := o.reporter

	r.Blank()
	r.Success("Project " + r.Noun(request.Name) + " created")
	r.Blank()
	r.Heading("Summary:")
	r.Item("Language", language)
	r.Item("Project", request.Name)
	r.Item("Location", contractPath(result.Root))
	r.Item("Files", strings.Join(result.Files, ", "))

	switch {
	case result.GitignoreWritten:
		r.Check(".gitignore added")
	case gitignore:
		r.Cross(".gitignore skipped: " + gitignoreSkipReason(language, result.GitignoreErr))
		output.Debug("gitignore fetch failed", "err", result.GitignoreErr)
	}
	if result.GitInitialized {
		r.Check("git repository initialized")
	}

	r.Blank()
	r.Heading("Next steps:")
	r.Item("", "cd "+contractPath(result.Root))
	if record.StartCommand != "" {
		r.Item("", template.Substitute(record.StartCommand, request.Name))
	}
}

// gitignoreSkipReason turns the recorded .gitignore failure into a one-line explanation.
func gitignoreSkipReason(language string, err error) string {
	var scErr *scerrors.Error
	switch {
	case err == nil:
		return "unknown error"
	case errors.Is(err, scaffold.ErrNoIgnoreFile):
		return "no template found for " + language
	case errors.Is(err, context.DeadlineExceeded):
		return "timed out fetching the template for " + language
	case scerrors.IsKind(err, scerrors.ErrIOFailure) && errors.As(err, &scErr):
		return scErr.Message
	case errors.As(err, &scErr) && scErr.Cause != nil:
		return scErr.Cause.Error()
	default:
		return err.Error()
	}
}
