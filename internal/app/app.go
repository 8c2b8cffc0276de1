// Package app wires the command line to the orchestrator.
package app

import (
	"context"

	"scaffer/internal/orchestrator"
	"scaffer/internal/output"
	"scaffer/pkg/models"
)

// Create scaffolds a new project
func Create(ctx context.Context, request *models.CreateRequest) error {
	output.SetupLogging(request.Verbose)

	_, err := orchestrator.New().Create(ctx, request)
	return err
}

// ListTemplates lists the stored templates
func ListTemplates(request *models.TemplateRequest) error {
	output.SetupLogging(request.Verbose)

	_, err := orchestrator.New().ListTemplates(request)
	return err
}

// AddTemplate authors a new template
func AddTemplate(request *models.TemplateRequest) error {
	output.SetupLogging(request.Verbose)

	_, err := orchestrator.New().AddTemplate(request)
	return err
}

// RemoveTemplate deletes a template
func RemoveTemplate(request *models.TemplateRequest) error {
	output.SetupLogging(request.Verbose)

	return orchestrator.New().RemoveTemplate(request)
}

// UpdateTemplate edits a template
func UpdateTemplate(request *models.TemplateRequest) error {
	output.SetupLogging(request.Verbose)

	_, err := orchestrator.New().UpdateTemplate(request)
	return err
}

// ShowTemplate prints a template
func ShowTemplate(request *models.TemplateRequest) error {
	output.SetupLogging(request.Verbose)

	_, err := orchestrator.New().ShowTemplate(request)
	return err
}

// History prints the version history of a template
func History(request *models.TemplateRequest) error {
	output.SetupLogging(request.Verbose)

	_, err := orchestrator.New().History(request)
	return err
}

// ShowConfig prints the resolved configuration
func ShowConfig(request *models.TemplateRequest) error {
	output.SetupLogging(request.Verbose)

	_, err := orchestrator.New().ShowConfig(request)
	return err
}
