package models

// CreateRequest holds the inputs of a create invocation. Empty fields are
// prompted for when the session is interactive.
type CreateRequest struct {
	ConfigPath  string
	TemplateDir string
	Theme       string
	Verbose     bool

	// NumberSelect picks options with a single number key.
	NumberSelect bool

	Language string
	Name     string
	Path     string

	// Gitignore is nil when the user should be asked.
	Gitignore *bool
	GitInit   bool
}

// NewCreateRequest creates a CreateRequest with default values
func NewCreateRequest() *CreateRequest {
	return &CreateRequest{}
}

// TemplateRequest holds the inputs of a templates subcommand.
type TemplateRequest struct {
	ConfigPath  string
	TemplateDir string
	Theme       string
	Verbose     bool

	// NumberSelect picks options with a single number key.
	NumberSelect bool

	// Identifier names the template; prompted for when empty.
	Identifier string

	// Filter restricts templates list to identifiers containing it.
	Filter string

	// FromClipboard seeds file content prompts with the clipboard.
	FromClipboard bool
}

// NewTemplateRequest creates a TemplateRequest with default values
func NewTemplateRequest() *TemplateRequest {
	return &TemplateRequest{}
}
