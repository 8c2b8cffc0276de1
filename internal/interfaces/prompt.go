package interfaces

// Prompter collects atomic user input, one method per prompt kind.
// Template authoring depends only on this interface.
type Prompter interface {
	// Select asks the user to pick one of options
	Select(message string, options []string, help string) (string, error)

	// Input asks for a single line of free text
	Input(message, defaultValue, help string) (string, error)

	// Confirm asks a yes/no question
	Confirm(message string, defaultValue bool) (bool, error)

	// Editor asks for a multi-line body of text
	Editor(message, defaultValue, help string) (string, error)
}
