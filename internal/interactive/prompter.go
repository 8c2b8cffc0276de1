package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/term"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/output"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("selection cancelled")

// SurveyPrompter asks questions on the terminal
type SurveyPrompter struct {
	numberSelect bool
}

// NewSurveyPrompter creates a terminal prompter. With numberSelect, Select
// shows numbered options that can be picked with a single key press.
func NewSurveyPrompter(numberSelect bool) *SurveyPrompter {
	return &SurveyPrompter{
		numberSelect: numberSelect,
	}
}

// Select asks the user to pick one of options
func (p *SurveyPrompter) Select(message string, options []string, help string) (string, error) {
	if len(options) == 0 {
		return "", scerrors.InvalidInput("selection", "nothing to choose from", nil)
	}

	if p.numberSelect {
		return p.selectWithNumbers(options, message, help)
	}

	prompt := &survey.Select{
		Message: message,
		Options: options,
		Help:    help,
	}

	var selected string
	if err := ask(prompt, &selected); err != nil {
		return "", err
	}

	return selected, nil
}

// Input asks for a single line of free text
func (p *SurveyPrompter) Input(message, defaultValue, help string) (string, error) {
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
		Help:    help,
	}

	var value string
	if err := ask(prompt, &value); err != nil {
		return "", err
	}

	return value, nil
}

// Confirm asks a yes/no question
func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}

	var result bool
	if err := ask(prompt, &result); err != nil {
		return false, err
	}

	return result, nil
}

// Editor asks for a multi-line body. $VISUAL or $EDITOR is launched when set,
// otherwise the body is typed inline and finished with Ctrl+D.
func (p *SurveyPrompter) Editor(message, defaultValue, help string) (string, error) {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}

	var content string
	if editor != "" {
		prompt := &survey.Editor{
			Message:       message,
			Default:       defaultValue,
			Help:          help,
			Editor:        editor,
			HideDefault:   true,
			AppendDefault: true,
		}
		if err := ask(prompt, &content); err != nil {
			return "", err
		}
		return content, nil
	}

	prompt := &survey.Multiline{
		Message: message,
		Default: defaultValue,
		Help:    help + " (press Ctrl+D when finished)",
	}
	if err := ask(prompt, &content); err != nil {
		return "", err
	}

	return content, nil
}

// ask runs a survey prompt, translating a missing terminal and Ctrl+C into InvalidInput.
func ask(prompt survey.Prompt, response interface{}) error {
	if !output.IsInteractive() {
		return scerrors.InvalidInput("terminal", "stdin is not a terminal", nil)
	}

	if err := survey.AskOne(prompt, response); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return scerrors.InvalidInput("input", "prompt interrupted", ErrCancelled)
		}
		return scerrors.InvalidInput("input", "prompt failed", err)
	}

	return nil
}

// selectWithNumbers displays numbered options and allows instant selection by number key
func (p *SurveyPrompter) selectWithNumbers(options []string, message, help string) (string, error) {
	fmt.Printf("\n%s\n", message)
	if help != "" {
		fmt.Printf("  %s (Press number key for instant selection)\n", help)
	}
	fmt.Println()

	for i, option := range options {
		fmt.Printf("  %d. %s\n", i+1, option)
	}
	fmt.Println()

	// More than nine options cannot be picked with a single key
	if len(options) > 9 || !term.IsTerminal(int(syscall.Stdin)) {
		return fallbackNumberSelection(options)
	}

	oldState, err := term.MakeRaw(int(syscall.Stdin))
	if err != nil {
		return fallbackNumberSelection(options)
	}
	defer term.Restore(int(syscall.Stdin), oldState)

	fmt.Print("Select option: ")

	buffer := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buffer); err != nil {
			return "", scerrors.InvalidInput("selection", "could not read key", err)
		}

		char := buffer[0]

		if char >= '1' && char <= '9' {
			selectedIndex := int(char - '1')
			if selectedIndex < len(options) {
				fmt.Printf("%c\r\n", char)
				return options[selectedIndex], nil
			}
		}

		// Enter picks the first option
		if char == '\r' || char == '\n' {
			fmt.Print("\r\n")
			return options[0], nil
		}

		// Escape or Ctrl+C
		if char == 27 || char == 3 {
			fmt.Print("\r\n")
			return "", scerrors.InvalidInput("selection", "prompt interrupted", ErrCancelled)
		}
	}
}

// fallbackNumberSelection reads a number followed by Enter when raw mode is not available
func fallbackNumberSelection(options []string) (string, error) {
	fmt.Printf("Enter number (1-%d) or press Enter for first option: ", len(options))

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", scerrors.InvalidInput("selection", "could not read line", err)
	}

	return parseNumberSelection(options, input)
}

// parseNumberSelection maps a typed 1-based number to an option
func parseNumberSelection(options []string, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return options[0], nil
	}

	selectedIndex, err := strconv.Atoi(input)
	if err != nil {
		return "", scerrors.InvalidInput("selection",
			fmt.Sprintf("please enter a number between 1 and %d", len(options)), err)
	}

	if selectedIndex < 1 || selectedIndex > len(options) {
		return "", scerrors.InvalidInput("selection",
			fmt.Sprintf("please enter a number between 1 and %d", len(options)), nil)
	}

	return options[selectedIndex-1], nil
}
