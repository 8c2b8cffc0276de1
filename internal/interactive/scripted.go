package interactive

import (
	"fmt"

	scerrors "scaffer/internal/errors"
)

// Scripted answers prompts from a fixed list, in order. It is used to drive
// template authoring headless and in tests.
type Scripted struct {
	answers []interface{}
	next    int

	// Asked records the message of every prompt, in order.
	Asked []string
}

// NewScripted creates a prompter that returns answers in order. Select, Input
// and Editor consume a string; Confirm consumes a bool.
func NewScripted(answers ...interface{}) *Scripted {
	return &Scripted{answers: answers}
}

// Remaining returns the number of answers not consumed yet.
func (s *Scripted) Remaining() int {
	return len(s.answers) - s.next
}

func (s *Scripted) pop(message string) (interface{}, error) {
	s.Asked = append(s.Asked, message)
	if s.next >= len(s.answers) {
		return nil, scerrors.InvalidInput("input", fmt.Sprintf("no scripted answer for %q", message), nil)
	}
	answer := s.answers[s.next]
	s.next++
	return answer, nil
}

func (s *Scripted) popString(message string) (string, error) {
	answer, err := s.pop(message)
	if err != nil {
		return "", err
	}
	str, ok := answer.(string)
	if !ok {
		return "", scerrors.InvalidInput("input", fmt.Sprintf("scripted answer %v for %q is not a string", answer, message), nil)
	}
	return str, nil
}

// Select returns the next answer, which must be one of options.
func (s *Scripted) Select(message string, options []string, help string) (string, error) {
	answer, err := s.popString(message)
	if err != nil {
		return "", err
	}
	for _, option := range options {
		if option == answer {
			return answer, nil
		}
	}
	return "", scerrors.InvalidInput("selection", fmt.Sprintf("%q is not one of %v", answer, options), nil)
}

// Input returns the next answer.
func (s *Scripted) Input(message, defaultValue, help string) (string, error) {
	return s.popString(message)
}

// Confirm returns the next answer.
func (s *Scripted) Confirm(message string, defaultValue bool) (bool, error) {
	answer, err := s.pop(message)
	if err != nil {
		return false, err
	}
	ok, isBool := answer.(bool)
	if !isBool {
		return false, scerrors.InvalidInput("input", fmt.Sprintf("scripted answer %v for %q is not a bool", answer, message), nil)
	}
	return ok, nil
}

// Editor returns the next answer.
func (s *Scripted) Editor(message, defaultValue, help string) (string, error) {
	return s.popString(message)
}
