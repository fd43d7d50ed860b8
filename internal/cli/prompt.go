package cli

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	surveyterm "github.com/AlecAivazis/survey/v2/terminal"
)

// errPromptAborted is returned when the user interrupts a prompt.
var errPromptAborted = errors.New("prompt aborted")

// prompter asks the user for input.
type prompter interface {
	// Input asks for a line of text.
	Input(message, help string) (string, error)
	// Select asks for one of options.
	Select(message string, options []string) (string, error)
}

// surveyPrompter prompts on the terminal.
type surveyPrompter struct{}

func (surveyPrompter) Input(message, help string) (string, error) {
	var result string
	prompt := &survey.Input{
		Message: message,
		Help:    help,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", promptError(err)
	}
	return result, nil
}

func (surveyPrompter) Select(message string, options []string) (string, error) {
	var result string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", promptError(err)
	}
	return result, nil
}

// promptError maps an interrupt to errPromptAborted.
func promptError(err error) error {
	if errors.Is(err, surveyterm.InterruptErr) {
		return errPromptAborted
	}
	return err
}
