// Package cli holds the terminal prompts used by the objectgraph tool's
// interactive mode.
package cli

import (
	"errors"
	"os"

	"github.com/manifoldco/promptui"
)

var errEmptyInput = errors.New("you must enter something")

// PromptString asks for a non-empty line of text.
func PromptString(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: nonEmpty,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	return prompt.Run()
}

// PromptStringEmptyOk asks for a line of text that may be empty.
func PromptStringEmptyOk(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:  label,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	return prompt.Run()
}

func nonEmpty(s string) error {
	if len(s) == 0 {
		return errEmptyInput
	}

	return nil
}
