package main

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	surveyterm "github.com/AlecAivazis/survey/v2/terminal"
)

// errPromptAborted reports that the user interrupted a prompt.
var errPromptAborted = errors.New("prompt aborted")

// promptDriver abstracts the interactive prompts so the simulate flow can
// be driven by scripted answers in tests.
type promptDriver interface {
	Select(ctx context.Context, message string, options []string) (int, error)
	Input(ctx context.Context, message string, validator func(string) error) (string, error)
}

type surveyDriver struct{}

func (surveyDriver) Select(ctx context.Context, message string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translatePromptErr(err)
	}
	for i, option := range options {
		if option == out {
			return i, nil
		}
	}
	return -1, nil
}

func (surveyDriver) Input(ctx context.Context, message string, validator func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{Message: message}
	var opts []survey.AskOpt
	if validator != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validator(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translatePromptErr(err)
	}
	return out, nil
}

func translatePromptErr(err error) error {
	if errors.Is(err, surveyterm.InterruptErr) {
		return errPromptAborted
	}
	return err
}
