package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rein-hosz/GitSwitch/internal/validate"
)

// PromptAccountInfo interactively collects the fields for a new account.
func PromptAccountInfo(suggestedName string) (name, username, email, provider string, err error) {
	namePrompt := &survey.Input{
		Message: "Account name:",
		Default: suggestedName,
		Help:    "Label for switching identities (e.g., work, personal)",
	}
	nameValidator := func(val interface{}) error {
		if str, ok := val.(string); ok {
			return validate.AccountName(str)
		}
		return nil
	}
	if err := survey.AskOne(namePrompt, &name, survey.WithValidator(survey.Required), survey.WithValidator(nameValidator)); err != nil {
		return "", "", "", "", err
	}

	usernamePrompt := &survey.Input{
		Message: "Username:",
		Help:    "Your username on the hosting provider (e.g., johndoe)",
	}
	if err := survey.AskOne(usernamePrompt, &username, survey.WithValidator(survey.Required)); err != nil {
		return "", "", "", "", err
	}

	emailPrompt := &survey.Input{
		Message: "Email address:",
		Help:    "Your email for Git commits (e.g., john@example.com)",
	}
	emailValidator := func(val interface{}) error {
		if str, ok := val.(string); ok {
			if validate.Email(str) != nil {
				return fmt.Errorf("invalid email format")
			}
		}
		return nil
	}
	if err := survey.AskOne(emailPrompt, &email, survey.WithValidator(survey.Required), survey.WithValidator(emailValidator)); err != nil {
		return "", "", "", "", err
	}

	providerPrompt := &survey.Select{
		Message: "Git provider:",
		Options: []string{"github", "gitlab", "bitbucket", "other"},
	}
	if err := survey.AskOne(providerPrompt, &provider); err != nil {
		return "", "", "", "", err
	}
	if provider == "other" {
		provider = ""
	}

	return name, username, email, provider, nil
}

// PromptKeyPath asks for an existing SSH private key path.
func PromptKeyPath() (string, error) {
	var path string
	prompt := &survey.Input{
		Message: "Path to existing SSH private key:",
		Help:    "Full path to your private key file (e.g., ~/.ssh/id_rsa_work)",
	}
	if err := survey.AskOne(prompt, &path, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return path, nil
}

// PromptGenerateKey asks whether to generate a fresh key pair.
func PromptGenerateKey() (bool, error) {
	generate := true
	prompt := &survey.Confirm{
		Message: "Generate new SSH key?",
		Default: true,
	}
	if err := survey.AskOne(prompt, &generate); err != nil {
		return false, err
	}
	return generate, nil
}

// PromptConfirm asks a yes/no question, defaulting to no.
func PromptConfirm(message string) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// PromptMultiSelect asks the user to pick any subset of options, returning
// the selected indexes.
func PromptMultiSelect(message string, options []string) ([]int, error) {
	var selected []int
	prompt := &survey.MultiSelect{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, err
	}
	return selected, nil
}
