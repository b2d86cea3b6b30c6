package app

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/rorycl/lic/apiclients/registry"
)

// prompter abstracts the interactive prompts so the flows can be tested
// without a terminal. A user abort is returned as huh.ErrUserAborted.
type prompter interface {
	selectLicense(ctx context.Context, licenses []registry.LicenseSummary) (string, error)
	inputAuthor(ctx context.Context, defaultName string) (string, error)
	inputYear(ctx context.Context, defaultYear string) (string, error)
}

// huhPrompter implements prompter with charmbracelet huh forms.
type huhPrompter struct{}

// selectLicense presents a single-choice selection over the listed
// licenses, labelled by display name, and returns the chosen key.
func (p *huhPrompter) selectLicense(ctx context.Context, licenses []registry.LicenseSummary) (string, error) {
	options := make([]huh.Option[string], len(licenses))
	for i, l := range licenses {
		options[i] = huh.NewOption(l.Name, l.Key)
	}

	var key string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Pick a license template").
			Options(options...).
			Value(&key),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return key, nil
}

// inputAuthor prompts for the copyright holder name, pre-filled with the
// resolved default.
func (p *huhPrompter) inputAuthor(ctx context.Context, defaultName string) (string, error) {
	name := defaultName
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Copyright holder name").
			Placeholder("Who owns the copyright?").
			Value(&name),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return name, nil
}

// inputYear prompts for the copyright year, pre-filled with the current
// year.
func (p *huhPrompter) inputYear(ctx context.Context, defaultYear string) (string, error) {
	year := defaultYear
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Copyright year").
			Placeholder("Defaults to current year").
			Value(&year),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return year, nil
}
