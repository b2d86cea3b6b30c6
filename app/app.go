// Package app holds the core application logic for creating LICENSE files.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/rorycl/lic/apiclients/registry"
	"github.com/rorycl/lic/internal/gitconfig"
	"github.com/rorycl/lic/internal/render"
)

// LicenseFileName is the fixed name of the output file, written to the
// current working directory.
const LicenseFileName = "LICENSE"

// defaultLicenseKey is the license used in direct mode when no --license
// flag is given. Interactive mode has no default and always prompts.
const defaultLicenseKey = "mit"

// defaultAuthor is the editable prompt default offered in interactive mode
// when no author can be read from the git configuration.
const defaultAuthor = "Your Name"

// listPageSize asks the listing endpoint for up to this many licenses in
// the single selection request.
const listPageSize = 50

// ErrMissingAuthor is returned in direct mode when no author is supplied
// via the --author flag and none can be read from the git configuration.
var ErrMissingAuthor = errors.New("author name not found: provide --author or configure git user.name")

var (
	introStyle = lipgloss.NewStyle().Bold(true)
	outroStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// Registry is the license registry surface used by the app, implemented by
// registry.Client.
type Registry interface {
	ListLicenses(ctx context.Context, opts *registry.ListOptions) ([]registry.LicenseSummary, error)
	GetLicense(ctx context.Context, key string) (registry.LicenseText, error)
}

// App is the central orchestrator for the application's business logic.
// It coordinates parameter resolution, the licenses API client, the
// interactive prompts and the final file write.
type App struct {
	registry Registry
	prompt   prompter
	log      *log.Logger
	out      io.Writer
	identity func() (string, bool)
	now      func() time.Time
}

// New creates and returns a new App instance.
func New(logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &App{
		registry: registry.NewClient(nil, logger),
		prompt:   &huhPrompter{},
		log:      logger,
		out:      os.Stdout,
		identity: gitconfig.UserName,
		now:      time.Now,
	}
}

// Direct creates a LICENSE file from flag values and defaults without
// prompting. The license key defaults to "mit", the author to the git
// user.name and the year to the current year. A missing author is fatal.
func (a *App) Direct(ctx context.Context, author, year, licenseKey string) error {

	if licenseKey == "" {
		licenseKey = defaultLicenseKey
	}

	if author == "" {
		name, ok := a.identity()
		if !ok {
			return ErrMissingAuthor
		}
		author = name
	}

	if year == "" {
		year = strconv.Itoa(a.now().Year())
	}

	a.log.Debug("resolved parameters", "license", licenseKey, "author", author, "year", year)

	license, err := a.registry.GetLicense(ctx, licenseKey)
	if err != nil {
		return err
	}

	if err := a.write(render.Render(license.Body, year, author)); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created %s license for %s (%s).\n", license.Name, author, year)
	return nil
}

// Interactive creates a LICENSE file, prompting for any value not supplied
// via flags. The license list is only fetched when the selection prompt
// will run. A prompt abort propagates and no file is written.
func (a *App) Interactive(ctx context.Context, author, year, licenseKey string) error {

	fmt.Fprintln(a.out, introStyle.Render("📜 Initialize License"))

	if licenseKey == "" {
		summaries, err := a.registry.ListLicenses(ctx, &registry.ListOptions{PerPage: listPageSize})
		if err != nil {
			return err
		}
		licenseKey, err = a.prompt.selectLicense(ctx, summaries)
		if err != nil {
			return err
		}
	}

	if author == "" {
		def, ok := a.identity()
		if !ok {
			def = defaultAuthor
		}
		name, err := a.prompt.inputAuthor(ctx, def)
		if err != nil {
			return err
		}
		author = name
	}

	if year == "" {
		y, err := a.prompt.inputYear(ctx, strconv.Itoa(a.now().Year()))
		if err != nil {
			return err
		}
		year = y
	}

	a.log.Debug("resolved parameters", "license", licenseKey, "author", author, "year", year)

	license, err := a.registry.GetLicense(ctx, licenseKey)
	if err != nil {
		return err
	}

	if err := a.write(render.Render(license.Body, year, author)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, outroStyle.Render(
		fmt.Sprintf("✓ %s license created for %s!", license.Name, author)))
	return nil
}

// write persists the rendered license to LicenseFileName in the current
// working directory, overwriting any existing file.
func (a *App) write(content string) error {
	if err := os.WriteFile(LicenseFileName, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", LicenseFileName, err)
	}
	return nil
}
