package setup

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/st7735-setup/pkg/config"
	"github.com/arthur-debert/st7735-setup/pkg/datastore"
	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/arthur-debert/st7735-setup/pkg/filesystem"
	"github.com/arthur-debert/st7735-setup/pkg/logging"
	"github.com/arthur-debert/st7735-setup/pkg/paths"
	"github.com/arthur-debert/st7735-setup/pkg/pyproject"
)

// CheckoutStatus describes the checkout as it is on disk right now
type CheckoutStatus struct {
	Repository      string                  `json:"repository"`
	Checkout        string                  `json:"checkout"`
	Exists          bool                    `json:"exists"`
	Manifest        string                  `json:"manifest"`
	ManifestPresent bool                    `json:"manifestPresent"`
	Requirements    []pyproject.Requirement `json:"requirements,omitempty"`
	Package         *pyproject.Package      `json:"package,omitempty"`
	Examples        []string                `json:"examples,omitempty"`
	LastRun         *datastore.RunRecord    `json:"lastRun,omitempty"`
}

// Inspect gathers a CheckoutStatus without modifying anything. A nil store skips the
// run history.
func Inspect(cfg *config.Config, fsys filesystem.FS, store datastore.DataStore) (*CheckoutStatus, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrInvalidInput, "status requires a config")
	}
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	logger := logging.GetLogger("setup.status")

	p, err := paths.New(cfg.Workspace.Root, cfg.Workspace.Dir)
	if err != nil {
		return nil, err
	}

	st := &CheckoutStatus{
		Repository: cfg.Repository.URL,
		Checkout:   p.CheckoutPath(),
		Manifest:   cfg.Install.Manifest,
	}

	st.Exists, err = filesystem.Exists(fsys, st.Checkout)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStateRead, "failed to inspect %s", st.Checkout)
	}

	if st.Exists {
		if data, err := fsys.ReadFile(p.InCheckout(cfg.Install.Manifest)); err == nil {
			st.ManifestPresent = true
			st.Requirements = pyproject.ParseRequirements(data)
		}

		st.Package, err = pyproject.Describe(fsys, st.Checkout)
		if err != nil {
			logger.Warn().Err(err).Msg("Could not read packaging descriptor")
		}

		st.Examples = listExamples(fsys, p.ExamplesPath())
	}

	if store != nil {
		st.LastRun, err = store.LastRun()
		if err != nil {
			logger.Warn().Err(err).Msg("Could not read run history")
		}
	}

	logger.Debug().
		Str("checkout", st.Checkout).
		Bool("exists", st.Exists).
		Int("examples", len(st.Examples)).
		Msg("Inspected checkout")
	return st, nil
}

func listExamples(fsys filesystem.FS, dir string) []string {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".py") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}
